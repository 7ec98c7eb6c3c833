// Package config loads runtime configuration for staffdb.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via flags: -c or -config. JSON by
//     default, YAML when the file name ends in .yaml or .yml.
//  3. Environment variables prefixed with STAFFDB_. A .env file in the
//     working directory is read first if present; variables already set in
//     the environment win over it.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-i string   input location: local path or s3://bucket/key
//	-d string   path of the SQLite storage file
//	-t string   table name
//	-f int      salary floor for the salary query
//	-l string   last name for the last-name query
//	-x string   extra record inserted after the first queries
//	-n int      id of the record whose phone number is updated
//	-p string   new phone number
//	-v string   log level: debug, info, warn, error
//	-o string   log format: text, json, auto
//
// # File schema
//
//	{
//	  "input": "people.csv",
//	  "db_path": "dbschema.db",
//	  "table": "Staff",
//	  "salary_floor": 3500,
//	  "last_name": "Sloan",
//	  "extra_record": "'Leonard', ...",
//	  "update_id": 1,
//	  "update_phone": "666-55-4444",
//	  "log_level": "info",
//	  "log_format": "auto",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000",
//	  "s3_access_key": "admin",
//	  "s3_secret_key": "secretpassword"
//	}
//
// Keys missing from the file leave the current value untouched. The YAML
// form uses the same keys.
package config
