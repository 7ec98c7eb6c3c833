package config

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by parseEnv.
const EnvPrefix = "STAFFDB_"

// loadDotEnv exports the variables of a .env file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func loadDotEnv(path string) {
	_ = godotenv.Load(path)
}

// parseEnv overlays cfg with STAFFDB_* variables found through lookup.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	num := func(name string, dst *int64) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("env %s%s: %w", EnvPrefix, name, err)
		}
		*dst = n
		return nil
	}

	str("INPUT", &cfg.InputPath)
	str("DB_PATH", &cfg.DBPath)
	str("TABLE", &cfg.TableName)
	str("LAST_NAME", &cfg.LastName)
	str("EXTRA_RECORD", &cfg.ExtraRecord)
	str("UPDATE_PHONE", &cfg.UpdatePhone)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("S3_REGION", &cfg.S3Region)
	str("S3_BASE_ENDPOINT", &cfg.S3BaseEndpoint)
	str("S3_ACCESS_KEY", &cfg.S3AccessKey)
	str("S3_SECRET_KEY", &cfg.S3SecretKey)

	if err := num("SALARY_FLOOR", &cfg.SalaryFloor); err != nil {
		return err
	}
	return num("UPDATE_ID", &cfg.UpdateID)
}
