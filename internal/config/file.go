package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used exclusively for unmarshalling the config file.
// Pointer fields distinguish "absent" from a zero value.
type fileConfig struct {
	InputPath      *string `json:"input" yaml:"input"`
	DBPath         *string `json:"db_path" yaml:"db_path"`
	TableName      *string `json:"table" yaml:"table"`
	SalaryFloor    *int64  `json:"salary_floor" yaml:"salary_floor"`
	LastName       *string `json:"last_name" yaml:"last_name"`
	ExtraRecord    *string `json:"extra_record" yaml:"extra_record"`
	UpdateID       *int64  `json:"update_id" yaml:"update_id"`
	UpdatePhone    *string `json:"update_phone" yaml:"update_phone"`
	LogLevel       *string `json:"log_level" yaml:"log_level"`
	LogFormat      *string `json:"log_format" yaml:"log_format"`
	S3Region       *string `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint *string `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	S3AccessKey    *string `json:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey    *string `json:"s3_secret_key" yaml:"s3_secret_key"`
}

// parseFile overlays cfg with the values present in the file at path.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	set(&cfg.InputPath, fc.InputPath)
	set(&cfg.DBPath, fc.DBPath)
	set(&cfg.TableName, fc.TableName)
	set(&cfg.SalaryFloor, fc.SalaryFloor)
	set(&cfg.LastName, fc.LastName)
	set(&cfg.ExtraRecord, fc.ExtraRecord)
	set(&cfg.UpdateID, fc.UpdateID)
	set(&cfg.UpdatePhone, fc.UpdatePhone)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogFormat, fc.LogFormat)
	set(&cfg.S3Region, fc.S3Region)
	set(&cfg.S3BaseEndpoint, fc.S3BaseEndpoint)
	set(&cfg.S3AccessKey, fc.S3AccessKey)
	set(&cfg.S3SecretKey, fc.S3SecretKey)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
