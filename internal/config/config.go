package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/staffdb/internal/flagx"
)

// DefaultExtraRecord is inserted by the query sequence unless configured
// otherwise.
const DefaultExtraRecord = "'Leonard','1688 Strawberry Street',2800,'Sloan','leonard@hello-world.com'," +
	"'staff/profiles/leonard/avatar.png','672-48-1451','PST'"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config holds runtime settings for a staffdb run.
//
// Fields:
//   - InputPath: local path or s3://bucket/key of the input lines.
//   - DBPath: SQLite storage file, deleted at the end of the run.
//   - TableName: staff table name.
//   - SalaryFloor / LastName / ExtraRecord / UpdateID / UpdatePhone:
//     parameters of the fixed query sequence.
//   - LogLevel / LogFormat: see logging.New.
//   - S3Region / S3BaseEndpoint / S3AccessKey / S3SecretKey: object storage
//     settings for s3:// inputs. Empty credentials use the default AWS chain.
type Config struct {
	InputPath   string
	DBPath      string
	TableName   string
	SalaryFloor int64
	LastName    string
	ExtraRecord string
	UpdateID    int64
	UpdatePhone string
	LogLevel    string
	LogFormat   string

	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.InputPath = "people.csv"
	c.DBPath = "dbschema.db"
	c.TableName = "Staff"
	c.SalaryFloor = 3500
	c.LastName = "Sloan"
	c.ExtraRecord = DefaultExtraRecord
	c.UpdateID = 1
	c.UpdatePhone = "666-55-4444"
	c.LogLevel = "info"
	c.LogFormat = "auto"
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.InputPath == "":
		return errors.New("input path must not be empty")
	case c.DBPath == "":
		return errors.New("database path must not be empty")
	case !identRe.MatchString(c.TableName):
		return fmt.Errorf("table name %q is not a plain identifier", c.TableName)
	case c.UpdateID <= 0:
		return fmt.Errorf("update id must be positive, got %d", c.UpdateID)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json", "auto":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// LoadConfig builds a Config from defaults, the optional config file, the
// environment and os.Args, in that order.
func LoadConfig() (*Config, error) {
	loadDotEnv(".env")
	return Load(os.Args[1:], os.LookupEnv)
}

// Load is LoadConfig with explicit arguments and environment lookup.
func Load(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFileFlag(args); path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := parseEnv(cfg, lookupEnv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
