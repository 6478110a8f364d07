package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"commulink_server/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Avatar storage modes
const (
	AvatarStorageS3     = "s3"
	AvatarStorageInline = "inline"
)

// Config holds everything the server reads at startup.
type Config struct {
	Server struct {
		Port      string `yaml:"port"`
		Env       string `yaml:"env"`
		StaticDir string `yaml:"static_dir"`
	} `yaml:"server"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`

	AWS struct {
		Region string `yaml:"region"`
	} `yaml:"aws"`

	Table struct {
		Name      string `yaml:"name"`
		SkipCheck bool   `yaml:"skip_check"`
	} `yaml:"table"`

	Avatar struct {
		Storage       string `yaml:"storage"`
		Bucket        string `yaml:"bucket"`
		PublicBaseURL string `yaml:"public_base_url"`
	} `yaml:"avatar"`

	Announcements struct {
		CollisionGuard bool `yaml:"collision_guard"`
	} `yaml:"announcements"`

	Realtime struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"realtime"`
}

// LoadConfig applies defaults, then the YAML file at configPath (if it exists), then the
// environment. Variables from .env.local and .env are loaded first without overriding the
// real environment.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	cfg := &Config{}
	setDefaults(cfg)

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	if err := overrideFromEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Server.Port = "8080"
	cfg.Server.Env = "development"
	cfg.Logging.Level = "info"
	cfg.AWS.Region = "us-east-1"
	cfg.Table.Name = models.DefaultTableName
	cfg.Avatar.Storage = AvatarStorageS3
	cfg.Avatar.Bucket = "commulink-images-storage"
	cfg.Realtime.Enabled = true
}

func overrideFromEnv(cfg *Config) error {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.Env, "ENV")
	setString(&cfg.Server.StaticDir, "STATIC_DIR")
	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.AWS.Region, "AWS_REGION")
	setString(&cfg.Table.Name, "TABLE_NAME")
	setString(&cfg.Avatar.Storage, "AVATAR_STORAGE")
	setString(&cfg.Avatar.Bucket, "BUCKET_NAME")
	setString(&cfg.Avatar.PublicBaseURL, "AVATAR_PUBLIC_BASE_URL")

	for key, target := range map[string]*bool{
		"SKIP_TABLE_CHECK":             &cfg.Table.SkipCheck,
		"ANNOUNCEMENT_COLLISION_GUARD": &cfg.Announcements.CollisionGuard,
		"ENABLE_REALTIME":              &cfg.Realtime.Enabled,
	} {
		if err := setBool(target, key); err != nil {
			return err
		}
	}
	return nil
}

func setString(target *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*target = value
	}
}

func setBool(target *bool, key string) error {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for %s: %q", key, value)
	}
	*target = parsed
	return nil
}

// Validate checks the values the server cannot start without.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("invalid port %q", c.Server.Port)
	}
	if strings.TrimSpace(c.Table.Name) == "" {
		return errors.New("table name is required")
	}
	switch c.Avatar.Storage {
	case AvatarStorageS3:
		if c.Avatar.Bucket == "" {
			return errors.New("bucket name is required when avatar storage is s3")
		}
	case AvatarStorageInline:
	default:
		return fmt.Errorf("unknown avatar storage %q (expected %s or %s)", c.Avatar.Storage, AvatarStorageS3, AvatarStorageInline)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// ExternalAvatars reports whether inline avatar payloads are moved to S3.
func (c *Config) ExternalAvatars() bool {
	return c.Avatar.Storage == AvatarStorageS3
}
