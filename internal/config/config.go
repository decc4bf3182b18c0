package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	S3      S3Config      `mapstructure:"s3"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// StorageConfig selects the durable key-value backend holding the entity
// slots. Driver is one of "sqlite", "mongo", "s3" or "memory".
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"` // sqlite database file
}

type MongoConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	KeyPrefix       string `mapstructure:"key_prefix"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration.
// Expiration is parsed by viper directly from a duration string ("1h", "60m").
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// AuthConfig controls the optional email-OTP sign-in collaborator.
type AuthConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	OTPTTL  time.Duration `mapstructure:"otp_ttl"`
}

type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	FileName    string `mapstructure:"file_name"`
	LogToStdout bool   `mapstructure:"log_to_stdout"`
	FormatJSON  bool   `mapstructure:"format_json"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment overrides, e.g. storage.driver -> STORAGE_DRIVER
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("storage.driver", "sqlite")
	viper.SetDefault("storage.path", "reptrack.db")
	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.name", "reptrack")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("s3.key_prefix", "reptrack")
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("auth.enabled", false)
	viper.SetDefault("auth.otp_ttl", "10m")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.log_to_stdout", true)

	err = viper.ReadInConfig()
	// A missing config file is fine; defaults plus env vars are a complete
	// configuration for local runs.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
