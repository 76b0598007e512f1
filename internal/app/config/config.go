package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int

	LogLevel  string
	LogFormat string

	// StorageDriver is "postgres" or "sqlite".
	StorageDriver string
	SQLitePath    string
	AutoMigrate   bool
	CacheTTL      time.Duration

	RedisEndpoint string
	RedisPassword string

	JwtKey string
	JwtTTL time.Duration

	// RequireModerator guards ship writes behind the moderator role.
	RequireModerator bool

	RateLimitRPS   float64
	RateLimitBurst int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
}

func NewConfig() (*Config, error) {
	var err error
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	setDefaults(v)

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		logrus.Warnf("config file %q not found, using defaults", configName)
	}

	err = godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using defaults")
	}

	bindEnv(v)

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	logrus.Info("config parsed")
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogFormat", "text")
	v.SetDefault("StorageDriver", "postgres")
	v.SetDefault("SQLitePath", "ships.db")
	v.SetDefault("AutoMigrate", false)
	v.SetDefault("CacheTTL", "1m")
	v.SetDefault("JwtTTL", "24h")
	v.SetDefault("RequireModerator", true)
	v.SetDefault("RateLimitRPS", 20.0)
	v.SetDefault("RateLimitBurst", 40)
	v.SetDefault("MinioBucket", "ship-images")
}

func bindEnv(v *viper.Viper) {
	v.BindEnv("ServicePort", "SERVICE_PORT")
	v.BindEnv("LogLevel", "LOG_LEVEL")
	v.BindEnv("StorageDriver", "STORAGE_DRIVER")
	v.BindEnv("SQLitePath", "SQLITE_PATH")
	v.BindEnv("RedisEndpoint", "REDIS_ENDPOINT")
	v.BindEnv("RedisPassword", "REDIS_PASSWORD")
	v.BindEnv("JwtKey", "JWT_KEY")
	v.BindEnv("MinioEndpoint", "MINIO_ENDPOINT")
	v.BindEnv("MinioAccessKey", "MINIO_ACCESS_KEY")
	v.BindEnv("MinioSecretKey", "MINIO_SECRET_KEY")
}

// ConfigureLogger applies the configured level and format to logrus.
func (c *Config) ConfigureLogger() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
