package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Broker   BrokerConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret            string
	ExpiryHours       int
	VerifyExpiryHours int
}

type StorageConfig struct {
	Driver   string // "disk" or "s3"
	Path     string
	Bucket   string
	Region   string
	Key      string
	Secret   string
	Endpoint string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type BrokerConfig struct {
	URL      string
	Exchange string
}

type UploadConfig struct {
	MaxBytes int64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("VERIFY_TOKEN_EXPIRY_HOURS", 48)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORAGE_DRIVER", "disk")
	viper.SetDefault("STORAGE_PATH", "public/")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("AMQP_EXCHANGE", "warehouse.events")
	viper.SetDefault("MAX_UPLOAD_BYTES", 5000000)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:            viper.GetString("JWT_SECRET"),
			ExpiryHours:       viper.GetInt("JWT_EXPIRY_HOURS"),
			VerifyExpiryHours: viper.GetInt("VERIFY_TOKEN_EXPIRY_HOURS"),
		},
		Storage: StorageConfig{
			Driver:   viper.GetString("STORAGE_DRIVER"),
			Path:     viper.GetString("STORAGE_PATH"),
			Bucket:   viper.GetString("S3_BUCKET"),
			Region:   viper.GetString("S3_REGION"),
			Key:      viper.GetString("S3_KEY"),
			Secret:   viper.GetString("S3_SECRET"),
			Endpoint: viper.GetString("S3_ENDPOINT"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Broker: BrokerConfig{
			URL:      viper.GetString("AMQP_URL"),
			Exchange: viper.GetString("AMQP_EXCHANGE"),
		},
		Upload: UploadConfig{
			MaxBytes: viper.GetInt64("MAX_UPLOAD_BYTES"),
		},
	}

	return config, nil
}
