package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/vmaleev/nutriplan-bot/internal/logger"
)

type Config struct {
	TelegramToken string
	AdminID       int64
	DB            DBConfig
	Redis         RedisConfig
	Server        ServerConfig
	Logger        LoggerConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Enabled bool
	Host    string
	Port    string
}

type ServerConfig struct {
	Port string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "nutriplan_bot")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "logs/app.log")
	v.SetDefault("log.format", "json")

	cfg := &Config{
		TelegramToken: v.GetString("telegram.bot.token"),
		AdminID:       v.GetInt64("admin.id"),
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Redis: RedisConfig{
			Enabled: v.GetBool("redis.enabled"),
			Host:    v.GetString("redis.host"),
			Port:    v.GetString("redis.port"),
		},
		Server: ServerConfig{
			Port: v.GetString("server.port"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(v.GetString("log.level")),
			OutputPath: v.GetString("log.output"),
			Format:     v.GetString("log.format"),
		},
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	return cfg, nil
}
