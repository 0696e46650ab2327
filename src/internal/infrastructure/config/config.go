package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 應用程式設定
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP 伺服器設定
//
// CheckoutRate 為每位使用者每秒可下單次數；0 表示下單不限流。
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CheckoutRate    float64       `mapstructure:"checkout_rate"`
	CheckoutBurst   int           `mapstructure:"checkout_burst"`
	CheckoutIdle    time.Duration `mapstructure:"checkout_idle"`
}

// Addr 返回監聽位址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// CheckoutLimitEnabled 是否對下單限流
func (s ServerConfig) CheckoutLimitEnabled() bool {
	return s.CheckoutRate > 0
}

// DatabaseConfig 資料庫設定（driver: postgres | sqlite）
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// RedisConfig Redis 設定；Addr 為空時停用結帳短鎖
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
}

// Enabled 是否設定了 Redis
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// LogConfig 日誌設定
type LogConfig struct {
	Level string `mapstructure:"level"`
}

const envPrefix = "GASSHOP"

// Load 讀取設定
//
// 來源優先順序：GASSHOP_* 環境變數 > config 檔 > 預設值。
// configPath 為空時在工作目錄尋找 config.yaml（找不到不視為錯誤）。
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.checkout_rate", 1.0)
	v.SetDefault("server.checkout_burst", 3)
	v.SetDefault("server.checkout_idle", 10*time.Minute)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "gas_shop.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.lock_ttl", 10*time.Second)
	v.SetDefault("log.level", "info")
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Server.CheckoutRate < 0 {
		return fmt.Errorf("invalid server.checkout_rate %v", c.Server.CheckoutRate)
	}
	if c.Server.CheckoutLimitEnabled() {
		if c.Server.CheckoutBurst <= 0 {
			return fmt.Errorf("invalid server.checkout_burst %d", c.Server.CheckoutBurst)
		}
		if c.Server.CheckoutIdle <= 0 {
			return fmt.Errorf("invalid server.checkout_idle %s", c.Server.CheckoutIdle)
		}
	}
	if c.Redis.Enabled() && c.Redis.LockTTL <= 0 {
		return fmt.Errorf("invalid redis.lock_ttl %s", c.Redis.LockTTL)
	}
	return nil
}
