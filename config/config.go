package config

import (
    "strings"

    "github.com/spf13/viper"
)

// Config 应用配置（config.yaml + 环境变量覆盖）
type Config struct {
    Server   ServerConfig   `mapstructure:"server"`
    Database DatabaseConfig `mapstructure:"database"`
    Redis    RedisConfig    `mapstructure:"redis"`
    JWT      JWTConfig      `mapstructure:"jwt"`
    Log      LogConfig      `mapstructure:"log"`
    Sentry   SentryConfig   `mapstructure:"sentry"`
    Trace    TraceConfig    `mapstructure:"trace"`
}

type ServerConfig struct {
    Addr string `mapstructure:"addr"`
    Mode string `mapstructure:"mode"` // debug, release
}

type DatabaseConfig struct {
    Driver string `mapstructure:"driver"` // postgres, sqlite
    DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
    Addr     string `mapstructure:"addr"`
    Password string `mapstructure:"password"`
    DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
    Secret     string `mapstructure:"secret"`
    ExpireHour int    `mapstructure:"expire_hour"`
}

type LogConfig struct {
    Level string `mapstructure:"level"`
}

type SentryConfig struct {
    DSN string `mapstructure:"dsn"`
}

type TraceConfig struct {
    Endpoint string `mapstructure:"endpoint"` // OTLP HTTP, 为空则禁用
}

// Load 读取配置：./config.yaml，环境变量前缀 SUNDAYNET_
func Load() (*Config, error) {
    v := viper.New()
    v.SetConfigName("config")
    v.SetConfigType("yaml")
    v.AddConfigPath(".")
    v.AddConfigPath("./config")

    v.SetEnvPrefix("SUNDAYNET")
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
    v.AutomaticEnv()

    v.SetDefault("server.addr", ":8080")
    v.SetDefault("server.mode", "release")
    v.SetDefault("database.driver", "sqlite")
    v.SetDefault("database.dsn", "sundaynet.db")
    v.SetDefault("redis.addr", "localhost:6379")
    v.SetDefault("redis.db", 0)
    v.SetDefault("jwt.secret", "change-me")
    v.SetDefault("jwt.expire_hour", 72)
    v.SetDefault("log.level", "info")

    if err := v.ReadInConfig(); err != nil {
        // 配置文件可选，缺失时走默认值 + 环境变量
        if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
            return nil, err
        }
    }

    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil {
        return nil, err
    }
    return &cfg, nil
}
