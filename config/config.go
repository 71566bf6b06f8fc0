package config

import (
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration string `mapstructure:"expiration"` // time.ParseDuration format, e.g. "24h"
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

type SessionConfig struct {
	MirrorPath string `mapstructure:"mirrorPath"`
}

type TelemetryConfig struct {
	Interval string `mapstructure:"interval"` // time.ParseDuration format, e.g. "5s"
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Session   SessionConfig   `mapstructure:"session"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// LoadConfig reads config.yaml from path and overrides values from the
// environment. A missing file is fine; env vars and defaults carry it.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("session.mirrorPath", "data/session.json")
	viper.SetDefault("telemetry.interval", "5s")

	viper.AutomaticEnv()
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("jwt.expiration", "JWT_EXPIRATION")
	viper.BindEnv("session.mirrorPath", "SESSION_MIRROR_PATH")
	viper.BindEnv("telemetry.interval", "TELEMETRY_INTERVAL")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}
