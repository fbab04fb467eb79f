package bootstrap

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort           string `mapstructure:"SERVER_PORT"`
	RedisUrl             string `mapstructure:"REDIS_URL"`
	MongoUri             string `mapstructure:"MONGO_URI"`
	MongoDatabase        string `mapstructure:"MONGO_DATABASE"`
	IsLocalCors          bool   `mapstructure:"LOCAL_CORS"`
	SessionTTLHours      int    `mapstructure:"SESSION_TTL_HOURS"`
	ProfileUpdateRetries int    `mapstructure:"PROFILE_UPDATE_RETRIES"`
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MONGO_DATABASE", "mattespel")
	viper.SetDefault("SESSION_TTL_HOURS", 11)
	viper.SetDefault("PROFILE_UPDATE_RETRIES", 5)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
