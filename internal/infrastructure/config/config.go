package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	FiveM FiveMConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// FiveMConfig holds the identity provider settings. RedirectURI must match
// the URI registered with the provider exactly; it is used both when building
// the authorization URL and during the token exchange.
type FiveMConfig struct {
	ClientID     string `env:"FIVEM_CLIENT_ID"`
	ClientSecret string `env:"FIVEM_CLIENT_SECRET"`
	RedirectURI  string `env:"FIVEM_REDIRECT_URI"`
	AuthURL      string `env:"FIVEM_AUTH_URL,     default=https://idms.fivem.net/oauth2/authorize"`
	TokenURL     string `env:"FIVEM_TOKEN_URL,    default=https://idms.fivem.net/oauth2/token"`
	UserinfoURL  string `env:"FIVEM_USERINFO_URL, default=https://idms.fivem.net/oauth2/userinfo"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
