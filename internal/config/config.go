// Package config loads service configuration from HCL files and the
// environment.
package config

import (
	"fmt"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

type Config struct {
	Addr           string        `hcl:"addr" env:"ADDR" default:":8080"`
	NewsAPIKey     string        `hcl:"news_api_key" env:"NEWS_API_KEY"`
	NewsAPIBaseURL string        `hcl:"news_api_base_url" env:"NEWS_API_BASE_URL" default:"https://newsapi.org/v2"`
	ProxyURL       string        `hcl:"proxy_url" env:"PROXY_URL"`
	FeedURLs       []string      `hcl:"feed_urls" env:"FEED_URLS"`
	RequestTimeout time.Duration `hcl:"request_timeout" env:"REQUEST_TIMEOUT" default:"15s"`
	ReadTimeout    time.Duration `hcl:"read_timeout" env:"READ_TIMEOUT" default:"30s"`
	PageSize       int           `hcl:"page_size" env:"PAGE_SIZE" default:"20"`
	CacheTTL       time.Duration `hcl:"cache_ttl" env:"CACHE_TTL" default:"5m"`
	BadgerPath     string        `hcl:"badger_path" env:"BADGER_PATH" default:"./tresnow-data"`
	RedisAddr      string        `hcl:"redis_addr" env:"REDIS_ADDR"`
}

func Load() (Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "TRES",
		Files:     []string{"./config.hcl", "./config.local.hcl", "$HOME/.config/tresnow/config.hcl"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})

	if err := loader.Load(); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
