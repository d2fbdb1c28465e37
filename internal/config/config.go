package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress         = ":8080"
	DefaultAPIURL             = "http://localhost:8000"
	DefaultRequestTimeout     = time.Duration(0)
	DefaultRejectInvalidPrice = false
)

type Config struct {
	RunAddress         string        `env:"RUN_ADDRESS"`
	APIURL             string        `env:"API_URL"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
	RejectInvalidPrice bool          `env:"REJECT_INVALID_PRICE"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Screen run address")
	flag.StringVar(&config.APIURL, "u", DefaultAPIURL, "POS backend API address protocol://hostname:port")
	flag.DurationVar(&config.RequestTimeout, "t", DefaultRequestTimeout, "Backend request timeout, 0 disables it (e.g. 5s, 1m)")
	flag.BoolVar(&config.RejectInvalidPrice, "s", DefaultRejectInvalidPrice, "Refuse to add items whose price is not an integer")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
