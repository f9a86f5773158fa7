package config

import (
	"errors"
	"flag"
	"net/url"
)

type Config struct {
	APIUrl   string
	Token    string
	PageSize int
	Debug    bool
}

func ParseFlags() (cfg Config, err error) {
	flag.StringVar(&cfg.APIUrl, "api-url", "https://apidata.geodatos.com.mx/api", "forms API base URL")
	flag.StringVar(&cfg.Token, "token", "", "bearer token for the forms API (optional; reads degrade to mock data without it)")
	flag.IntVar(&cfg.PageSize, "page-size", 20, "submission list page size (default 20)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	if _, err = url.Parse(cfg.APIUrl); err != nil {
		err = errors.New("invalid parameter -api-url")
		return
	}
	if cfg.PageSize < 1 {
		err = errors.New("invalid parameter -page-size")
	}

	return
}
