// Package config loads application configuration from environment variables
// using struct tags, with an optional .env bootstrap for development.
//
// Each configuration type is parsed once per process and cached, so any
// package can call Load for the type it needs without coordinating
// initialization order.
//
// # Usage
//
//	type App struct {
//		BaseURL string `env:"LEDGERBOOK_API_BASE_URL,required"`
//		Debug   bool   `env:"LEDGERBOOK_DEBUG" envDefault:"false"`
//	}
//
//	var cfg App
//	if err := config.Load(&cfg); err != nil {
//		// missing required variables and parse failures land here
//	}
//
// MustLoad panics instead of returning an error and is intended for
// configuration the process cannot start without.
package config
