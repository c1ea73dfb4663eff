package config

import (
	"errors"
)

var (
	// ErrEmptyURL is returned when [Webserver] URL is missing.
	ErrEmptyURL = errors.New("webserver url in main.toml can not be empty")

	// ErrInvalidPort is returned when [Webserver] Port is not a positive number.
	ErrInvalidPort = errors.New("webserver port in main.toml must be greater than 0")
)
