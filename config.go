package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

type config struct {
	Host  string
	Port  string
	Debug bool
}

func (c config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c config) validate() error {
	p, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Port, err)
	}
	if p < 1 || p > 65535 {
		return fmt.Errorf("port %d out of range", p)
	}
	return nil
}

// parseConfig reads flags from args. HOST and PORT, when set, replace the
// flag defaults.
func parseConfig(name string, args []string, getenv func(string) string) (config, error) {
	host := "0.0.0.0"
	if v := getenv("HOST"); v != "" {
		host = v
	}
	port := "5000"
	if v := getenv("PORT"); v != "" {
		port = v
	}

	var cfg config
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.Host, "host", host, "interface to listen on")
	fs.StringVar(&cfg.Port, "port", port, "port to listen on")
	fs.BoolVar(&cfg.Debug, "debug", false, "debug logging and gin debug mode")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func loadConfig() (config, error) {
	return parseConfig(os.Args[0], os.Args[1:], os.Getenv)
}
