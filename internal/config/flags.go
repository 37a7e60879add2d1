// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config JSON or YAML file path with configs
//	-env runtime environment (development, test, stage, production)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit requests per IP per window
//	-allowed-params comma separated search parameter allow-list
//	-local-dsn local storage DSN (SQLite path or postgres:// URI)
//	-redis-addr session storage Redis address
//	-gql-url GraphQL server URL embedded in the page
//	-log-level zerolog level
//	-log-format heka or pretty
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("fxa-settings", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var appEnv string
	var requestTimeout time.Duration
	var rateLimit int
	var allowedParams string
	var localDSN string
	var redisAddr string
	var gqlURL string
	var logLevel string
	var logFormat string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&appEnv, "env", "", "Runtime environment")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Requests per IP per window")
	fs.StringVar(&allowedParams, "allowed-params", "", "Comma separated search parameter allow-list")
	fs.StringVar(&localDSN, "local-dsn", "", "Local storage DSN")
	fs.StringVar(&redisAddr, "redis-addr", "", "Session storage Redis address")
	fs.StringVar(&gqlURL, "gql-url", "", "GraphQL server URL")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFormat, "log-format", "", "Log format (heka, pretty)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var allowed []string
	if allowedParams != "" {
		for _, p := range strings.Split(allowedParams, ",") {
			if p = strings.TrimSpace(p); p != "" {
				allowed = append(allowed, p)
			}
		}
	}

	return &StructuredConfig{
		App: App{
			Env: appEnv,
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			RateLimit:          rateLimit,
			AllowedQueryParams: allowed,
		},
		Settings: Settings{
			GQLServerURL: gqlURL,
		},
		Storage: Storage{
			Local: LocalStorage{
				DSN: localDSN,
			},
			Session: SessionStorage{
				RedisAddr: redisAddr,
			},
		},
		Logging: Logging{
			Level:  logLevel,
			Format: logFormat,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
