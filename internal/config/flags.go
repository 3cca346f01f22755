package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns the address in "host:port" format, or an empty string if
// the address was never set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses a "host:port" string into the receiver.
// Implements flag.Value.
func (a *NetAddress) Set(value string) error {
	host, portString, err := net.SplitHostPort(value)
	if err != nil {
		return errors.New("need address in a form host:port")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return errors.New("port must be an integer")
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
