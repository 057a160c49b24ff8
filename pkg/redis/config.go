package redis

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds the connection settings. Pool sizes and timeouts keep the defaults of
// NewRedisConfig unless set directly.
type Config struct {
	Host     string
	Port     int
	Password string
	Database int
	// Namespace prefixes every key built with Client.Key
	Namespace string

	MinIdleConns int
	MaxIdleConns int
	MaxActive    int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
}

func NewRedisConfig() *Config {
	return &Config{
		Host:         "localhost",
		Port:         6379,
		Namespace:    "weather-pulse",
		MinIdleConns: 2,
		MaxIdleConns: 10,
		MaxActive:    50,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	}
}

func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

// WithAddr splits a host:port address. An address without port only sets Host.
func (c *Config) WithAddr(addr string) *Config {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		c.Host = addr
		return c
	}
	c.Host = host
	if p, err := strconv.Atoi(port); err == nil {
		c.Port = p
	}
	return c
}

func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

func (c *Config) WithDatabase(database int) *Config {
	c.Database = database
	return c
}

func (c *Config) WithNamespace(namespace string) *Config {
	c.Namespace = namespace
	return c
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *Config) Validate() error {
	switch {
	case c.Host == "":
		return errors.New("host cannot be empty")
	case c.Port < 1 || c.Port > 65535:
		return fmt.Errorf("invalid port: %d", c.Port)
	case c.Database < 0 || c.Database > 15:
		return fmt.Errorf("invalid database: %d", c.Database)
	case c.MinIdleConns < 0 || c.MaxIdleConns < 0 || c.MaxActive < 0 || c.MaxRetries < 0:
		return errors.New("pool sizes and retries must be non-negative")
	case c.DialTimeout < 0 || c.ReadTimeout < 0 || c.WriteTimeout < 0 || c.PoolTimeout < 0:
		return errors.New("timeouts must be non-negative")
	}
	return nil
}
