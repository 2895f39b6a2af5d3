package shared

import (
	"net"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string // empty: /metrics only on the main router
	APIBaseURL     string // empty: same origin, i.e. SelfOrigin
	SelfOrigin     string // this server's own origin; never taken from a request
	BackendRPS     int
	BackendTimeout time.Duration
	RequestTimeout time.Duration
	SessionStore   string // redis|memory
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	SessionTTL     time.Duration
	SecureCookie   bool
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", ""),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		APIBaseURL:     env("HOTEL_API_BASE_URL", ""),
		SelfOrigin:     env("SELF_ORIGIN", ""),
		BackendRPS:     atoi("BACKEND_RPS", 20),
		BackendTimeout: time.Duration(atoi("BACKEND_TIMEOUT_SECONDS", 10)) * time.Second,
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		SessionStore:   env("SESSION_STORE", "redis"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		SessionTTL:     time.Duration(atoi("SESSION_TTL_SECONDS", 86400)) * time.Second,
		SecureCookie:   env("SECURE_COOKIE", "false") == "true",
	}
	if c.SelfOrigin == "" {
		c.SelfOrigin = originFromAddr(c.HTTPAddr)
	}
	return c
}

// BackendBaseURL is where hotel endpoints live: the configured backend, or this
// server itself.
func (c Config) BackendBaseURL() string {
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	return c.SelfOrigin
}

// originFromAddr turns a listen address into a loopback origin (":8080" ->
// "http://127.0.0.1:8080").
func originFromAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || port == "" {
		return "http://127.0.0.1"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
