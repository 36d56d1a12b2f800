package config

import (
	"log/slog"
	"time"
)

type HTTP struct {
	BaseURL string  `env:"BASE_URL,expand" envDefault:"/"`
	Address string  `env:"ADDRESS,expand" envDefault:":3002"`
	Session Session `envPrefix:"SESSION_"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Session struct {
	Keys   []string `env:"KEYS" envSeparator:","`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY" envDefault:"true"`
	Secure   bool          `env:"SECURE" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE" envDefault:"24h"`
}

// LogValue implements slog.LogValuer. Session keys are never logged.
func (s Session) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("keys", len(s.Keys)),
		slog.Any("cookie", s.Cookie),
	)
}
