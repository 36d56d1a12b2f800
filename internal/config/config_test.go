package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conf.HTTP.Address != ":3002" {
		t.Errorf("unexpected address %q", conf.HTTP.Address)
	}

	if conf.Form.PhoneRegion != "TH" {
		t.Errorf("unexpected phone region %q", conf.Form.PhoneRegion)
	}

	if conf.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected shutdown timeout %v", conf.HTTP.ShutdownTimeout)
	}

	if conf.HTTP.Session.Cookie.MaxAge != 24*time.Hour {
		t.Errorf("unexpected cookie max age %v", conf.HTTP.Session.Cookie.MaxAge)
	}

	if conf.I18n.DefaultLanguage != "en" {
		t.Errorf("unexpected default language %q", conf.I18n.DefaultLanguage)
	}
}

func TestParseFromEnvironment(t *testing.T) {
	t.Setenv("INTAKE_LOGGER_LEVEL", "warn")
	t.Setenv("INTAKE_FORM_PHONE_REGION", "FR")
	t.Setenv("INTAKE_HTTP_SESSION_KEYS", "a,b")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conf.Logger.Level != slog.LevelWarn {
		t.Errorf("unexpected log level %v", conf.Logger.Level)
	}

	if conf.Form.PhoneRegion != "FR" {
		t.Errorf("unexpected phone region %q", conf.Form.PhoneRegion)
	}

	if len(conf.HTTP.Session.Keys) != 2 {
		t.Errorf("unexpected session keys %v", conf.HTTP.Session.Keys)
	}
}

func TestSessionLogValueHidesKeys(t *testing.T) {
	session := Session{Keys: []string{"secret"}}

	value := session.LogValue().String()

	if strings.Contains(value, "secret") {
		t.Errorf("expected session keys to be redacted, got %s", value)
	}
}
