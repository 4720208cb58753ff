package config

import (
	"testing"
	"time"

	kit "rosterpulse/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("API_")
	if got := api.key("PORT"); got != "API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "API_PORT")
	}
	// nested prefix
	apiLog := api.Prefix("LOG_")
	if got := apiLog.key("LEVEL"); got != "API_LOG_LEVEL" {
		t.Fatalf("nested key() = %q, want %q", got, "API_LOG_LEVEL")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  rosterpulse ")
	got := c.MustString("NAME")
	if got != "rosterpulse" {
		t.Fatalf("MustString = %q, want %q", got, "rosterpulse")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_WORKERS", "  8 ")
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d, want %d", got, 8)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMustPort(t *testing.T) {
	c := New().Prefix("P_")
	t.Setenv("P_PORT", "4000")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q, want %q", got, ":4000")
	}
	t.Setenv("P_BAD", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("BAD") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("R_")
	t.Setenv("R_A", "1")
	t.Setenv("R_B", "2")
	kit.MustNotPanic(t, func() { c.Require("A", "B") })
	kit.MustPanic(t, func() { c.Require("A", "MISSING") })
}

// May* defaults

func TestMayString(t *testing.T) {
	c := New().Prefix("MS_")
	if got := c.MayString("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("MS_SET", " value ")
	if got := c.MayString("SET", "fallback"); got != "value" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("MI_")
	if got := c.MayInt("MISSING", 30); got != 30 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("MI_SET", "7")
	if got := c.MayInt("SET", 30); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	// invalid values log and fall back instead of panicking
	t.Setenv("MI_BAD", "seven")
	if got := c.MayInt("BAD", 30); got != 30 {
		t.Fatalf("MayInt bad value = %d, want default", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("MB_")
	if c.MayBool("MISSING", false) {
		t.Fatalf("MayBool default should be false")
	}
	t.Setenv("MB_ON", "true")
	if !c.MayBool("ON", false) {
		t.Fatalf("MayBool should read true")
	}
	t.Setenv("MB_BAD", "banana")
	if !c.MayBool("BAD", true) {
		t.Fatalf("MayBool bad value should fall back to default")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("MD_")
	if got := c.MayDuration("MISSING", time.Second); got != time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
	t.Setenv("MD_SET", "250ms")
	if got := c.MayDuration("SET", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("ME_")
	if got := c.MayEnum("MISSING", "pg", "pg", "local"); got != "pg" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("ME_BACKEND", "LOCAL")
	if got := c.MayEnum("BACKEND", "pg", "pg", "local"); got != "LOCAL" {
		t.Fatalf("MayEnum should accept case-insensitive matches, got %q", got)
	}
	t.Setenv("ME_BAD", "sqlite")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "pg", "pg", "local") })
}
