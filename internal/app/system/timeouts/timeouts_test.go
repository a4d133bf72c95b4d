package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Medium: 3 * time.Second})
	if Medium() != 3*time.Second {
		t.Errorf("Medium = %v", Medium())
	}
	if Ping() != DefaultPing || Short() != DefaultShort || Long() != DefaultLong {
		t.Errorf("unexpected change to other values: %+v", Current())
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Cleanup(Reset)
	t.Setenv(EnvPrefix+"PING", "250ms")
	t.Setenv(EnvPrefix+"LONG", "not-a-duration")
	t.Setenv(EnvPrefix+"SHORT", "-1s")

	if n := ConfigureFromEnv(); n != 1 {
		t.Errorf("ConfigureFromEnv applied %d values, want 1", n)
	}
	if Ping() != 250*time.Millisecond {
		t.Errorf("Ping = %v", Ping())
	}
	if Long() != DefaultLong || Short() != DefaultShort {
		t.Errorf("invalid values should be skipped: %+v", Current())
	}
}

func TestWithTimeout_LogsDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, zap.New(core), "create user")
	<-ctx.Done()
	cancel()

	if logs.Len() != 1 {
		t.Fatalf("want 1 warning, got %d", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["operation"]; got != "create user" {
		t.Errorf("operation field = %v", got)
	}
}

func TestWithTimeout_QuietOnCancel(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	_, cancel := WithTimeout(context.Background(), time.Minute, zap.New(core), "noop")
	cancel()
	if logs.Len() != 0 {
		t.Errorf("want no warnings, got %d", logs.Len())
	}
}
