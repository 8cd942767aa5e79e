package tui

import (
	"testing"
	"time"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Default address = %q, expected :23234", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("Default idle timeout = %v, expected 30m", cfg.IdleTimeout)
	}
	if cfg.HostKeyPath != "" {
		t.Errorf("Default host key path = %q, expected empty for auto-generation", cfg.HostKeyPath)
	}
}
