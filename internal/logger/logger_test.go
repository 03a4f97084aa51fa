package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/vocab-master/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		wantDebug bool
		wantErr   bool
	}{
		{"development logs debug", config.Config{Env: "local"}, true, false},
		{"production starts at info", config.Config{Env: "production"}, false, false},
		{"level override", config.Config{Env: "local", LogLevel: "warn"}, false, false},
		{"invalid level", config.Config{Env: "local", LogLevel: "loud"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			if got := l.Core().Enabled(zapcore.DebugLevel); got != tt.wantDebug {
				t.Errorf("expected debug enabled=%v, got %v", tt.wantDebug, got)
			}
		})
	}
}
