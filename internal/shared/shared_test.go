package shared

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLogLevel(t *testing.T) {
	tc := []struct {
		name    string
		in      string
		want    log.Level
		wantErr bool
	}{
		{name: "empty defaults to info", in: "", want: log.InfoLevel},
		{name: "debug", in: "debug", want: log.DebugLevel},
		{name: "warn", in: "warn", want: log.WarnLevel},
		{name: "error", in: "error", want: log.ErrorLevel},
		{name: "unknown", in: "chatty", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewRunLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, id := NewRunLogger(NewLogger(&buf))

	if id == "" {
		t.Fatal("expected a run ID")
	}

	logger.Info("hello")

	if !strings.Contains(buf.String(), id) {
		t.Errorf("expected log line to carry run ID %s, got %q", id, buf.String())
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == b {
		t.Errorf("expected distinct IDs, got %s twice", a)
	}
	if len(a) != 36 {
		t.Errorf("expected 36 character UUID, got %q", a)
	}
}
