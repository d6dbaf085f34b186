package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, err := New("prod", path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	l.With("session", "abc").Info("lesson changed", "lesson", "1.2")
	l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"lesson changed", `"lesson":"1.2"`, `"session":"abc"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Debug("ignored", "k", 1)
	l.Sync()
}
