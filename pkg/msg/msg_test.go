package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	content := `
session:
  created: "Session {0} created at {1}"
  failed: "Session {0} failed: {1}"
favorites:
  added: "Added {0}"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write messages: %v", err)
	}
	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	tests := []struct {
		name string
		key  string
		args []interface{}
		want string
	}{
		{"primitives", "session.created", []interface{}{"abc", 12}, "Session abc created at 12"},
		{"error argument", "session.failed", []interface{}{"abc", errors.New("boom")}, "Session abc failed: boom"},
		{"stringer argument", "session.failed", []interface{}{"abc", 2 * time.Second}, "Session abc failed: 2s"},
		{"struct argument", "favorites.added", []interface{}{struct {
			City string `json:"city"`
		}{"Tokyo, JP"}}, `Added {"city":"Tokyo, JP"}`},
		{"missing key", "nope.nope", nil, "Message not found: nope.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMessage(tt.key, tt.args...); got != tt.want {
				t.Errorf("GetMessage(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestInitMissingFile(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected an error for a missing messages file")
	}
}
