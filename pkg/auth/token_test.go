package auth

import (
	"strings"
	"testing"
)

func TestNewSessionToken(t *testing.T) {
	token, err := NewSessionToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if len(token) != 43 {
		t.Errorf("expected 43 characters for 32 bytes of entropy, got %d", len(token))
	}
	if strings.ContainsAny(token, "+/=") {
		t.Errorf("token is not cookie-safe: %q", token)
	}
}

func TestNewSessionToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := NewSessionToken()
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %q", token)
		}
		seen[token] = true
	}
}
