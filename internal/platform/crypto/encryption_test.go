package crypto

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	svc, err := New("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if !svc.Configured() {
		t.Fatal("expected service to be configured")
	}

	encrypted, err := svc.EncryptString("S1234567D")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Equal(encrypted, []byte("S1234567D")) {
		t.Fatal("expected ciphertext to differ from plaintext")
	}

	plain, err := svc.DecryptString(encrypted)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if plain != "S1234567D" {
		t.Fatalf("expected round trip, got %q", plain)
	}
}

func TestUnconfiguredPassthrough(t *testing.T) {
	svc, err := New("")
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if svc.Configured() {
		t.Fatal("expected unconfigured service")
	}
	out, err := svc.Encrypt([]byte("plain"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if string(out) != "plain" {
		t.Fatalf("expected passthrough, got %q", out)
	}
}

func TestRejectsBadKeyLength(t *testing.T) {
	if _, err := New("short-key"); err == nil {
		t.Fatal("expected error for short key")
	}
}
