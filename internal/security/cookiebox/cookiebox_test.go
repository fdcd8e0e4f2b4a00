package cookiebox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"testing"
)

func withTestKey(t *testing.T) {
	t.Helper()
	raw := make([]byte, keyLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("rand: %v", err)
	}
	t.Setenv(envVar, base64.StdEncoding.EncodeToString(raw))
	UnsafeResetForTests()
	t.Cleanup(UnsafeResetForTests)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	withTestKey(t)

	sealed, err := Seal("session-id-1234")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if sealed == "session-id-1234" {
		t.Fatal("el valor sellado no puede ser el plaintext")
	}
	got, err := Open(sealed)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got != "session-id-1234" {
		t.Errorf("Open = %q", got)
	}
}

func TestSeal_NoncesDiffer(t *testing.T) {
	withTestKey(t)

	a, _ := Seal("x")
	b, _ := Seal("x")
	if a == b {
		t.Error("dos Seal del mismo valor no deben coincidir")
	}
}

func TestOpen_TamperedValueRejected(t *testing.T) {
	withTestKey(t)

	sealed, err := Seal("session-id")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	raw, _ := base64.RawURLEncoding.DecodeString(sealed)
	raw[len(raw)-1] ^= 0x01
	tampered := base64.RawURLEncoding.EncodeToString(raw)

	if _, err := Open(tampered); !errors.Is(err, ErrTampered) {
		t.Errorf("err = %v, want ErrTampered", err)
	}
}

func TestOpen_GarbageRejected(t *testing.T) {
	withTestKey(t)

	for _, v := range []string{"", "no-es-base64!!", "YWJj"} {
		if _, err := Open(v); !errors.Is(err, ErrTampered) {
			t.Errorf("Open(%q) err = %v, want ErrTampered", v, err)
		}
	}
}

func TestSeal_MissingKeyFails(t *testing.T) {
	t.Setenv(envVar, "")
	UnsafeResetForTests()
	t.Cleanup(UnsafeResetForTests)

	if _, err := Seal("x"); err == nil {
		t.Error("Seal sin clave debe fallar")
	}
}
