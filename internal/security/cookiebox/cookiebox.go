// Package cookiebox sella y abre el valor de la cookie de sesión con
// NaCl secretbox (XSalsa20-Poly1305). La clave maestra viene de la env var
// COOKIEBOX_MASTER_KEY en base64 (32 bytes).
package cookiebox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	envVar    = "COOKIEBOX_MASTER_KEY"
	keyLength = 32
	nonceSize = 24
)

var (
	keyOnce sync.Once
	key     [keyLength]byte
	loadErr error
	mu      sync.RWMutex
)

var ErrTampered = errors.New("cookiebox: sealed value corrupted or tampered")

func ensureLoaded() error {
	keyOnce.Do(func() {
		b64 := strings.TrimSpace(os.Getenv(envVar))
		if b64 == "" {
			loadErr = fmt.Errorf("%s no seteada; genere una con: openssl rand -base64 32", envVar)
			return
		}
		raw, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			loadErr = fmt.Errorf("decode %s: %w", envVar, err)
			return
		}
		if len(raw) != keyLength {
			loadErr = fmt.Errorf("%s debe decodificar a %d bytes, obtuvo %d", envVar, keyLength, len(raw))
			return
		}
		mu.Lock()
		copy(key[:], raw)
		mu.Unlock()
	})
	return loadErr
}

// Ready indica si la clave está cargada (para healthchecks).
func Ready() bool {
	return ensureLoaded() == nil
}

// Seal cifra value y retorna base64url(nonce||ciphertext).
func Seal(value string) (string, error) {
	if err := ensureLoaded(); err != nil {
		return "", err
	}
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("cookiebox: nonce: %w", err)
	}
	mu.RLock()
	k := key
	mu.RUnlock()

	sealed := secretbox.Seal(nonce[:], []byte(value), &nonce, &k)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open descifra un valor sellado por Seal. Retorna ErrTampered si el valor
// fue modificado o no proviene de esta clave.
func Open(sealed string) (string, error) {
	if err := ensureLoaded(); err != nil {
		return "", err
	}
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize {
		return "", ErrTampered
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	mu.RLock()
	k := key
	mu.RUnlock()

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &k)
	if !ok {
		return "", ErrTampered
	}
	return string(plain), nil
}

// UnsafeResetForTests reinicia el estado de carga de la clave.
// Solo para tests.
func UnsafeResetForTests() {
	mu.Lock()
	defer mu.Unlock()
	keyOnce = sync.Once{}
	loadErr = nil
	key = [keyLength]byte{}
}
