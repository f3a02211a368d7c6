package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize  = 16
	keySize   = 32 // AES-256
	kdfRounds = 4096
)

// ErrInvalidPayload reports a sealed value that is too short or not
// valid base64, i.e. not produced by Seal.
var ErrInvalidPayload = errors.New("cryptox: invalid sealed payload")

// Box seals and opens secrets with AES-256-GCM. The key for every
// secret is derived from the box passphrase with PBKDF2 over a fresh
// random salt, so equal plaintexts never share ciphertexts. The sealed
// form is base64(salt || nonce || ciphertext).
type Box struct {
	passphrase []byte
}

// New creates a Box sealing with the given passphrase.
func New(passphrase string) *Box {
	return &Box{passphrase: []byte(passphrase)}
}

// Seal encrypts plaintext and returns the encoded payload.
func (b *Box) Seal(plaintext string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("cryptox: failed to generate salt: %w", err)
	}

	gcm, err := b.aead(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("cryptox: failed to generate nonce: %w", err)
	}

	payload := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	payload = append(payload, salt...)
	payload = append(payload, nonce...)
	payload = gcm.Seal(payload, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(payload), nil
}

// Open decrypts a payload produced by Seal. It fails when the payload
// was tampered with or sealed under a different passphrase.
func (b *Box) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", ErrInvalidPayload
	}
	if len(raw) < saltSize {
		return "", ErrInvalidPayload
	}

	salt, rest := raw[:saltSize], raw[saltSize:]
	gcm, err := b.aead(salt)
	if err != nil {
		return "", err
	}
	if len(rest) < gcm.NonceSize() {
		return "", ErrInvalidPayload
	}

	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("cryptox: failed to open payload: %w", err)
	}
	return string(plaintext), nil
}

func (b *Box) aead(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key(b.passphrase, salt, kdfRounds, keySize, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to init GCM: %w", err)
	}
	return gcm, nil
}
