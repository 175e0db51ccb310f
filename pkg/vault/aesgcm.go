// pkg/vault/aesgcm.go
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
)

var (
	ErrNoKey           = errors.New("encryption key not initialized")
	ErrCiphertextShort = errors.New("ciphertext too short")
)

// Sealer encrypts values with AES-256-GCM. The nonce is prepended to the
// ciphertext and the result is base64 encoded.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer derives a 32 byte key from passphrase.
func NewSealer(passphrase string) (*Sealer, error) {
	if passphrase == "" {
		return nil, ErrNoKey
	}
	key := sha256.Sum256([]byte(passphrase))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: gcm}, nil
}

// Seal encrypts plaintext bound to label; Open must be given the same label.
func (s *Sealer) Seal(plaintext []byte, label string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	ciphertext := s.aead.Seal(nonce, nonce, plaintext, []byte(label))
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (s *Sealer) Open(encoded string, label string) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < s.aead.NonceSize() {
		return nil, ErrCiphertextShort
	}
	nonce := ciphertext[:s.aead.NonceSize()]
	return s.aead.Open(nil, nonce, ciphertext[s.aead.NonceSize():], []byte(label))
}
