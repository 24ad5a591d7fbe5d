// Package cryptox implements the content cipher used for diary entries:
// per-entry random AES-256 keys and authenticated AES-GCM encryption.
//
// Each entry gets its own key, so a compromised key exposes exactly one
// entry. The key is persisted alongside the entry record; without it the
// ciphertext is permanently unreadable.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/jkalnins/daybook/internal/common"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

const nonceSize = 12

// NewKey returns a fresh, uniformly random content key. Every call yields an
// independent key; keys are never reused across entries.
func NewKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// Encrypt seals plaintext with AES-GCM under key. A random 12-byte nonce is
// generated per call and prefixed to the returned blob, so a single opaque
// value round-trips through storage:
//
//	[nonce || ciphertext+tag]
func Encrypt(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	out := make([]byte, 0, nonceSize+len(plaintext)+aesgcm.Overhead())
	out = append(out, nonce...)
	return aesgcm.Seal(out, nonce, plaintext, nil), nil
}

// Decrypt opens a blob produced by Encrypt. It returns
// common.ErrDecryptionFailed on a wrong key, tampered ciphertext, or
// truncated input; it never partially succeeds.
func Decrypt(blob, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}

	if len(blob) < nonceSize {
		return nil, common.ErrDecryptionFailed
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}
	return plaintext, nil
}
