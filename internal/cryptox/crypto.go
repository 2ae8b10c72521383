// Package cryptox seals journal backups with a passphrase.
//
// A sealed blob is laid out as
//
//	magic(6) | salt(16) | nonce(12) | AES-256-GCM ciphertext
//
// and the key is derived from the passphrase with argon2id.
package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"github.com/itnewcomer/Memento/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	saltSize  = 16
	nonceSize = 12
)

var magic = []byte("MMNTv1")

// ErrNotSealed is returned by Open for data without the sealed header.
var ErrNotSealed = errors.New("data is not a sealed backup")

// ErrWrongPassphrase is returned when authentication of the ciphertext fails.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted backup")

// DeriveKey stretches a passphrase into a 32-byte AES key.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, 32)
}

// IsSealed reports whether data starts with the sealed-backup header.
func IsSealed(data []byte) bool {
	return bytes.HasPrefix(data, magic)
}

// Seal encrypts plaintext under a key derived from passphrase with a fresh
// random salt and nonce.
func Seal(plaintext, passphrase []byte) ([]byte, error) {
	salt := common.GenerateRandByteArray(saltSize)
	key := DeriveKey(passphrase, salt)
	defer common.WipeByteArray(key)

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := common.GenerateRandByteArray(nonceSize)

	out := make([]byte, 0, len(magic)+saltSize+nonceSize+len(plaintext)+aesgcm.Overhead())
	out = append(out, magic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	return aesgcm.Seal(out, nonce, plaintext, magic), nil
}

// Open reverses Seal.
func Open(data, passphrase []byte) ([]byte, error) {
	if !IsSealed(data) || len(data) < len(magic)+saltSize+nonceSize {
		return nil, ErrNotSealed
	}
	rest := data[len(magic):]
	salt, nonce, ciphertext := rest[:saltSize], rest[saltSize:saltSize+nonceSize], rest[saltSize+nonceSize:]

	key := DeriveKey(passphrase, salt)
	defer common.WipeByteArray(key)

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, magic)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
