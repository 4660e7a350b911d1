// Package vault encrypts server credentials at rest with AES-256-CBC.
//
// The blob layout is base64(iv + "::" + base64(ciphertext)). Values written
// before encryption was introduced are stored as plain text; Decrypt returns
// such values unchanged instead of failing, so partially migrated rows keep
// working.
package vault

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const separator = "::"

type Vault struct {
	key []byte
}

// New creates a vault from the configured key string. The key is null-padded
// or truncated to the 32 bytes AES-256 requires, matching how the legacy data
// was written.
func New(key string) *Vault {
	k := make([]byte, 32)
	copy(k, key)
	return &Vault{key: k}
}

// Encrypt returns the blob for plaintext. Empty input is returned as-is:
// empty secrets are not an error, they are just absent.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	block, err := aes.NewCipher(v.key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	inner := base64.StdEncoding.EncodeToString(ciphertext)
	blob := append(append([]byte{}, iv...), []byte(separator+inner)...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt reverses Encrypt. Input that was never produced by Encrypt (no
// separator after base64 decoding, or not base64 at all) is returned
// unchanged. A blob that has the right shape but fails to decrypt yields an
// empty string.
func (v *Vault) Decrypt(blob string) (string, error) {
	if blob == "" {
		return "", nil
	}

	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return blob, nil
	}

	if len(data) <= aes.BlockSize+len(separator) ||
		string(data[aes.BlockSize:aes.BlockSize+len(separator)]) != separator {
		return blob, nil
	}

	iv := data[:aes.BlockSize]
	ciphertext, err := base64.StdEncoding.DecodeString(string(data[aes.BlockSize+len(separator):]))
	if err != nil {
		return blob, nil
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", nil
	}

	block, err := aes.NewCipher(v.key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, ok := pkcs7Unpad(plaintext, aes.BlockSize)
	if !ok {
		return "", nil
	}
	return string(unpadded), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, false
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, false
		}
	}
	return data[:len(data)-padding], true
}
