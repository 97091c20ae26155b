// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is the PBKDF2 salt size embedded at envelope offset [0,16).
	SaltLength = 16

	// IVLength is the AES-CBC IV size embedded at envelope offset [16,32).
	IVLength = 16

	// KeyLength is the derived key size: 32 bytes, AES-256.
	KeyLength = 32

	// KDFIterations is the fixed PBKDF2 iteration count. Changing it breaks
	// decryption of every stored envelope.
	KDFIterations = 10000
)

var (
	// ErrDecryptionFailed reports that an envelope could not be opened:
	// wrong master password, truncated or corrupted data. Non-fatal during
	// bulk vault loads, which skip the record and continue.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEnvelopeTooShort reports an envelope shorter than salt+IV.
	ErrEnvelopeTooShort = errors.New("envelope too short")
)

// envelopeCodec is the private implementation of [EnvelopeCodec].
type envelopeCodec struct {
	iterations int
	keyLen     int
}

// NewEnvelopeCodec constructs an [EnvelopeCodec] with the fixed wire-format
// parameters: PBKDF2-SHA256, 10,000 iterations, 256-bit keys.
func NewEnvelopeCodec() EnvelopeCodec {
	return &envelopeCodec{
		iterations: KDFIterations,
		keyLen:     KeyLength,
	}
}

// GenerateSalt implements [EnvelopeCodec]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (c *envelopeCodec) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [EnvelopeCodec].
func (c *envelopeCodec) DeriveKey(masterPassword string, salt []byte) []byte {
	return pbkdf2.Key([]byte(masterPassword), salt, c.iterations, c.keyLen, sha256.New)
}

// Encrypt implements [EnvelopeCodec]. Salt and IV are drawn independently
// per call, so two envelopes of the same plaintext never match.
func (c *envelopeCodec) Encrypt(plaintext, masterPassword string) (string, string, error) {
	salt, err := c.GenerateSalt()
	if err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}

	iv := make([]byte, IVLength)
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return "", "", fmt.Errorf("generate iv: %w", err)
	}

	key := c.DeriveKey(masterPassword, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", "", fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), block.BlockSize())
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	// blob = salt || iv || ciphertext
	blob := make([]byte, 0, SaltLength+IVLength+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, iv...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob),
		base64.StdEncoding.EncodeToString(iv),
		nil
}

// Decrypt implements [EnvelopeCodec]. Every failure mode wraps
// [ErrDecryptionFailed] so callers can classify with a single errors.Is.
func (c *envelopeCodec) Decrypt(envelope, masterPassword string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrDecryptionFailed, err)
	}

	if len(blob) < SaltLength+IVLength {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, ErrEnvelopeTooShort)
	}

	salt := blob[:SaltLength]
	iv := blob[SaltLength : SaltLength+IVLength]
	ciphertext := blob[SaltLength+IVLength:]

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext is not block-aligned", ErrDecryptionFailed)
	}

	key := c.DeriveKey(masterPassword, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: create cipher: %v", ErrDecryptionFailed, err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, block.BlockSize())
	if err != nil {
		// Almost always a wrong master password producing a wrong key.
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	// No MAC in the format: a wrong key survives the padding check roughly
	// once in 256 tries, so additionally require valid UTF-8, which stored
	// secrets always are.
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid utf-8", ErrDecryptionFailed)
	}

	return string(plaintext), nil
}

// pkcs7Pad appends 1..blockSize bytes, each holding the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// pkcs7Unpad validates and strips PKCS#7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, errors.New("invalid padding length byte")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("inconsistent padding bytes")
		}
	}
	return data[:len(data)-n], nil
}
