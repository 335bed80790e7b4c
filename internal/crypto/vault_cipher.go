// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/enpass-cli/models"
)

// Enpass 5 identity info blob layout and record KDF parameters.
const (
	// infoMinLen is the minimum usable length of the identity info blob:
	// the IV lives at [16:32) and the salt at [32:48).
	infoMinLen = 48

	ivOffset   = 16
	saltOffset = 32

	// kdfIterations is the PBKDF2 iteration count for the record key.
	// Fixed at 2 by the Enpass 5 format. This is not the container
	// page-cipher KDF (kdf_iter = 24000), which the SQLCipher driver runs
	// when unlocking the database file itself.
	kdfIterations = 2

	keyLen = 32
)

// vaultCipherService is the private implementation of [VaultCipherService].
type vaultCipherService struct{}

// NewVaultCipherService constructs a stateless [VaultCipherService].
func NewVaultCipherService() VaultCipherService {
	return &vaultCipherService{}
}

// DeriveKeyMaterial implements [VaultCipherService]. For Enpass 5 it takes
// the IV verbatim from info[16:32), the salt from info[32:48), and runs
// PBKDF2 with HMAC-SHA-256 keyed by the raw bytes of the identity's
// HMACKeyMaterial column, producing the 256-bit record key.
//
// The master password is deliberately not an input: it was already consumed
// by the container unlock, and the record key depends only on the identity
// row contents.
func (s *vaultCipherService) DeriveKeyMaterial(identity models.Identity, version models.FormatVersion) (models.KeyMaterial, error) {
	if version != models.FormatV5 {
		return models.KeyMaterial{}, fmt.Errorf("%w: %s", models.ErrUnsupportedFormatVersion, version)
	}

	if len(identity.Info) < infoMinLen {
		return models.KeyMaterial{}, fmt.Errorf("%w: got %d bytes, need %d",
			models.ErrMalformedIdentity, len(identity.Info), infoMinLen)
	}

	var km models.KeyMaterial
	copy(km.IV[:], identity.Info[ivOffset:ivOffset+aes.BlockSize])

	salt := identity.Info[saltOffset : saltOffset+16]
	key := pbkdf2.Key([]byte(identity.HMACKeyMaterial), salt, kdfIterations, keyLen, sha256.New)
	copy(km.Key[:], key)

	return km, nil
}

// DecryptRecord implements [VaultCipherService]. It rejects malformed
// lengths before touching the cipher, decrypts with AES-256-CBC, and
// validates and strips the PKCS#7 padding. A padding failure here almost
// always means a wrong master password or a wrong format version.
func (s *vaultCipherService) DecryptRecord(payload []byte, km models.KeyMaterial) ([]byte, error) {
	if len(payload) == 0 || len(payload)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", models.ErrInvalidCiphertextLength, len(payload))
	}

	block, err := aes.NewCipher(km.Key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext := make([]byte, len(payload))
	cipher.NewCBCDecrypter(block, km.IV[:]).CryptBlocks(plaintext, payload)

	return stripPKCS7(plaintext)
}

// DecodeRecord implements [VaultCipherService]. It parses plaintext as an
// arbitrary JSON tree without interpreting any of its fields; the card's
// domain structure (field lists, icons, templates) is the caller's concern.
func (s *vaultCipherService) DecodeRecord(plaintext []byte) (any, error) {
	var tree any
	if err := json.Unmarshal(plaintext, &tree); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPayloadFormat, err)
	}
	return tree, nil
}

// stripPKCS7 validates the PKCS#7 padding of a decrypted block sequence and
// returns the plaintext without it. Every padding byte must equal the pad
// length, which must be in [1, aes.BlockSize].
func stripPKCS7(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", models.ErrBadPadding)
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > aes.BlockSize || padLen > len(data) {
		return nil, fmt.Errorf("%w: pad length %d", models.ErrBadPadding, padLen)
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", models.ErrBadPadding)
		}
	}

	return data[:len(data)-padLen], nil
}
