package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"reflect"
	"testing"

	"github.com/MKhiriev/enpass-cli/models"
)

// testIdentity builds an Identity with a 48-byte info blob laid out the way
// Enpass 5 stores it: IV at [16:32), salt at [32:48).
func testIdentity(hmacKeyMaterial string, iv, salt []byte) models.Identity {
	info := make([]byte, 48)
	copy(info[16:32], iv)
	copy(info[32:48], salt)
	return models.Identity{
		ID:              1,
		Version:         5,
		HMACKeyMaterial: hmacKeyMaterial,
		Info:            info,
	}
}

// encryptCBC is the inverse of DecryptRecord: PKCS#7 pad, then AES-256-CBC
// encrypt. Used to build test ciphertexts.
func encryptCBC(t *testing.T, plaintext []byte, km models.KeyMaterial) []byte {
	t.Helper()

	padLen := aes.BlockSize - len(plaintext)%aes.BlockSize
	padded := append(append([]byte{}, plaintext...), bytes.Repeat([]byte{byte(padLen)}, padLen)...)

	block, err := aes.NewCipher(km.Key[:])
	if err != nil {
		t.Fatalf("aes.NewCipher error: %v", err)
	}

	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, km.IV[:]).CryptBlocks(out, padded)
	return out
}

func TestDeriveKeyMaterial_DeterministicForSameIdentity(t *testing.T) {
	svc := NewVaultCipherService()
	identity := testIdentity("some-hash-material", bytes.Repeat([]byte{0x0F}, 16), bytes.Repeat([]byte{0xAA}, 16))

	km1, err := svc.DeriveKeyMaterial(identity, models.FormatV5)
	if err != nil {
		t.Fatalf("DeriveKeyMaterial error: %v", err)
	}
	km2, err := svc.DeriveKeyMaterial(identity, models.FormatV5)
	if err != nil {
		t.Fatalf("DeriveKeyMaterial error: %v", err)
	}

	if km1 != km2 {
		t.Fatalf("expected identical key material for identical identity")
	}
	if !bytes.Equal(km1.IV[:], identity.Info[16:32]) {
		t.Fatalf("IV must be taken verbatim from info[16:32)")
	}
}

func TestDeriveKeyMaterial_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewVaultCipherService()
	iv := bytes.Repeat([]byte{0x00}, 16)

	km1, err := svc.DeriveKeyMaterial(testIdentity("hash", iv, bytes.Repeat([]byte{0x01}, 16)), models.FormatV5)
	if err != nil {
		t.Fatalf("DeriveKeyMaterial error: %v", err)
	}
	km2, err := svc.DeriveKeyMaterial(testIdentity("hash", iv, bytes.Repeat([]byte{0x02}, 16)), models.FormatV5)
	if err != nil {
		t.Fatalf("DeriveKeyMaterial error: %v", err)
	}

	if km1.Key == km2.Key {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKeyMaterial_ShortInfoFails(t *testing.T) {
	svc := NewVaultCipherService()

	for _, n := range []int{0, 1, 16, 32, 47} {
		identity := models.Identity{HMACKeyMaterial: "hash", Info: make([]byte, n)}
		_, err := svc.DeriveKeyMaterial(identity, models.FormatV5)
		if !errors.Is(err, models.ErrMalformedIdentity) {
			t.Fatalf("info len %d: got %v, want ErrMalformedIdentity", n, err)
		}
	}
}

func TestDeriveKeyMaterial_FormatV6Rejected(t *testing.T) {
	svc := NewVaultCipherService()

	// Even a fully well-formed identity must be rejected before any
	// cryptographic work when the vault is Enpass 6.
	identity := testIdentity("hash", make([]byte, 16), make([]byte, 16))
	_, err := svc.DeriveKeyMaterial(identity, models.FormatV6)
	if !errors.Is(err, models.ErrUnsupportedFormatVersion) {
		t.Fatalf("got %v, want ErrUnsupportedFormatVersion", err)
	}
}

func TestDecryptRecord_RoundTrip(t *testing.T) {
	svc := NewVaultCipherService()
	identity := testIdentity("round-trip-hash", bytes.Repeat([]byte{0x42}, 16), bytes.Repeat([]byte{0x24}, 16))

	km, err := svc.DeriveKeyMaterial(identity, models.FormatV5)
	if err != nil {
		t.Fatalf("DeriveKeyMaterial error: %v", err)
	}

	for _, n := range []int{0, 1, 15, 16, 17, 4096} {
		plaintext := make([]byte, n)
		if _, err := rand.Read(plaintext); err != nil {
			t.Fatalf("rand.Read error: %v", err)
		}

		got, err := svc.DecryptRecord(encryptCBC(t, plaintext, km), km)
		if err != nil {
			t.Fatalf("payload len %d: DecryptRecord error: %v", n, err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Fatalf("payload len %d: round-trip mismatch", n)
		}
	}
}

func TestDecryptRecord_InvalidCiphertextLength(t *testing.T) {
	svc := NewVaultCipherService()
	var km models.KeyMaterial

	for _, n := range []int{1, 15, 17, 31, 33} {
		_, err := svc.DecryptRecord(make([]byte, n), km)
		if !errors.Is(err, models.ErrInvalidCiphertextLength) {
			t.Fatalf("len %d: got %v, want ErrInvalidCiphertextLength", n, err)
		}
	}

	_, err := svc.DecryptRecord(nil, km)
	if !errors.Is(err, models.ErrInvalidCiphertextLength) {
		t.Fatalf("empty payload: got %v, want ErrInvalidCiphertextLength", err)
	}
}

func TestDecryptRecord_WrongKeyFailsPadding(t *testing.T) {
	svc := NewVaultCipherService()
	identity := testIdentity("right-hash", bytes.Repeat([]byte{0x10}, 16), bytes.Repeat([]byte{0x20}, 16))

	km, err := svc.DeriveKeyMaterial(identity, models.FormatV5)
	if err != nil {
		t.Fatalf("DeriveKeyMaterial error: %v", err)
	}
	payload := encryptCBC(t, []byte(`{"title":"wrong key target"}`), km)

	// Decrypting under a wrong key yields pseudo-random plaintext, whose
	// last byte forms valid padding with probability ~1/256. Allow a few
	// flukes over 128 trials but require a near-total failure rate.
	const trials = 128
	failures := 0
	for i := 0; i < trials; i++ {
		wrong := km
		if _, err := rand.Read(wrong.Key[:]); err != nil {
			t.Fatalf("rand.Read error: %v", err)
		}
		if _, err := svc.DecryptRecord(payload, wrong); errors.Is(err, models.ErrBadPadding) {
			failures++
		}
	}

	if failures < trials-4 {
		t.Fatalf("padding failures = %d of %d, want near-total", failures, trials)
	}
}

func TestStripPKCS7_RejectsBadPadding(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"zero pad byte", append(bytes.Repeat([]byte{0x01}, 15), 0x00)},
		{"pad longer than block", append(bytes.Repeat([]byte{0x11}, 15), 0x11)},
		{"pad longer than data", []byte{0x05, 0x05}},
		{"inconsistent pad bytes", append(bytes.Repeat([]byte{0x03}, 14), 0x02, 0x03)},
		{"empty plaintext", nil},
	}

	for _, tt := range tests {
		if _, err := stripPKCS7(tt.data); !errors.Is(err, models.ErrBadPadding) {
			t.Fatalf("%s: got %v, want ErrBadPadding", tt.name, err)
		}
	}
}

func TestDecodeRecord(t *testing.T) {
	svc := NewVaultCipherService()

	tree, err := svc.DecodeRecord([]byte(`{"fields":[{"label":"password","value":"s3cret"}]}`))
	if err != nil {
		t.Fatalf("DecodeRecord error: %v", err)
	}
	if _, ok := tree.(map[string]any); !ok {
		t.Fatalf("expected an object tree, got %T", tree)
	}

	if _, err := svc.DecodeRecord([]byte("not json at all")); !errors.Is(err, models.ErrPayloadFormat) {
		t.Fatalf("got %v, want ErrPayloadFormat", err)
	}
}

// TestVaultPipeline_EndToEnd walks the full derive -> encrypt -> decrypt ->
// decode path with a fixed identity and checks structural equality of the
// resulting tree.
func TestVaultPipeline_EndToEnd(t *testing.T) {
	svc := NewVaultCipherService()

	salt := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10}
	identity := testIdentity("testhash", make([]byte, 16), salt)

	km, err := svc.DeriveKeyMaterial(identity, models.FormatV5)
	if err != nil {
		t.Fatalf("DeriveKeyMaterial error: %v", err)
	}

	payload := encryptCBC(t, []byte(`{"title":"x"}`), km)

	plaintext, err := svc.DecryptRecord(payload, km)
	if err != nil {
		t.Fatalf("DecryptRecord error: %v", err)
	}

	tree, err := svc.DecodeRecord(plaintext)
	if err != nil {
		t.Fatalf("DecodeRecord error: %v", err)
	}

	want := map[string]any{"title": "x"}
	if !reflect.DeepEqual(tree, want) {
		t.Fatalf("tree = %#v, want %#v", tree, want)
	}
}
