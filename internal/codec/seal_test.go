package codec

import (
	"errors"
	"testing"

	"github.com/99designs/keyring"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
	"github.com/PolarWolf314/keez/internal/secrets"
)

// fastKDF keeps the tests quick; production uses DefaultKDFParams.
var fastKDF = KDFParams{Time: 1, Memory: 8 * 1024, Threads: 1}

type staticKey string

func (k staticKey) GetOrCreateKey() (string, error) {
	return string(k), nil
}

type failingKey struct{}

func (failingKey) GetOrCreateKey() (string, error) {
	return "", kerrors.ErrSecret
}

func TestSealOpenRoundTrip(t *testing.T) {
	sealer := &Sealer{Keys: staticKey("correct horse battery staple"), KDF: fastKDF}

	for _, plaintext := range []string{"", "prefix: /a\nparameters: {}\n", "ünïcødé ✓"} {
		sealed, err := sealer.Seal(plaintext)
		if err != nil {
			t.Fatalf("Seal() returned error: %v", err)
		}

		opened, err := sealer.Open(sealed)
		if err != nil {
			t.Fatalf("Open() returned error: %v", err)
		}
		if opened != plaintext {
			t.Errorf("Open(Seal(%q)) = %q", plaintext, opened)
		}
	}
}

func TestSealIsRandomized(t *testing.T) {
	sealer := &Sealer{Keys: staticKey("k"), KDF: fastKDF}

	a, _ := sealer.Seal("same text")
	b, _ := sealer.Seal("same text")
	if string(a) == string(b) {
		t.Error("sealing the same plaintext twice produced identical output")
	}
}

func TestOpenDetectsTampering(t *testing.T) {
	sealer := &Sealer{Keys: staticKey("k"), KDF: fastKDF}

	sealed, err := sealer.Seal("parameters:\n  /a:\n    value: x\n    type: String\n")
	if err != nil {
		t.Fatalf("Seal() returned error: %v", err)
	}

	for i := range sealed {
		tampered := append([]byte(nil), sealed...)
		tampered[i] ^= 0x01

		got, err := sealer.Open(tampered)
		if !errors.Is(err, kerrors.ErrCrypto) {
			t.Fatalf("Open() with byte %d flipped: error = %v, want ErrCrypto", i, err)
		}
		if got != "" {
			t.Fatalf("Open() with byte %d flipped returned plaintext %q", i, got)
		}
	}
}

func TestOpenWithWrongKey(t *testing.T) {
	sealed, err := (&Sealer{Keys: staticKey("right"), KDF: fastKDF}).Seal("secret")
	if err != nil {
		t.Fatalf("Seal() returned error: %v", err)
	}

	_, err = (&Sealer{Keys: staticKey("wrong"), KDF: fastKDF}).Open(sealed)
	if !errors.Is(err, kerrors.ErrCrypto) {
		t.Errorf("Open() with wrong key error = %v, want ErrCrypto", err)
	}
}

func TestOpenRejectsTruncatedInput(t *testing.T) {
	sealer := &Sealer{Keys: staticKey("k"), KDF: fastKDF}

	for _, size := range []int{0, 10, saltSize + nonceSize} {
		if _, err := sealer.Open(make([]byte, size)); !errors.Is(err, kerrors.ErrCrypto) {
			t.Errorf("Open(%d bytes) error = %v, want ErrCrypto", size, err)
		}
	}
}

func TestSealPropagatesSecretErrors(t *testing.T) {
	sealer := &Sealer{Keys: failingKey{}, KDF: fastKDF}

	if _, err := sealer.Seal("x"); !errors.Is(err, kerrors.ErrSecret) {
		t.Errorf("Seal() error = %v, want ErrSecret", err)
	}
}

func TestSealWithKeyringProviderAcrossSealers(t *testing.T) {
	ring := keyring.NewArrayKeyring(nil)

	text, err := Serialize(sampleCollection())
	if err != nil {
		t.Fatalf("Serialize() returned error: %v", err)
	}

	exporter := &Sealer{Keys: secrets.NewKeyringProvider(ring), KDF: fastKDF}
	sealed, err := exporter.Seal(text)
	if err != nil {
		t.Fatalf("Seal() returned error: %v", err)
	}

	// A second process on the same host reads the same keychain item.
	importer := &Sealer{Keys: secrets.NewKeyringProvider(ring), KDF: fastKDF}
	opened, err := importer.Open(sealed)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}

	got, err := Deserialize(opened)
	if err != nil {
		t.Fatalf("Deserialize() returned error: %v", err)
	}
	if !got.Equal(sampleCollection()) {
		t.Error("collection changed across seal/open")
	}
}
