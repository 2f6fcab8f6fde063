package secrets

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/99designs/keyring"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
)

const (
	// ServiceName namespaces keez items in the OS keychain.
	ServiceName = "keez"

	// SymmetricKeyID identifies the export passphrase item.
	SymmetricKeyID = "temporary symmetric key"

	// KeyLength is the number of characters in a generated passphrase.
	KeyLength = 128
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Provider supplies the long-lived passphrase used to seal exports.
type Provider interface {
	// GetOrCreateKey returns the stored passphrase, generating and
	// persisting one first if none exists.
	GetOrCreateKey() (string, error)
}

// KeyringProvider keeps the passphrase in an OS-level credential store.
type KeyringProvider struct {
	ring keyring.Keyring
}

// NewKeyringProvider wraps an already opened keyring.
func NewKeyringProvider(ring keyring.Keyring) *KeyringProvider {
	return &KeyringProvider{ring: ring}
}

// GetOrCreateKey implements Provider.
func (p *KeyringProvider) GetOrCreateKey() (string, error) {
	item, err := p.ring.Get(SymmetricKeyID)
	if err == nil {
		return string(item.Data), nil
	}

	// Only a missing item is recoverable; anything else means the
	// backing store itself is unavailable.
	if !errors.Is(err, keyring.ErrKeyNotFound) {
		return "", fmt.Errorf("%w: reading %q from keyring: %v", kerrors.ErrSecret, SymmetricKeyID, err)
	}

	key, err := GenerateKey(KeyLength)
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrSecret, err)
	}

	err = p.ring.Set(keyring.Item{
		Key:         SymmetricKeyID,
		Data:        []byte(key),
		Label:       "keez export key",
		Description: "symmetric passphrase for keez export files",
	})
	if err != nil {
		return "", fmt.Errorf("%w: storing %q in keyring: %v", kerrors.ErrSecret, SymmetricKeyID, err)
	}

	return key, nil
}

// GenerateKey returns n random alphanumeric characters.
func GenerateKey(n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n)

	// Rejection sampling keeps the distribution uniform over the alphabet.
	limit := byte(256 - 256%len(alphanumeric))
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("reading random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, alphanumeric[int(b)%len(alphanumeric)])
			if len(out) == n {
				break
			}
		}
	}

	return string(out), nil
}
