package codec

import (
	"crypto/rand"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
	"github.com/PolarWolf314/keez/internal/secrets"
)

const (
	saltSize  = 16
	nonceSize = 24
	keySize   = 32
)

// KDFParams are the Argon2id settings used to stretch the passphrase.
type KDFParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultKDFParams follows the RFC 9106 second recommended option.
var DefaultKDFParams = KDFParams{Time: 3, Memory: 64 * 1024, Threads: 4}

// Sealer encrypts export payloads under the provider's passphrase.
//
// The envelope is salt || nonce || secretbox(plaintext). It carries
// everything needed to open it except the passphrase, so any process
// holding the same key can read it.
type Sealer struct {
	Keys secrets.Provider
	KDF  KDFParams
}

// NewSealer returns a Sealer with the default key-derivation settings.
func NewSealer(keys secrets.Provider) *Sealer {
	return &Sealer{Keys: keys, KDF: DefaultKDFParams}
}

// Seal encrypts and authenticates plaintext.
func (s *Sealer) Seal(plaintext string) ([]byte, error) {
	passphrase, err := s.Keys.GetOrCreateKey()
	if err != nil {
		return nil, err
	}

	header := make([]byte, saltSize+nonceSize)
	if _, err := rand.Read(header); err != nil {
		return nil, fmt.Errorf("%w: generating salt and nonce: %v", kerrors.ErrCrypto, err)
	}

	var nonce [nonceSize]byte
	copy(nonce[:], header[saltSize:])
	key := s.deriveKey(passphrase, header[:saltSize])

	return secretbox.Seal(header, []byte(plaintext), &nonce, key), nil
}

// Open verifies and decrypts an envelope produced by Seal. Any tampering or
// a different passphrase fails with ErrCrypto; no plaintext is returned.
func (s *Sealer) Open(ciphertext []byte) (string, error) {
	if len(ciphertext) < saltSize+nonceSize+secretbox.Overhead {
		return "", fmt.Errorf("%w: ciphertext too short (%d bytes)", kerrors.ErrCrypto, len(ciphertext))
	}

	passphrase, err := s.Keys.GetOrCreateKey()
	if err != nil {
		return "", err
	}

	var nonce [nonceSize]byte
	copy(nonce[:], ciphertext[saltSize:saltSize+nonceSize])
	key := s.deriveKey(passphrase, ciphertext[:saltSize])

	plaintext, ok := secretbox.Open(nil, ciphertext[saltSize+nonceSize:], &nonce, key)
	if !ok {
		return "", fmt.Errorf("%w: authentication failed (wrong key or corrupted file)", kerrors.ErrCrypto)
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: decrypted payload is not valid UTF-8", kerrors.ErrCrypto)
	}

	return string(plaintext), nil
}

func (s *Sealer) deriveKey(passphrase string, salt []byte) *[keySize]byte {
	params := s.KDF
	if params == (KDFParams{}) {
		params = DefaultKDFParams
	}

	var key [keySize]byte
	copy(key[:], argon2.IDKey([]byte(passphrase), salt, params.Time, params.Memory, params.Threads, keySize))
	return &key
}
