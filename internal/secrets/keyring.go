package secrets

import (
	"fmt"

	"github.com/99designs/keyring"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
)

// KeyringOptions selects and configures the keyring backend.
type KeyringOptions struct {
	// Backends restricts which keyring backends may be used, in order of
	// preference. Empty means every backend available on this platform.
	Backends []string

	// FileDir is where the encrypted file backend keeps its items.
	FileDir string
}

// OpenKeyring opens the keez namespace of the platform credential store.
func OpenKeyring(opts KeyringOptions) (keyring.Keyring, error) {
	cfg := keyring.Config{
		ServiceName:              ServiceName,
		KeychainName:             "login",
		KeychainTrustApplication: true,
		FileDir:                  opts.FileDir,
		FilePasswordFunc:         keyring.TerminalPrompt,
		LibSecretCollectionName:  "login",
		KWalletAppID:             ServiceName,
		KWalletFolder:            ServiceName,
		WinCredPrefix:            ServiceName,
	}
	for _, backend := range opts.Backends {
		cfg.AllowedBackends = append(cfg.AllowedBackends, keyring.BackendType(backend))
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: opening keyring: %v", kerrors.ErrSecret, err)
	}
	return ring, nil
}

// AvailableBackends lists the keyring backends supported on this platform.
func AvailableBackends() []string {
	var names []string
	for _, backend := range keyring.AvailableBackends() {
		names = append(names, string(backend))
	}
	return names
}
