// Package secrets supplies the passphrase that protects keez export files.
//
// The passphrase never touches disk in plaintext. It lives in the OS-level
// credential store (macOS Keychain, Secret Service, KWallet, Windows
// Credential Manager, or an encrypted file) under the service name "keez"
// and the item key "temporary symmetric key".
//
// # Key Lifecycle
//
// The first call to GetOrCreateKey on a machine generates 128 random
// alphanumeric characters from crypto/rand, stores them, and returns them.
// Every later call, in this process or another, returns the same value.
//
// To import an export on another machine, copy the keychain item there
// under the same service and key names.
//
// # Testing
//
// Tests wrap keyring.NewArrayKeyring in a KeyringProvider, which gives the
// same get-or-create behaviour without touching the real keychain.
package secrets
