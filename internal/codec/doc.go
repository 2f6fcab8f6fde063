// Package codec converts parameter collections to and from their portable
// export form.
//
// # Text Form
//
// Serialize and Deserialize use YAML:
//
//	prefix: /preprod
//	parameters:
//	  /preprod/db/host:
//	    value: db.internal
//	    type: String
//	  /preprod/db/password:
//	    value: hunter2
//	    type: SecureString
//
// The same form is what users edit interactively, so Deserialize is strict
// and returns errors precise enough to fix a hand edit.
//
// # Encryption
//
// A Sealer encrypts the text with NaCl secretbox. The 32-byte key is derived
// from the secrets.Provider passphrase with Argon2id and a random salt. The
// export file is salt (16 bytes) || nonce (24 bytes) || sealed box, with no
// other header.
package codec
