// Package keys manages Ed25519 signing keypairs: generation, armored
// import/export, mnemonic backup, display fingerprints, and a simple
// local filesystem store.
//
// Private key material is held only in memory by the caller that generated
// or loaded it and is never logged or re-serialized except through Export.
package keys
