// Package security implements the trust core: key container encoding,
// canonical message construction, and Ed25519 signature production and
// verification.
//
// The canonical byte sequences produced here are a protocol contract.
// Signing and verifying callers must go through CanonicalEndorsement and
// CanonicalFeedItem; any change to their output is a breaking change.
//
// Structural failures (malformed armor, malformed key containers, malformed
// signatures, unsupported algorithms) surface as *Error with a stable Kind
// and RuleID. A cryptographically invalid signature is not an error: Verify
// reports it as false.
package security
