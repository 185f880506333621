package security

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
// Error() strings are human-readable and may evolve.
type Kind string

const (
	// KindArmor covers malformed PEM armor: missing or mismatched
	// header/footer, invalid body base64.
	KindArmor Kind = "Armor"
	// KindKey covers malformed key containers: DER that does not parse,
	// compact text that does not decode, wrong key lengths.
	KindKey Kind = "Key"
	// KindSignature covers structurally malformed signatures: non-hex or
	// odd-length text, wrong byte length. A signature that simply does not
	// verify is not an error of this kind; Verify returns false for it.
	KindSignature Kind = "Signature"
	// KindAlgorithm covers containers encoding an algorithm other than the
	// supported one.
	KindAlgorithm Kind = "Algorithm"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g., DSI-ARMOR-001, DSI-SIG-002) naming
// the violated invariant. Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// NewArmorKindError reports an armored block of the wrong kind for the
// requested operation (e.g. a PUBLIC KEY block where a private key was
// expected).
func NewArmorKindError(msg string) error {
	return newError(KindArmor, "DSI-ARMOR-003", msg)
}

// NewKeyLengthError reports raw key material of the wrong length.
func NewKeyLengthError(msg string) error {
	return newError(KindKey, "DSI-KEY-003", msg)
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
