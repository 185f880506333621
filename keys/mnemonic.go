package keys

import (
	"errors"

	"github.com/tyler-smith/go-bip39"
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Mnemonic renders the keypair's 32-byte seed as a 24-word BIP-39 mnemonic
// for offline backup. The mnemonic encodes the seed itself; restoring it
// with FromMnemonic yields the identical keypair.
func (kp *KeyPair) Mnemonic() (string, error) {
	return bip39.NewMnemonic(kp.Private.Seed())
}

// FromMnemonic rebuilds a keypair from a 24-word BIP-39 mnemonic produced
// by Mnemonic.
func FromMnemonic(mnemonic string) (*KeyPair, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil || len(entropy) != 32 {
		return nil, ErrInvalidMnemonic
	}
	return FromSeed(entropy)
}
