// Package cidutil derives stable content identifiers for profile and feed
// material. Identifiers are IPFS-compatible CIDv1 strings (raw multicodec,
// sha2-256 multihash) over the exact bytes supplied, so any byte change to
// a record yields a new identifier.
package cidutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// ContentID returns the CIDv1 string for data.
func ContentID(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// SHA2_256 with default length cannot fail on any input.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

// ContentCID returns the CIDv1 value for data.
func ContentCID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}
