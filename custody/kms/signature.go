package kms

import (
	"bytes"
	"encoding/asn1"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/wallet-providers/custody/kms/internal/kmsapi"
)

var (
	secp256k1N     = crypto.S256().Params().N
	secp256k1HalfN = new(big.Int).Div(secp256k1N, big.NewInt(2))
)

// kmsToEVMSig converts an ASN.1 DER signature returned by KMS into a 65 byte [R || S || V]
// signature with V in {0, 1}.
//
// See https://aws.amazon.com/blogs/database/part2-use-aws-kms-to-securely-manage-ethereum-accounts/
func kmsToEVMSig(kmsSig, pubKeyBytes, hash []byte) ([]byte, error) {
	var sig kmsapi.ECDSASig
	if _, err := asn1.Unmarshal(kmsSig, &sig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal KMS signature: %w", err)
	}

	r := sig.R.Bytes
	s := sig.S.Bytes

	// EIP-2: s must be in the lower half of the curve order.
	sInt := new(big.Int).SetBytes(s)
	if sInt.Cmp(secp256k1HalfN) > 0 {
		s = new(big.Int).Sub(secp256k1N, sInt).Bytes()
	}

	return recoverEVMSignature(pubKeyBytes, hash, r, s)
}

// recoverEVMSignature finds the recovery id for which the signature recovers pubKeyBytes.
func recoverEVMSignature(pubKeyBytes, hash, r, s []byte) ([]byte, error) {
	rs := append(padTo32Bytes(r), padTo32Bytes(s)...)

	for _, v := range []byte{0, 1} {
		sig := append(bytes.Clone(rs), v)

		recovered, err := crypto.Ecrecover(hash, sig)
		if err != nil {
			return nil, fmt.Errorf("failed to recover signature with v=%d: %w", v, err)
		}

		if bytes.Equal(recovered, pubKeyBytes) {
			return sig, nil
		}
	}

	return nil, errors.New("cannot reconstruct public key from sig")
}

// padTo32Bytes left pads buffer with zeros to 32 bytes after trimming leading zeros.
func padTo32Bytes(buffer []byte) []byte {
	buffer = bytes.TrimLeft(buffer, "\x00")
	if len(buffer) >= 32 {
		return buffer
	}

	out := make([]byte, 32)
	copy(out[32-len(buffer):], buffer)

	return out
}
