// Package kms implements a custody service backed by AWS KMS. Each wallet is a KMS key of spec
// ECC_SECG_P256K1; the wallet id is the KMS key id and signatures are requested from KMS, so the
// private key never leaves the service.
package kms

import (
	"context"
	"crypto/ecdsa"
	"encoding/asn1"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	kmslib "github.com/aws/aws-sdk-go/service/kms"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/smartcontractkit/wallet-providers/custody"
	"github.com/smartcontractkit/wallet-providers/custody/kms/internal/kmsapi"
	"github.com/smartcontractkit/wallet-providers/pkg/logger"
)

// Name is the custody service name reported by [Custody.Name].
const Name = "kms"

// authorizationKeyTag is the tag key under which authorization key ids are recorded on new keys.
const authorizationKeyTag = "authorization_key_id"

var _ custody.Client = (*Custody)(nil)

// Config configures the KMS custody service.
type Config struct {
	// Region is the AWS region to create keys in. Required.
	Region string
	// AWSProfile is the shared AWS config profile. Leave empty to use environment variables.
	AWSProfile string
	// Description is attached to keys created by this service. Optional.
	Description string
}

// Custody is a custody.Client that holds wallet keys in AWS KMS.
type Custody struct {
	client      kmsapi.Client
	description string
	lggr        logger.Logger

	// pubKeys caches the public key of each key id. Public keys never change for a key id.
	pubKeys sync.Map
}

// New creates a KMS custody service.
func New(cfg Config, lggr logger.Logger) (*Custody, error) {
	client, err := kmsapi.NewClient(kmsapi.ClientConfig{
		Region:     cfg.Region,
		AWSProfile: cfg.AWSProfile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize KMS client: %w", err)
	}

	return newWithClient(client, cfg.Description, lggr), nil
}

func newWithClient(client kmsapi.Client, description string, lggr logger.Logger) *Custody {
	if description == "" {
		description = "EVM wallet"
	}
	if lggr == nil {
		lggr = logger.Nop()
	}

	return &Custody{
		client:      client,
		description: description,
		lggr:        lggr.Named("kms"),
	}
}

// Name returns "kms".
func (*Custody) Name() string {
	return Name
}

// Create creates a new secp256k1 signing key. Authorization key ids are recorded as tags on the
// key; access control itself is left to the key policy.
func (c *Custody) Create(ctx context.Context, req custody.CreateRequest) (custody.Wallet, error) {
	tags := make([]*kmslib.Tag, 0, len(req.AuthorizationKeyIDs))
	for _, id := range req.AuthorizationKeyIDs {
		tags = append(tags, &kmslib.Tag{
			TagKey:   aws.String(authorizationKeyTag),
			TagValue: aws.String(id),
		})
	}

	in := &kmslib.CreateKeyInput{
		Description: aws.String(c.description),
		KeySpec:     aws.String(kmslib.KeySpecEccSecgP256k1),
		KeyUsage:    aws.String(kmslib.KeyUsageTypeSignVerify),
	}
	if len(tags) > 0 {
		in.Tags = tags
	}

	out, err := c.client.CreateKey(ctx, in)
	if err != nil {
		return custody.Wallet{}, fmt.Errorf("call to kms.CreateKey() failed: %w", err)
	}
	if out.KeyMetadata == nil || aws.StringValue(out.KeyMetadata.KeyId) == "" {
		return custody.Wallet{}, errors.New("kms.CreateKey() returned no key id")
	}

	keyID := aws.StringValue(out.KeyMetadata.KeyId)
	c.lggr.Infow("Created KMS key", "keyID", keyID)

	return c.GetWallet(ctx, keyID)
}

// GetWallet derives the wallet address from the public key of the KMS key.
func (c *Custody) GetWallet(ctx context.Context, walletID string) (custody.Wallet, error) {
	pubKey, err := c.publicKey(ctx, walletID)
	if err != nil {
		return custody.Wallet{}, err
	}

	return custody.Wallet{
		ID:      walletID,
		Address: crypto.PubkeyToAddress(*pubKey).Hex(),
	}, nil
}

// SignMessage signs the EIP-191 hash of message.
func (c *Custody) SignMessage(ctx context.Context, walletID string, message []byte) ([]byte, error) {
	sig, err := c.signHash(ctx, walletID, accounts.TextHash(message))
	if err != nil {
		return nil, err
	}

	return toEthereumV(sig), nil
}

// SignTypedData signs the EIP-712 hash of data.
func (c *Custody) SignTypedData(ctx context.Context, walletID string, data apitypes.TypedData) ([]byte, error) {
	hash, _, err := apitypes.TypedDataAndHash(data)
	if err != nil {
		return nil, fmt.Errorf("failed to hash typed data: %w", err)
	}

	sig, err := c.signHash(ctx, walletID, hash)
	if err != nil {
		return nil, err
	}

	return toEthereumV(sig), nil
}

// SignTransaction signs tx with the latest signer for chainID.
func (c *Custody) SignTransaction(
	ctx context.Context, walletID string, tx *types.Transaction, chainID *big.Int,
) (*types.Transaction, error) {
	if chainID == nil {
		return nil, errors.New("chainID is required")
	}

	signer := types.LatestSignerForChainID(chainID)

	sig, err := c.signHash(ctx, walletID, signer.Hash(tx).Bytes())
	if err != nil {
		return nil, err
	}

	return tx.WithSignature(signer, sig)
}

// publicKey retrieves the public key of keyID from KMS, caching it.
func (c *Custody) publicKey(ctx context.Context, keyID string) (*ecdsa.PublicKey, error) {
	if v, ok := c.pubKeys.Load(keyID); ok {
		return v.(*ecdsa.PublicKey), nil
	}

	out, err := c.client.GetPublicKey(ctx, &kmslib.GetPublicKeyInput{
		KeyId: aws.String(keyID),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot get public key from KMS for KeyId=%s: %w", keyID, err)
	}

	var spki kmsapi.SPKI
	if _, err = asn1.Unmarshal(out.PublicKey, &spki); err != nil {
		return nil, fmt.Errorf("cannot parse asn1 public key for KeyId=%s: %w", keyID, err)
	}

	pubKey, err := crypto.UnmarshalPubkey(spki.SubjectPublicKey.Bytes)
	if err != nil {
		return nil, fmt.Errorf("cannot unmarshal public key bytes: %w", err)
	}

	c.pubKeys.Store(keyID, pubKey)

	return pubKey, nil
}

// signHash asks KMS to sign hash and returns a 65 byte signature with a recovery id of 0 or 1.
func (c *Custody) signHash(ctx context.Context, keyID string, hash []byte) ([]byte, error) {
	pubKey, err := c.publicKey(ctx, keyID)
	if err != nil {
		return nil, err
	}

	out, err := c.client.Sign(ctx, &kmslib.SignInput{
		KeyId:            aws.String(keyID),
		SigningAlgorithm: aws.String(kmslib.SigningAlgorithmSpecEcdsaSha256),
		MessageType:      aws.String(kmslib.MessageTypeDigest),
		Message:          hash,
	})
	if err != nil {
		return nil, fmt.Errorf("call to kms.Sign() failed: %w", err)
	}

	sig, err := kmsToEVMSig(out.Signature, crypto.FromECDSAPub(pubKey), hash)
	if err != nil {
		return nil, fmt.Errorf("failed to convert KMS signature to Ethereum signature: %w", err)
	}

	return sig, nil
}

// toEthereumV shifts the recovery id into the 27/28 range used by personal and typed data
// signatures.
func toEthereumV(sig []byte) []byte {
	if sig[crypto.RecoveryIDOffset] < 27 {
		sig[crypto.RecoveryIDOffset] += 27
	}

	return sig
}
