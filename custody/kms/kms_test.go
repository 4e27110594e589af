package kms

import (
	"context"
	"crypto/ecdsa"
	"encoding/asn1"
	"math/big"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	kmslib "github.com/aws/aws-sdk-go/service/kms"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/wallet-providers/custody"
	"github.com/smartcontractkit/wallet-providers/custody/kms/internal/kmsapi/mocks"
	"github.com/smartcontractkit/wallet-providers/pkg/logger"
)

const testKeyID = "1234567-1234-1234-1234-123456789012"

var (
	oidPublicKeyECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidSecp256k1      = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

// testKMSKey mimics a KMS secp256k1 key: it serves the public key in SPKI format and signs
// digests into ASN.1 DER signatures.
type testKMSKey struct {
	priv *ecdsa.PrivateKey
	// highS returns signatures with s in the upper half of the curve order.
	highS bool
}

func newTestKMSKey(t *testing.T) *testKMSKey {
	t.Helper()

	priv, err := crypto.GenerateKey()
	require.NoError(t, err)

	return &testKMSKey{priv: priv}
}

func (k *testKMSKey) address() string {
	return crypto.PubkeyToAddress(k.priv.PublicKey).Hex()
}

func (k *testKMSKey) spki(t *testing.T) []byte {
	t.Helper()

	params, err := asn1.Marshal(oidSecp256k1)
	require.NoError(t, err)

	type algorithmIdentifier struct {
		Algorithm  asn1.ObjectIdentifier
		Parameters asn1.RawValue
	}

	b, err := asn1.Marshal(struct {
		AlgorithmIdentifier algorithmIdentifier
		SubjectPublicKey    asn1.BitString
	}{
		AlgorithmIdentifier: algorithmIdentifier{
			Algorithm:  oidPublicKeyECDSA,
			Parameters: asn1.RawValue{FullBytes: params},
		},
		SubjectPublicKey: asn1.BitString{
			Bytes:     crypto.FromECDSAPub(&k.priv.PublicKey),
			BitLength: 65 * 8,
		},
	})
	require.NoError(t, err)

	return b
}

func (k *testKMSKey) sign(_ context.Context, in *kmslib.SignInput) (*kmslib.SignOutput, error) {
	sig, err := crypto.Sign(in.Message, k.priv)
	if err != nil {
		return nil, err
	}

	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if k.highS {
		s = new(big.Int).Sub(secp256k1N, s)
	}

	der, err := asn1.Marshal(struct{ R, S *big.Int }{r, s})
	if err != nil {
		return nil, err
	}

	return &kmslib.SignOutput{Signature: der}, nil
}

func (k *testKMSKey) expectPublicKey(t *testing.T, c *mocks.MockClient) {
	t.Helper()

	c.EXPECT().
		GetPublicKey(mock.Anything, &kmslib.GetPublicKeyInput{KeyId: aws.String(testKeyID)}).
		Return(&kmslib.GetPublicKeyOutput{PublicKey: k.spki(t)}, nil).
		Once()
}

func Test_New(t *testing.T) {
	t.Parallel()

	c, err := New(Config{Region: "us-west-2"}, logger.Test(t))
	require.NoError(t, err)
	assert.Equal(t, "kms", c.Name())
	assert.Equal(t, "EVM wallet", c.description)

	_, err = New(Config{}, logger.Test(t))
	require.ErrorContains(t, err, "failed to initialize KMS client")
}

func Test_Custody_Create(t *testing.T) {
	t.Parallel()

	key := newTestKMSKey(t)

	tests := []struct {
		name       string
		giveReq    custody.CreateRequest
		beforeFunc func(t *testing.T, c *mocks.MockClient)
		want       custody.Wallet
		wantErr    string
	}{
		{
			name:    "creates a key with authorization tags",
			giveReq: custody.CreateRequest{AuthorizationKeyIDs: []string{"auth-1"}},
			beforeFunc: func(t *testing.T, c *mocks.MockClient) {
				t.Helper()

				c.EXPECT().
					CreateKey(mock.Anything, &kmslib.CreateKeyInput{
						Description: aws.String("EVM wallet"),
						KeySpec:     aws.String(kmslib.KeySpecEccSecgP256k1),
						KeyUsage:    aws.String(kmslib.KeyUsageTypeSignVerify),
						Tags: []*kmslib.Tag{{
							TagKey:   aws.String("authorization_key_id"),
							TagValue: aws.String("auth-1"),
						}},
					}).
					Return(&kmslib.CreateKeyOutput{
						KeyMetadata: &kmslib.KeyMetadata{KeyId: aws.String(testKeyID)},
					}, nil)
				key.expectPublicKey(t, c)
			},
			want: custody.Wallet{ID: testKeyID, Address: key.address()},
		},
		{
			name: "create key fails",
			beforeFunc: func(t *testing.T, c *mocks.MockClient) {
				t.Helper()

				c.EXPECT().
					CreateKey(mock.Anything, mock.IsType(&kmslib.CreateKeyInput{})).
					Return(nil, assert.AnError)
			},
			wantErr: "call to kms.CreateKey() failed",
		},
		{
			name: "no key id returned",
			beforeFunc: func(t *testing.T, c *mocks.MockClient) {
				t.Helper()

				c.EXPECT().
					CreateKey(mock.Anything, mock.IsType(&kmslib.CreateKeyInput{})).
					Return(&kmslib.CreateKeyOutput{}, nil)
			},
			wantErr: "returned no key id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockClient(t)
			tt.beforeFunc(t, client)

			got, err := newWithClient(client, "", logger.Test(t)).Create(t.Context(), tt.giveReq)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Custody_GetWallet(t *testing.T) {
	t.Parallel()

	key := newTestKMSKey(t)

	tests := []struct {
		name       string
		beforeFunc func(t *testing.T, c *mocks.MockClient)
		wantErr    string
	}{
		{
			name: "derives the address from the public key",
			beforeFunc: func(t *testing.T, c *mocks.MockClient) {
				t.Helper()
				key.expectPublicKey(t, c)
			},
		},
		{
			name: "public key lookup fails",
			beforeFunc: func(t *testing.T, c *mocks.MockClient) {
				t.Helper()

				c.EXPECT().
					GetPublicKey(mock.Anything, mock.IsType(&kmslib.GetPublicKeyInput{})).
					Return(nil, assert.AnError)
			},
			wantErr: "cannot get public key from KMS",
		},
		{
			name: "malformed public key",
			beforeFunc: func(t *testing.T, c *mocks.MockClient) {
				t.Helper()

				c.EXPECT().
					GetPublicKey(mock.Anything, mock.IsType(&kmslib.GetPublicKeyInput{})).
					Return(&kmslib.GetPublicKeyOutput{PublicKey: []byte("invalid")}, nil)
			},
			wantErr: "cannot parse asn1 public key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockClient(t)
			tt.beforeFunc(t, client)

			c := newWithClient(client, "", logger.Test(t))

			got, err := c.GetWallet(t.Context(), testKeyID)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, custody.Wallet{ID: testKeyID, Address: key.address()}, got)

			// Second lookup is served from the cache; the mock only allows one call.
			_, err = c.GetWallet(t.Context(), testKeyID)
			require.NoError(t, err)
		})
	}
}

func Test_Custody_SignMessage(t *testing.T) {
	t.Parallel()

	for _, highS := range []bool{false, true} {
		key := newTestKMSKey(t)
		key.highS = highS

		client := mocks.NewMockClient(t)
		key.expectPublicKey(t, client)
		client.EXPECT().
			Sign(mock.Anything, mock.IsType(&kmslib.SignInput{})).
			RunAndReturn(key.sign)

		c := newWithClient(client, "", logger.Test(t))

		msg := []byte("hello world")
		sig, err := c.SignMessage(t.Context(), testKeyID, msg)
		require.NoError(t, err)
		require.Len(t, sig, crypto.SignatureLength)
		assert.Contains(t, []byte{27, 28}, sig[crypto.RecoveryIDOffset])

		s := new(big.Int).SetBytes(sig[32:64])
		assert.LessOrEqual(t, s.Cmp(secp256k1HalfN), 0)

		recoverable := append([]byte(nil), sig...)
		recoverable[crypto.RecoveryIDOffset] -= 27
		pub, err := crypto.SigToPub(accounts.TextHash(msg), recoverable)
		require.NoError(t, err)
		assert.Equal(t, key.address(), crypto.PubkeyToAddress(*pub).Hex())
	}
}

func Test_Custody_SignTypedData(t *testing.T) {
	t.Parallel()

	key := newTestKMSKey(t)

	client := mocks.NewMockClient(t)
	key.expectPublicKey(t, client)
	client.EXPECT().
		Sign(mock.Anything, mock.IsType(&kmslib.SignInput{})).
		RunAndReturn(key.sign)

	c := newWithClient(client, "", logger.Test(t))

	data := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "chainId", Type: "uint256"},
			},
			"Mail": {
				{Name: "contents", Type: "string"},
			},
		},
		PrimaryType: "Mail",
		Domain: apitypes.TypedDataDomain{
			Name:    "Test",
			ChainId: math.NewHexOrDecimal256(1),
		},
		Message: apitypes.TypedDataMessage{"contents": "hello"},
	}

	sig, err := c.SignTypedData(t.Context(), testKeyID, data)
	require.NoError(t, err)

	hash, _, err := apitypes.TypedDataAndHash(data)
	require.NoError(t, err)

	sig[crypto.RecoveryIDOffset] -= 27
	pub, err := crypto.SigToPub(hash, sig)
	require.NoError(t, err)
	assert.Equal(t, key.address(), crypto.PubkeyToAddress(*pub).Hex())

	_, err = c.SignTypedData(t.Context(), testKeyID, apitypes.TypedData{PrimaryType: "Missing"})
	require.ErrorContains(t, err, "failed to hash typed data")
}

func Test_Custody_SignTransaction(t *testing.T) {
	t.Parallel()

	var (
		key     = newTestKMSKey(t)
		chainID = big.NewInt(84532)
		to      = common.HexToAddress("0xc1d6fEcd5D09Ad67cF5E0FC9633D89759DD84271")
		tx      = types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     1,
			GasTipCap: big.NewInt(1_000_000_000),
			GasFeeCap: big.NewInt(2_000_000_000),
			Gas:       21000,
			To:        &to,
			Value:     big.NewInt(1),
		})
	)

	client := mocks.NewMockClient(t)
	key.expectPublicKey(t, client)
	client.EXPECT().
		Sign(mock.Anything, mock.IsType(&kmslib.SignInput{})).
		RunAndReturn(key.sign)

	c := newWithClient(client, "", logger.Test(t))

	signed, err := c.SignTransaction(t.Context(), testKeyID, tx, chainID)
	require.NoError(t, err)

	from, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, key.address(), from.Hex())

	_, err = c.SignTransaction(t.Context(), testKeyID, tx, nil)
	require.ErrorContains(t, err, "chainID is required")
}

func Test_Custody_signHash_errors(t *testing.T) {
	t.Parallel()

	key := newTestKMSKey(t)

	tests := []struct {
		name       string
		beforeFunc func(c *mocks.MockClient)
		wantErr    string
	}{
		{
			name: "sign fails",
			beforeFunc: func(c *mocks.MockClient) {
				c.EXPECT().
					Sign(mock.Anything, mock.IsType(&kmslib.SignInput{})).
					Return(nil, assert.AnError)
			},
			wantErr: "call to kms.Sign() failed",
		},
		{
			name: "invalid signature",
			beforeFunc: func(c *mocks.MockClient) {
				c.EXPECT().
					Sign(mock.Anything, mock.IsType(&kmslib.SignInput{})).
					Return(&kmslib.SignOutput{Signature: []byte("invalid")}, nil)
			},
			wantErr: "failed to convert KMS signature to Ethereum signature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockClient(t)
			key.expectPublicKey(t, client)
			tt.beforeFunc(client)

			_, err := newWithClient(client, "", logger.Test(t)).SignMessage(t.Context(), testKeyID, []byte("x"))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func Test_padTo32Bytes(t *testing.T) {
	t.Parallel()

	assert.Len(t, padTo32Bytes([]byte{1}), 32)
	assert.Equal(t, byte(1), padTo32Bytes([]byte{0, 0, 1})[31])
	assert.Len(t, padTo32Bytes(make([]byte, 33)), 32)
}
