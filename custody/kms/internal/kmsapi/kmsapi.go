// Package kmsapi narrows the aws-sdk-go KMS client down to the calls needed to hold EVM keys.
package kmsapi

import (
	"context"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	kmslib "github.com/aws/aws-sdk-go/service/kms"
)

// Client is the subset of the KMS API used to create keys, read their public keys and sign
// digests with them.
type Client interface {
	CreateKey(ctx context.Context, in *kmslib.CreateKeyInput) (*kmslib.CreateKeyOutput, error)
	GetPublicKey(ctx context.Context, in *kmslib.GetPublicKeyInput) (*kmslib.GetPublicKeyOutput, error)
	Sign(ctx context.Context, in *kmslib.SignInput) (*kmslib.SignOutput, error)
}

// ClientConfig is the configuration for a KMS client.
type ClientConfig struct {
	// Region is the AWS region the keys live in, e.g. us-west-2.
	Region string
	// AWSProfile is the shared config profile to use. Leave empty to use the environment.
	AWSProfile string
}

func (c ClientConfig) validate() error {
	if c.Region == "" {
		return errors.New("KMS region is required")
	}

	return nil
}

// NewClient creates a KMS client from the shared AWS configuration.
func NewClient(cfg ClientConfig) (Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid KMS config: %w", err)
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Config: aws.Config{
			Region:                        aws.String(cfg.Region),
			CredentialsChainVerboseErrors: aws.Bool(true),
		},
		Profile:           cfg.AWSProfile,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &client{api: kmslib.New(sess)}, nil
}

type client struct {
	api *kmslib.KMS
}

func (c *client) CreateKey(ctx context.Context, in *kmslib.CreateKeyInput) (*kmslib.CreateKeyOutput, error) {
	return c.api.CreateKeyWithContext(ctx, in)
}

func (c *client) GetPublicKey(ctx context.Context, in *kmslib.GetPublicKeyInput) (*kmslib.GetPublicKeyOutput, error) {
	return c.api.GetPublicKeyWithContext(ctx, in)
}

func (c *client) Sign(ctx context.Context, in *kmslib.SignInput) (*kmslib.SignOutput, error) {
	return c.api.SignWithContext(ctx, in)
}

// SPKI is the ASN.1 SubjectPublicKeyInfo structure KMS returns public keys in.
type SPKI struct {
	AlgorithmIdentifier pkix.AlgorithmIdentifier
	SubjectPublicKey    asn1.BitString
}

// ECDSASig is the ASN.1 DER structure of an ECDSA signature returned by KMS.
type ECDSASig struct {
	R asn1.RawValue
	S asn1.RawValue
}
