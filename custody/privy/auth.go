package privy

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// authorizationKeyPrefix prefixes authorization private keys exported from the Privy dashboard.
const authorizationKeyPrefix = "wallet-auth:"

// authorizer signs requests with a P-256 authorization key.
//
// The signature covers the canonical JSON encoding (keys sorted, no HTML escaping) of the
// request method, url, body and privy headers, and is sent base64 encoded in the
// privy-authorization-signature header.
type authorizer struct {
	key *ecdsa.PrivateKey
}

func newAuthorizer(privateKey string) (*authorizer, error) {
	der, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(privateKey, authorizationKeyPrefix))
	if err != nil {
		return nil, fmt.Errorf("invalid authorization private key: %w", err)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("invalid authorization private key: %w", err)
	}

	key, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, errors.New("invalid authorization private key: not an ECDSA key")
	}

	return &authorizer{key: key}, nil
}

type authorizationPayload struct {
	Version int               `json:"version"`
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Body    any               `json:"body,omitempty"`
	Headers map[string]string `json:"headers"`
}

// sign returns the authorization signature of a request.
func (a *authorizer) sign(method, reqURL string, body []byte, headers map[string]string) (string, error) {
	payload, err := canonicalPayload(method, reqURL, body, headers)
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256(payload)

	sig, err := ecdsa.SignASN1(rand.Reader, a.key, digest[:])
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %w", err)
	}

	return base64.StdEncoding.EncodeToString(sig), nil
}

// canonicalPayload encodes the signed request payload. The body is decoded into generic maps
// first so the encoder emits its keys in sorted order.
func canonicalPayload(method, reqURL string, body []byte, headers map[string]string) ([]byte, error) {
	p := authorizationPayload{
		Version: 1,
		Method:  method,
		URL:     reqURL,
		Headers: headers,
	}

	if len(body) > 0 {
		decoded, err := decodeGeneric(body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode request body: %w", err)
		}
		p.Body = decoded
	}

	// Marshal through a map so the top level keys are sorted as well.
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode authorization payload: %w", err)
	}

	generic, err := decodeGeneric(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode authorization payload: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err = enc.Encode(generic); err != nil {
		return nil, fmt.Errorf("failed to encode authorization payload: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// decodeGeneric decodes JSON into maps and slices, keeping numbers verbatim.
func decodeGeneric(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}
