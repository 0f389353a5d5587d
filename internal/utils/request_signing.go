package utils

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/mr-tron/base58"
)

// Headers carrying a signed request.
const (
	HeaderOwner     = "X-Journal-Owner"
	HeaderTimestamp = "X-Journal-Timestamp"
	HeaderNonce     = "X-Journal-Nonce"
	HeaderSignature = "X-Journal-Signature"
)

// MaxNonceLength bounds the nonce header.
const MaxNonceLength = 64

// CanonicalRequest is the message an owner signs to authenticate one request:
// METHOD, request URI, unix timestamp, nonce and the hex sha256 of the body,
// newline separated.
func CanonicalRequest(method, requestURI string, timestamp int64, nonce string, body []byte) []byte {
	sum := sha256.Sum256(body)
	return []byte(fmt.Sprintf("%s\n%s\n%d\n%s\n%s",
		strings.ToUpper(method), requestURI, timestamp, nonce, hex.EncodeToString(sum[:])))
}

// LoginMessage is the challenge an owner signs to obtain a session token.
func LoginMessage(owner string, timestamp int64) []byte {
	return []byte(fmt.Sprintf("journal-login:%s:%d", owner, timestamp))
}

// SignRequest signs the canonical form of a request and returns the base58 signature.
func SignRequest(priv ed25519.PrivateKey, method, requestURI string, timestamp int64, nonce string, body []byte) string {
	return base58.Encode(ed25519.Sign(priv, CanonicalRequest(method, requestURI, timestamp, nonce, body)))
}

// SignLogin signs a login challenge and returns the base58 signature.
func SignLogin(priv ed25519.PrivateKey, owner string, timestamp int64) string {
	return base58.Encode(ed25519.Sign(priv, LoginMessage(owner, timestamp)))
}

// DecodeSignature decodes a base58 ed25519 signature.
func DecodeSignature(s string) ([]byte, error) {
	sig, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid signature encoding: %w", err)
	}
	if len(sig) != ed25519.SignatureSize {
		return nil, fmt.Errorf("signature has %d bytes, want %d", len(sig), ed25519.SignatureSize)
	}
	return sig, nil
}

// WithinSkew reports whether the unix timestamp ts is no further than maxSkew from now.
func WithinSkew(ts int64, now time.Time, maxSkew time.Duration) bool {
	t := time.Unix(ts, 0)
	return !t.Before(now.Add(-maxSkew)) && !t.After(now.Add(maxSkew))
}
