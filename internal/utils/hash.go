package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// HashHeader is the request header carrying the hex HMAC-SHA256 of the body.
const HashHeader = "HashSHA256"

// fingerprintSize is the BLAKE2b digest length, in bytes, of a fingerprint.
const fingerprintSize = 6

// Signer computes HMAC-SHA256 signatures of request bodies with a fixed key.
// A Signer with an empty key is disabled and signs nothing.
type Signer struct {
	hashKey []byte
}

// NewSigner returns a Signer for hashKey.
func NewSigner(hashKey string) *Signer {
	return &Signer{hashKey: []byte(hashKey)}
}

// Enabled reports whether a key is configured.
func (s *Signer) Enabled() bool {
	return s != nil && len(s.hashKey) > 0
}

// Sign returns the hex-encoded HMAC-SHA256 of data, or an empty string when
// the signer is disabled.
//
// Example usage:
//
//	signer := utils.NewSigner("my-secret-key")
//	req.SetHeader(utils.HashHeader, signer.Sign(body))
func (s *Signer) Sign(data []byte) string {
	if !s.Enabled() {
		return ""
	}
	return HashString(data, s.hashKey)
}

// HashString computes an HMAC-SHA256 digest of data under hashKey and
// returns it hex-encoded. A new HMAC instance is created on each call.
func HashString(data []byte, hashKey []byte) string {
	hasher := hmac.New(sha256.New, hashKey)
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// Fingerprint returns a short, non-reversible identifier of secret suitable
// for logs. Equal secrets produce equal fingerprints; the empty secret maps
// to "-".
func Fingerprint(secret string) string {
	if secret == "" {
		return "-"
	}
	h, _ := blake2b.New(fingerprintSize, nil)
	h.Write([]byte(secret))
	return hex.EncodeToString(h.Sum(nil))
}
