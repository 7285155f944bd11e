// Package retell adapts Retell webhook requests: signature verification over
// the raw body and extraction of the custom-function arguments.
package retell

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader is the request header carrying Retell's signature over the
// raw request body.
const SignatureHeader = "X-Retell-Signature"

// VerifySignature checks signature against the HMAC-SHA256 hex digest of
// rawBody keyed with the API key. Comparison is constant-time.
func VerifySignature(rawBody []byte, apiKey, signature string) bool {
	if apiKey == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(apiKey))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign computes the signature Retell would send for rawBody. Used by the
// manual smoke-test tooling and tests.
func Sign(rawBody []byte, apiKey string) string {
	mac := hmac.New(sha256.New, []byte(apiKey))
	mac.Write(rawBody)
	return hex.EncodeToString(mac.Sum(nil))
}
