package feishu

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Sign derives the per-request signature for a Feishu bot webhook.
//
// The scheme is the one the bot platform documents: the string
// "{timestamp}\n{secret}" is used as the HMAC-SHA256 key and the HMAC
// message is empty. The raw 32-byte digest is base64 encoded with the
// standard alphabet, padded, no truncation.
func Sign(secret string, timestamp int64) string {
	stringToSign := fmt.Sprintf("%d\n%s", timestamp, secret)
	h := hmac.New(sha256.New, []byte(stringToSign))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
