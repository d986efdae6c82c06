package feishu

import (
	"encoding/base64"
	"testing"
)

func TestSignGoldenVector(t *testing.T) {
	// Calculated independently in Python:
	//   hmac.new(b"1700000000\ntopsecret", digestmod=hashlib.sha256)
	expected := "YYwhpW0DojOMeEoJw+vpuvaw1aHMCx3kPEmfSlnJ6rA="

	got := Sign("topsecret", 1700000000)

	if got != expected {
		t.Errorf("Sign() = %v, want %v", got, expected)
	}
}

func TestSignDeterministic(t *testing.T) {
	a := Sign("topsecret", 1700000000)
	b := Sign("topsecret", 1700000000)
	if a != b {
		t.Errorf("Sign() not deterministic: %v != %v", a, b)
	}
}

func TestSignInputSensitivity(t *testing.T) {
	base := Sign("topsecret", 1700000000)

	if got := Sign("topsecret", 1700000001); got == base {
		t.Error("changing timestamp did not change signature")
	}
	if got := Sign("topsecreT", 1700000000); got == base {
		t.Error("changing secret did not change signature")
	}
}

func TestSignDigestLength(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(Sign("topsecret", 1700000000))
	if err != nil {
		t.Fatalf("signature is not valid base64: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("decoded digest length = %d, want 32", len(raw))
	}
}
