package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^OM-[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := GenerateOrderNumber()
		assert.Regexp(t, pattern, n)
		assert.False(t, seen[n], "duplicate order number %s", n)
		seen[n] = true
	}
}

func TestGenerateLoanID(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^TSTT-ML-2026-[0-9A-F]{8}$`), GenerateLoanID(2026))
}

func TestSignature(t *testing.T) {
	payload := []byte(`{"loanId":"TSTT-ML-2026-ABCD1234","status":"DISBURSED"}`)
	secret := "webhook-secret"

	sig := GenerateSignature(payload, secret)
	assert.True(t, VerifySignature(payload, sig, secret))
	assert.False(t, VerifySignature(payload, sig, "other-secret"))
	assert.False(t, VerifySignature([]byte("tampered"), sig, secret))
}
