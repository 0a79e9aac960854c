package payment_test

import (
	"testing"

	"github.com/onlyyes/ProposalService/internal/payment"
	"github.com/stretchr/testify/assert"
)

func TestVerifySignature_Valid(t *testing.T) {
	secret := "test-secret"
	sig := payment.GenerateSignature("order_123", "pay_456", secret)

	assert.True(t, payment.VerifySignature("order_123", "pay_456", sig, secret))
}

// Любое искажение тройки {orderID, paymentID, signature} ломает проверку
func TestVerifySignature_Tampered(t *testing.T) {
	secret := "test-secret"
	sig := payment.GenerateSignature("order_123", "pay_456", secret)

	assert.False(t, payment.VerifySignature("order_999", "pay_456", sig, secret))
	assert.False(t, payment.VerifySignature("order_123", "pay_999", sig, secret))
	assert.False(t, payment.VerifySignature("order_123", "pay_456", sig+"ff", secret))
	assert.False(t, payment.VerifySignature("order_123", "pay_456", "", secret))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	sig := payment.GenerateSignature("order_123", "pay_456", "secret-one")

	assert.False(t, payment.VerifySignature("order_123", "pay_456", sig, "secret-two"))
}

func TestGenerateSignature_Deterministic(t *testing.T) {
	first := payment.GenerateSignature("order_abc", "pay_def", "s")
	second := payment.GenerateSignature("order_abc", "pay_def", "s")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex от SHA-256
}
