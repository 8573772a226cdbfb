package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSignatureService_SignAndVerify(t *testing.T) {
	svc := NewHMACSignatureService()
	secretKey := "my-secret-key"
	payload := "order_9A33XWu170gUtm|pay_29QQoUBi66xm2f"

	signature := svc.Sign(secretKey, payload)

	// Should be lowercase hex
	assert.Regexp(t, `^[0-9a-f]{64}$`, signature, "signature should be 64-char lowercase hex (SHA-256)")

	// Verify with correct key
	assert.True(t, svc.Verify(secretKey, payload, signature))
}

func TestHMACSignatureService_VerifyFails_WrongKey(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := "order_abc|pay_def"

	signature := svc.Sign("correct-key", payload)
	assert.False(t, svc.Verify("wrong-key", payload, signature))
}

func TestHMACSignatureService_VerifyFails_WrongPayload(t *testing.T) {
	svc := NewHMACSignatureService()
	secretKey := "my-key"

	signature := svc.Sign(secretKey, "order_abc|pay_def")
	assert.False(t, svc.Verify(secretKey, "order_abc|pay_xyz", signature))
}

func TestHMACSignatureService_VerifyFails_TamperedSignature(t *testing.T) {
	svc := NewHMACSignatureService()
	secretKey := "my-key"
	payload := "order_abc|pay_def"

	signature := svc.Sign(secretKey, payload)

	// Flip a single character
	tampered := []byte(signature)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}
	assert.False(t, svc.Verify(secretKey, payload, string(tampered)))
}

func TestHMACSignatureService_DeterministicSign(t *testing.T) {
	svc := NewHMACSignatureService()

	sig1 := svc.Sign("key", "order_1|pay_1")
	sig2 := svc.Sign("key", "order_1|pay_1")

	assert.Equal(t, sig1, sig2, "same key+payload should produce same signature")
}

func TestHMACSignatureService_DistinctInputsDistinctSignatures(t *testing.T) {
	svc := NewHMACSignatureService()

	base := svc.Sign("key", svc.BuildConfirmationPayload("order_1", "pay_1"))

	assert.NotEqual(t, base, svc.Sign("key", svc.BuildConfirmationPayload("order_2", "pay_1")))
	assert.NotEqual(t, base, svc.Sign("key", svc.BuildConfirmationPayload("order_1", "pay_2")))
	assert.NotEqual(t, base, svc.Sign("other-key", svc.BuildConfirmationPayload("order_1", "pay_1")))
}

func TestHMACSignatureService_BuildConfirmationPayload(t *testing.T) {
	svc := NewHMACSignatureService()

	result := svc.BuildConfirmationPayload("order_9A33XWu170gUtm", "pay_29QQoUBi66xm2f")
	assert.Equal(t, "order_9A33XWu170gUtm|pay_29QQoUBi66xm2f", result)
}
