package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// GenerateSignature вычисляет подпись платёжного результата:
// HMAC-SHA256(secret, orderID + "|" + paymentID), hex.
// Формат строго задан протоколом чекаута Razorpay.
func GenerateSignature(orderID, paymentID, secretKey string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature проверяет подпись, пришедшую от виджета.
// Сравнение через hmac.Equal — за константное время.
func VerifySignature(orderID, paymentID, receivedSignature, secretKey string) bool {
	expected := GenerateSignature(orderID, paymentID, secretKey)
	return hmac.Equal([]byte(expected), []byte(receivedSignature))
}
