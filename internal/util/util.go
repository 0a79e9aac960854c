package util

import (
	"crypto/rand"
	"log"
)

// Алфавит URL-safe, ровно 64 символа, чтобы выбор по модулю не давал смещения.
const slugAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// SlugLength задаёт длину публичного идентификатора признания.
const SlugLength = 10

// GenerateSlug создаёт случайный публичный идентификатор.
// Слаг — единственный ключ доступа к признанию, поэтому только crypto/rand.
func GenerateSlug() string {
	buf := make([]byte, SlugLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand на практике не возвращает ошибок; с предсказуемым
		// слагом продолжать нельзя
		log.Panicf("Не удалось получить случайные байты: %v", err)
	}
	for i, b := range buf {
		buf[i] = slugAlphabet[b%64]
	}
	return string(buf)
}
