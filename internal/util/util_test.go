package util_test

import (
	"strings"
	"testing"

	"github.com/onlyyes/ProposalService/internal/util"
	"github.com/stretchr/testify/assert"
)

// Тест генерации публичного идентификатора
func TestGenerateSlug(t *testing.T) {
	slug1 := util.GenerateSlug()
	slug2 := util.GenerateSlug()

	assert.Len(t, slug1, util.SlugLength)
	assert.Len(t, slug2, util.SlugLength)
	assert.NotEqual(t, slug1, slug2)
}

func TestGenerateSlug_Alphabet(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	for i := 0; i < 100; i++ {
		slug := util.GenerateSlug()
		for _, r := range slug {
			assert.True(t, strings.ContainsRune(alphabet, r),
				"символ %q вне URL-safe алфавита", r)
		}
	}
}

func TestGenerateSlug_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		slug := util.GenerateSlug()
		assert.False(t, seen[slug], "повторился слаг %s", slug)
		seen[slug] = true
	}
}
