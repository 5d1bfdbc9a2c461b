package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsDiacritics(t *testing.T) {
	assert.Equal(t, "Cafe", Normalize("Café"))
	assert.Equal(t, "acido", Normalize("ácido"))
	assert.Equal(t, "Leche Entera", Normalize("Leche Entera"))
	assert.Equal(t, "nino", Normalize("niño"))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Café con leche", "ácido", "ZANAHORIA", "", "  espárragos  ", "Melocotón nº1"}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)
	}
}

func TestCompareSpanishBaseSensitivity(t *testing.T) {
	names := []string{"Zanahoria", "ácido", "banana"}
	sort.Slice(names, func(i, j int) bool { return Compare(names[i], names[j]) < 0 })
	assert.Equal(t, []string{"ácido", "banana", "Zanahoria"}, names)
}

func TestCompareIgnoresCaseAndAccents(t *testing.T) {
	assert.Equal(t, 0, Compare("café", "CAFE"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"leche", "entera"}, Tokenize("  Leche   Entera "))
	assert.Empty(t, Tokenize("   "))
	assert.Empty(t, Tokenize(""))
}

func TestMatchesAllTokens(t *testing.T) {
	tokens := Tokenize("leche entera")

	assert.True(t, MatchesAllTokens("Leche Entera", tokens))
	assert.False(t, MatchesAllTokens("Leche Desnatada", tokens))
	assert.False(t, MatchesAllTokens("Café Leche", tokens))
}
