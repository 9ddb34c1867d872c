package notation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapBoundary(t *testing.T) {
	exact := strings.Repeat("x", 20)
	assert.Equal(t, []string{exact}, Wrap(exact, LabelWidth))

	// 21 characters, the only space at position 11
	label := "abcdefghij klmnopqrst"
	assert.Equal(t, []string{"abcdefghij", "klmnopqrst"}, Wrap(label, LabelWidth))
}

func TestWrapGreedy(t *testing.T) {
	got := Wrap("the quick brown fox jumps over the lazy dog", 10)
	assert.Equal(t, []string{"the quick", "brown fox", "jumps over", "the lazy", "dog"}, got)
}

func TestWrapLongWordStaysWhole(t *testing.T) {
	got := Wrap("a supercalifragilisticexpialidocious b", 10)
	assert.Equal(t, []string{"a", "supercalifragilisticexpialidocious", "b"}, got)
}

func TestWrapCountsRunes(t *testing.T) {
	got := Wrap("ééééé ééééé", 11)
	assert.Equal(t, []string{"ééééé ééééé"}, got)
}

func TestWrapEmpty(t *testing.T) {
	assert.Equal(t, []string{""}, Wrap("   ", LabelWidth))
}

func TestFormatLabelPlain(t *testing.T) {
	assert.Equal(t, "Forgot Password", FormatLabel("Forgot Password", LabelWidth, false))
	assert.Equal(t, `Users can reset\ntheir password by\nemail`,
		FormatLabel("Users can reset their password by email", LabelWidth, false))
	assert.Equal(t, "a|b", FormatLabel("a|b", LabelWidth, false))
}

func TestFormatLabelRecord(t *testing.T) {
	got := FormatLabel("Customer|Forename;Surname;Email|Save()", LabelWidth, true)
	assert.Equal(t, `Customer|Forename\nSurname\nEmail|Save()`, got)
}

func TestFormatLabelRecordEscapes(t *testing.T) {
	got := FormatLabel("Map<K, V>|+put(k: K)", LabelWidth, true)
	assert.Equal(t, `Map\<K,\ V\>|+put(k:\ K)`, got)

	got = FormatLabel(`Set\{T\}`, LabelWidth, true)
	assert.Equal(t, `Set\{T\}`, got)
}

func TestFormatLabelRecordWrapsCompartments(t *testing.T) {
	got := FormatLabel("Shopping Cart Service Manager|items", LabelWidth, true)
	assert.Equal(t, `Shopping\ Cart\nService\ Manager|items`, got)
}
