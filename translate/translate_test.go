package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
)

func TestNewPrinter(t *testing.T) {
	assert := assert.New(t)

	en := NewPrinter("en-US")
	assert.Equal("offset 3: cannot tokenize '&'", en.Sprintf("offset %d: cannot tokenize %q", 3, '&'))

	ja := NewPrinter("ja-JP")
	assert.Equal("3文字目: '&'はトークナイズできません", ja.Sprintf("offset %d: cannot tokenize %q", 3, '&'))
	assert.Equal("引数の個数がただしくありません", ja.Sprintf("invalid number of arguments"))
}

func TestNewPrinter_Fallback(t *testing.T) {
	assert := assert.New(t)

	for _, locales := range [][]string{
		nil,
		{"fr-FR"},
		{"not a locale"},
	} {
		p := NewPrinter(locales...)
		assert.Equal("invalid number of arguments", p.Sprintf("invalid number of arguments"), locales)
	}
}

func TestCatalog(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(language.AmericanEnglish, Supported[0])
	for key := range japanese {
		assert.NotEmpty(From(key), key)
	}
}
