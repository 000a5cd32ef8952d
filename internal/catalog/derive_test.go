package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestCategoryBase(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{"single word", "Dramas", "Dramas"},
		{"stops at space", "Dramas internacionais", "Dramas"},
		{"stops at comma", "Comédias, Dramas", "Comédias"},
		{"stops at hyphen", "Sci-Fi & Fantasy", "Sci"},
		{"accented lead", "Ação e aventura", "Ação"},
		{"uppercase accents", "ÉPICOS", "ÉPICOS"},
		{"decomposed accent", "Come\u0301dias", "Com\u00e9dias"},
		{"digit lead", "3D Animation", ""},
		{"punctuation lead", "(Legendado) Dramas", ""},
		{"space lead", " Dramas", ""},
		{"empty", "", ""},
		{"outside latin-1", "Œuvres", ""},
		{"multiplication sign stops", "A×B", "A"},
		{"invalid utf8", "Ab\xffcd", "Ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryBase(tt.category))
		})
	}
}

func TestCategoryBase_IsPrefix(t *testing.T) {
	inputs := []string{
		"Dramas", "Comédias românticas", "Séries de TV", "Anime: Japão",
		"1990s", "", "É", "Come\u0301dia", "Stand-up", "Documentários, Docuséries",
	}
	for _, in := range inputs {
		in = norm.NFC.String(in)
		base := CategoryBase(in)
		assert.True(t, strings.HasPrefix(in, base), "base %q must prefix %q", base, in)
	}
}

func TestDerive(t *testing.T) {
	titles := []Title{
		{Category: "Dramas internacionais"},
		{Category: ""},
		{Category: "Reality TV"},
	}
	Derive(titles)

	assert.Equal(t, "Dramas", titles[0].CategoryBase)
	assert.Equal(t, "", titles[1].CategoryBase)
	assert.Equal(t, "Reality", titles[2].CategoryBase)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "comedias romanticas", Fold("  Comédias  Românticas"))
	assert.Equal(t, "america do sul", Fold("América do Sul"))
	assert.Equal(t, "", Fold(""))
}

func TestSplitCountries(t *testing.T) {
	assert.Equal(t, []string{"Brazil", "France", "Japan"}, SplitCountries("Brazil, France, Japan"))
	assert.Equal(t, []string{"Brazil"}, SplitCountries("Brazil"))
	assert.Equal(t, []string{"Brazil,France"}, SplitCountries("Brazil,France"), "only \", \" separates")
}
