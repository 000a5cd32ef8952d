package catalog

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Testdata(t *testing.T) {
	data, err := os.ReadFile("testdata/titles.csv")
	require.NoError(t, err)

	titles, err := ParseBytes(data)
	require.NoError(t, err)
	require.Len(t, titles, 8)

	first := titles[0]
	assert.Equal(t, "Movie", first.Type)
	assert.Equal(t, "Brazil", first.Country)
	assert.Equal(t, "América do Sul", first.Continent)
	assert.Equal(t, "Dramas, Filmes internacionais", first.Category)
	assert.Equal(t, "Dramas", first.CategoryBase)

	assert.Equal(t, "Brazil, France", titles[2].Country)
	assert.Equal(t, "Séries", titles[1].CategoryBase)

	last := titles[7]
	assert.Equal(t, "Argentina", last.Country)
	assert.Empty(t, last.Category)
	assert.Empty(t, last.CategoryBase)
}

func TestParse_EnglishHeaders(t *testing.T) {
	input := "Type,Country,Continent,Category\nMovie,Japan,Asia,Anime Features\n"

	titles, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, Title{
		Type:         "Movie",
		Country:      "Japan",
		Continent:    "Asia",
		Category:     "Anime Features",
		CategoryBase: "Anime",
	}, titles[0])
}

func TestParse_BOMAndPaddedHeader(t *testing.T) {
	input := "\xEF\xBB\xBF tipo , pais,continente,categoria\nMovie,Brazil,América do Sul,Dramas\n"

	titles, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, "Movie", titles[0].Type)
}

func TestParse_MissingColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("tipo,pais\nMovie,Brazil\n"))
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "continente")
	assert.Contains(t, err.Error(), "categoria")
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestParse_HeaderOnly(t *testing.T) {
	titles, err := Parse(strings.NewReader("tipo,pais,continente,categoria\n"))
	require.NoError(t, err)
	assert.Empty(t, titles)
}

func TestParse_ShortRow(t *testing.T) {
	titles, err := Parse(strings.NewReader("tipo,pais,continente,categoria\nMovie,Brazil\n"))
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, "Brazil", titles[0].Country)
	assert.Empty(t, titles[0].Continent)
	assert.Empty(t, titles[0].CategoryBase)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(strings.NewReader("tipo,pais,continente,categoria\nMovie,\"Brazil,Europa,Dramas\n"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParse_NormalizesCategory(t *testing.T) {
	titles, err := Parse(strings.NewReader("tipo,pais,continente,categoria\nMovie,Brazil,América do Sul,Come\u0301dias\n"))
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, "Com\u00e9dias", titles[0].Category)
	assert.True(t, strings.HasPrefix(titles[0].Category, titles[0].CategoryBase))
}
