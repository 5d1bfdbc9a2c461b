package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Category,name,subtitle,price,discount_price,main_image_url,secondary_image_url
Lácteos,Leche Entera,Botella 1.5 L,"1,05 €",,https://img.example/leche.jpg,https://img.example/leche-macros.jpg
Lácteos,Leche Desnatada,Botella 1.5 L,"1,00 €",,https://img.example/desnatada.jpg,
,Sin Categoría,,"1,00 €",,https://img.example/x.jpg,
Frutas,,,"0,50 €",,https://img.example/y.jpg,
Frutas,banana,,"1,35 €",,,
Verduras,Zanahoria,Bolsa 1 kg,"0,89 €","0,75 €",https://img.example/zanahoria.jpg,
`

func TestParseCatalogFiltersMalformedRows(t *testing.T) {
	products, err := ParseCatalog(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	// rows without category, name or main image are dropped at the boundary
	require.Len(t, products, 3)
	assert.Equal(t, "Leche Entera", products[0].Name)
	assert.Equal(t, "Leche Desnatada", products[1].Name)
	assert.Equal(t, "Zanahoria", products[2].Name)
}

func TestParseCatalogCarriesOptionalColumns(t *testing.T) {
	products, err := ParseCatalog(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	leche := products[0]
	assert.Equal(t, "Botella 1.5 L", leche.Subtitle)
	assert.Equal(t, "1,05 €", leche.Price)
	assert.True(t, leche.HasMacros())

	zanahoria := products[2]
	assert.Equal(t, "0,75 €", zanahoria.DiscountPrice)
	assert.False(t, zanahoria.HasMacros())
}

func TestParseCatalogEmptyIsTerminal(t *testing.T) {
	onlyHeader := "Category,name,main_image_url\n"
	_, err := ParseCatalog(strings.NewReader(onlyHeader))
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	onlyBadRows := "Category,name,main_image_url\n,,\nFrutas,,\n"
	_, err = ParseCatalog(strings.NewReader(onlyBadRows))
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestParseCatalogNoHeader(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader(""))
	assert.Error(t, err)
}

// brokenReader serves its buffered data and then fails every read with
// the same error, like an HTTP body whose connection dropped mid-stream.
type brokenReader struct {
	data *strings.Reader
	err  error
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if n, _ := r.data.Read(p); n > 0 {
		return n, nil
	}
	return 0, r.err
}

func TestParseCatalogAbortsOnReadError(t *testing.T) {
	partial := "Category,name,main_image_url\n" +
		"Lácteos,Leche Entera,https://img.example/leche.jpg\n"
	src := &brokenReader{
		data: strings.NewReader(partial),
		err:  errors.New("connection reset by peer"),
	}

	done := make(chan error, 1)
	go func() {
		_, err := ParseCatalog(src)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "connection reset by peer")
	case <-time.After(2 * time.Second):
		t.Fatal("ParseCatalog did not return on a persistent read error")
	}
}

func TestParseCatalogToleratesShortRecords(t *testing.T) {
	csv := "Category,name,subtitle,price,discount_price,main_image_url,secondary_image_url\n" +
		"Frutas,banana,,\"1,35 €\",,https://img.example/banana.jpg\n"
	products, err := ParseCatalog(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "banana", products[0].Name)
	assert.Empty(t, products[0].SecondaryImageURL)
}
