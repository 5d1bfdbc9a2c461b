package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ComputingVictor/Mercadona-Agent/models"
)

func TestExportShoppingListCSV(t *testing.T) {
	entries := []models.ShoppingListEntry{
		{Product: models.Product{Name: "Leche Entera", Price: "1,05 €"}, Quantity: 2},
		{Product: models.Product{Name: "banana", Price: "precio no disponible"}, Quantity: 1},
	}

	data, err := ExportShoppingListCSV(entries)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Producto;Cantidad;Precio unitario;Subtotal", lines[0])
	assert.Equal(t, "Leche Entera;2;1,05 €;2,10 €", lines[1])
	assert.Equal(t, "banana;1;0,00 €;0,00 €", lines[2])
	assert.Equal(t, "Total;;;2,10 €", lines[3])
}

func TestExportShoppingListCSVEmpty(t *testing.T) {
	data, err := ExportShoppingListCSV(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Total;;;0,00 €", lines[1])
}

func TestExportShoppingListPDFProducesOutput(t *testing.T) {
	entries := []models.ShoppingListEntry{
		{Product: models.Product{Name: "Zanahoria", Price: "0,89 €"}, Quantity: 3},
	}

	buf, err := ExportShoppingListPDF(entries)
	require.NoError(t, err)
	assert.Positive(t, buf.Len())
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
}
