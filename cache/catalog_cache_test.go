package catalog_cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ComputingVictor/Mercadona-Agent/models"
)

func TestSetBuildsIndexAndCategories(t *testing.T) {
	Set([]models.Product{
		{Name: "Zanahoria", Category: "Verduras", MainImageURL: "img"},
		{Name: "Leche Entera", Category: "Lácteos", MainImageURL: "img"},
		{Name: "Leche Desnatada", Category: "Lácteos", MainImageURL: "img"},
		{Name: "ácido cítrico", Category: "Despensa", MainImageURL: "img"},
	})

	assert.Equal(t, 4, Count())

	p, ok := ByName("Leche Entera")
	require.True(t, ok)
	assert.Equal(t, "Lácteos", p.Category)

	_, ok = ByName("No Existe")
	assert.False(t, ok)

	cats := Categories()
	require.Len(t, cats, 3)
	// Spanish base-sensitivity order, accents ignored
	assert.Equal(t, "Despensa", cats[0].Name)
	assert.Equal(t, "Lácteos", cats[1].Name)
	assert.Equal(t, "Verduras", cats[2].Name)
	assert.Equal(t, 2, cats[1].ProductCount)
}

func TestSetKeepsFirstOnDuplicateName(t *testing.T) {
	Set([]models.Product{
		{Name: "banana", Category: "Frutas", Price: "1,35 €", MainImageURL: "img"},
		{Name: "banana", Category: "Frutas", Price: "9,99 €", MainImageURL: "img"},
	})

	p, ok := ByName("banana")
	require.True(t, ok)
	assert.Equal(t, "1,35 €", p.Price)
}
