package store

import (
	"testing"

	"github.com/mghkill/burguer-saas/internal/domain"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCategoryAssignsFreshID(t *testing.T) {
	catalog := NewCatalogStore()

	a := catalog.AddCategory("Hambúrgueres")
	b := catalog.AddCategory("Hambúrgueres") // duplicate names are allowed

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, catalog.Categories(), 2)
}

func TestAddProductClearsPromotionalFlags(t *testing.T) {
	catalog := NewCatalogStore()
	category := catalog.AddCategory("Açaís")

	created := catalog.AddProduct(domain.Product{
		Name:        "Açaí 300ml",
		Price:       12.90,
		CategoryID:  category.ID,
		Type:        domain.ProductTypeAcai,
		IsFeatured:  true,
		IsPromotion: true,
	})

	assert.False(t, created.IsFeatured)
	assert.False(t, created.IsPromotion)
}

func TestSetFeaturedOverwritesBothFlags(t *testing.T) {
	catalog := NewCatalogStore()
	category := catalog.AddCategory("Combos")
	created := catalog.AddProduct(domain.Product{Name: "Combo Duplo", CategoryID: category.ID})

	promoted, err := catalog.SetFeatured(created.ID, true, true)
	require.NoError(t, err)
	assert.True(t, promoted.IsFeatured)
	assert.True(t, promoted.IsPromotion)

	demoted, err := catalog.SetFeatured(created.ID, false, false)
	require.NoError(t, err)
	assert.False(t, demoted.IsFeatured)
	assert.False(t, demoted.IsPromotion)

	_, err = catalog.SetFeatured(uuid.New(), true, false)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProductMissingIDIsInert(t *testing.T) {
	catalog := NewCatalogStore()
	category := catalog.AddCategory("Bebidas")
	catalog.AddProduct(domain.Product{Name: "Suco", CategoryID: category.ID})

	catalog.DeleteProduct(uuid.New())

	assert.Len(t, catalog.Products(), 1)
}

func TestSearchMatchesNameAndDescription(t *testing.T) {
	catalog := NewCatalogStore()
	Seed(catalog)

	byName := catalog.Search("burger", nil)
	require.Len(t, byName, 1)
	assert.Equal(t, "Burger Clássico", byName[0].Name)

	byDescription := catalog.Search("granola", nil)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Açaí Tradicional 500ml", byDescription[0].Name)

	assert.Empty(t, catalog.Search("pizza", nil))
}

func TestSeedLoadsSampleCatalog(t *testing.T) {
	catalog := NewCatalogStore()
	Seed(catalog)

	assert.Len(t, catalog.Categories(), 4)
	require.Len(t, catalog.Products(), 2)
	assert.Len(t, catalog.FeaturedProducts(), 2)
}

// Deleting a category removes the category and every product referencing it;
// products in other categories are untouched.
func TestProperty_CategoryDeletionCascades(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("cascade removes exactly the referencing products", prop.ForAll(
		func(inTarget int, inOther int) bool {
			catalog := NewCatalogStore()
			target := catalog.AddCategory("target")
			other := catalog.AddCategory("other")

			for i := 0; i < inTarget; i++ {
				catalog.AddProduct(domain.Product{Name: "t", CategoryID: target.ID})
			}
			for i := 0; i < inOther; i++ {
				catalog.AddProduct(domain.Product{Name: "o", CategoryID: other.ID})
			}

			catalog.DeleteCategory(target.ID)

			if len(catalog.Categories()) != 1 {
				return false
			}
			remaining := catalog.Products()
			if len(remaining) != inOther {
				return false
			}
			for _, p := range remaining {
				if p.CategoryID != other.ID {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 20),
		gen.IntRange(0, 20),
	))

	properties.TestingRun(t)
}
