package store

import (
	"github.com/mghkill/burguer-saas/internal/domain"

	"github.com/google/uuid"
)

// Seed loads the built-in sample catalog: four categories, with the burger
// and açaí categories populated. This is the only initial state the system
// has and it is rebuilt on every start.
func Seed(catalog CatalogStore) {
	burgers := catalog.AddCategory("Hambúrgueres")
	acais := catalog.AddCategory("Açaís")
	catalog.AddCategory("Combos")
	catalog.AddCategory("Bebidas")

	burger := catalog.AddProduct(domain.Product{
		Name:        "Burger Clássico",
		Description: "Hambúrguer de carne bovina, queijo cheddar, alface, tomate e molho especial.",
		Price:       25.90,
		ImageURL:    "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg",
		CategoryID:  burgers.ID,
		Type:        domain.ProductTypeBurger,
		Components: []domain.ProductComponent{
			component("Pão Brioche", 0, false, false, domain.ComponentBread),
			component("Hambúrguer 200g", 0, false, false, domain.ComponentMeat),
			component("Queijo Cheddar", 0, true, true, domain.ComponentCheese),
			component("Alface", 0, true, false, domain.ComponentVegetable),
			component("Tomate", 0, true, false, domain.ComponentVegetable),
			component("Molho Especial", 0, true, false, domain.ComponentSauce),
			component("Bacon", 4.00, false, true, domain.ComponentMeat),
			component("Ovo", 3.00, false, true, domain.ComponentMeat),
			component("Cebola Caramelizada", 3.00, false, true, domain.ComponentVegetable),
		},
	})

	acai := catalog.AddProduct(domain.Product{
		Name:        "Açaí Tradicional 500ml",
		Description: "Açaí puro, banana, granola e leite condensado.",
		Price:       18.90,
		ImageURL:    "https://images.pexels.com/photos/5946642/pexels-photo-5946642.jpeg",
		CategoryID:  acais.ID,
		Type:        domain.ProductTypeAcai,
		Components: []domain.ProductComponent{
			component("Açaí", 0, false, false, domain.ComponentFruit),
			component("Banana", 0, true, false, domain.ComponentFruit),
			component("Granola", 0, true, false, domain.ComponentTopping),
			component("Leite Condensado", 0, true, false, domain.ComponentSyrup),
			component("Morango", 3.00, false, true, domain.ComponentFruit),
			component("Kiwi", 4.00, false, true, domain.ComponentFruit),
			component("Nutella", 5.00, false, true, domain.ComponentTopping),
		},
	})

	// Both sample products ship featured.
	catalog.SetFeatured(burger.ID, true, false)
	catalog.SetFeatured(acai.ID, true, false)
}

func component(name string, price float64, removable, optional bool, category domain.ComponentCategory) domain.ProductComponent {
	return domain.ProductComponent{
		ID:          uuid.New(),
		Name:        name,
		Price:       price,
		IsRemovable: removable,
		IsOptional:  optional,
		Category:    category,
	}
}
