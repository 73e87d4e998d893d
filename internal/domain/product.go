package domain

import "github.com/google/uuid"

// ProductType classifies a catalog product.
type ProductType string

const (
	ProductTypeBurger ProductType = "burger"
	ProductTypeAcai   ProductType = "acai"
	ProductTypeDrink  ProductType = "drink"
	ProductTypeCombo  ProductType = "combo"
)

// ComponentCategory tags a product component by kind of ingredient.
type ComponentCategory string

const (
	ComponentBread     ComponentCategory = "bread"
	ComponentMeat      ComponentCategory = "meat"
	ComponentVegetable ComponentCategory = "vegetable"
	ComponentSauce     ComponentCategory = "sauce"
	ComponentCheese    ComponentCategory = "cheese"
	ComponentFruit     ComponentCategory = "fruit"
	ComponentTopping   ComponentCategory = "topping"
	ComponentSyrup     ComponentCategory = "syrup"
)

// ProductComponent is a named ingredient of a product. A removable component
// is included by default and may be stripped out at no price change; an
// optional component is an add-on priced at its listed delta. The model does
// not enforce mutual exclusivity between the two flags.
type ProductComponent struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Price       float64           `json:"price"`
	IsRemovable bool              `json:"is_removable"`
	IsOptional  bool              `json:"is_optional"`
	Category    ComponentCategory `json:"category"`
}

// Product represents an item in the catalog. CategoryID is a soft reference
// to Category.ID; integrity is only maintained by cascade-on-delete.
type Product struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	ImageURL    string             `json:"image_url"`
	CategoryID  uuid.UUID          `json:"category_id"`
	Combo       bool               `json:"combo"`
	IsPromotion bool               `json:"is_promotion"`
	IsFeatured  bool               `json:"is_featured"`
	Type        ProductType        `json:"type"`
	Components  []ProductComponent `json:"components"`
}

// Component returns the component with the given id, if present.
func (p Product) Component(id uuid.UUID) (ProductComponent, bool) {
	for _, c := range p.Components {
		if c.ID == id {
			return c, true
		}
	}
	return ProductComponent{}, false
}

// Category groups products; the set is flat and unordered.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
