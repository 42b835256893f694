package models

// Product is one entry of the menu catalog.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category" validate:"required"`
	Subcategory   string  `json:"subcategory,omitempty"`
	Price         float64 `json:"price" validate:"gte=0"`
	Image         string  `json:"image,omitempty"`
	FallbackImage string  `json:"fallbackImage,omitempty"`
}

// ProductUpdate carries a partial product edit; nil fields are untouched.
type ProductUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Subcategory   *string  `json:"subcategory,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Image         *string  `json:"image,omitempty"`
	FallbackImage *string  `json:"fallbackImage,omitempty"`
}

// ApplyTo merges the non-nil fields onto an existing product.
func (u *ProductUpdate) ApplyTo(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Subcategory != nil {
		p.Subcategory = *u.Subcategory
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.FallbackImage != nil {
		p.FallbackImage = *u.FallbackImage
	}
}

// Category groups menu products for display.
type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Catalog is the on-disk shape of the products file.
type Catalog struct {
	Categories map[string]Category `json:"categories,omitempty"`
	Products   []Product           `json:"products"`
}
