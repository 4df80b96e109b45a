package models

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    *string
}

// NewProduct holds the fields of a product before the store assigns its ID.
type NewProduct struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    *string
}

// ProductPatch lists the fields of a partial update. Fields that are not Set
// keep their stored value.
type ProductPatch struct {
	Name        Optional[string]
	Description Optional[string]
	Price       Optional[float64]
	Stock       Optional[int]
	Category    Optional[string]
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Description.Set && !p.Price.Set && !p.Stock.Set && !p.Category.Set
}

// Apply returns a copy of the product with the patch merged over it. A null
// category clears it; nulls on required fields are ignored and must be
// rejected before the patch gets here.
func (p *Product) Apply(patch ProductPatch) *Product {
	merged := *p

	if patch.Name.Present() {
		merged.Name = patch.Name.Value
	}
	if patch.Description.Present() {
		merged.Description = patch.Description.Value
	}
	if patch.Price.Present() {
		merged.Price = patch.Price.Value
	}
	if patch.Stock.Present() {
		merged.Stock = patch.Stock.Value
	}
	if patch.Category.Set {
		merged.Category = patch.Category.Ptr()
	}

	return &merged
}
