package api

import "github.com/JustinArce/MicroservicioAlmacen/internal/models"

// CreateProductRequest represents the request body for creating a product.
// @Description Request payload for creating a product
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100" example:"Monitor Curvo 27 pulgadas"`
	Description string   `json:"description" validate:"required,min=1,max=350" example:"Monitor gaming con resolución 4K y 144Hz de tasa de refresco."`
	Price       *float64 `json:"price" validate:"required,gt=0" example:"399.99"`
	Stock       *int     `json:"stock" validate:"required,gte=0,lte=2147483647" example:"75"`
	Category    *string  `json:"category" validate:"omitempty,max=50" example:"Electrónica"`
}

func (r CreateProductRequest) toModel() models.NewProduct {
	return models.NewProduct{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Stock:       *r.Stock,
		Category:    r.Category,
	}
}

// UpdateProductRequest represents the request body for updating a product.
// Only the fields present in the body are changed.
// @Description Request payload for a partial product update
type UpdateProductRequest struct {
	Name        models.Optional[string]  `json:"name" validate:"omitempty,min=1,max=100" swaggertype:"string" example:"Monitor Curvo 27\" Gen 2"`
	Description models.Optional[string]  `json:"description" validate:"omitempty,min=1,max=350" swaggertype:"string"`
	Price       models.Optional[float64] `json:"price" validate:"omitempty,gt=0" swaggertype:"number" example:"379.99"`
	Stock       models.Optional[int]     `json:"stock" validate:"omitempty,gte=0,lte=2147483647" swaggertype:"integer" example:"60"`
	Category    models.Optional[string]  `json:"category" validate:"omitempty,max=50" swaggertype:"string" example:"Monitores"`
}

// nullFields lists the required fields that were explicitly sent as null.
func (r UpdateProductRequest) nullFields() []string {
	var fields []string
	if r.Name.Null {
		fields = append(fields, "name")
	}
	if r.Description.Null {
		fields = append(fields, "description")
	}
	if r.Price.Null {
		fields = append(fields, "price")
	}
	if r.Stock.Null {
		fields = append(fields, "stock")
	}
	return fields
}

func (r UpdateProductRequest) toPatch() models.ProductPatch {
	return models.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Category:    r.Category,
	}
}

// ProductResponse represents a product resource in API responses.
// @Description Product resource
type ProductResponse struct {
	ID          int64   `json:"id" example:"1"`
	Name        string  `json:"name" example:"Monitor Curvo 27 pulgadas"`
	Description string  `json:"description" example:"Monitor gaming con resolución 4K y 144Hz de tasa de refresco."`
	Price       float64 `json:"price" example:"399.99"`
	Stock       int     `json:"stock" example:"75"`
	Category    *string `json:"category" example:"Electrónica"`
}

// ListProductsResponse wraps the product collection.
// @Description Every product ordered by id
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}
