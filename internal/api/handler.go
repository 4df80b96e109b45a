package api

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strconv"

	"github.com/JustinArce/MicroservicioAlmacen/internal/apperrors"
	"github.com/JustinArce/MicroservicioAlmacen/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/nhalm/canonlog"
)

// ProductService defines only the methods the API layer needs from the product service.
type ProductService interface {
	CreateProduct(ctx context.Context, p models.NewProduct) (*models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type Handler struct {
	productSvc ProductService
	rootPath   string
}

// NewHandler builds the HTTP handlers. rootPath is the prefix the service is
// mounted under behind a proxy; it only changes the docs redirect.
func NewHandler(productSvc ProductService, rootPath string) *Handler {
	return &Handler{
		productSvc: productSvc,
		rootPath:   rootPath,
	}
}

// RedirectToDocs sends the root path to the interactive documentation.
func (h *Handler) RedirectToDocs(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.rootPath+"/docs/index.html", http.StatusTemporaryRedirect)
}

const redocPage = `<!DOCTYPE html>
<html>
<head>
<title>Inventory API - ReDoc</title>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
<redoc spec-url="%s"></redoc>
<script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
</body>
</html>
`

// ReDoc renders the same document the Swagger UI serves.
func (h *Handler) ReDoc(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, redocPage, html.EscapeString(h.rootPath+"/docs/doc.json"))
}

// CreateProduct godoc
// @Summary Create a product
// @Description Stores a new product and returns it with the id assigned by the database.
// @Tags products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product to create"
// @Success 201 {object} ProductResponse
// @Failure 422 {object} ErrorResponse
// @Router /products [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := ValidateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_name": req.Name,
	})

	product, err := h.productSvc.CreateProduct(r.Context(), req.toModel())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_id": product.ID,
	})

	Created(w, convertToProductResponse(product))
}

// ListProducts godoc
// @Summary List products
// @Description Returns every product ordered by id.
// @Tags products
// @Produce json
// @Success 200 {object} ListProductsResponse
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.ListProducts(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = convertToProductResponse(p)
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_count": len(responses),
	})

	Success(w, ListProductsResponse{Products: responses})
}

// GetProduct godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToProductResponse(product))
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Partial update: only the fields present in the body change.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product id"
// @Param product body UpdateProductRequest true "Fields to change"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /products/{id} [put]
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	var req UpdateProductRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := validateUpdateRequest(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), id, req.toPatch())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToProductResponse(product))
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /products/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := h.productSvc.DeleteProduct(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	NoContent(w)
}

// productID parses the {id} URL parameter and records it on the request log.
func productID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("id", "id must be an integer")
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_id": id,
	})
	return id, nil
}

func convertToProductResponse(product *models.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Category:    product.Category,
	}
}
