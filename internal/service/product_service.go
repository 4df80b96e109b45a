package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/JustinArce/MicroservicioAlmacen/internal/apperrors"
	"github.com/JustinArce/MicroservicioAlmacen/internal/models"
	"github.com/JustinArce/MicroservicioAlmacen/internal/repository"
)

const productResource = "product"

type ProductRepository interface {
	Insert(ctx context.Context, p models.NewProduct) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	ListAll(ctx context.Context) ([]*models.Product, error)
	UpdateFields(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) CreateProduct(ctx context.Context, p models.NewProduct) (*models.Product, error) {
	// Structural validation (required fields, lengths, signs) is handled by the API layer
	return s.repo.Insert(ctx, p)
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, id)
	}

	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.repo.ListAll(ctx)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, id)
	}
	if patch.IsEmpty() {
		return current, nil
	}

	product, err := s.repo.UpdateFields(ctx, id, patch)
	if err != nil {
		// The row can disappear between the lookup and the update.
		return nil, notFoundOr(err, id)
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return notFoundOr(err, id)
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError(productResource, strconv.FormatInt(id, 10))
	}

	return nil
}

func notFoundOr(err error, id int64) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFoundError(productResource, strconv.FormatInt(id, 10))
	}
	return err
}
