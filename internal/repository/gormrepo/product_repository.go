// Package gormrepo stores products through GORM. It backs local development
// on SQLite and the HTTP integration tests.
package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/JustinArce/MicroservicioAlmacen/internal/models"
	"github.com/JustinArce/MicroservicioAlmacen/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// productRow is the GORM model for the products table.
type productRow struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"size:100;not null"`
	Description string  `gorm:"size:350;not null"`
	Price       float64 `gorm:"not null"`
	Stock       int     `gorm:"not null"`
	Category    *string `gorm:"size:50"`
}

func (productRow) TableName() string {
	return "products"
}

func (r *productRow) toModel() *models.Product {
	return &models.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Category:    r.Category,
	}
}

// ProductRepository is a GORM implementation of the product store.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// OpenSQLite opens a SQLite database at dsn with GORM's logger silenced;
// request logging happens in the HTTP layer.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", dsn, err)
	}
	return db, nil
}

// InitializeSchema creates the products table if it does not exist yet.
func (r *ProductRepository) InitializeSchema(ctx context.Context) error {
	m := r.db.WithContext(ctx).Migrator()
	if m.HasTable(&productRow{}) {
		return nil
	}
	if err := m.CreateTable(&productRow{}); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}
	return nil
}

// Insert creates a product and returns it with the ID assigned by the database.
func (r *ProductRepository) Insert(ctx context.Context, p models.NewProduct) (*models.Product, error) {
	row := productRow{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return row.toModel(), nil
}

// GetByID retrieves a single product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var row productRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return row.toModel(), nil
}

// ListAll retrieves every product ordered by ID.
func (r *ProductRepository) ListAll(ctx context.Context) ([]*models.Product, error) {
	var rows []productRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]*models.Product, len(rows))
	for i := range rows {
		products[i] = rows[i].toModel()
	}
	return products, nil
}

// UpdateFields merges the patch over the stored row inside one transaction.
func (r *ProductRepository) UpdateFields(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error) {
	var updated *models.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row productRow
		if err := tx.First(&row, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		merged := row.toModel().Apply(patch)
		row.Name = merged.Name
		row.Description = merged.Description
		row.Price = merged.Price
		row.Stock = merged.Stock
		row.Category = merged.Category

		// Save writes zero values too, so stock 0 and a cleared category persist.
		if err := tx.Save(&row).Error; err != nil {
			return err
		}

		updated = row.toModel()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	return updated, nil
}

// DeleteByID removes a product and reports whether a row was deleted.
func (r *ProductRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&productRow{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete product %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
