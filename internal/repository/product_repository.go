package repository

import (
	"context"
	"fmt"

	"github.com/JustinArce/MicroservicioAlmacen/internal/models"
	"github.com/jackc/pgx/v5"
)

const productColumns = "id, name, description, price, stock, category"

// productRow is a stored row of the products table.
type productRow struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    *string
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

// ProductRepository stores products in PostgreSQL.
type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Insert(ctx context.Context, p models.NewProduct) (*models.Product, error) {
	var row *productRow
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		row, err = scanProduct(tx.QueryRow(ctx,
			`INSERT INTO products (name, description, price, stock, category)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+productColumns,
			p.Name, p.Description, p.Price, p.Stock, p.Category,
		))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	return row.toModel(), nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	row, err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]*models.Product, 0)
	for rows.Next() {
		row, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, row.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

// UpdateFields locks the row, merges the patch over it and writes every
// column back in a single transaction.
func (r *ProductRepository) UpdateFields(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error) {
	var updated *models.Product
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		current, err := scanProduct(tx.QueryRow(ctx,
			`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return err
		}

		merged := current.toModel().Apply(patch)
		row, err := scanProduct(tx.QueryRow(ctx,
			`UPDATE products
			SET name = $2, description = $3, price = $4, stock = $5, category = $6
			WHERE id = $1
			RETURNING `+productColumns,
			id, merged.Name, merged.Description, merged.Price, merged.Stock, merged.Category,
		))
		if err != nil {
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

func (r *ProductRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete product %d: %w", id, err)
	}

	return deleted, nil
}
