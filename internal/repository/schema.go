package repository

import (
	"context"
	"fmt"
)

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
	id          SERIAL PRIMARY KEY,
	name        VARCHAR(100) NOT NULL,
	description VARCHAR(350) NOT NULL,
	price       DOUBLE PRECISION NOT NULL CHECK (price > 0),
	stock       INTEGER NOT NULL CHECK (stock >= 0),
	category    VARCHAR(50)
)`

// InitializeSchema creates the products table if it does not exist yet.
func (r *ProductRepository) InitializeSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createProductsTable); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}
	return nil
}
