package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/JustinArce/MicroservicioAlmacen/internal/repository"
	"github.com/JustinArce/MicroservicioAlmacen/internal/repository/gormrepo"
	"github.com/JustinArce/MicroservicioAlmacen/internal/service"
	"github.com/nhalm/pgxkit"
)

type productStore interface {
	service.ProductRepository
	InitializeSchema(ctx context.Context) error
}

// openStore picks the product store from the DATABASE_URL scheme. The
// returned func releases the underlying connections.
func openStore(ctx context.Context, databaseURL string) (productStore, func(), error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	switch u.Scheme {
	case "postgres", "postgresql":
		db := pgxkit.NewDB()
		if err := db.Connect(ctx, databaseURL); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		closeFn := func() { _ = db.Shutdown(context.Background()) }
		return repository.NewProductRepository(db), closeFn, nil

	case "sqlite":
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		if path == "" {
			return nil, nil, fmt.Errorf("sqlite DATABASE_URL needs a file path")
		}
		db, err := gormrepo.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get sqlite handle: %w", err)
		}
		closeFn := func() { _ = sqlDB.Close() }
		return gormrepo.NewProductRepository(db), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}
