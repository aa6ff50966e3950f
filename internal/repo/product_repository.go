// Package repo provides product storage for the dev API server, with an
// in-memory implementation for local runs and tests and a Postgres
// implementation for a persistent setup.
package repo

import (
	"errors"

	"github.com/rogerio-castellano/inventory-console/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
}
