package repositories

import "lapak/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	// GetByOwner returns every product listed by the given user.
	GetByOwner(userID string) ([]models.Product, error)
	// GetByNameExcluding finds a product holding the given name other than
	// the product with excludeID.
	GetByNameExcluding(name, excludeID string) (*models.Product, error)
	Update(product *models.Product) error
	Delete(id string) error
}
