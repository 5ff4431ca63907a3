package repositories

import (
	"fmt"
	"sync"

	"lapak/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository
// with the same name uniqueness the database index provides.
type MemoryProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[string]models.Product),
	}
}

// Create adds a new product, rejecting duplicate names.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.Name == product.Name {
			return fmt.Errorf("product name %s: %w", product.Name, ErrConflict)
		}
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

// GetByOwner returns all products listed by the given user.
func (r *MemoryProductRepository) GetByOwner(userID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0)
	for _, p := range r.products {
		if p.UserID == userID {
			products = append(products, p)
		}
	}
	return products, nil
}

// GetByNameExcluding returns a product holding the name other than the
// product with excludeID.
func (r *MemoryProductRepository) GetByNameExcluding(name, excludeID string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Name == name && p.ID != excludeID {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product with name %s: %w", name, ErrNotFound)
}

// Update replaces an existing product record.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	for _, p := range r.products {
		if p.Name == product.Name && p.ID != product.ID {
			return fmt.Errorf("product name %s: %w", product.Name, ErrConflict)
		}
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return nil
}
