package services

import (
	"errors"
	"log"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/pkg/events"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher events.Publisher // nil disables eventing
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, publisher events.Publisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateProduct creates a new product. A name held by any existing product is
// a conflict.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return ErrProductExists
		}
		return err
	}
	s.publish(events.ProductCreated, product)
	return nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductsByOwner retrieves all products listed by the given user.
func (s *ProductService) GetProductsByOwner(userID string) ([]models.Product, error) {
	return s.repo.GetByOwner(userID)
}

// DeleteProduct removes a product and returns the deleted record.
func (s *ProductService) DeleteProduct(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}
	s.publish(events.ProductDeleted, product)
	return product, nil
}

// ProductUpdate carries a partial product mutation. Zero values for name,
// price and quantity mean "keep the stored value". Description and ImgURL are
// written through as sent; an absent value clears the stored one.
type ProductUpdate struct {
	ID          string
	Name        string
	Price       float64
	Quantity    int
	Description string
	ImgURL      string
}

// UpdateProduct loads the product, merges the submitted fields over the
// stored ones and persists the result. The effective name must not be held by
// any other product; keeping the product's own name is not a conflict.
func (s *ProductService) UpdateProduct(upd ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(upd.ID)
	if err != nil {
		return nil, err
	}

	newName := product.Name
	if upd.Name != "" {
		newName = upd.Name
	}
	newPrice := product.Price
	if upd.Price != 0 {
		newPrice = upd.Price
	}
	newQuantity := product.Quantity
	if upd.Quantity != 0 {
		newQuantity = upd.Quantity
	}

	if existing, err := s.repo.GetByNameExcluding(newName, product.ID); err == nil && existing != nil {
		return nil, ErrProductExists
	}

	product.Name = newName
	product.Price = newPrice
	product.Quantity = newQuantity
	product.Description = upd.Description
	product.ImgURL = upd.ImgURL

	if err := s.repo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrProductExists
		}
		return nil, err
	}
	s.publish(events.ProductUpdated, product)
	return product, nil
}

func (s *ProductService) publish(event string, payload interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(event, payload); err != nil {
		log.Printf("Failed to publish %s event: %v", event, err)
	}
}
