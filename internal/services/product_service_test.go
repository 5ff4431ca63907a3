package services_test

import (
	"fmt"
	"testing"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"
	"lapak/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByOwner(userID string) ([]models.Product, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByNameExcluding(name, excludeID string) (*models.Product, error) {
	args := m.Called(name, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPub := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockPub)

	newProduct := &models.Product{Name: "New Product", Price: 50.0, Quantity: 20, UserID: "user-1"}

	// Successful creation publishes an event
	mockRepo.On("Create", newProduct).Return(nil).Once()
	mockPub.On("Publish", events.ProductCreated, newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)

	// Name already taken
	mockRepo.On("Create", newProduct).Return(repositories.ErrConflict).Once()
	err = service.CreateProduct(newProduct)
	assert.ErrorIs(t, err, services.ErrProductExists)
	mockRepo.AssertExpectations(t)

	// Store failure passes through
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProduct := &models.Product{ID: "1", Name: "Product A", Price: 10.0, Quantity: 100}

	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", "99").Return(nil, repositories.ErrNotFound).Once()
	product, err = service.GetProductByID("99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductsByOwner(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Product A", Price: 10.0, Quantity: 100, UserID: "user-1"},
		{ID: "2", Name: "Product B", Price: 20.0, Quantity: 50, UserID: "user-1"},
	}

	mockRepo.On("GetByOwner", "user-1").Return(expectedProducts, nil).Once()
	products, err := service.GetProductsByOwner("user-1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	product := &models.Product{ID: "1", Name: "Product A", Price: 10.0, Quantity: 100}

	// Successful deletion returns the deleted record
	mockRepo.On("GetByID", "1").Return(product, nil).Once()
	mockRepo.On("Delete", "1").Return(nil).Once()
	deleted, err := service.DeleteProduct("1")
	assert.NoError(t, err)
	assert.Equal(t, product, deleted)
	mockRepo.AssertExpectations(t)

	// Unknown product
	mockRepo.On("GetByID", "99").Return(nil, repositories.ErrNotFound).Once()
	deleted, err = service.DeleteProduct("99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, deleted)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	newProduct := func() *models.Product {
		return &models.Product{
			ID:          "prod-1",
			Name:        "Old Name",
			Price:       10.0,
			Quantity:    5,
			Description: "old description",
			ImgURL:      "http://img.example.com/old.png",
			UserID:      "user-1",
		}
	}

	t.Run("zero fields fall back to stored values", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := services.NewProductService(mockRepo, nil)

		mockRepo.On("GetByID", "prod-1").Return(newProduct(), nil).Once()
		mockRepo.On("GetByNameExcluding", "Old Name", "prod-1").Return(nil, repositories.ErrNotFound).Once()
		mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

		product, err := service.UpdateProduct(services.ProductUpdate{
			ID:    "prod-1",
			Price: 25.0,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Old Name", product.Name)
		assert.Equal(t, 25.0, product.Price)
		assert.Equal(t, 5, product.Quantity)
		mockRepo.AssertExpectations(t)
	})

	t.Run("keeping the product's own name is not a conflict", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := services.NewProductService(mockRepo, nil)

		mockRepo.On("GetByID", "prod-1").Return(newProduct(), nil).Once()
		mockRepo.On("GetByNameExcluding", "Old Name", "prod-1").Return(nil, repositories.ErrNotFound).Once()
		mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

		product, err := service.UpdateProduct(services.ProductUpdate{
			ID:   "prod-1",
			Name: "Old Name",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Old Name", product.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("name held by another product", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := services.NewProductService(mockRepo, nil)

		mockRepo.On("GetByID", "prod-1").Return(newProduct(), nil).Once()
		mockRepo.On("GetByNameExcluding", "Taken Name", "prod-1").Return(&models.Product{ID: "prod-2"}, nil).Once()

		_, err := service.UpdateProduct(services.ProductUpdate{
			ID:   "prod-1",
			Name: "Taken Name",
		})
		assert.ErrorIs(t, err, services.ErrProductExists)
		mockRepo.AssertExpectations(t)
	})

	t.Run("description and image URL are written through as sent", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := services.NewProductService(mockRepo, nil)

		mockRepo.On("GetByID", "prod-1").Return(newProduct(), nil).Once()
		mockRepo.On("GetByNameExcluding", "Old Name", "prod-1").Return(nil, repositories.ErrNotFound).Once()
		mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

		// Absent description/imgUrl clear the stored values rather than
		// falling back to them.
		product, err := service.UpdateProduct(services.ProductUpdate{
			ID:       "prod-1",
			Quantity: 7,
		})
		assert.NoError(t, err)
		assert.Equal(t, 7, product.Quantity)
		assert.Empty(t, product.Description)
		assert.Empty(t, product.ImgURL)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown product", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := services.NewProductService(mockRepo, nil)

		mockRepo.On("GetByID", "missing").Return(nil, repositories.ErrNotFound).Once()

		_, err := service.UpdateProduct(services.ProductUpdate{ID: "missing"})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}
