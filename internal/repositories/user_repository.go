package repositories

import "lapak/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// GetByUsernameExcluding finds a user holding the given username other
	// than the user with excludeID. Used by account updates so a user
	// keeping their own username is not flagged as a duplicate.
	GetByUsernameExcluding(username, excludeID string) (*models.User, error)
	Update(user *models.User) error
}
