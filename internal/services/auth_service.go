package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/pkg/events"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for accounts: login, signup, lookup and
// account mutation.
type AuthService struct {
	userRepo   repositories.UserRepository
	publisher  events.Publisher // nil disables eventing
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, publisher events.Publisher, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		publisher:  publisher,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Login authenticates a user and returns the account plus a signed JWT.
// An unknown username and a wrong password both come back as
// ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenDurat).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, tokenString, nil
}

// Signup hashes the password and creates the account. The username pre-check
// gives the common-case answer; the store's unique index decides races, and
// its conflict error maps onto the same ErrUserExists.
func (s *AuthService) Signup(user *models.User) error {
	if existing, err := s.userRepo.GetByUsername(user.Username); err == nil && existing != nil {
		return ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.publish(events.AccountSignedUp, map[string]string{
		"id":       user.ID,
		"username": user.Username,
	})
	return nil
}

// GetAccount retrieves an account by its ID.
func (s *AuthService) GetAccount(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// AccountUpdate carries a partial account mutation. Empty strings mean "keep
// the stored value"; Password/OldPassword must be sent together.
type AccountUpdate struct {
	ID          string
	Username    string
	Email       string
	Phone       string
	Password    string
	OldPassword string
}

// UpdateAccount loads the account, merges the submitted fields over the
// stored ones and persists the result. The effective username must not be
// held by any other account.
func (s *AuthService) UpdateAccount(upd AccountUpdate) (*models.User, error) {
	account, err := s.userRepo.GetByID(upd.ID)
	if err != nil {
		return nil, err
	}

	newUsername := account.Username
	if upd.Username != "" {
		newUsername = upd.Username
	}
	newEmail := account.Email
	if upd.Email != "" {
		newEmail = upd.Email
	}
	newPhone := account.Phone
	if upd.Phone != "" {
		newPhone = upd.Phone
	}

	if existing, err := s.userRepo.GetByUsernameExcluding(newUsername, account.ID); err == nil && existing != nil {
		return nil, ErrUserExists
	}

	if (upd.OldPassword == "") != (upd.Password == "") {
		return nil, ErrPasswordPair
	}
	if upd.OldPassword != "" && upd.Password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(upd.OldPassword)); err != nil {
			return nil, ErrPasswordMismatch
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		account.Password = string(hashedPassword)
	}

	account.Username = newUsername
	account.Email = newEmail
	account.Phone = newPhone

	if err := s.userRepo.Update(account); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return account, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// publish sends a lifecycle event if a publisher is configured. Publish
// failures are logged, never surfaced to the request.
func (s *AuthService) publish(event string, payload interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(event, payload); err != nil {
		log.Printf("Failed to publish %s event: %v", event, err)
	}
}
