package users

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// ProfileCreator provisions an empty profile document for a new user.
type ProfileCreator interface {
	Create(ctx context.Context, userID string) error
}

// Service contains registration and login logic.
type Service struct {
	Repo       Repo
	Profiles   ProfileCreator
	BcryptCost int
}

func NewService(repo Repo, profiles ProfileCreator, bcryptCost int) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{Repo: repo, Profiles: profiles, BcryptCost: bcryptCost}
}

// Register creates a user with a bcrypt-hashed password and an empty profile.
func (s *Service) Register(ctx context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || len(password) < 6 {
		return User{}, errors.New("name, email and a password of at least 6 characters are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	if err := s.Profiles.Create(ctx, user.ID); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password both come back
// as ErrInvalidCredentials so callers cannot probe for accounts.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if user.PasswordHash == "" {
		// OAuth-only account.
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// UpsertFromOAuth finds or creates the account for an external identity.
// OAuth accounts carry no password hash.
func (s *Service) UpsertFromOAuth(ctx context.Context, email, name string) (User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return User{}, errors.New("email is required")
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	user = User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  strings.TrimSpace(name),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	if err := s.Profiles.Create(ctx, user.ID); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

func (s *Service) UpdateName(ctx context.Context, userID, name string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(name) == "" {
		return errors.New("user id and name are required")
	}
	return s.Repo.UpdateName(ctx, userID, strings.TrimSpace(name))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
