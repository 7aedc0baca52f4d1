package service

import (
	"context"
	"errors"

	"github.com/Github22799/Recipe-App-API/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired      = errors.New("an email must be provided")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("record not found")
)

// UserService owns account creation, credential checks and profile
// updates against the identity store.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create registers a new account. The email is normalized before it is
// stored and used as the unique login key.
func (s *UserService) Create(ctx context.Context, email, password, name string) (*models.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	email = models.NormalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	// The unique index is the arbiter; a pre-check would race with
	// concurrent registrations.
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// CreateSuperuser registers an account with elevated flags set.
func (s *UserService) CreateSuperuser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.Create(ctx, email, password, "")
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(user).Updates(map[string]interface{}{
		"is_staff":     true,
		"is_superuser": true,
	}).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies an email/password pair. It never reveals
// whether the email or the password was wrong.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ?", models.NormalizeEmail(email)).
		First(&user).Error
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetByID loads a user by primary key.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UserUpdate carries the mutable profile fields. Nil means untouched.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// Update applies a partial profile update to the given user.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, upd UserUpdate) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if upd.Email != nil {
		if *upd.Email == "" {
			return nil, ErrEmailRequired
		}
		email := models.NormalizeEmail(*upd.Email)
		var existing models.User
		err := s.db.WithContext(ctx).
			Where("email = ? AND id <> ?", email, id).
			First(&existing).Error
		if err == nil {
			return nil, ErrEmailTaken
		}
		updates["email"] = email
	}
	if upd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = string(hash)
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrEmailTaken
			}
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}
