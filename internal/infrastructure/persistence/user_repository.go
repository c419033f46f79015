package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/tastehunt/backend/internal/domain/identity"
	"gorm.io/gorm"
)

// GormUserRepository is the GORM implementation of identity.Repository
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var u identity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var u identity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByRole returns all users holding the given role
func (r *GormUserRepository) FindByRole(ctx context.Context, role identity.Role) ([]identity.User, error) {
	var users []identity.User
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("email ASC").
		Find(&users).Error
	return users, err
}

// Save persists a new user
func (r *GormUserRepository) Save(ctx context.Context, u *identity.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// Update persists changes to an existing user
func (r *GormUserRepository) Update(ctx context.Context, u *identity.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// Delete removes a user
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&identity.User{}).Error
}

// Ensure interface compliance
var _ identity.Repository = (*GormUserRepository)(nil)
