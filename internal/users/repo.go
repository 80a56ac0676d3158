package users

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/homazon/homazon-backend/pkg/db/models"
)

// Repository manages persistence for users and their profiles.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateShippingProfile(ctx context.Context, profile *models.ShippingProfile) error
	FindShippingProfileByID(ctx context.Context, profileID uuid.UUID) (*models.ShippingProfile, error)
	ListShippingProfiles(ctx context.Context, userID uuid.UUID) ([]models.ShippingProfile, error)
	CreatePaymentProfile(ctx context.Context, profile *models.PaymentProfile) error
	FindPaymentProfileByID(ctx context.Context, profileID uuid.UUID) (*models.PaymentProfile, error)
	ListPaymentProfiles(ctx context.Context, userID uuid.UUID) ([]models.PaymentProfile, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a users repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) UpdateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *repository) FindUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) CreateShippingProfile(ctx context.Context, profile *models.ShippingProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *repository) FindShippingProfileByID(ctx context.Context, profileID uuid.UUID) (*models.ShippingProfile, error) {
	var profile models.ShippingProfile
	if err := r.db.WithContext(ctx).Where("id = ?", profileID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) ListShippingProfiles(ctx context.Context, userID uuid.UUID) ([]models.ShippingProfile, error) {
	var profiles []models.ShippingProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *repository) CreatePaymentProfile(ctx context.Context, profile *models.PaymentProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *repository) FindPaymentProfileByID(ctx context.Context, profileID uuid.UUID) (*models.PaymentProfile, error) {
	var profile models.PaymentProfile
	if err := r.db.WithContext(ctx).Where("id = ?", profileID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) ListPaymentProfiles(ctx context.Context, userID uuid.UUID) ([]models.PaymentProfile, error) {
	var profiles []models.PaymentProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
