package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/homazon/homazon-backend/pkg/db/models"
	pkgerrors "github.com/homazon/homazon-backend/pkg/errors"
)

// CheckoutProfiles carries the shipping/payment references a checkout
// attempt stamps onto the order.
type CheckoutProfiles struct {
	ShippingProfileID uuid.UUID
	PaymentProfileID  uuid.UUID
}

// Service exposes account and profile operations.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	AddShippingProfile(ctx context.Context, userID uuid.UUID, input ShippingProfileInput) (*ShippingProfileDTO, error)
	AddPaymentProfile(ctx context.Context, userID uuid.UUID, input PaymentProfileInput) (*PaymentProfileDTO, error)
	ListShippingProfiles(ctx context.Context, userID uuid.UUID) ([]ShippingProfileDTO, error)
	ListPaymentProfiles(ctx context.Context, userID uuid.UUID) ([]PaymentProfileDTO, error)
	SetDefaultShipping(ctx context.Context, userID, profileID uuid.UUID) error
	SetDefaultPayment(ctx context.Context, userID, profileID uuid.UUID) error
	ResolveCheckoutProfiles(ctx context.Context, userID uuid.UUID) (*CheckoutProfiles, error)
}

// ShippingProfileInput is the validated payload for a new address.
type ShippingProfileInput struct {
	Name       string
	Line1      string
	Line2      *string
	City       string
	State      string
	PostalCode string
	Country    string
}

// PaymentProfileInput is the validated payload for a new payment method.
type PaymentProfileInput struct {
	Label       string
	ProviderRef string
}

type service struct {
	repo Repository
}

// NewService wires a users service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return NewUserDTO(user), nil
}

func (s *service) AddShippingProfile(ctx context.Context, userID uuid.UUID, input ShippingProfileInput) (*ShippingProfileDTO, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := validateShippingInput(input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "shipping profile")
	}

	country := strings.ToUpper(strings.TrimSpace(input.Country))
	if country == "" {
		country = "US"
	}
	profile := &models.ShippingProfile{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       strings.TrimSpace(input.Name),
		Line1:      strings.TrimSpace(input.Line1),
		Line2:      input.Line2,
		City:       strings.TrimSpace(input.City),
		State:      strings.TrimSpace(input.State),
		PostalCode: strings.TrimSpace(input.PostalCode),
		Country:    country,
	}
	if err := s.repo.CreateShippingProfile(ctx, profile); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating shipping profile")
	}

	// first address becomes the default
	if user.DefaultShippingID == nil {
		user.DefaultShippingID = &profile.ID
		if err := s.repo.UpdateUser(ctx, user); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "setting default shipping")
		}
	}
	dto := NewShippingProfileDTO(profile, user)
	return &dto, nil
}

func (s *service) AddPaymentProfile(ctx context.Context, userID uuid.UUID, input PaymentProfileInput) (*PaymentProfileDTO, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Label) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment label required")
	}
	if strings.TrimSpace(input.ProviderRef) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment provider reference required")
	}

	profile := &models.PaymentProfile{
		ID:          uuid.New(),
		UserID:      userID,
		Label:       strings.TrimSpace(input.Label),
		ProviderRef: strings.TrimSpace(input.ProviderRef),
	}
	if err := s.repo.CreatePaymentProfile(ctx, profile); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating payment profile")
	}

	if user.DefaultPaymentID == nil {
		user.DefaultPaymentID = &profile.ID
		if err := s.repo.UpdateUser(ctx, user); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "setting default payment")
		}
	}
	dto := NewPaymentProfileDTO(profile, user)
	return &dto, nil
}

func (s *service) ListShippingProfiles(ctx context.Context, userID uuid.UUID) ([]ShippingProfileDTO, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profiles, err := s.repo.ListShippingProfiles(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing shipping profiles")
	}
	result := make([]ShippingProfileDTO, 0, len(profiles))
	for i := range profiles {
		result = append(result, NewShippingProfileDTO(&profiles[i], user))
	}
	return result, nil
}

func (s *service) ListPaymentProfiles(ctx context.Context, userID uuid.UUID) ([]PaymentProfileDTO, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profiles, err := s.repo.ListPaymentProfiles(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing payment profiles")
	}
	result := make([]PaymentProfileDTO, 0, len(profiles))
	for i := range profiles {
		result = append(result, NewPaymentProfileDTO(&profiles[i], user))
	}
	return result, nil
}

func (s *service) SetDefaultShipping(ctx context.Context, userID, profileID uuid.UUID) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	profile, err := s.repo.FindShippingProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "shipping profile not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading shipping profile")
	}
	if profile.UserID != userID {
		return pkgerrors.New(pkgerrors.CodeNotFound, "shipping profile not found")
	}

	user.DefaultShippingID = &profile.ID
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "setting default shipping")
	}
	return nil
}

func (s *service) SetDefaultPayment(ctx context.Context, userID, profileID uuid.UUID) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	profile, err := s.repo.FindPaymentProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "payment profile not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading payment profile")
	}
	if profile.UserID != userID {
		return pkgerrors.New(pkgerrors.CodeNotFound, "payment profile not found")
	}

	user.DefaultPaymentID = &profile.ID
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "setting default payment")
	}
	return nil
}

// ResolveCheckoutProfiles returns the user's default shipping and payment
// references; checkout refuses to run without both.
func (s *service) ResolveCheckoutProfiles(ctx context.Context, userID uuid.UUID) (*CheckoutProfiles, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.DefaultShippingID == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no default shipping profile set")
	}
	if user.DefaultPaymentID == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no default payment profile set")
	}
	return &CheckoutProfiles{
		ShippingProfileID: *user.DefaultShippingID,
		PaymentProfileID:  *user.DefaultPaymentID,
	}, nil
}

func (s *service) findUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading user")
	}
	return user, nil
}

func validateShippingInput(input ShippingProfileInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("name required")
	}
	if strings.TrimSpace(input.Line1) == "" {
		return fmt.Errorf("line1 required")
	}
	if strings.TrimSpace(input.City) == "" {
		return fmt.Errorf("city required")
	}
	if strings.TrimSpace(input.State) == "" {
		return fmt.Errorf("state required")
	}
	if strings.TrimSpace(input.PostalCode) == "" {
		return fmt.Errorf("postal code required")
	}
	return nil
}
