package auth

import (
	"context"
	"fmt"

	"tripbook/internal/bookings"

	"github.com/google/uuid"
)

// UserDirectoryAdapter implements the bookings UserDirectory interface using the auth repository
// This adapter prevents import cycles while allowing the booking service to access user data
type UserDirectoryAdapter struct {
	repo Repository
}

// NewUserDirectoryAdapter creates a new user directory adapter
func NewUserDirectoryAdapter(repo Repository) *UserDirectoryAdapter {
	return &UserDirectoryAdapter{
		repo: repo,
	}
}

// GetUser fetches the profile the booking and payment flows need
func (uda *UserDirectoryAdapter) GetUser(ctx context.Context, userID uuid.UUID) (*bookings.UserProfile, error) {
	user, err := uda.repo.GetUserByID(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}

	return &bookings.UserProfile{
		ID:                user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		PaymentCustomerID: user.StripeCustomerID,
	}, nil
}

// SetPaymentCustomerID stores the payment customer created on first charge
func (uda *UserDirectoryAdapter) SetPaymentCustomerID(ctx context.Context, userID uuid.UUID, customerID string) error {
	return uda.repo.UpdateStripeCustomerID(ctx, userID.String(), customerID)
}
