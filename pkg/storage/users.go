package storage

import (
	"context"

	"github.com/tobenna/walletdash/pkg/models"
)

// UserStore defines the interface for the persisted user list.
type UserStore interface {
	// CreateUser appends a user to the users collection.
	CreateUser(ctx context.Context, user *models.User) error

	// ListUsers retrieves all registered users.
	ListUsers(ctx context.Context) ([]models.User, error)
}
