package auth

import (
	"context"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/id"
)

// Repository provides user account persistence.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, userID id.ID) (User, error)
}
