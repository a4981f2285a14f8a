package repositories

import (
	"context"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
)

// UserRepository is the read-only view of platform users this service needs
// for display-name resolution.
type UserRepository interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindDisplayNames resolves display names for a set of user IDs; missing
	// IDs are absent from the returned map.
	FindDisplayNames(ctx context.Context, userIDs []string) (map[string]string, error)
}
