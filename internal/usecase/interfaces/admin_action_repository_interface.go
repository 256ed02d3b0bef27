package interfaces

import (
	"context"
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
)

// IAdminActionRepository abstracts the admin_actions audit table.
type IAdminActionRepository interface {
	Create(ctx context.Context, a entities.AdminAction) (entities.AdminAction, error)
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.AdminAction, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
}
