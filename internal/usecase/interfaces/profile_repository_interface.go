package interfaces

import (
	"context"
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
)

// IProfileRepository reads the profiles table. Profiles are created by the
// onboarding flow outside this service; here they are only looked up for
// role checks and counted for analytics.
type IProfileRepository interface {
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Profile, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
}
