package interfaces

import (
	"context"
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
	"github.com/x17green/realest-sub003/internal/domain/search"
)

// IPropertyRepository abstracts DynamoDB persistence for Property.
//
// It is the only component allowed to read or write listing records.
// Lifecycle updates are conditional writes: a transition is applied only if
// the record is still in the status the caller observed, otherwise the
// record is left unchanged and the zero value comes back.

type IPropertyRepository interface {
	Create(ctx context.Context, p entities.Property) (entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)

	// SearchLive evaluates the compiled query against live+verified listings
	// only, newest-first, and returns the requested page plus the total
	// match count for pagination.
	SearchLive(ctx context.Context, q search.Query) ([]entities.Property, int, error)

	UpdateStatus(ctx context.Context, id string, from, to entities.PropertyStatus) (entities.Property, error)
	UpdateVerification(ctx context.Context, id string, from, to entities.VerificationStatus) (entities.Property, error)

	// FindDuplicates returns live listings whose address matches exactly
	// (case-insensitive) or whose coordinates are identical.
	FindDuplicates(ctx context.Context, address string, lat, lng float64) ([]entities.Property, error)

	// MarkDuplicate records suspected duplicate ids on a listing for admin
	// review. It never affects the listing's lifecycle.
	MarkDuplicate(ctx context.Context, id string, duplicateOf []string) error

	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Property, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
}
