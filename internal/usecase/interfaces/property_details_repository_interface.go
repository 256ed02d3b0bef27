package interfaces

import (
	"context"

	"github.com/x17green/realest-sub003/internal/domain/entities"
)

// IPropertyDetailsRepository abstracts the property_details table, which
// holds the region-specific optional attributes 1:1 with properties.
type IPropertyDetailsRepository interface {
	Put(ctx context.Context, d entities.PropertyDetails) (entities.PropertyDetails, error)
	GetByPropertyID(ctx context.Context, propertyID string) (entities.PropertyDetails, error)
}
