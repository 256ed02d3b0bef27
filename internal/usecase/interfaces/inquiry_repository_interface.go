package interfaces

import (
	"context"
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
)

// IInquiryRepository abstracts DynamoDB persistence for Inquiry.
//
// Status updates are conditional on the previously observed status, same
// contract as IPropertyRepository.

type IInquiryRepository interface {
	Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error)
	GetByID(ctx context.Context, id string) (entities.Inquiry, error)
	ListByReceiverID(ctx context.Context, receiverID string) ([]entities.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.InquiryStatus) (entities.Inquiry, error)
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Inquiry, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
}
