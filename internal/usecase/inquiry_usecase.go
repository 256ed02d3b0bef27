package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
	"github.com/x17green/realest-sub003/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInquiryNotFound       = errors.New("inquiry not found")
	ErrInvalidInquiryID      = errors.New("invalid inquiry id")
	ErrInvalidInquiryMessage = errors.New("invalid inquiry message")
	ErrInquiryToOwnListing   = errors.New("cannot inquire about own listing")
	ErrNotInquiryReceiver    = errors.New("caller is not the inquiry receiver")
)

// IInquiryUseCase covers the buyer-to-owner inquiry flow: a prospective
// buyer opens an inquiry against a publicly visible listing, the receiving
// owner responds to or closes it.

type IInquiryUseCase interface {
	Create(ctx context.Context, senderID, propertyID, message string) (entities.Inquiry, error)
	ListReceived(ctx context.Context, receiverID string) ([]entities.Inquiry, error)
	Respond(ctx context.Context, receiverID, inquiryID string) (entities.Inquiry, error)
	Close(ctx context.Context, receiverID, inquiryID string) (entities.Inquiry, error)
}

type InquiryUseCase struct {
	repo         interfaces.IInquiryRepository
	propertyRepo interfaces.IPropertyRepository
}

var _ IInquiryUseCase = (*InquiryUseCase)(nil)

func NewInquiryUseCase(repo interfaces.IInquiryRepository, propertyRepo interfaces.IPropertyRepository) *InquiryUseCase {
	return &InquiryUseCase{repo: repo, propertyRepo: propertyRepo}
}

func (u *InquiryUseCase) Create(ctx context.Context, senderID, propertyID, message string) (entities.Inquiry, error) {
	propertyID = strings.TrimSpace(propertyID)
	if propertyID == "" {
		return entities.Inquiry{}, ErrInvalidPropertyID
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.Inquiry{}, ErrInvalidInquiryMessage
	}

	p, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if p.ID == "" || !p.PubliclyVisible() {
		return entities.Inquiry{}, ErrPropertyNotFound
	}
	if p.OwnerID == senderID {
		return entities.Inquiry{}, ErrInquiryToOwnListing
	}

	now := time.Now().UTC()
	i := entities.Inquiry{
		ID:         uuid.NewString(),
		PropertyID: p.ID,
		SenderID:   senderID,
		ReceiverID: p.OwnerID,
		Message:    message,
		Status:     entities.InquiryStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, i)
}

func (u *InquiryUseCase) ListReceived(ctx context.Context, receiverID string) ([]entities.Inquiry, error) {
	return u.repo.ListByReceiverID(ctx, receiverID)
}

func (u *InquiryUseCase) Respond(ctx context.Context, receiverID, inquiryID string) (entities.Inquiry, error) {
	return u.transition(ctx, receiverID, inquiryID, entities.InquiryStatusResponded)
}

func (u *InquiryUseCase) Close(ctx context.Context, receiverID, inquiryID string) (entities.Inquiry, error) {
	return u.transition(ctx, receiverID, inquiryID, entities.InquiryStatusClosed)
}

func (u *InquiryUseCase) transition(ctx context.Context, receiverID, inquiryID string, target entities.InquiryStatus) (entities.Inquiry, error) {
	inquiryID = strings.TrimSpace(inquiryID)
	if inquiryID == "" {
		return entities.Inquiry{}, ErrInvalidInquiryID
	}

	i, err := u.repo.GetByID(ctx, inquiryID)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if i.ID == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}
	if i.ReceiverID != receiverID {
		return entities.Inquiry{}, ErrNotInquiryReceiver
	}
	if !i.CanTransitionTo(target) {
		return entities.Inquiry{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, inquiryID, i.Status, target)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if updated.ID == "" {
		return entities.Inquiry{}, ErrInvalidTransition
	}
	return updated, nil
}
