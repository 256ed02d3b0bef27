package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
	"github.com/x17green/realest-sub003/internal/domain/search"
	"github.com/x17green/realest-sub003/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound   = errors.New("property not found")
	ErrInvalidPropertyID  = errors.New("invalid property id")
	ErrInvalidOwnerID     = errors.New("invalid owner id")
	ErrUnknownStatus      = errors.New("unknown status value")
	ErrInvalidTransition  = errors.New("invalid lifecycle transition")
	ErrOwnershipRequired  = errors.New("caller does not own this property")
	ErrListingNotAllowed  = errors.New("account type may not create listings")
	ErrPropertyNotVisible = errors.New("property not publicly visible")
)

const searchCacheTTL = 60 * time.Second

// SearchResult is one page of public search output plus the total match
// count. It is also the unit cached in Redis.
type SearchResult struct {
	Properties []entities.Property `json:"properties"`
	Total      int                 `json:"total"`
}

// IPropertyUseCase exposes the listing submission, lookup, search and
// lifecycle operations.
//
// Create performs the two-step listing + details write. The second step has
// no compensating rollback: a details-write failure leaves the base record
// in place with no details row, surfaced via server logs only.

type IPropertyUseCase interface {
	Create(ctx context.Context, ownerID string, p entities.Property, d *entities.PropertyDetails) (entities.Property, error)
	GetByID(ctx context.Context, id, viewerID string, viewerAdmin bool) (entities.Property, entities.PropertyDetails, error)
	Search(ctx context.Context, f search.Filter) (SearchResult, error)
	Submit(ctx context.Context, ownerID, id string) (entities.Property, error)
	UpdateStatus(ctx context.Context, adminID, id string, target entities.PropertyStatus) (entities.Property, error)
	UpdateVerification(ctx context.Context, adminID, id string, target entities.VerificationStatus) (entities.Property, error)
}

type PropertyUseCase struct {
	repo         interfaces.IPropertyRepository
	detailsRepo  interfaces.IPropertyDetailsRepository
	actionsRepo  interfaces.IAdminActionRepository
	profilesRepo interfaces.IProfileRepository
	cache        interfaces.ISearchCache
}

var _ IPropertyUseCase = (*PropertyUseCase)(nil)

func NewPropertyUseCase(
	repo interfaces.IPropertyRepository,
	detailsRepo interfaces.IPropertyDetailsRepository,
	actionsRepo interfaces.IAdminActionRepository,
	profilesRepo interfaces.IProfileRepository,
	cache interfaces.ISearchCache,
) *PropertyUseCase {
	return &PropertyUseCase{
		repo:         repo,
		detailsRepo:  detailsRepo,
		actionsRepo:  actionsRepo,
		profilesRepo: profilesRepo,
		cache:        cache,
	}
}

func (u *PropertyUseCase) Create(ctx context.Context, ownerID string, p entities.Property, d *entities.PropertyDetails) (entities.Property, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Property{}, ErrInvalidOwnerID
	}

	// The token role gates the route; the profiles table is the source of
	// truth for listing capability, so a demoted account is rejected here.
	profile, err := u.profilesRepo.GetByID(ctx, ownerID)
	if err != nil {
		return entities.Property{}, err
	}
	if profile.ID == "" || !profile.CanListProperties() {
		return entities.Property{}, ErrListingNotAllowed
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.OwnerID = ownerID
	p.Status = entities.PropertyStatusDraft
	p.Verification = entities.VerificationStatusPending
	p.DuplicateOf = nil
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Currency == "" {
		p.Currency = "NGN"
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Property{}, err
	}

	if d != nil {
		d.PropertyID = created.ID
		d.CreatedAt = now
		d.UpdatedAt = now
		if _, err := u.detailsRepo.Put(ctx, *d); err != nil {
			// No rollback of the base record. The listing stands with no
			// details row; only the log records the inconsistency.
			log.Printf("[property][usecase] details write failed property_id=%s err=%v", created.ID, err)
		}
	}

	u.flagDuplicates(ctx, &created)

	return created, nil
}

// flagDuplicates runs the best-effort duplicate heuristic: exact address or
// identical coordinates against live listings. Hits flag the new record for
// admin review; they never block creation, and heuristic failures only log.
func (u *PropertyUseCase) flagDuplicates(ctx context.Context, p *entities.Property) {
	hits, err := u.repo.FindDuplicates(ctx, p.Address, p.Latitude, p.Longitude)
	if err != nil {
		log.Printf("[property][usecase] duplicate check failed property_id=%s err=%v", p.ID, err)
		return
	}

	var ids []string
	for _, hit := range hits {
		if hit.ID != p.ID {
			ids = append(ids, hit.ID)
		}
	}
	if len(ids) == 0 {
		return
	}

	log.Printf("[property][usecase] possible duplicate property_id=%s matches=%v", p.ID, ids)
	if err := u.repo.MarkDuplicate(ctx, p.ID, ids); err != nil {
		log.Printf("[property][usecase] duplicate flag write failed property_id=%s err=%v", p.ID, err)
		return
	}
	p.DuplicateOf = ids

	action := entities.AdminAction{
		ID:        uuid.NewString(),
		AdminID:   "system",
		Action:    entities.AdminActionFlagDuplicate,
		TargetID:  p.ID,
		Note:      "matched: " + strings.Join(ids, ","),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := u.actionsRepo.Create(ctx, action); err != nil {
		log.Printf("[property][usecase] duplicate audit write failed property_id=%s err=%v", p.ID, err)
	}
}

func (u *PropertyUseCase) GetByID(ctx context.Context, id, viewerID string, viewerAdmin bool) (entities.Property, entities.PropertyDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Property{}, entities.PropertyDetails{}, ErrInvalidPropertyID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, entities.PropertyDetails{}, err
	}
	if p.ID == "" {
		return entities.Property{}, entities.PropertyDetails{}, ErrPropertyNotFound
	}

	if !p.PubliclyVisible() && p.OwnerID != viewerID && !viewerAdmin {
		// Hidden listings look identical to missing ones from outside.
		return entities.Property{}, entities.PropertyDetails{}, ErrPropertyNotFound
	}

	d, err := u.detailsRepo.GetByPropertyID(ctx, id)
	if err != nil {
		log.Printf("[property][usecase] details read failed property_id=%s err=%v", id, err)
		d = entities.PropertyDetails{}
	}
	return p, d, nil
}

func (u *PropertyUseCase) Search(ctx context.Context, f search.Filter) (SearchResult, error) {
	q, err := search.Build(f)
	if err != nil {
		return SearchResult{}, err
	}

	key := q.CacheKey("search:properties")
	if u.cache != nil {
		var cached SearchResult
		hit, err := u.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Printf("[property][usecase] search cache read failed key=%s err=%v", key, err)
		} else if hit {
			return cached, nil
		}
	}

	props, total, err := u.repo.SearchLive(ctx, q)
	if err != nil {
		return SearchResult{}, err
	}
	result := SearchResult{Properties: props, Total: total}

	if u.cache != nil {
		if err := u.cache.Set(ctx, key, result, searchCacheTTL); err != nil {
			log.Printf("[property][usecase] search cache write failed key=%s err=%v", key, err)
		}
	}
	return result, nil
}

// Submit moves an owner's draft (or rejected) listing into the review queue.
func (u *PropertyUseCase) Submit(ctx context.Context, ownerID, id string) (entities.Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Property{}, ErrInvalidPropertyID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	if p.OwnerID != ownerID {
		return entities.Property{}, ErrOwnershipRequired
	}
	if !p.CanTransitionTo(entities.PropertyStatusPending) {
		return entities.Property{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, p.Status, entities.PropertyStatusPending)
	if err != nil {
		return entities.Property{}, err
	}
	if updated.ID == "" {
		return entities.Property{}, ErrInvalidTransition
	}
	return updated, nil
}

func (u *PropertyUseCase) UpdateStatus(ctx context.Context, adminID, id string, target entities.PropertyStatus) (entities.Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Property{}, ErrInvalidPropertyID
	}
	if !entities.ValidPropertyStatus(target) {
		return entities.Property{}, ErrUnknownStatus
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	if !p.CanTransitionTo(target) {
		return entities.Property{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, p.Status, target)
	if err != nil {
		return entities.Property{}, err
	}
	if updated.ID == "" {
		// The record moved between our read and the conditional write.
		return entities.Property{}, ErrInvalidTransition
	}

	u.recordAdminAction(ctx, adminID, statusAction(target), id)
	return updated, nil
}

func (u *PropertyUseCase) UpdateVerification(ctx context.Context, adminID, id string, target entities.VerificationStatus) (entities.Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Property{}, ErrInvalidPropertyID
	}
	if !entities.ValidVerificationStatus(target) {
		return entities.Property{}, ErrUnknownStatus
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	if !p.CanTransitionVerificationTo(target) {
		return entities.Property{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateVerification(ctx, id, p.Verification, target)
	if err != nil {
		return entities.Property{}, err
	}
	if updated.ID == "" {
		return entities.Property{}, ErrInvalidTransition
	}

	action := entities.AdminActionVerifyProperty
	if target == entities.VerificationStatusRejected {
		action = entities.AdminActionRejectProperty
	}
	u.recordAdminAction(ctx, adminID, action, id)
	return updated, nil
}

// recordAdminAction writes the audit entry. Audit failures never undo an
// applied transition; they are logged and the transition stands.
func (u *PropertyUseCase) recordAdminAction(ctx context.Context, adminID string, action entities.AdminActionType, targetID string) {
	a := entities.AdminAction{
		ID:        uuid.NewString(),
		AdminID:   adminID,
		Action:    action,
		TargetID:  targetID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := u.actionsRepo.Create(ctx, a); err != nil {
		log.Printf("[property][usecase] admin audit write failed action=%s target_id=%s err=%v", action, targetID, err)
	}
}

func statusAction(target entities.PropertyStatus) entities.AdminActionType {
	switch target {
	case entities.PropertyStatusLive:
		return entities.AdminActionApproveProperty
	case entities.PropertyStatusRejected:
		return entities.AdminActionRejectProperty
	case entities.PropertyStatusDelisted:
		return entities.AdminActionDelistProperty
	default:
		return entities.AdminActionRequeueProperty
	}
}
