package entities

import "time"

// PropertyStatus is the publish lifecycle of a listing.
//
// Transitions:
//   - draft -> pending_verification
//   - pending_verification -> live | rejected
//   - live -> delisted
//   - rejected -> pending_verification (owner resubmits)
//   - delisted is terminal
//
// Listings are never hard-deleted; delisting is the only way out.

type PropertyStatus string

const (
	PropertyStatusDraft    PropertyStatus = "draft"
	PropertyStatusPending  PropertyStatus = "pending_verification"
	PropertyStatusLive     PropertyStatus = "live"
	PropertyStatusRejected PropertyStatus = "rejected"
	PropertyStatusDelisted PropertyStatus = "delisted"
)

// VerificationStatus is the administrative review axis, independent of the
// publish status.
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// PropertyType is the closed vocabulary of dwelling/commercial categories.
type PropertyType string

const (
	PropertyTypeFlat         PropertyType = "flat"
	PropertyTypeDuplex       PropertyType = "duplex"
	PropertyTypeBungalow     PropertyType = "bungalow"
	PropertyTypeDetached     PropertyType = "detached"
	PropertyTypeSemiDetached PropertyType = "semi_detached"
	PropertyTypeTerrace      PropertyType = "terrace"
	PropertyTypeLand         PropertyType = "land"
	PropertyTypeOffice       PropertyType = "office"
	PropertyTypeShop         PropertyType = "shop"
	PropertyTypeWarehouse    PropertyType = "warehouse"
)

type ListingType string

const (
	ListingTypeSale  ListingType = "sale"
	ListingTypeRent  ListingType = "rent"
	ListingTypeLease ListingType = "lease"
)

// Property is a marketplace listing persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Region-specific optional attributes live in the property_details table
// (see PropertyDetails) and are written in a separate, non-transactional step.

type Property struct {
	ID           string             `json:"id"`
	OwnerID      string             `json:"owner_id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	PropertyType PropertyType       `json:"property_type"`
	ListingType  ListingType        `json:"listing_type"`
	Price        float64            `json:"price"`
	Currency     string             `json:"currency"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	State        string             `json:"state"`
	Latitude     float64            `json:"latitude"`
	Longitude    float64            `json:"longitude"`
	Bedrooms     int                `json:"bedrooms,omitempty"`
	Bathrooms    int                `json:"bathrooms,omitempty"`
	AreaSqm      float64            `json:"area_sqm,omitempty"`
	Status       PropertyStatus     `json:"status"`
	Verification VerificationStatus `json:"verification_status"`
	DuplicateOf  []string           `json:"duplicate_of,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// PubliclyVisible reports whether the listing may appear in public search.
func (p Property) PubliclyVisible() bool {
	return p.Status == PropertyStatusLive && p.Verification == VerificationStatusVerified
}

var statusTransitions = map[PropertyStatus][]PropertyStatus{
	PropertyStatusDraft:    {PropertyStatusPending},
	PropertyStatusPending:  {PropertyStatusLive, PropertyStatusRejected},
	PropertyStatusLive:     {PropertyStatusDelisted},
	PropertyStatusRejected: {PropertyStatusPending},
	PropertyStatusDelisted: {},
}

var verificationTransitions = map[VerificationStatus][]VerificationStatus{
	VerificationStatusPending:  {VerificationStatusVerified, VerificationStatusRejected},
	VerificationStatusVerified: {},
	VerificationStatusRejected: {},
}

// CanTransitionTo reports whether the publish lifecycle allows moving from
// the current status to target.
func (p Property) CanTransitionTo(target PropertyStatus) bool {
	for _, allowed := range statusTransitions[p.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// CanTransitionVerificationTo reports whether the review axis allows moving
// from the current verification status to target.
func (p Property) CanTransitionVerificationTo(target VerificationStatus) bool {
	for _, allowed := range verificationTransitions[p.Verification] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ValidPropertyStatus reports whether s names a known lifecycle status.
func ValidPropertyStatus(s PropertyStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// ValidVerificationStatus reports whether s names a known review status.
func ValidVerificationStatus(s VerificationStatus) bool {
	_, ok := verificationTransitions[s]
	return ok
}
