package search

import (
	"errors"
	"strings"

	"github.com/x17green/realest-sub003/internal/domain/entities"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

var (
	ErrInvalidPriceRange = errors.New("min_price greater than max_price")
	ErrNegativePrice     = errors.New("price bound must not be negative")
	ErrUnknownEnumValue  = errors.New("unknown enum value in filter")
	// ErrUnsupportedFilter rejects filters on nested region-specific detail
	// attributes. Filtering on property_details has no join support yet, and
	// silently ignoring such a parameter would let callers believe it
	// narrowed the result set.
	ErrUnsupportedFilter = errors.New("unsupported filter field")
)

// Filter is the request-scoped search criteria for public listings. It is
// constructed per request, validated, then compiled into a Query; it is
// never persisted.
//
// Optional numeric bounds are pointers so that an absent parameter is
// distinguishable from zero.

type Filter struct {
	Query        string
	State        string
	City         string
	PropertyType string
	ListingType  string
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
	Bathrooms    *int
	Page         int
	Limit        int

	// Unsupported holds any caller-supplied filter fields that the query
	// layer cannot honor (nested detail attributes). Non-empty means the
	// whole filter is rejected with ErrUnsupportedFilter.
	Unsupported []string
}

// Normalize returns a copy with free text trimmed and matching inputs
// lowercased, and pagination floors/caps applied. Two filters that are equal
// after Normalize compile to the same predicate set.
func (f Filter) Normalize() Filter {
	n := f
	n.Query = strings.ToLower(strings.TrimSpace(f.Query))
	n.State = strings.ToLower(strings.TrimSpace(f.State))
	n.City = strings.ToLower(strings.TrimSpace(f.City))
	n.PropertyType = strings.ToLower(strings.TrimSpace(f.PropertyType))
	n.ListingType = strings.ToLower(strings.TrimSpace(f.ListingType))

	if n.Page < 1 {
		n.Page = 1
	}
	if n.Limit < 1 {
		n.Limit = DefaultPageSize
	}
	if n.Limit > MaxPageSize {
		n.Limit = MaxPageSize
	}
	return n
}

// Validate checks the normalized filter. Inverted price bounds are an error,
// never silently swapped.
func (f Filter) Validate() error {
	if len(f.Unsupported) > 0 {
		return ErrUnsupportedFilter
	}
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return ErrNegativePrice
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return ErrNegativePrice
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return ErrInvalidPriceRange
	}
	if f.PropertyType != "" && !validPropertyType(f.PropertyType) {
		return ErrUnknownEnumValue
	}
	if f.ListingType != "" && !validListingType(f.ListingType) {
		return ErrUnknownEnumValue
	}
	return nil
}

func validPropertyType(v string) bool {
	switch entities.PropertyType(v) {
	case entities.PropertyTypeFlat, entities.PropertyTypeDuplex, entities.PropertyTypeBungalow,
		entities.PropertyTypeDetached, entities.PropertyTypeSemiDetached, entities.PropertyTypeTerrace,
		entities.PropertyTypeLand, entities.PropertyTypeOffice, entities.PropertyTypeShop,
		entities.PropertyTypeWarehouse:
		return true
	}
	return false
}

func validListingType(v string) bool {
	switch entities.ListingType(v) {
	case entities.ListingTypeSale, entities.ListingTypeRent, entities.ListingTypeLease:
		return true
	}
	return false
}
