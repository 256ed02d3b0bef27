package request

import (
	"net/url"

	"github.com/x17green/realest-sub003/internal/domain/search"
)

// SearchPropertiesRequest binds the public search query parameters. Pointer
// fields distinguish "absent" from zero so that bounds are only applied when
// the caller supplied them.
type SearchPropertiesRequest struct {
	Query        string   `form:"query"`
	State        string   `form:"state"`
	City         string   `form:"city"`
	PropertyType string   `form:"property_type"`
	ListingType  string   `form:"listing_type"`
	MinPrice     *float64 `form:"min_price"`
	MaxPrice     *float64 `form:"max_price"`
	Bedrooms     *int     `form:"bedrooms"`
	Bathrooms    *int     `form:"bathrooms"`
	Page         int      `form:"page"`
	Limit        int      `form:"limit"`
}

// unsupportedSearchParams are detail-table fields callers sometimes try to
// filter on. There is no join support for property_details in search, so
// these are rejected outright rather than silently ignored.
var unsupportedSearchParams = []string{
	"power_reliability",
	"backup_power",
	"water_source",
	"water_treatment",
	"road_condition",
	"security_features",
	"has_outbuilding",
}

// UnsupportedParams returns any known-unsupported filter keys present in the
// raw query string.
func UnsupportedParams(values url.Values) []string {
	var out []string
	for _, key := range unsupportedSearchParams {
		if values.Has(key) {
			out = append(out, key)
		}
	}
	return out
}

// ToFilter builds the domain search filter. Normalization and validation
// happen inside the search package, not here.
func (r SearchPropertiesRequest) ToFilter(unsupported []string) search.Filter {
	return search.Filter{
		Query:        r.Query,
		State:        r.State,
		City:         r.City,
		PropertyType: r.PropertyType,
		ListingType:  r.ListingType,
		MinPrice:     r.MinPrice,
		MaxPrice:     r.MaxPrice,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		Page:         r.Page,
		Limit:        r.Limit,
		Unsupported:  unsupported,
	}
}
