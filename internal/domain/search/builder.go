package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/x17green/realest-sub003/internal/domain/entities"
)

// Predicate is one compiled filter condition. Name is a stable, deterministic
// description of the condition so that two logically equivalent filters can
// be compared predicate-set to predicate-set.
type Predicate struct {
	Name  string
	Match func(p entities.Property) bool
}

// Query is the compiled form of a Filter: an additive (logical AND) predicate
// set plus the pagination window. Ordering is always newest-first and is not
// caller-controlled.
type Query struct {
	Predicates []Predicate
	Offset     int
	Limit      int
}

// Build normalizes and validates the filter, then compiles it. An empty
// filter compiles to zero predicates: the unfiltered newest-first page.
func Build(f Filter) (Query, error) {
	n := f.Normalize()
	if err := n.Validate(); err != nil {
		return Query{}, err
	}

	var preds []Predicate

	if n.Query != "" {
		// Plain case-insensitive substring over title, description and
		// address. No full-text index is assumed, so this is deliberately a
		// containment check, not ranked relevance.
		q := n.Query
		preds = append(preds, Predicate{
			Name: "text_contains:" + q,
			Match: func(p entities.Property) bool {
				return strings.Contains(strings.ToLower(p.Title), q) ||
					strings.Contains(strings.ToLower(p.Description), q) ||
					strings.Contains(strings.ToLower(p.Address), q)
			},
		})
	}
	if n.State != "" {
		s := n.State
		preds = append(preds, Predicate{
			Name: "state_eq:" + s,
			Match: func(p entities.Property) bool {
				return strings.EqualFold(p.State, s)
			},
		})
	}
	if n.City != "" {
		c := n.City
		preds = append(preds, Predicate{
			Name: "city_eq:" + c,
			Match: func(p entities.Property) bool {
				return strings.EqualFold(p.City, c)
			},
		})
	}
	if n.PropertyType != "" {
		pt := entities.PropertyType(n.PropertyType)
		preds = append(preds, Predicate{
			Name: "property_type_eq:" + n.PropertyType,
			Match: func(p entities.Property) bool {
				return p.PropertyType == pt
			},
		})
	}
	if n.ListingType != "" {
		lt := entities.ListingType(n.ListingType)
		preds = append(preds, Predicate{
			Name: "listing_type_eq:" + n.ListingType,
			Match: func(p entities.Property) bool {
				return p.ListingType == lt
			},
		})
	}
	if n.MinPrice != nil {
		min := *n.MinPrice
		preds = append(preds, Predicate{
			Name: fmt.Sprintf("price_gte:%v", min),
			Match: func(p entities.Property) bool {
				return p.Price >= min
			},
		})
	}
	if n.MaxPrice != nil {
		max := *n.MaxPrice
		preds = append(preds, Predicate{
			Name: fmt.Sprintf("price_lte:%v", max),
			Match: func(p entities.Property) bool {
				return p.Price <= max
			},
		})
	}
	if n.Bedrooms != nil {
		b := *n.Bedrooms
		preds = append(preds, Predicate{
			Name: fmt.Sprintf("bedrooms_gte:%d", b),
			Match: func(p entities.Property) bool {
				return p.Bedrooms >= b
			},
		})
	}
	if n.Bathrooms != nil {
		b := *n.Bathrooms
		preds = append(preds, Predicate{
			Name: fmt.Sprintf("bathrooms_gte:%d", b),
			Match: func(p entities.Property) bool {
				return p.Bathrooms >= b
			},
		})
	}

	return Query{
		Predicates: preds,
		Offset:     (n.Page - 1) * n.Limit,
		Limit:      n.Limit,
	}, nil
}

// Matches reports whether p satisfies every predicate.
func (q Query) Matches(p entities.Property) bool {
	for _, pred := range q.Predicates {
		if !pred.Match(p) {
			return false
		}
	}
	return true
}

// PredicateNames returns the deterministic description of the predicate set.
func (q Query) PredicateNames() []string {
	names := make([]string, 0, len(q.Predicates))
	for _, p := range q.Predicates {
		names = append(names, p.Name)
	}
	return names
}

// SortNewestFirst orders listings by creation time descending, breaking ties
// by id descending so pages stay stable across requests.
func SortNewestFirst(props []entities.Property) {
	sort.SliceStable(props, func(i, j int) bool {
		if !props[i].CreatedAt.Equal(props[j].CreatedAt) {
			return props[i].CreatedAt.After(props[j].CreatedAt)
		}
		return props[i].ID > props[j].ID
	})
}

// Page slices the sorted, filtered result set to the query window.
func (q Query) Page(props []entities.Property) []entities.Property {
	if q.Offset >= len(props) {
		return []entities.Property{}
	}
	end := q.Offset + q.Limit
	if end > len(props) {
		end = len(props)
	}
	return props[q.Offset:end]
}
