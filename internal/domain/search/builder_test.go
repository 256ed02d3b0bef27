package search

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestBuild_EmptyFilter(t *testing.T) {
	q, err := Build(Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Predicates) != 0 {
		t.Fatalf("expected no predicates, got %v", q.PredicateNames())
	}
	if q.Offset != 0 || q.Limit != DefaultPageSize {
		t.Fatalf("expected default window, got offset=%d limit=%d", q.Offset, q.Limit)
	}
}

func TestBuild_NormalizationEquivalence(t *testing.T) {
	a, err := Build(Filter{Query: "  Lekki Phase 1  ", City: "LAGOS", State: "Lagos ", MinPrice: fptr(100), Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Build(Filter{Query: "lekki phase 1", City: "lagos", State: "lagos", MinPrice: fptr(100), Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a.PredicateNames(), b.PredicateNames()) {
		t.Fatalf("equivalent filters compiled differently: %v vs %v", a.PredicateNames(), b.PredicateNames())
	}
	if a.Offset != b.Offset || a.Limit != b.Limit {
		t.Fatalf("equivalent filters paginated differently")
	}
}

func TestBuild_InvertedPriceRange(t *testing.T) {
	_, err := Build(Filter{MinPrice: fptr(5000000), MaxPrice: fptr(1000000)})
	if !errors.Is(err, ErrInvalidPriceRange) {
		t.Fatalf("expected ErrInvalidPriceRange, got %v", err)
	}
}

func TestBuild_NegativeBound(t *testing.T) {
	_, err := Build(Filter{MinPrice: fptr(-1)})
	if !errors.Is(err, ErrNegativePrice) {
		t.Fatalf("expected ErrNegativePrice, got %v", err)
	}
}

func TestBuild_UnknownEnum(t *testing.T) {
	if _, err := Build(Filter{PropertyType: "castle"}); !errors.Is(err, ErrUnknownEnumValue) {
		t.Fatalf("expected ErrUnknownEnumValue, got %v", err)
	}
	if _, err := Build(Filter{ListingType: "timeshare"}); !errors.Is(err, ErrUnknownEnumValue) {
		t.Fatalf("expected ErrUnknownEnumValue, got %v", err)
	}
}

func TestBuild_UnsupportedDetailFilter(t *testing.T) {
	_, err := Build(Filter{Unsupported: []string{"power_reliability"}})
	if !errors.Is(err, ErrUnsupportedFilter) {
		t.Fatalf("expected ErrUnsupportedFilter, got %v", err)
	}
}

func TestBuild_PageSizeCap(t *testing.T) {
	q, err := Build(Filter{Limit: 500, Page: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Limit != MaxPageSize {
		t.Fatalf("expected limit capped at %d, got %d", MaxPageSize, q.Limit)
	}
	if q.Offset != 2*MaxPageSize {
		t.Fatalf("expected offset %d, got %d", 2*MaxPageSize, q.Offset)
	}
}

func TestQuery_Matches(t *testing.T) {
	p := entities.Property{
		Title:        "Modern 3BR Apartment in Lekki Phase 1",
		Description:  "Spacious three bedroom apartment with a fitted kitchen and balcony views.",
		Address:      "12 Admiralty Way",
		City:         "Lagos",
		State:        "Lagos",
		PropertyType: entities.PropertyTypeFlat,
		ListingType:  entities.ListingTypeRent,
		Price:        2500000,
		Bedrooms:     3,
		Bathrooms:    2,
	}

	cases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"text match title", Filter{Query: "lekki"}, true},
		{"text match address", Filter{Query: "admiralty"}, true},
		{"text miss", Filter{Query: "ikoyi"}, false},
		{"city case-insensitive", Filter{City: "LAGOS"}, true},
		{"price in range", Filter{MinPrice: fptr(1000000), MaxPrice: fptr(3000000)}, true},
		{"price below min", Filter{MinPrice: fptr(3000000)}, false},
		{"price above max", Filter{MaxPrice: fptr(1000000)}, false},
		{"price at inclusive bound", Filter{MinPrice: fptr(2500000), MaxPrice: fptr(2500000)}, true},
		{"bedrooms floor", Filter{Bedrooms: iptr(3)}, true},
		{"bedrooms too many", Filter{Bedrooms: iptr(4)}, false},
		{"combined and", Filter{Query: "lekki", City: "lagos", ListingType: "rent"}, true},
		{"combined and one miss", Filter{Query: "lekki", City: "abuja"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := Build(tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := q.Matches(p); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSortNewestFirst_TieBreak(t *testing.T) {
	now := time.Now().UTC()
	props := []entities.Property{
		{ID: "a", CreatedAt: now.Add(-time.Hour)},
		{ID: "b", CreatedAt: now},
		{ID: "c", CreatedAt: now},
	}
	SortNewestFirst(props)
	if props[0].ID != "c" || props[1].ID != "b" || props[2].ID != "a" {
		t.Fatalf("unexpected order: %v %v %v", props[0].ID, props[1].ID, props[2].ID)
	}
}

func TestQuery_PageWindowProperties(t *testing.T) {
	now := time.Now().UTC()
	var props []entities.Property
	for i := 0; i < 23; i++ {
		props = append(props, entities.Property{
			ID:        fmt.Sprintf("p-%02d", i),
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	SortNewestFirst(props)

	const size = 5
	seen := map[string]bool{}
	total := 0
	for page := 1; ; page++ {
		q, err := Build(Filter{Page: page, Limit: size})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		window := q.Page(props)
		if len(window) > size {
			t.Fatalf("page %d returned %d records, max %d", page, len(window), size)
		}
		for _, p := range window {
			if seen[p.ID] {
				t.Fatalf("duplicate record %s across pages", p.ID)
			}
			seen[p.ID] = true
		}
		total += len(window)
		if len(window) == 0 {
			break
		}
	}
	if total != len(props) {
		t.Fatalf("concatenated pages produced %d records, want %d", total, len(props))
	}
}
