package response

import (
	"testing"
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
)

func TestFromProperty(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Property{
		ID:           "prop-1",
		OwnerID:      "owner-1",
		Title:        "Modern 3BR Apartment in Lekki Phase 1",
		PropertyType: entities.PropertyTypeFlat,
		ListingType:  entities.ListingTypeRent,
		Price:        2500000,
		Currency:     "NGN",
		Status:       entities.PropertyStatusLive,
		Verification: entities.VerificationStatusVerified,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromProperty(p)
	if res.ID != "prop-1" || res.OwnerID != "owner-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.PropertyType != "flat" || res.ListingType != "rent" {
		t.Fatalf("unexpected type fields: %+v", res)
	}
	if res.Status != "live" || res.Verification != "verified" {
		t.Fatalf("unexpected lifecycle fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.Details != nil {
		t.Fatalf("details must be absent unless provided: %+v", res)
	}
}

func TestFromPropertyWithDetails(t *testing.T) {
	p := entities.Property{ID: "prop-1"}
	d := &entities.PropertyDetails{
		PropertyID:       "prop-1",
		PowerReliability: entities.PowerReliabilityMostlyStable,
		BackupPower:      true,
		WaterSource:      entities.WaterSourceBorehole,
		SecurityFeatures: []entities.SecurityFeature{entities.SecurityGatedEstate, entities.SecurityCCTV},
	}

	res := FromPropertyWithDetails(p, d)
	if res.Details == nil {
		t.Fatalf("expected details block")
	}
	if res.Details.PowerReliability != "mostly_stable" || !res.Details.BackupPower {
		t.Fatalf("unexpected details: %+v", res.Details)
	}
	if len(res.Details.SecurityFeatures) != 2 || res.Details.SecurityFeatures[0] != "gated_estate" {
		t.Fatalf("unexpected security features: %+v", res.Details.SecurityFeatures)
	}

	if got := FromPropertyWithDetails(p, nil); got.Details != nil {
		t.Fatalf("nil details must map to absent block")
	}
}

func TestFromSearchResult(t *testing.T) {
	props := []entities.Property{{ID: "a"}, {ID: "b"}}

	res := FromSearchResult(props, 41, 2, 20)
	if len(res.Properties) != 2 {
		t.Fatalf("unexpected page size: %+v", res)
	}
	if res.Pagination.Page != 2 || res.Pagination.Limit != 20 || res.Pagination.Total != 41 {
		t.Fatalf("unexpected pagination: %+v", res.Pagination)
	}
	if res.Pagination.Pages != 3 {
		t.Fatalf("expected 3 pages for 41 results of 20, got %d", res.Pagination.Pages)
	}

	empty := FromSearchResult(nil, 0, 1, 20)
	if empty.Properties == nil {
		t.Fatalf("properties must serialize as an empty array, not null")
	}
	if empty.Pagination.Pages != 0 {
		t.Fatalf("unexpected pages for empty result: %d", empty.Pagination.Pages)
	}
}

func TestFromInquiry(t *testing.T) {
	now := time.Now().UTC()
	i := entities.Inquiry{
		ID:         "inq-1",
		PropertyID: "prop-1",
		SenderID:   "buyer-1",
		ReceiverID: "owner-1",
		Message:    "Is this property still available for viewing?",
		Status:     entities.InquiryStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res := FromInquiry(i)
	if res.ID != "inq-1" || res.PropertyID != "prop-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "pending" {
		t.Fatalf("unexpected status: %+v", res)
	}

	list := FromInquiries([]entities.Inquiry{i, i})
	if len(list) != 2 {
		t.Fatalf("unexpected list size: %d", len(list))
	}
}
