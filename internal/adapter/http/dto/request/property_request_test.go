package request

import (
	"net/url"
	"testing"

	"github.com/x17green/realest-sub003/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
)

func coord(v float64) *float64 { return &v }

func validCreateRequest() CreatePropertyRequest {
	return CreatePropertyRequest{
		Title:        "Modern 3BR Apartment in Lekki Phase 1",
		Description:  "Spacious three bedroom apartment with a fitted kitchen, balcony views and dedicated parking.",
		PropertyType: "flat",
		ListingType:  "rent",
		Price:        2500000,
		Address:      "12 Admiralty Way",
		City:         "Lagos",
		State:        "Lagos",
		Latitude:     coord(6.4281),
		Longitude:    coord(3.4219),
	}
}

func TestCreatePropertyRequest_ValidPayload(t *testing.T) {
	r := validCreateRequest()
	if err := binding.Validator.ValidateStruct(r); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestCreatePropertyRequest_ZeroCoordinates(t *testing.T) {
	// Latitude 0 and longitude 0 are real positions and must pass validation.
	r := validCreateRequest()
	r.Latitude = coord(0)
	r.Longitude = coord(0)
	if err := binding.Validator.ValidateStruct(r); err != nil {
		t.Fatalf("expected zero coordinates to validate, got %v", err)
	}

	e := r.ToEntity()
	if e.Latitude != 0 || e.Longitude != 0 {
		t.Fatalf("unexpected coordinates on entity: %+v", e)
	}
}

func TestCreatePropertyRequest_MissingCoordinates(t *testing.T) {
	r := validCreateRequest()
	r.Latitude = nil
	err := binding.Validator.ValidateStruct(r)
	if err == nil {
		t.Fatalf("expected validation failure for absent latitude")
	}
	found := false
	for _, fe := range FieldErrors(err) {
		if fe.Field == "latitude" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a violation referencing latitude, got %v", FieldErrors(err))
	}
}

func TestCreatePropertyRequest_ShortTitle(t *testing.T) {
	r := validCreateRequest()
	r.Title = "short"
	err := binding.Validator.ValidateStruct(r)
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	found := false
	for _, fe := range FieldErrors(err) {
		if fe.Field == "title" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a violation referencing title, got %v", FieldErrors(err))
	}
}

func TestCreatePropertyRequest_AllViolationsReported(t *testing.T) {
	r := validCreateRequest()
	r.Title = "short"
	r.Description = "too short"
	r.Latitude = coord(95)
	r.PropertyType = "castle"
	err := binding.Validator.ValidateStruct(r)
	if err == nil {
		t.Fatalf("expected validation failure")
	}

	got := map[string]bool{}
	for _, fe := range FieldErrors(err) {
		got[fe.Field] = true
	}
	for _, want := range []string{"title", "description", "latitude", "property_type"} {
		if !got[want] {
			t.Errorf("missing violation for %s, got %v", want, got)
		}
	}
}

func TestCreatePropertyRequest_NestedDetailVocabulary(t *testing.T) {
	r := validCreateRequest()
	r.Details = &PropertyDetailsRequest{WaterSource: "rainwater"}
	err := binding.Validator.ValidateStruct(r)
	if err == nil {
		t.Fatalf("expected validation failure for unknown water source")
	}
	found := false
	for _, fe := range FieldErrors(err) {
		if fe.Field == "details.water_source" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected nested field path, got %v", FieldErrors(err))
	}
}

func TestCreatePropertyRequest_ToEntity(t *testing.T) {
	r := validCreateRequest()
	r.Title = "  Modern 3BR Apartment in Lekki Phase 1  "
	r.Currency = "ngn"
	e := r.ToEntity()
	if e.Title != "Modern 3BR Apartment in Lekki Phase 1" {
		t.Fatalf("expected trimmed title, got %q", e.Title)
	}
	if e.Currency != "NGN" {
		t.Fatalf("expected uppercased currency, got %q", e.Currency)
	}
	if e.PropertyType != entities.PropertyTypeFlat || e.ListingType != entities.ListingTypeRent {
		t.Fatalf("unexpected enums: %+v", e)
	}
	if e.ID != "" || e.Status != "" {
		t.Fatalf("identity/lifecycle must not be set by the DTO: %+v", e)
	}
}

func TestCreatePropertyRequest_DetailsEntity(t *testing.T) {
	r := validCreateRequest()
	if r.DetailsEntity() != nil {
		t.Fatalf("expected nil details when absent")
	}

	r.Details = &PropertyDetailsRequest{
		PowerReliability: "intermittent",
		BackupPower:      true,
		WaterSource:      "borehole",
		SecurityFeatures: []string{"gated_estate", "cctv"},
	}
	d := r.DetailsEntity()
	if d == nil {
		t.Fatalf("expected details entity")
	}
	if d.PowerReliability != entities.PowerReliabilityIntermittent || !d.BackupPower {
		t.Fatalf("unexpected details: %+v", d)
	}
	if len(d.SecurityFeatures) != 2 || d.SecurityFeatures[1] != entities.SecurityCCTV {
		t.Fatalf("unexpected security features: %+v", d.SecurityFeatures)
	}
}

func TestUnsupportedParams(t *testing.T) {
	values := url.Values{}
	values.Set("city", "Lagos")
	values.Set("water_source", "borehole")
	values.Set("security_features", "cctv")

	got := UnsupportedParams(values)
	if len(got) != 2 {
		t.Fatalf("expected 2 unsupported params, got %v", got)
	}
}
