package request

import (
	"errors"
	"reflect"
	"strings"

	"github.com/x17green/realest-sub003/internal/domain/entities"
	"github.com/x17green/realest-sub003/pkg"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures under the wire field names rather than the
	// Go struct field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// PropertyDetailsRequest carries the optional region-specific attributes of
// a submission. Absent fields are fine; present fields must match their
// closed vocabulary.
type PropertyDetailsRequest struct {
	PowerReliability string   `json:"power_reliability" binding:"omitempty,oneof=none intermittent mostly_stable stable"`
	BackupPower      bool     `json:"backup_power"`
	WaterSource      string   `json:"water_source" binding:"omitempty,oneof=mains borehole well tanker"`
	WaterTreatment   bool     `json:"water_treatment"`
	RoadCondition    string   `json:"road_condition" binding:"omitempty,oneof=paved gravel untarred seasonal"`
	SecurityFeatures []string `json:"security_features" binding:"omitempty,dive,oneof=gated_estate security_post cctv perimeter_fence electric_fence guard_dogs"`
	HasOutbuilding   bool     `json:"has_outbuilding"`
	OutbuildingNote  string   `json:"outbuilding_note" binding:"omitempty,max=500"`
}

// CreatePropertyRequest is the listing submission payload. The minimum
// lengths on title and description deter empty or placeholder submissions.
type CreatePropertyRequest struct {
	Title        string                  `json:"title" binding:"required,min=10,max=200"`
	Description  string                  `json:"description" binding:"required,min=50,max=5000"`
	PropertyType string                  `json:"property_type" binding:"required,oneof=flat duplex bungalow detached semi_detached terrace land office shop warehouse"`
	ListingType  string                  `json:"listing_type" binding:"required,oneof=sale rent lease"`
	Price        float64                 `json:"price" binding:"required,gt=0"`
	Currency     string                  `json:"currency" binding:"omitempty,len=3"`
	Address      string                  `json:"address" binding:"required,min=5"`
	City         string                  `json:"city" binding:"required"`
	State        string                  `json:"state" binding:"required"`
	// Pointer coordinates keep "required" a presence check: latitude 0 and
	// longitude 0 are valid positions, not missing values.
	Latitude     *float64                `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude    *float64                `json:"longitude" binding:"required,gte=-180,lte=180"`
	Bedrooms     int                     `json:"bedrooms" binding:"omitempty,gte=0,lte=50"`
	Bathrooms    int                     `json:"bathrooms" binding:"omitempty,gte=0,lte=50"`
	AreaSqm      float64                 `json:"area_sqm" binding:"omitempty,gt=0"`
	Details      *PropertyDetailsRequest `json:"details"`
}

// ToEntity maps the validated payload onto the domain entity. Identity,
// ownership and lifecycle fields are assigned by the use case, not here.
func (r CreatePropertyRequest) ToEntity() entities.Property {
	var lat, lng float64
	if r.Latitude != nil {
		lat = *r.Latitude
	}
	if r.Longitude != nil {
		lng = *r.Longitude
	}
	return entities.Property{
		Title:        strings.TrimSpace(r.Title),
		Description:  strings.TrimSpace(r.Description),
		PropertyType: entities.PropertyType(r.PropertyType),
		ListingType:  entities.ListingType(r.ListingType),
		Price:        r.Price,
		Currency:     strings.ToUpper(strings.TrimSpace(r.Currency)),
		Address:      strings.TrimSpace(r.Address),
		City:         strings.TrimSpace(r.City),
		State:        strings.TrimSpace(r.State),
		Latitude:     lat,
		Longitude:    lng,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		AreaSqm:      r.AreaSqm,
	}
}

// DetailsEntity maps the optional details block, or nil when absent.
func (r CreatePropertyRequest) DetailsEntity() *entities.PropertyDetails {
	if r.Details == nil {
		return nil
	}
	features := make([]entities.SecurityFeature, 0, len(r.Details.SecurityFeatures))
	for _, f := range r.Details.SecurityFeatures {
		features = append(features, entities.SecurityFeature(f))
	}
	return &entities.PropertyDetails{
		PowerReliability: entities.PowerReliability(r.Details.PowerReliability),
		BackupPower:      r.Details.BackupPower,
		WaterSource:      entities.WaterSource(r.Details.WaterSource),
		WaterTreatment:   r.Details.WaterTreatment,
		RoadCondition:    entities.RoadCondition(r.Details.RoadCondition),
		SecurityFeatures: features,
		HasOutbuilding:   r.Details.HasOutbuilding,
		OutbuildingNote:  strings.TrimSpace(r.Details.OutbuildingNote),
	}
}

// FieldErrors flattens a binding error into field-level violations. Non
// validator errors (malformed JSON, wrong types) come back as one generic
// body-level entry.
func FieldErrors(err error) []pkg.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []pkg.FieldError{{Field: "body", Message: "malformed request body"}}
	}

	out := make([]pkg.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, pkg.FieldError{Field: fieldPath(fe), Message: messageFor(fe)})
	}
	return out
}

// fieldPath strips the top-level struct name from the validator namespace,
// leaving the dotted wire path ("details.water_source").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
