package response

import (
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
)

type PropertyDetailsResponse struct {
	PowerReliability string   `json:"power_reliability,omitempty"`
	BackupPower      bool     `json:"backup_power"`
	WaterSource      string   `json:"water_source,omitempty"`
	WaterTreatment   bool     `json:"water_treatment"`
	RoadCondition    string   `json:"road_condition,omitempty"`
	SecurityFeatures []string `json:"security_features,omitempty"`
	HasOutbuilding   bool     `json:"has_outbuilding"`
	OutbuildingNote  string   `json:"outbuilding_note,omitempty"`
}

type PropertyResponse struct {
	ID           string                   `json:"id"`
	OwnerID      string                   `json:"owner_id"`
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	PropertyType string                   `json:"property_type"`
	ListingType  string                   `json:"listing_type"`
	Price        float64                  `json:"price"`
	Currency     string                   `json:"currency"`
	Address      string                   `json:"address"`
	City         string                   `json:"city"`
	State        string                   `json:"state"`
	Latitude     float64                  `json:"latitude"`
	Longitude    float64                  `json:"longitude"`
	Bedrooms     int                      `json:"bedrooms"`
	Bathrooms    int                      `json:"bathrooms"`
	AreaSqm      float64                  `json:"area_sqm"`
	Status       string                   `json:"status"`
	Verification string                   `json:"verification"`
	DuplicateOf  []string                 `json:"duplicate_of,omitempty"`
	Details      *PropertyDetailsResponse `json:"details,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

func FromProperty(p entities.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Title:        p.Title,
		Description:  p.Description,
		PropertyType: string(p.PropertyType),
		ListingType:  string(p.ListingType),
		Price:        p.Price,
		Currency:     p.Currency,
		Address:      p.Address,
		City:         p.City,
		State:        p.State,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		AreaSqm:      p.AreaSqm,
		Status:       string(p.Status),
		Verification: string(p.Verification),
		DuplicateOf:  p.DuplicateOf,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// FromPropertyWithDetails attaches the optional details block when the
// caller fetched one.
func FromPropertyWithDetails(p entities.Property, d *entities.PropertyDetails) PropertyResponse {
	res := FromProperty(p)
	if d != nil {
		res.Details = fromDetails(d)
	}
	return res
}

func fromDetails(d *entities.PropertyDetails) *PropertyDetailsResponse {
	features := make([]string, 0, len(d.SecurityFeatures))
	for _, f := range d.SecurityFeatures {
		features = append(features, string(f))
	}
	return &PropertyDetailsResponse{
		PowerReliability: string(d.PowerReliability),
		BackupPower:      d.BackupPower,
		WaterSource:      string(d.WaterSource),
		WaterTreatment:   d.WaterTreatment,
		RoadCondition:    string(d.RoadCondition),
		SecurityFeatures: features,
		HasOutbuilding:   d.HasOutbuilding,
		OutbuildingNote:  d.OutbuildingNote,
	}
}

type CreatePropertyResponse struct {
	Property PropertyResponse `json:"property"`
	Message  string           `json:"message"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type SearchPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Pagination Pagination         `json:"pagination"`
}

func FromSearchResult(props []entities.Property, total, page, limit int) SearchPropertiesResponse {
	out := make([]PropertyResponse, 0, len(props))
	for _, p := range props {
		out = append(out, FromProperty(p))
	}
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return SearchPropertiesResponse{
		Properties: out,
		Pagination: Pagination{Page: page, Limit: limit, Total: total, Pages: pages},
	}
}
