package entities

import "time"

// PowerReliability grades mains power supply at the location.
type PowerReliability string

const (
	PowerReliabilityNone         PowerReliability = "none"
	PowerReliabilityIntermittent PowerReliability = "intermittent"
	PowerReliabilityMostlyStable PowerReliability = "mostly_stable"
	PowerReliabilityStable       PowerReliability = "stable"
)

type WaterSource string

const (
	WaterSourceMains    WaterSource = "mains"
	WaterSourceBorehole WaterSource = "borehole"
	WaterSourceWell     WaterSource = "well"
	WaterSourceTanker   WaterSource = "tanker"
)

type RoadCondition string

const (
	RoadConditionPaved    RoadCondition = "paved"
	RoadConditionGravel   RoadCondition = "gravel"
	RoadConditionUntarred RoadCondition = "untarred"
	RoadConditionSeasonal RoadCondition = "seasonal"
)

// SecurityFeature is the closed vocabulary for on-site security attributes.
type SecurityFeature string

const (
	SecurityGatedEstate    SecurityFeature = "gated_estate"
	SecuritySecurityPost   SecurityFeature = "security_post"
	SecurityCCTV           SecurityFeature = "cctv"
	SecurityPerimeterFence SecurityFeature = "perimeter_fence"
	SecurityElectricFence  SecurityFeature = "electric_fence"
	SecurityGuardDogs      SecurityFeature = "guard_dogs"
)

// PropertyDetails carries the region-specific optional attributes of a
// listing. All fields are optional; each one, if present, must satisfy its
// own vocabulary.
//
// Storage model (DynamoDB):
//   - Table: property_details
//   - PK: property_id (1:1 with properties)

type PropertyDetails struct {
	PropertyID       string            `json:"property_id"`
	PowerReliability PowerReliability  `json:"power_reliability,omitempty"`
	BackupPower      bool              `json:"backup_power,omitempty"`
	WaterSource      WaterSource       `json:"water_source,omitempty"`
	WaterTreatment   bool              `json:"water_treatment,omitempty"`
	RoadCondition    RoadCondition     `json:"road_condition,omitempty"`
	SecurityFeatures []SecurityFeature `json:"security_features,omitempty"`
	HasOutbuilding   bool              `json:"has_outbuilding,omitempty"`
	OutbuildingNote  string            `json:"outbuilding_note,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
