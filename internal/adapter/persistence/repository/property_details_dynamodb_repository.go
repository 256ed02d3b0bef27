package repository

import (
	"context"
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
	"github.com/x17green/realest-sub003/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPropertyDetailsTableName = "property_details"

type propertyDetailsItem struct {
	PropertyID       string   `dynamodbav:"property_id"`
	PowerReliability string   `dynamodbav:"power_reliability,omitempty"`
	BackupPower      bool     `dynamodbav:"backup_power"`
	WaterSource      string   `dynamodbav:"water_source,omitempty"`
	WaterTreatment   bool     `dynamodbav:"water_treatment"`
	RoadCondition    string   `dynamodbav:"road_condition,omitempty"`
	SecurityFeatures []string `dynamodbav:"security_features,omitempty"`
	HasOutbuilding   bool     `dynamodbav:"has_outbuilding"`
	OutbuildingNote  string   `dynamodbav:"outbuilding_note,omitempty"`
	CreatedAt        string   `dynamodbav:"created_at"`
	UpdatedAt        string   `dynamodbav:"updated_at"`
}

// PropertyDetailsDynamoRepository persists the optional region-specific
// attribute block, keyed 1:1 by property id.
//
// Table requirements:
//   - PK: property_id (string)

type PropertyDetailsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPropertyDetailsRepository = (*PropertyDetailsDynamoRepository)(nil)

func NewPropertyDetailsDynamoRepository(ddb *dynamodb.Client) *PropertyDetailsDynamoRepository {
	return &PropertyDetailsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPERTY_DETAILS_TABLE", defaultPropertyDetailsTableName),
	}
}

// Put overwrites any existing details row for the property. The listing
// write and this write are separate, non-transactional steps.
func (r *PropertyDetailsDynamoRepository) Put(ctx context.Context, d entities.PropertyDetails) (entities.PropertyDetails, error) {
	av, err := attributevalue.MarshalMap(toPropertyDetailsItem(d))
	if err != nil {
		return entities.PropertyDetails{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PropertyDetails{}, err
	}
	return d, nil
}

func (r *PropertyDetailsDynamoRepository) GetByPropertyID(ctx context.Context, propertyID string) (entities.PropertyDetails, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"property_id": &types.AttributeValueMemberS{Value: propertyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PropertyDetails{}, err
	}
	if len(out.Item) == 0 {
		return entities.PropertyDetails{}, nil
	}

	var it propertyDetailsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PropertyDetails{}, err
	}
	return fromPropertyDetailsItem(it), nil
}

func toPropertyDetailsItem(d entities.PropertyDetails) propertyDetailsItem {
	features := make([]string, 0, len(d.SecurityFeatures))
	for _, f := range d.SecurityFeatures {
		features = append(features, string(f))
	}
	return propertyDetailsItem{
		PropertyID:       d.PropertyID,
		PowerReliability: string(d.PowerReliability),
		BackupPower:      d.BackupPower,
		WaterSource:      string(d.WaterSource),
		WaterTreatment:   d.WaterTreatment,
		RoadCondition:    string(d.RoadCondition),
		SecurityFeatures: features,
		HasOutbuilding:   d.HasOutbuilding,
		OutbuildingNote:  d.OutbuildingNote,
		CreatedAt:        d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPropertyDetailsItem(it propertyDetailsItem) entities.PropertyDetails {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	features := make([]entities.SecurityFeature, 0, len(it.SecurityFeatures))
	for _, f := range it.SecurityFeatures {
		features = append(features, entities.SecurityFeature(f))
	}
	return entities.PropertyDetails{
		PropertyID:       it.PropertyID,
		PowerReliability: entities.PowerReliability(it.PowerReliability),
		BackupPower:      it.BackupPower,
		WaterSource:      entities.WaterSource(it.WaterSource),
		WaterTreatment:   it.WaterTreatment,
		RoadCondition:    entities.RoadCondition(it.RoadCondition),
		SecurityFeatures: features,
		HasOutbuilding:   it.HasOutbuilding,
		OutbuildingNote:  it.OutbuildingNote,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
