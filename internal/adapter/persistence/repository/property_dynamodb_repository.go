package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
	"github.com/x17green/realest-sub003/internal/domain/search"
	"github.com/x17green/realest-sub003/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPropertiesTableName = "properties"

type propertyItem struct {
	ID           string   `dynamodbav:"id"`
	OwnerID      string   `dynamodbav:"owner_id"`
	Title        string   `dynamodbav:"title"`
	Description  string   `dynamodbav:"description"`
	PropertyType string   `dynamodbav:"property_type"`
	ListingType  string   `dynamodbav:"listing_type"`
	Price        float64  `dynamodbav:"price"`
	Currency     string   `dynamodbav:"currency"`
	Address      string   `dynamodbav:"address"`
	City         string   `dynamodbav:"city"`
	State        string   `dynamodbav:"state"`
	Latitude     float64  `dynamodbav:"latitude"`
	Longitude    float64  `dynamodbav:"longitude"`
	Bedrooms     int      `dynamodbav:"bedrooms"`
	Bathrooms    int      `dynamodbav:"bathrooms"`
	AreaSqm      float64  `dynamodbav:"area_sqm"`
	Status       string   `dynamodbav:"status"`
	Verification string   `dynamodbav:"verification_status"`
	DuplicateOf  []string `dynamodbav:"duplicate_of,omitempty"`
	CreatedAt    string   `dynamodbav:"created_at"`
	UpdatedAt    string   `dynamodbav:"updated_at"`
}

// PropertyDynamoRepository persists Property entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Search and duplicate detection scan the table and filter in process.
// There is no secondary index for text or price; the dataset per deployment
// is small enough that a filtered scan is acceptable.

type PropertyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPropertyRepository = (*PropertyDynamoRepository)(nil)

func NewPropertyDynamoRepository(ddb *dynamodb.Client) *PropertyDynamoRepository {
	return &PropertyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPERTIES_TABLE", defaultPropertiesTableName),
	}
}

func (r *PropertyDynamoRepository) Create(ctx context.Context, p entities.Property) (entities.Property, error) {
	av, err := attributevalue.MarshalMap(toPropertyItem(p))
	if err != nil {
		return entities.Property{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Property{}, err
	}
	return p, nil
}

func (r *PropertyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Property, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Property{}, err
	}
	if len(out.Item) == 0 {
		return entities.Property{}, nil
	}

	var it propertyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Property{}, err
	}
	return fromPropertyItem(it), nil
}

// SearchLive scans live verified listings, applies the compiled predicates
// in process, sorts newest-first and slices the requested page. The total
// is the match count before paging.
func (r *PropertyDynamoRepository) SearchLive(ctx context.Context, q search.Query) ([]entities.Property, int, error) {
	visible, err := r.scanVisible(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]entities.Property, 0, len(visible))
	for _, p := range visible {
		if q.Matches(p) {
			matched = append(matched, p)
		}
	}

	search.SortNewestFirst(matched)
	return q.Page(matched), len(matched), nil
}

func (r *PropertyDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.PropertyStatus) (entities.Property, error) {
	return r.conditionalUpdate(ctx, id, "status", string(from), string(to))
}

func (r *PropertyDynamoRepository) UpdateVerification(ctx context.Context, id string, from, to entities.VerificationStatus) (entities.Property, error) {
	return r.conditionalUpdate(ctx, id, "verification_status", string(from), string(to))
}

// conditionalUpdate applies the transition only while the attribute still
// holds the observed value. A failed condition returns the zero value so
// callers can treat lost races as invalid transitions.
func (r *PropertyDynamoRepository) conditionalUpdate(ctx context.Context, id, attr, from, to string) (entities.Property, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #attr = :from"),
		UpdateExpression:    aws.String("SET #attr = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#attr":       attr,
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: from},
			":to":         &types.AttributeValueMemberS{Value: to},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Property{}, nil
		}
		return entities.Property{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Property{}, nil
	}

	var it propertyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Property{}, err
	}
	return fromPropertyItem(it), nil
}

// FindDuplicates compares against every live listing regardless of its
// verification status, so a copy still awaiting review is caught too.
func (r *PropertyDynamoRepository) FindDuplicates(ctx context.Context, address string, lat, lng float64) ([]entities.Property, error) {
	live, err := r.scanProperties(ctx, liveListingsScanInput(r.tableName))
	if err != nil {
		return nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(address))
	var out []entities.Property
	for _, p := range live {
		sameAddress := normalized != "" && strings.ToLower(strings.TrimSpace(p.Address)) == normalized
		sameSpot := p.Latitude == lat && p.Longitude == lng
		if sameAddress || sameSpot {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PropertyDynamoRepository) MarkDuplicate(ctx context.Context, id string, duplicateOf []string) error {
	ids, err := attributevalue.Marshal(duplicateOf)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #duplicate_of = :ids, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#duplicate_of": "duplicate_of",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ids":        ids,
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	return err
}

func (r *PropertyDynamoRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Property, error) {
	items, err := r.scanCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Property, 0, len(items))
	for _, it := range items {
		out = append(out, fromPropertyItem(it))
	}
	return out, nil
}

func (r *PropertyDynamoRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	items, err := r.scanCreatedBetween(ctx, from, to)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (r *PropertyDynamoRepository) scanVisible(ctx context.Context) ([]entities.Property, error) {
	return r.scanProperties(ctx, visibleListingsScanInput(r.tableName))
}

// visibleListingsScanInput filters to what the public search surface shows,
// live status and verified.
func visibleListingsScanInput(tableName string) *dynamodb.ScanInput {
	return &dynamodb.ScanInput{
		TableName:        aws.String(tableName),
		FilterExpression: aws.String("#status = :live AND #verification = :verified"),
		ExpressionAttributeNames: map[string]string{
			"#status":       "status",
			"#verification": "verification_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":live":     &types.AttributeValueMemberS{Value: string(entities.PropertyStatusLive)},
			":verified": &types.AttributeValueMemberS{Value: string(entities.VerificationStatusVerified)},
		},
	}
}

// liveListingsScanInput filters on status alone.
func liveListingsScanInput(tableName string) *dynamodb.ScanInput {
	return &dynamodb.ScanInput{
		TableName:        aws.String(tableName),
		FilterExpression: aws.String("#status = :live"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":live": &types.AttributeValueMemberS{Value: string(entities.PropertyStatusLive)},
		},
	}
}

func (r *PropertyDynamoRepository) scanProperties(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Property, error) {
	var out []entities.Property
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []propertyItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromPropertyItem(it))
		}
	}
	return out, nil
}

func (r *PropertyDynamoRepository) scanCreatedBetween(ctx context.Context, from, to time.Time) ([]propertyItem, error) {
	return scanItemsCreatedBetween[propertyItem](ctx, r.ddb, r.tableName, from, to)
}

func toPropertyItem(p entities.Property) propertyItem {
	return propertyItem{
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
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPropertyItem(it propertyItem) entities.Property {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Property{
		ID:           it.ID,
		OwnerID:      it.OwnerID,
		Title:        it.Title,
		Description:  it.Description,
		PropertyType: entities.PropertyType(it.PropertyType),
		ListingType:  entities.ListingType(it.ListingType),
		Price:        it.Price,
		Currency:     it.Currency,
		Address:      it.Address,
		City:         it.City,
		State:        it.State,
		Latitude:     it.Latitude,
		Longitude:    it.Longitude,
		Bedrooms:     it.Bedrooms,
		Bathrooms:    it.Bathrooms,
		AreaSqm:      it.AreaSqm,
		Status:       entities.PropertyStatus(it.Status),
		Verification: entities.VerificationStatus(it.Verification),
		DuplicateOf:  it.DuplicateOf,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
