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

const defaultProfilesTableName = "profiles"

type profileItem struct {
	ID        string `dynamodbav:"id"`
	Email     string `dynamodbav:"email"`
	Name      string `dynamodbav:"name"`
	UserType  string `dynamodbav:"user_type"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ProfileDynamoRepository reads the profiles table. This service never
// writes profiles; onboarding owns them.
//
// Table requirements:
//   - PK: id (string)

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Profile, error) {
	items, err := scanItemsCreatedBetween[profileItem](ctx, r.ddb, r.tableName, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Profile, 0, len(items))
	for _, it := range items {
		out = append(out, fromProfileItem(it))
	}
	return out, nil
}

func (r *ProfileDynamoRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	items, err := scanItemsCreatedBetween[profileItem](ctx, r.ddb, r.tableName, from, to)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func fromProfileItem(it profileItem) entities.Profile {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Profile{
		ID:        it.ID,
		Email:     it.Email,
		Name:      it.Name,
		UserType:  entities.UserType(it.UserType),
		CreatedAt: createdAt,
	}
}
