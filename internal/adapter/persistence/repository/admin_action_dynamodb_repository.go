package repository

import (
	"context"
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
	"github.com/x17green/realest-sub003/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAdminActionsTableName = "admin_actions"

type adminActionItem struct {
	ID        string `dynamodbav:"id"`
	AdminID   string `dynamodbav:"admin_id"`
	Action    string `dynamodbav:"action"`
	TargetID  string `dynamodbav:"target_id"`
	Note      string `dynamodbav:"note,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AdminActionDynamoRepository persists the append-only moderation audit
// trail.
//
// Table requirements:
//   - PK: id (string)

type AdminActionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAdminActionRepository = (*AdminActionDynamoRepository)(nil)

func NewAdminActionDynamoRepository(ddb *dynamodb.Client) *AdminActionDynamoRepository {
	return &AdminActionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ADMIN_ACTIONS_TABLE", defaultAdminActionsTableName),
	}
}

func (r *AdminActionDynamoRepository) Create(ctx context.Context, a entities.AdminAction) (entities.AdminAction, error) {
	av, err := attributevalue.MarshalMap(adminActionItem{
		ID:        a.ID,
		AdminID:   a.AdminID,
		Action:    string(a.Action),
		TargetID:  a.TargetID,
		Note:      a.Note,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.AdminAction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.AdminAction{}, err
	}
	return a, nil
}

func (r *AdminActionDynamoRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.AdminAction, error) {
	items, err := scanItemsCreatedBetween[adminActionItem](ctx, r.ddb, r.tableName, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]entities.AdminAction, 0, len(items))
	for _, it := range items {
		out = append(out, fromAdminActionItem(it))
	}
	return out, nil
}

func (r *AdminActionDynamoRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	items, err := scanItemsCreatedBetween[adminActionItem](ctx, r.ddb, r.tableName, from, to)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func fromAdminActionItem(it adminActionItem) entities.AdminAction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.AdminAction{
		ID:        it.ID,
		AdminID:   it.AdminID,
		Action:    entities.AdminActionType(it.Action),
		TargetID:  it.TargetID,
		Note:      it.Note,
		CreatedAt: createdAt,
	}
}
