package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
	"github.com/x17green/realest-sub003/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInquiriesTableName = "inquiries"
	inquiryReceiverIndexName  = "receiver_id-index"
)

type inquiryItem struct {
	ID         string `dynamodbav:"id"`
	PropertyID string `dynamodbav:"property_id"`
	SenderID   string `dynamodbav:"sender_id"`
	ReceiverID string `dynamodbav:"receiver_id"`
	Message    string `dynamodbav:"message"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// InquiryDynamoRepository persists Inquiry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI receiver_id-index: PK receiver_id (string)

type InquiryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInquiryRepository = (*InquiryDynamoRepository)(nil)

func NewInquiryDynamoRepository(ddb *dynamodb.Client) *InquiryDynamoRepository {
	return &InquiryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INQUIRIES_TABLE", defaultInquiriesTableName),
	}
}

func (r *InquiryDynamoRepository) Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error) {
	av, err := attributevalue.MarshalMap(toInquiryItem(i))
	if err != nil {
		return entities.Inquiry{}, err
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
		return entities.Inquiry{}, err
	}
	return i, nil
}

func (r *InquiryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Inquiry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Inquiry{}, err
	}
	if len(out.Item) == 0 {
		return entities.Inquiry{}, nil
	}

	var it inquiryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Inquiry{}, err
	}
	return fromInquiryItem(it), nil
}

// ListByReceiverID queries the receiver GSI and returns the inquiries
// newest-first.
func (r *InquiryDynamoRepository) ListByReceiverID(ctx context.Context, receiverID string) ([]entities.Inquiry, error) {
	var out []entities.Inquiry

	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(inquiryReceiverIndexName),
		KeyConditionExpression: aws.String("#receiver_id = :receiver_id"),
		ExpressionAttributeNames: map[string]string{
			"#receiver_id": "receiver_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":receiver_id": &types.AttributeValueMemberS{Value: receiverID},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []inquiryItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromInquiryItem(it))
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out, nil
}

func (r *InquiryDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.InquiryStatus) (entities.Inquiry, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Inquiry{}, nil
		}
		return entities.Inquiry{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Inquiry{}, nil
	}

	var it inquiryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Inquiry{}, err
	}
	return fromInquiryItem(it), nil
}

func (r *InquiryDynamoRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Inquiry, error) {
	items, err := scanItemsCreatedBetween[inquiryItem](ctx, r.ddb, r.tableName, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Inquiry, 0, len(items))
	for _, it := range items {
		out = append(out, fromInquiryItem(it))
	}
	return out, nil
}

func (r *InquiryDynamoRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	items, err := scanItemsCreatedBetween[inquiryItem](ctx, r.ddb, r.tableName, from, to)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func toInquiryItem(i entities.Inquiry) inquiryItem {
	return inquiryItem{
		ID:         i.ID,
		PropertyID: i.PropertyID,
		SenderID:   i.SenderID,
		ReceiverID: i.ReceiverID,
		Message:    i.Message,
		Status:     string(i.Status),
		CreatedAt:  i.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInquiryItem(it inquiryItem) entities.Inquiry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Inquiry{
		ID:         it.ID,
		PropertyID: it.PropertyID,
		SenderID:   it.SenderID,
		ReceiverID: it.ReceiverID,
		Message:    it.Message,
		Status:     entities.InquiryStatus(it.Status),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
