package repository

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// scanItemsCreatedBetween scans a table and keeps the items whose created_at
// falls inside [from, to). A zero from means no lower bound. Timestamps are
// compared after parsing; RFC3339Nano strings do not sort lexicographically
// once trailing zeros are trimmed.
func scanItemsCreatedBetween[T any](ctx context.Context, ddb *dynamodb.Client, tableName string, from, to time.Time) ([]T, error) {
	var raw []map[string]types.AttributeValue

	paginator := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{
		TableName: aws.String(tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			createdAt, ok := itemCreatedAt(item)
			if !ok {
				continue
			}
			if !from.IsZero() && createdAt.Before(from) {
				continue
			}
			if !createdAt.Before(to) {
				continue
			}
			raw = append(raw, item)
		}
	}

	out := make([]T, 0, len(raw))
	if err := attributevalue.UnmarshalListOfMaps(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func itemCreatedAt(item map[string]types.AttributeValue) (time.Time, bool) {
	attr, ok := item["created_at"].(*types.AttributeValueMemberS)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, attr.Value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
