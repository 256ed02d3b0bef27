package repository

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func stringValue(t *testing.T, av types.AttributeValue) string {
	t.Helper()
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("expected string attribute, got %T", av)
	}
	return s.Value
}

func TestVisibleListingsScanInput(t *testing.T) {
	input := visibleListingsScanInput("properties")

	if got := *input.FilterExpression; got != "#status = :live AND #verification = :verified" {
		t.Fatalf("unexpected filter expression: %q", got)
	}
	if input.ExpressionAttributeNames["#verification"] != "verification_status" {
		t.Fatalf("unexpected attribute names: %v", input.ExpressionAttributeNames)
	}
	if got := stringValue(t, input.ExpressionAttributeValues[":verified"]); got != "verified" {
		t.Fatalf("unexpected verification value: %q", got)
	}
}

func TestLiveListingsScanInput(t *testing.T) {
	input := liveListingsScanInput("properties")

	// Duplicate detection compares against live listings whether or not
	// verification has completed, so the scan must not filter on it.
	if got := *input.FilterExpression; got != "#status = :live" {
		t.Fatalf("unexpected filter expression: %q", got)
	}
	if _, ok := input.ExpressionAttributeValues[":verified"]; ok {
		t.Fatalf("verification must not constrain the duplicate scan: %v", input.ExpressionAttributeValues)
	}
	if got := stringValue(t, input.ExpressionAttributeValues[":live"]); got != "live" {
		t.Fatalf("unexpected status value: %q", got)
	}
}
