package ddb

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/filtex/listsource"
)

// Client is the subset of the DynamoDB API the source uses.
type Client interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Source implements listsource.Source for DynamoDB.
type Source struct {
	client    Client
	tableName string
}

// NewSource creates a DynamoDB list source reading from the given table.
func NewSource(client Client, tableName string) *Source {
	return &Source{
		client:    client,
		tableName: tableName,
	}
}

// Fetch queries all members of the named list and returns them as a
// newline-separated snapshot, so the result feeds listsource.Members
// like any other provider's payload. A list with no items maps to
// listsource.ErrNotFound.
func (s *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	var buf bytes.Buffer
	found := false

	paginator := dynamodb.NewQueryPaginator(s.client, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("list_name = :name"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			member, ok := item["member"].(*types.AttributeValueMemberS)
			if !ok {
				continue
			}
			found = true
			buf.WriteString(member.Value)
			buf.WriteByte('\n')
		}
	}

	if !found {
		return nil, listsource.ErrNotFound
	}
	return buf.Bytes(), nil
}
