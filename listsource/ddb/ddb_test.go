package ddb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/filtex/listsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDDBClient mocks the DynamoDB operations used by Source.
type MockDDBClient struct {
	mock.Mock
}

func (m *MockDDBClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*dynamodb.QueryOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func memberItem(v string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"member": &types.AttributeValueMemberS{Value: v},
	}
}

func TestSource_Fetch(t *testing.T) {
	mockClient := new(MockDDBClient)
	src := NewSource(mockClient, "filter-lists")

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		name, ok := input.ExpressionAttributeValues[":name"].(*types.AttributeValueMemberS)
		return *input.TableName == "filter-lists" && ok && name.Value == "agents"
	})).Return(&dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{
			memberItem("curl"),
			memberItem("wget"),
		},
	}, nil).Once()

	data, err := src.Fetch(context.Background(), "agents")
	assert.NoError(t, err)
	assert.Equal(t, "curl\nwget\n", string(data))
}

func TestSource_Fetch_Pagination(t *testing.T) {
	mockClient := new(MockDDBClient)
	src := NewSource(mockClient, "filter-lists")

	lastKey := map[string]types.AttributeValue{
		"member": &types.AttributeValueMemberS{Value: "curl"},
	}

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return input.ExclusiveStartKey == nil
	})).Return(&dynamodb.QueryOutput{
		Items:            []map[string]types.AttributeValue{memberItem("curl")},
		LastEvaluatedKey: lastKey,
	}, nil).Once()

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return input.ExclusiveStartKey != nil
	})).Return(&dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{memberItem("wget")},
	}, nil).Once()

	data, err := src.Fetch(context.Background(), "agents")
	assert.NoError(t, err)
	assert.Equal(t, "curl\nwget\n", string(data))
}

func TestSource_Fetch_Empty(t *testing.T) {
	mockClient := new(MockDDBClient)
	src := NewSource(mockClient, "filter-lists")

	mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil).Once()

	_, err := src.Fetch(context.Background(), "agents")
	assert.Equal(t, listsource.ErrNotFound, err)
}
