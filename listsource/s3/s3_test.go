package s3

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/filtex/listsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockS3Client mocks the S3 operations used by Source.
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*s3.HeadObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*s3.GetObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSource_Fetch_NotFound(t *testing.T) {
	mockClient := new(MockS3Client)
	src := NewSource(mockClient, "test-bucket", "lists")

	mockClient.On("HeadObject", mock.Anything, mock.MatchedBy(func(input *s3.HeadObjectInput) bool {
		return *input.Bucket == "test-bucket" && *input.Key == "lists/agents"
	})).Return(nil, &types.NotFound{}).Once()

	_, err := src.Fetch(context.Background(), "agents")
	assert.Equal(t, listsource.ErrNotFound, err)
}

func TestSource_Fetch(t *testing.T) {
	mockClient := new(MockS3Client)
	src := NewSource(mockClient, "test-bucket", "lists")

	payload := "curl\nwget\n"

	mockClient.On("HeadObject", mock.Anything, mock.MatchedBy(func(input *s3.HeadObjectInput) bool {
		return *input.Bucket == "test-bucket" && *input.Key == "lists/agents"
	})).Return(&s3.HeadObjectOutput{
		ContentLength: aws.Int64(int64(len(payload))),
	}, nil).Once()

	mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
		return *input.Bucket == "test-bucket" && *input.Key == "lists/agents"
	})).Return(&s3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader(payload)),
		ContentLength: aws.Int64(int64(len(payload))),
		ContentRange:  aws.String("bytes 0-9/10"),
	}, nil).Once()

	data, err := src.Fetch(context.Background(), "agents")
	assert.NoError(t, err)
	assert.Equal(t, payload, string(data))
}
