package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iyhunko/realtime-catalog/internal/model"
)

// mockConsumerClient is a mock implementation of ConsumerAPI for testing.
type mockConsumerClient struct {
	receiveFunc func(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	deleted     []string
}

func (m *mockConsumerClient) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	if m.receiveFunc != nil {
		return m.receiveFunc(ctx, params, optFns...)
	}
	return &sqs.ReceiveMessageOutput{}, nil
}

func (m *mockConsumerClient) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	m.deleted = append(m.deleted, *params.ReceiptHandle)
	return &sqs.DeleteMessageOutput{}, nil
}

func catalogMessageBody(t *testing.T) *string {
	t.Helper()
	body, err := json.Marshal(CatalogMessage{
		Event: EventProductsUpdated,
		Products: []model.Product{
			{ID: "1", Title: "Keyboard", Code: "kb-1", Price: 49.9, Status: true, Stock: 2, Category: "peripherals", Thumbnails: []string{}},
		},
	})
	require.NoError(t, err)
	return aws.String(string(body))
}

func TestConsumerProcessesAndDeletesMessages(t *testing.T) {
	// given
	ctx := context.Background()
	mockClient := &mockConsumerClient{
		receiveFunc: func(_ context.Context, params *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
			assert.Equal(t, "test-queue-url", *params.QueueUrl)
			return &sqs.ReceiveMessageOutput{
				Messages: []types.Message{
					{Body: catalogMessageBody(t), ReceiptHandle: aws.String("receipt-1")},
				},
			}, nil
		},
	}
	consumer := NewConsumer(mockClient, "test-queue-url")

	// when
	err := consumer.receiveMessages(ctx)

	// then
	require.NoError(t, err)
	assert.Equal(t, []string{"receipt-1"}, mockClient.deleted, "processed messages are deleted from the queue")
}

func TestConsumerKeepsUnparseableMessages(t *testing.T) {
	// given
	ctx := context.Background()
	mockClient := &mockConsumerClient{
		receiveFunc: func(_ context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
			return &sqs.ReceiveMessageOutput{
				Messages: []types.Message{
					{Body: aws.String("{not json"), ReceiptHandle: aws.String("receipt-1")},
				},
			}, nil
		},
	}
	consumer := NewConsumer(mockClient, "test-queue-url")

	// when
	err := consumer.receiveMessages(ctx)

	// then
	require.NoError(t, err)
	assert.Empty(t, mockClient.deleted, "failed messages stay on the queue")
}

func TestConsumerReceiveError(t *testing.T) {
	// given
	ctx := context.Background()
	mockClient := &mockConsumerClient{
		receiveFunc: func(_ context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
			return nil, errors.New("queue unreachable")
		},
	}
	consumer := NewConsumer(mockClient, "test-queue-url")

	// when
	err := consumer.receiveMessages(ctx)

	// then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to receive messages")
}

func TestConsumerStartStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	consumer := NewConsumer(&mockConsumerClient{}, "test-queue-url")

	err := consumer.Start(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
