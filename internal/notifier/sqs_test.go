package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iyhunko/realtime-catalog/internal/model"
)

// mockSQSClient is a mock implementation of the SQS client for testing.
type mockSQSClient struct {
	sendMessageFunc func(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

func (m *mockSQSClient) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if m.sendMessageFunc != nil {
		return m.sendMessageFunc(ctx, params, optFns...)
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestSQSPublisher_NotifyProductsUpdated(t *testing.T) {
	products := []model.Product{
		{ID: "1", Title: "Keyboard", Code: "kb-1", Price: 49.9, Status: true, Stock: 2, Category: "peripherals", Thumbnails: []string{}},
	}

	t.Run("successful message publish", func(t *testing.T) {
		// given
		queueURL := "https://sqs.us-east-1.amazonaws.com/123456789/catalog-updates"
		ctx := context.Background()

		mockClient := &mockSQSClient{
			sendMessageFunc: func(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
				assert.Equal(t, queueURL, *params.QueueUrl)
				require.NotNil(t, params.MessageBody)

				var msg CatalogMessage
				require.NoError(t, json.Unmarshal([]byte(*params.MessageBody), &msg))
				assert.Equal(t, EventProductsUpdated, msg.Event)
				assert.Equal(t, products, msg.Products)

				return &sqs.SendMessageOutput{
					MessageId: aws.String("test-message-id"),
				}, nil
			},
		}

		publisher := &SQSPublisher{
			client:   mockClient,
			queueURL: queueURL,
		}

		// when
		err := publisher.NotifyProductsUpdated(ctx, products)

		// then
		require.NoError(t, err)
	})

	t.Run("error sending message", func(t *testing.T) {
		// given
		queueURL := "https://sqs.us-east-1.amazonaws.com/123456789/catalog-updates"
		ctx := context.Background()

		expectedErr := errors.New("failed to send message")
		mockClient := &mockSQSClient{
			sendMessageFunc: func(_ context.Context, _ *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
				return nil, expectedErr
			},
		}

		publisher := &SQSPublisher{
			client:   mockClient,
			queueURL: queueURL,
		}

		// when
		err := publisher.NotifyProductsUpdated(ctx, products)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send message to SQS")
	})
}

func TestNewSQSPublisher(t *testing.T) {
	t.Run("creates publisher successfully", func(t *testing.T) {
		// given
		mockClient := &mockSQSClient{}
		queueURL := "https://sqs.us-east-1.amazonaws.com/123456789/catalog-updates"

		// when
		publisher := NewSQSPublisher(mockClient, queueURL)

		// then
		require.NotNil(t, publisher)
		assert.Equal(t, queueURL, publisher.queueURL)
	})
}
