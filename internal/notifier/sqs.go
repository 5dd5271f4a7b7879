package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/iyhunko/realtime-catalog/internal/model"
)

// SQSAPI defines the SQS operations used by SQSPublisher.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher forwards catalog-change notifications to an SQS queue so
// backend observers can follow the collection without a websocket.
type SQSPublisher struct {
	client   SQSAPI
	queueURL string
}

// NewSQSPublisher creates a publisher with the given client and queue URL.
func NewSQSPublisher(client SQSAPI, queueURL string) *SQSPublisher {
	return &SQSPublisher{
		client:   client,
		queueURL: queueURL,
	}
}

// CatalogMessage is the wire envelope for a catalog-change notification.
type CatalogMessage struct {
	Event    string          `json:"event"`
	Products []model.Product `json:"products"`
}

// NotifyProductsUpdated publishes the full post-mutation collection to the
// queue.
func (p *SQSPublisher) NotifyProductsUpdated(ctx context.Context, products []model.Product) error {
	messageBody, err := json.Marshal(CatalogMessage{
		Event:    EventProductsUpdated,
		Products: products,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(messageBody)),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}
