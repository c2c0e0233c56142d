package gosqs

import (
	"context"
	"fmt"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

// CreateQueue creates a queue with the default attributes. A name ending in
// .fifo creates a FIFO queue.
func CreateQueue(ctx context.Context, cfg goaws.AwsConfig, name string) bool {
	res, err := NewSQS(cfg).Queues.CreateQueue(ctx, name, QueueDefault, nil)
	if !goaws.Succeeded("sqs.CreateQueue", err) {
		return false
	}
	fmt.Printf("Created queue with URL: %s\n", res.QueueUrl)
	return true
}

// ListQueues prints the URL of every queue in the account.
func ListQueues(ctx context.Context, cfg goaws.AwsConfig) bool {
	res, err := NewSQS(cfg).Queues.ListQueues(ctx, "")
	if !goaws.Succeeded("sqs.ListQueues", err) {
		return false
	}
	if len(res.QueueUrls) == 0 {
		fmt.Println("You don't have any queues!")
		return true
	}
	fmt.Println("Queues:")
	for _, url := range res.QueueUrls {
		fmt.Printf("\t%s\n", url)
	}
	return true
}

func DeleteQueue(ctx context.Context, cfg goaws.AwsConfig, queueURL string) bool {
	err := NewSQS(cfg).Queues.DeleteQueue(ctx, queueURL)
	if !goaws.Succeeded("sqs.DeleteQueue", err) {
		return false
	}
	fmt.Printf("Deleted queue %s\n", queueURL)
	return true
}

// SendMessage sends body to the queue with optional message attributes.
func SendMessage(ctx context.Context, cfg goaws.AwsConfig, queueURL, body string, attributes ...MsgAV) bool {
	options := SendMsgDefault
	options.QueueURL = queueURL
	options.MessageBody = body
	if len(attributes) > 0 {
		options.MessageAttributes = CreateMsgAttributes(attributes)
	}

	res, err := NewSQS(cfg).Messages.SendMessage(ctx, options)
	if !goaws.Succeeded("sqs.SendMessage", err) {
		return false
	}
	fmt.Printf("Message sent, ID: %s\n", res.MessageId)
	return true
}

// ReceiveMessages receives up to maxMessages messages, prints their bodies
// and deletes them from the queue.
func ReceiveMessages(ctx context.Context, cfg goaws.AwsConfig, queueURL string, maxMessages int32) bool {
	svc := NewSQS(cfg)
	options := RecMsgDefault
	options.QueueURL = queueURL
	options.MaxNumberOfMessages = maxMessages

	res, err := svc.Messages.ReceiveMessage(ctx, options)
	if !goaws.Succeeded("sqs.ReceiveMessage", err) {
		return false
	}
	if len(res.Messages) == 0 {
		fmt.Println("No messages received.")
		return true
	}

	req := DeleteMessageBatchRequest{QueueURL: queueURL}
	for _, msg := range res.Messages {
		fmt.Printf("Message %s: %s\n", msg.MessageId, msg.Body)
		req.MessageIDs = append(req.MessageIDs, msg.MessageId)
		req.ReceiptHandles = append(req.ReceiptHandles, msg.ReceiptHandle)
	}

	deleted, err := svc.Messages.DeleteMessageBatch(ctx, req)
	if !goaws.Succeeded("sqs.DeleteMessageBatch", err) {
		return false
	}
	for _, f := range deleted.Failed {
		fmt.Printf("Message %s was not deleted: %s\n", f.MessageID, f.ErrorMessage)
	}
	return len(deleted.Failed) == 0
}
