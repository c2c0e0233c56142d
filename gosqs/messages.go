package gosqs

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.openly.dev/pointy"
)

// Service limits.
const (
	maxBatchSize         = 10
	maxDelaySeconds      = 900
	maxVisibilityTimeout = 43200
	maxWaitTimeSeconds   = 20
)

// MessagesLogic defines common methods for SQS Messages
//
//go:generate mockgen -destination=../mocks/gosqsmock/messages.go -package=gosqsmock . MessagesLogic
type MessagesLogic interface {
	SendMessage(ctx context.Context, options SendMsgOptions) (*SendMsgResponse, error)
	ReceiveMessage(ctx context.Context, options RecMsgOptions) (*ReceiveMessageResponse, error)
	DeleteMessage(ctx context.Context, url, handle string) error
	DeleteMessageBatch(ctx context.Context, req DeleteMessageBatchRequest) (*DeleteMessageBatchResponse, error)
	ChangeMessageVisibilityBatch(ctx context.Context, req BatchUpdateVisibilityTimeoutRequest) (*BatchUpdateVisibilityTimeoutResponse, error)
}

// SQSMessagesClientAPI defines the interface for the AWS SQS client methods used by this package.
//
//go:generate mockgen -destination=./messages_client_api_test.go -package=gosqs . SQSMessagesClientAPI
type SQSMessagesClientAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
	DeleteMessageBatch(ctx context.Context, params *sqs.DeleteMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageBatchOutput, error)
	ChangeMessageVisibilityBatch(ctx context.Context, params *sqs.ChangeMessageVisibilityBatchInput, optFns ...func(*sqs.Options)) (*sqs.ChangeMessageVisibilityBatchOutput, error)
}

type Messages struct {
	svc SQSMessagesClientAPI
}

func NewMessages(svc SQSMessagesClientAPI) *Messages {
	return &Messages{
		svc: svc,
	}
}

// SendMessage sends a new message to a queue per the options argument.
// Messages sent to FIFO queues without a deduplication ID get a generated
// one. Without a group ID they share a single group derived from the queue
// URL.
func (s *Messages) SendMessage(ctx context.Context, options SendMsgOptions) (*SendMsgResponse, error) {
	if options.QueueURL == "" {
		return nil, NewEmptyQueueUrlInRequestError()
	}
	// ensure values are valid
	if options.DelaySeconds < 0 {
		options.DelaySeconds = 0
	}
	if options.DelaySeconds > maxDelaySeconds {
		options.DelaySeconds = maxDelaySeconds
	}
	input := &sqs.SendMessageInput{
		MessageAttributes:       options.MessageAttributes,
		MessageBody:             aws.String(options.MessageBody),
		MessageSystemAttributes: options.MessageSystemAttributes,
		QueueUrl:                aws.String(options.QueueURL),
	}
	// set FIFO queue options; per-message delays are not supported by FIFO queues
	if IsFifoQueue(options.QueueURL) {
		if options.MessageDeduplicationId != "" {
			input.MessageDeduplicationId = aws.String(options.MessageDeduplicationId)
		} else {
			input.MessageDeduplicationId = pointy.String(GenerateDedupeID(options.MessageBody))
		}
		if options.MessageGroupId != "" {
			input.MessageGroupId = aws.String(options.MessageGroupId)
		} else {
			input.MessageGroupId = pointy.String(hashString(options.QueueURL))
		}
	} else {
		input.DelaySeconds = options.DelaySeconds
	}

	out, err := s.svc.SendMessage(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.SendMessage: %w", err), options.QueueURL)
	}
	resp := wrapSendMsgOutput(out)
	return resp, nil
}

// ReceiveMessage receives up to options.MaxNumberOfMessages messages from a
// queue. Out of range options are clamped to the limits of the service.
func (s *Messages) ReceiveMessage(ctx context.Context, options RecMsgOptions) (*ReceiveMessageResponse, error) {
	var msgs = make([]*Message, 0)

	if options.QueueURL == "" {
		return nil, NewEmptyQueueUrlInRequestError()
	}
	// ensure values are valid
	if options.MaxNumberOfMessages < 1 {
		options.MaxNumberOfMessages = 1
	}
	if options.MaxNumberOfMessages > maxBatchSize {
		options.MaxNumberOfMessages = maxBatchSize
	}
	if options.VisibilityTimeout < 0 {
		options.VisibilityTimeout = 0
	}
	if options.VisibilityTimeout > maxVisibilityTimeout {
		options.VisibilityTimeout = maxVisibilityTimeout
	}
	if options.WaitTimeSeconds < 0 {
		options.WaitTimeSeconds = 0
	}
	if options.WaitTimeSeconds > maxWaitTimeSeconds {
		options.WaitTimeSeconds = maxWaitTimeSeconds
	}

	input := &sqs.ReceiveMessageInput{
		MessageSystemAttributeNames: options.AttributeNames,
		MaxNumberOfMessages:         options.MaxNumberOfMessages,
		MessageAttributeNames:       options.MessageAttributeNames,
		QueueUrl:                    aws.String(options.QueueURL),
		VisibilityTimeout:           options.VisibilityTimeout,
		WaitTimeSeconds:             options.WaitTimeSeconds,
	}
	// set ReceiveRequestAttemptID for FIFO queues if not set
	if IsFifoQueue(options.QueueURL) {
		if options.ReceiveRequestAttemptId == "" {
			options.ReceiveRequestAttemptId = GenerateDedupeID(options.QueueURL)
		}
		input.ReceiveRequestAttemptId = pointy.String(options.ReceiveRequestAttemptId)
	}

	msgResult, err := s.svc.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.ReceiveMessage: %w", err), options.QueueURL)
	}
	for _, msg := range msgResult.Messages {
		conv := convertMessage(msg)
		msgs = append(msgs, conv)
	}
	return &ReceiveMessageResponse{Messages: msgs}, nil
}

func wrapSendMsgOutput(out *sqs.SendMessageOutput) *SendMsgResponse {
	resp := new(SendMsgResponse)
	if out.MD5OfMessageAttributes != nil {
		resp.MD5OfMessageAttributes = *out.MD5OfMessageAttributes
	}
	if out.MD5OfMessageBody != nil {
		resp.MD5OfMessageBody = *out.MD5OfMessageBody
	}
	if out.MD5OfMessageSystemAttributes != nil {
		resp.MD5OfMessageSystemAttributes = *out.MD5OfMessageSystemAttributes
	}
	if out.MessageId != nil {
		resp.MessageId = *out.MessageId
	}
	if out.SequenceNumber != nil {
		resp.SequenceNumber = *out.SequenceNumber
	}
	return resp
}

// convert types.Message to Message struct
func convertMessage(msg types.Message) *Message {
	attributes := make(map[string]string)
	for k, v := range msg.Attributes {
		attributes[k] = v
	}
	msgAttributes := make(map[string]MsgAV)
	for k, v := range msg.MessageAttributes {
		msgAttributes[k] = MsgAV{
			Key:      k,
			DataType: aws.ToString(v.DataType),
			Value:    aws.ToString(v.StringValue),
		}
	}

	return &Message{
		Attributes:             attributes,
		Body:                   aws.ToString(msg.Body),
		MD5OfBody:              aws.ToString(msg.MD5OfBody),
		MessageAttributes:      msgAttributes,
		MessageId:              aws.ToString(msg.MessageId),
		ReceiptHandle:          aws.ToString(msg.ReceiptHandle),
		MD5OfMessageAttributes: aws.ToString(msg.MD5OfMessageAttributes),
	}
}

// GenerateDedupeID generates a MD5 hash from a
// timestamp of the current time + the given value.
func GenerateDedupeID(value string) string {
	return hashString(strconv.FormatInt(time.Now().UnixNano(), 10) + value)
}

func hashString(value string) string {
	hash := md5.Sum([]byte(value))
	return hex.EncodeToString(hash[:])
}

// DeleteMessage deletes a message from the specified queue (by url) with the
// given handle.
func (s *Messages) DeleteMessage(ctx context.Context, url, handle string) error {
	if _, err := s.svc.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(url),
		ReceiptHandle: aws.String(handle),
	}); err != nil {
		return handleErr(fmt.Errorf("s.svc.DeleteMessage: %w", err), url)
	}
	return nil
}

// validateBatch checks the shared constraints of batch requests.
func validateBatch(url string, messageIDs, receiptHandles []string) error {
	if url == "" {
		return NewEmptyQueueUrlInRequestError()
	}
	if len(messageIDs) != len(receiptHandles) {
		return NewInvalidReceiptHandlesError(len(messageIDs), len(receiptHandles))
	}
	if len(messageIDs) == 0 {
		return NewNoMessageIDsInBatchRequestError()
	}
	if len(messageIDs) > maxBatchSize {
		return NewMaxMessagesExceededError(len(messageIDs))
	}
	return nil
}

// DeleteMessageBatch deletes a batch of up to 10 messages. Entries the
// service could not delete are returned in Failed with their receipt handle.
func (s *Messages) DeleteMessageBatch(ctx context.Context, req DeleteMessageBatchRequest) (*DeleteMessageBatchResponse, error) {
	if err := validateBatch(req.QueueURL, req.MessageIDs, req.ReceiptHandles); err != nil {
		return nil, err
	}

	handles := make(map[string]string)
	entries := make([]types.DeleteMessageBatchRequestEntry, 0, len(req.MessageIDs))
	for i, handle := range req.ReceiptHandles {
		msgID := req.MessageIDs[i]
		entries = append(entries, types.DeleteMessageBatchRequestEntry{
			Id:            aws.String(msgID),
			ReceiptHandle: aws.String(handle),
		})
		handles[msgID] = handle
	}
	result, err := s.svc.DeleteMessageBatch(ctx, &sqs.DeleteMessageBatchInput{
		Entries:  entries,
		QueueUrl: aws.String(req.QueueURL),
	})
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.DeleteMessageBatch: %w", err), req.QueueURL)
	}
	return wrapBatchDeleteOutput(result, handles), nil
}

// wrap sqs.DeleteMessageBatchOutput object
func wrapBatchDeleteOutput(output *sqs.DeleteMessageBatchOutput, handles map[string]string) *DeleteMessageBatchResponse {
	wrapSuccessful := make([]BatchDeleteResultEntry, 0)
	wrapFailed := make([]BatchDeleteErrEntry, 0)

	for _, entry := range output.Successful {
		wrapSuccessful = append(wrapSuccessful, BatchDeleteResultEntry{
			MessageID: aws.ToString(entry.Id),
		})
	}
	for _, entry := range output.Failed {
		msgID := aws.ToString(entry.Id)
		wrapFailed = append(wrapFailed, BatchDeleteErrEntry{
			ErrorCode:     aws.ToString(entry.Code),
			MessageID:     msgID,
			ReceiptHandle: handles[msgID],
			ErrorMessage:  aws.ToString(entry.Message),
			SenderFault:   entry.SenderFault,
		})
	}
	return &DeleteMessageBatchResponse{
		Successful: wrapSuccessful,
		Failed:     wrapFailed,
	}
}

// ChangeMessageVisibilityBatch updates the visibility timeout for a batch of messages
// represented by the given MessageIds and ReceiptHandles. Assumes msgIDs[i] and handles[i] args
// are in order and correspond to the same message.
func (s *Messages) ChangeMessageVisibilityBatch(ctx context.Context, req BatchUpdateVisibilityTimeoutRequest) (*BatchUpdateVisibilityTimeoutResponse, error) {
	if err := validateBatch(req.QueueURL, req.MessageIDs, req.ReceiptHandles); err != nil {
		return nil, err
	}

	entries := make([]types.ChangeMessageVisibilityBatchRequestEntry, 0, len(req.MessageIDs))
	for i, id := range req.MessageIDs {
		entries = append(entries, types.ChangeMessageVisibilityBatchRequestEntry{
			Id:                aws.String(id),
			ReceiptHandle:     aws.String(req.ReceiptHandles[i]),
			VisibilityTimeout: req.TimeoutSeconds,
		})
	}

	output, err := s.svc.ChangeMessageVisibilityBatch(ctx, &sqs.ChangeMessageVisibilityBatchInput{
		QueueUrl: aws.String(req.QueueURL),
		Entries:  entries,
	})
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.ChangeMessageVisibilityBatch: %w", err), req.QueueURL)
	}

	return wrapBatchUpdateVisibilityTimeoutOutput(output), nil
}

// wrap sqs.ChangeMessageVisibilityBatchOutput object
func wrapBatchUpdateVisibilityTimeoutOutput(output *sqs.ChangeMessageVisibilityBatchOutput) *BatchUpdateVisibilityTimeoutResponse {
	wrapSuccessful := make([]BatchUpdateVisibilityTimeoutEntry, 0)
	wrapFailed := make([]BatchUpdateVisibilityTimeoutErrEntry, 0)

	for _, entry := range output.Successful {
		wrapSuccessful = append(wrapSuccessful, BatchUpdateVisibilityTimeoutEntry{
			MessageID: aws.ToString(entry.Id),
		})
	}
	for _, entry := range output.Failed {
		wrapFailed = append(wrapFailed, BatchUpdateVisibilityTimeoutErrEntry{
			ErrorCode:    aws.ToString(entry.Code),
			MessageId:    aws.ToString(entry.Id),
			ErrorMessage: aws.ToString(entry.Message),
			SenderFault:  entry.SenderFault,
		})
	}
	return &BatchUpdateVisibilityTimeoutResponse{
		Successful: wrapSuccessful,
		Failed:     wrapFailed,
	}
}
