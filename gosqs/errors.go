package gosqs

import (
	"errors"
	"fmt"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

var (
	ErrFifoQueueName = errors.New("FIFO queue names must end in .fifo")
)

type EmptyQueueUrlInRequestError struct {
	*goaws.ClientErr
}

func NewEmptyQueueUrlInRequestError() *EmptyQueueUrlInRequestError {
	return &EmptyQueueUrlInRequestError{
		goaws.NewClientError(errors.New("empty queue url in request")),
	}
}

type EmptyQueueUrlInResponseError struct {
	*goaws.ClientErr
}

func NewEmptyQueueUrlInResponseError() *EmptyQueueUrlInResponseError {
	return &EmptyQueueUrlInResponseError{
		goaws.NewClientError(errors.New("empty queue url in response")),
	}
}

type InvalidQueueNameError struct {
	*goaws.ClientErr
}

func NewInvalidQueueNameError(name string) *InvalidQueueNameError {
	return &InvalidQueueNameError{
		goaws.NewClientError(fmt.Errorf("%w: %s", ErrFifoQueueName, name)),
	}
}

type InvalidMessageContentError struct {
	*goaws.ClientErr
}

func NewInvalidMessageContentError(content *string) *InvalidMessageContentError {
	var msg = "nil body"
	if content != nil {
		msg = *content
	}
	return &InvalidMessageContentError{
		goaws.NewClientError(fmt.Errorf("invalid message content: %s", msg)),
	}
}

type InvalidReceiptHandlesError struct {
	*goaws.ClientErr
}

func NewInvalidReceiptHandlesError(messageIds, receiptHandles int) *InvalidReceiptHandlesError {
	return &InvalidReceiptHandlesError{
		goaws.NewClientError(fmt.Errorf("must be equal number of message IDs (%d) and receipt handles (%d)", messageIds, receiptHandles)),
	}
}

type NoMessageIDsInBatchRequestError struct {
	*goaws.ClientErr
}

func NewNoMessageIDsInBatchRequestError() *NoMessageIDsInBatchRequestError {
	return &NoMessageIDsInBatchRequestError{
		goaws.NewClientError(errors.New("no message IDs in request")),
	}
}

type MaxMessagesInBatchRequestError struct {
	*goaws.ClientErr
}

func NewMaxMessagesExceededError(msgs int) *MaxMessagesInBatchRequestError {
	return &MaxMessagesInBatchRequestError{
		goaws.NewClientError(fmt.Errorf("max %d messages per request (%d)", maxBatchSize, msgs)),
	}
}

type QueueNotFoundError struct {
	*goaws.ClientErr
}

func NewQueueNotFoundError(name string) *QueueNotFoundError {
	return &QueueNotFoundError{
		goaws.NewClientError(fmt.Errorf("queue '%s' does not exist", name)),
	}
}

// QueueExistsError is returned when a queue with the same name but
// different attributes already exists.
type QueueExistsError struct {
	*goaws.ClientErr
}

func NewQueueExistsError(name string) *QueueExistsError {
	return &QueueExistsError{
		goaws.NewClientError(fmt.Errorf("queue '%s' already exists", name)),
	}
}

type InvalidAddressError struct {
	*goaws.ClientErr
}

func NewInvalidAddressError(address string) *InvalidAddressError {
	return &InvalidAddressError{
		goaws.NewClientError(fmt.Errorf("invalid address '%s'", address)),
	}
}

// PurgeInProgressError is returned when the queue was purged less than 60
// seconds ago.
type PurgeInProgressError struct {
	*goaws.RetryableClientError
}

func NewPurgeInProgressError(url string) *PurgeInProgressError {
	return &PurgeInProgressError{
		goaws.NewRetryableClientError(fmt.Errorf("purge already in progress for '%s'", url)),
	}
}

type ThrottledError struct {
	*goaws.RetryableClientError
}

func NewThrottledError(msg string) *ThrottledError {
	return &ThrottledError{goaws.NewRetryableClientError(fmt.Errorf("throttled: %s", msg))}
}

// handleErr maps an SDK error to the package error types. resource is the
// queue name or URL of the request.
func handleErr(err error, resource string) error {
	if err == nil {
		return nil
	}

	var (
		notExist       *types.QueueDoesNotExist
		nameExists     *types.QueueNameExists
		invalidAddress *types.InvalidAddress
		badContent     *types.InvalidMessageContents
		purging        *types.PurgeQueueInProgress
		throttled      *types.RequestThrottled
		re             *awshttp.ResponseError
	)
	switch {
	case errors.As(err, &notExist):
		return NewQueueNotFoundError(resource)
	case errors.As(err, &nameExists):
		return NewQueueExistsError(resource)
	case errors.As(err, &invalidAddress):
		return NewInvalidAddressError(resource)
	case errors.As(err, &badContent):
		return NewInvalidMessageContentError(badContent.Message)
	case errors.As(err, &purging):
		return NewPurgeInProgressError(resource)
	case errors.As(err, &throttled):
		return NewThrottledError(throttled.ErrorMessage())
	case errors.As(err, &re):
		switch {
		case re.HTTPStatusCode() == http.StatusNotFound:
			return NewQueueNotFoundError(resource)
		case re.HTTPStatusCode() >= http.StatusInternalServerError:
			return goaws.NewRetryableInternalError(err)
		default:
			return goaws.NewInternalError(err)
		}
	default:
		return goaws.NewInternalError(err)
	}
}
