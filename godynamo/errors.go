package godynamo

import (
	"errors"
	"fmt"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

type TableNotFoundError struct {
	*goaws.ClientErr
}

func NewTableNotFoundError(tableName string) *TableNotFoundError {
	return &TableNotFoundError{goaws.NewClientError(fmt.Errorf("table not found: %s", tableName))}
}

type ConditionCheckFailedError struct {
	*goaws.ClientErr
}

func NewConditionCheckFailedError(msg string) *ConditionCheckFailedError {
	return &ConditionCheckFailedError{goaws.NewClientError(fmt.Errorf("condition check failed: %s", msg))}
}

type RateLimitExceededError struct {
	*goaws.RetryableClientError
}

func NewRateLimitExceededError() *RateLimitExceededError {
	return &RateLimitExceededError{goaws.NewRetryableClientError(fmt.Errorf("rate limit exceeded"))}
}

type ResourceNotFoundError struct {
	*goaws.ClientErr
}

func NewResourceNotFoundError(resource string) *ResourceNotFoundError {
	return &ResourceNotFoundError{goaws.NewClientError(fmt.Errorf("resource not found: %s", resource))}
}

type CollectionSizeExceededError struct {
	*goaws.ClientErr
}

func NewCollectionSizeExceededError(size int) *CollectionSizeExceededError {
	return &CollectionSizeExceededError{goaws.NewClientError(fmt.Errorf("collection size exceeded: %d", size))}
}

type ResourceInUseError struct {
	*goaws.RetryableClientError
}

func NewResourceInUseError(resource string) *ResourceInUseError {
	return &ResourceInUseError{goaws.NewRetryableClientError(fmt.Errorf("resource in use: %s", resource))}
}

type MaxRetriesExceededError struct {
	*goaws.ClientErr
}

func NewMaxRetriesExceededError() *MaxRetriesExceededError {
	return &MaxRetriesExceededError{goaws.NewClientError(fmt.Errorf("max retries exceeded"))}
}

type NilModelError struct {
	*goaws.ClientErr
}

func NewNilModelError() *NilModelError {
	return &NilModelError{goaws.NewClientError(fmt.Errorf("nil model"))}
}

type InvalidArgumentError struct {
	*goaws.ClientErr
}

func NewInvalidArgumentError(msg string) *InvalidArgumentError {
	return &InvalidArgumentError{goaws.NewClientError(fmt.Errorf("invalid argument: %s", msg))}
}

// handleErr maps an SDK error to the package error types. Unmodeled
// responses are classified by HTTP status.
func handleErr(err error) error {
	if err == nil {
		return nil
	}

	var (
		provisionedThroughputExceeded   *types.ProvisionedThroughputExceededException
		resourceNotFound                *types.ResourceNotFoundException
		resourceInUse                   *types.ResourceInUseException
		itemCollectionSizeLimitExceeded *types.ItemCollectionSizeLimitExceededException
		requestLimitExceeded            *types.RequestLimitExceeded
		conditionalCheckFailed          *types.ConditionalCheckFailedException
		re                              *awshttp.ResponseError
	)
	switch {
	case errors.As(err, &provisionedThroughputExceeded):
		return NewRateLimitExceededError()
	case errors.As(err, &resourceNotFound):
		return NewResourceNotFoundError(resourceNotFound.ErrorMessage())
	case errors.As(err, &resourceInUse):
		return NewResourceInUseError(resourceInUse.ErrorMessage())
	case errors.As(err, &itemCollectionSizeLimitExceeded):
		return NewCollectionSizeExceededError(0)
	case errors.As(err, &requestLimitExceeded):
		return NewRateLimitExceededError()
	case errors.As(err, &conditionalCheckFailed):
		return NewConditionCheckFailedError(conditionalCheckFailed.ErrorMessage())
	case errors.As(err, &re):
		switch code := re.HTTPStatusCode(); {
		case code == http.StatusTooManyRequests:
			return NewRateLimitExceededError()
		case code >= http.StatusInternalServerError:
			return goaws.NewRetryableInternalError(err)
		case code >= http.StatusBadRequest:
			return goaws.NewClientError(err)
		}
		return goaws.NewInternalError(err)
	default:
		return goaws.NewInternalError(err)
	}
}
