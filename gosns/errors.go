package gosns

import (
	"errors"
	"fmt"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

var (
	ErrInvalidProtocol = errors.New("invalid protocol")
)

type InvalidProtocolError struct {
	*goaws.ClientErr
}

func NewInvalidProtocolError(protocol string) error {
	return &InvalidProtocolError{goaws.NewClientError(fmt.Errorf("%w: %s", ErrInvalidProtocol, protocol))}
}

type NotFoundError struct {
	*goaws.ClientErr
}

func NewNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{goaws.NewClientError(fmt.Errorf("not found: %s", msg))}
}

type InvalidParameterError struct {
	*goaws.ClientErr
}

func NewInvalidParameterError(msg string) *InvalidParameterError {
	return &InvalidParameterError{goaws.NewClientError(fmt.Errorf("invalid parameter: %s", msg))}
}

type AuthorizationError struct {
	*goaws.ClientErr
}

func NewAuthorizationError(msg string) *AuthorizationError {
	return &AuthorizationError{goaws.NewClientError(fmt.Errorf("not authorized: %s", msg))}
}

type ThrottledError struct {
	*goaws.RetryableClientError
}

func NewThrottledError(msg string) *ThrottledError {
	return &ThrottledError{goaws.NewRetryableClientError(fmt.Errorf("throttled: %s", msg))}
}

type LimitExceededError struct {
	*goaws.ClientErr
}

func NewLimitExceededError(msg string) *LimitExceededError {
	return &LimitExceededError{goaws.NewClientError(fmt.Errorf("limit exceeded: %s", msg))}
}

// handleErr maps an SDK error to the package error types.
func handleErr(err error) error {
	if err == nil {
		return nil
	}

	var (
		notFound          *types.NotFoundException
		invalidParameter  *types.InvalidParameterException
		invalidValue      *types.InvalidParameterValueException
		authorization     *types.AuthorizationErrorException
		throttled         *types.ThrottledException
		topicLimit        *types.TopicLimitExceededException
		subscriptionLimit *types.SubscriptionLimitExceededException
		filterLimit       *types.FilterPolicyLimitExceededException
		internal          *types.InternalErrorException
		re                *awshttp.ResponseError
	)
	switch {
	case errors.As(err, &notFound):
		return NewNotFoundError(notFound.ErrorMessage())
	case errors.As(err, &invalidParameter):
		return NewInvalidParameterError(invalidParameter.ErrorMessage())
	case errors.As(err, &invalidValue):
		return NewInvalidParameterError(invalidValue.ErrorMessage())
	case errors.As(err, &authorization):
		return NewAuthorizationError(authorization.ErrorMessage())
	case errors.As(err, &throttled):
		return NewThrottledError(throttled.ErrorMessage())
	case errors.As(err, &topicLimit):
		return NewLimitExceededError(topicLimit.ErrorMessage())
	case errors.As(err, &subscriptionLimit):
		return NewLimitExceededError(subscriptionLimit.ErrorMessage())
	case errors.As(err, &filterLimit):
		return NewLimitExceededError(filterLimit.ErrorMessage())
	case errors.As(err, &internal):
		return goaws.NewRetryableInternalError(err)
	case errors.As(err, &re):
		if re.HTTPStatusCode() >= http.StatusInternalServerError {
			return goaws.NewRetryableInternalError(err)
		}
		return goaws.NewInternalError(err)
	default:
		return goaws.NewInternalError(err)
	}
}
