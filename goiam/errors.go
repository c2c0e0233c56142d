package goiam

import (
	"errors"
	"fmt"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/iam/types"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

// EntityNotFoundError is returned when the named role, policy, user, group
// or access key does not exist.
type EntityNotFoundError struct {
	*goaws.ClientErr
}

func NewEntityNotFoundError(msg string) *EntityNotFoundError {
	return &EntityNotFoundError{goaws.NewClientError(fmt.Errorf("entity not found: %s", msg))}
}

type EntityAlreadyExistsError struct {
	*goaws.ClientErr
}

func NewEntityAlreadyExistsError(msg string) *EntityAlreadyExistsError {
	return &EntityAlreadyExistsError{goaws.NewClientError(fmt.Errorf("entity already exists: %s", msg))}
}

type LimitExceededError struct {
	*goaws.RetryableClientError
}

func NewLimitExceededError(msg string) *LimitExceededError {
	return &LimitExceededError{goaws.NewRetryableClientError(fmt.Errorf("limit exceeded: %s", msg))}
}

type MalformedPolicyError struct {
	*goaws.ClientErr
}

func NewMalformedPolicyError(msg string) *MalformedPolicyError {
	return &MalformedPolicyError{goaws.NewClientError(fmt.Errorf("malformed policy document: %s", msg))}
}

// DeleteConflictError is returned when an entity still has attached
// policies, access keys or members.
type DeleteConflictError struct {
	*goaws.ClientErr
}

func NewDeleteConflictError(msg string) *DeleteConflictError {
	return &DeleteConflictError{goaws.NewClientError(fmt.Errorf("delete conflict: %s", msg))}
}

type InvalidInputError struct {
	*goaws.ClientErr
}

func NewInvalidInputError(msg string) *InvalidInputError {
	return &InvalidInputError{goaws.NewClientError(fmt.Errorf("invalid input: %s", msg))}
}

// handleErr maps an SDK error to the package error types.
func handleErr(err error) error {
	if err == nil {
		return nil
	}

	var (
		noSuchEntity   *types.NoSuchEntityException
		alreadyExists  *types.EntityAlreadyExistsException
		limitExceeded  *types.LimitExceededException
		malformed      *types.MalformedPolicyDocumentException
		deleteConflict *types.DeleteConflictException
		invalidInput   *types.InvalidInputException
		notAttachable  *types.PolicyNotAttachableException
		serviceFailure *types.ServiceFailureException
		re             *awshttp.ResponseError
	)
	switch {
	case errors.As(err, &noSuchEntity):
		return NewEntityNotFoundError(noSuchEntity.ErrorMessage())
	case errors.As(err, &alreadyExists):
		return NewEntityAlreadyExistsError(alreadyExists.ErrorMessage())
	case errors.As(err, &limitExceeded):
		return NewLimitExceededError(limitExceeded.ErrorMessage())
	case errors.As(err, &malformed):
		return NewMalformedPolicyError(malformed.ErrorMessage())
	case errors.As(err, &deleteConflict):
		return NewDeleteConflictError(deleteConflict.ErrorMessage())
	case errors.As(err, &invalidInput):
		return NewInvalidInputError(invalidInput.ErrorMessage())
	case errors.As(err, &notAttachable):
		return NewInvalidInputError(notAttachable.ErrorMessage())
	case errors.As(err, &serviceFailure):
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
