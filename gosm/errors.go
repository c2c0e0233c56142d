package gosm

import (
	"errors"
	"fmt"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

type SecretNotFoundError struct {
	*goaws.ClientErr
}

func NewSecretNotFoundError(key string) *SecretNotFoundError {
	return &SecretNotFoundError{
		goaws.NewClientError(fmt.Errorf("secret not found: %s", key)),
	}
}

type SecretPermissionsError struct {
	*goaws.ClientErr
}

func NewSecretPermissionsError(key string) *SecretPermissionsError {
	return &SecretPermissionsError{
		goaws.NewClientError(fmt.Errorf("secret permissions error: %s", key)),
	}
}

type SecretExistsError struct {
	*goaws.ClientErr
}

func NewSecretExistsError(key string) *SecretExistsError {
	return &SecretExistsError{
		goaws.NewClientError(fmt.Errorf("secret already exists: %s", key)),
	}
}

type InvalidRequestError struct {
	*goaws.ClientErr
}

func NewInvalidRequestError(msg string) *InvalidRequestError {
	return &InvalidRequestError{
		goaws.NewClientError(fmt.Errorf("invalid request: %s", msg)),
	}
}

// MissingResponseDataError reports a response without a field the caller
// relies on.
type MissingResponseDataError struct {
	*goaws.InternalError
}

func NewMissingResponseDataError(field string) *MissingResponseDataError {
	return &MissingResponseDataError{
		goaws.NewInternalError(fmt.Errorf("missing response data: %s", field)),
	}
}

// handleErr maps an SDK error to the package error types. key is the secret
// ID of the request.
func handleErr(err error, key string) error {
	if err == nil {
		return nil
	}

	var (
		notExist       *types.ResourceNotFoundException
		exists         *types.ResourceExistsException
		policy         *types.PublicPolicyException
		invalidRequest *types.InvalidRequestException
		invalidParam   *types.InvalidParameterException
		internal       *types.InternalServiceError
		re             *awshttp.ResponseError
	)
	switch {
	case errors.As(err, &notExist):
		return NewSecretNotFoundError(key)
	case errors.As(err, &exists):
		return NewSecretExistsError(key)
	case errors.As(err, &policy):
		return NewSecretPermissionsError(key)
	case errors.As(err, &invalidRequest):
		return NewInvalidRequestError(invalidRequest.ErrorMessage())
	case errors.As(err, &invalidParam):
		return NewInvalidRequestError(invalidParam.ErrorMessage())
	case errors.As(err, &internal):
		return goaws.NewRetryableInternalError(err)
	case errors.As(err, &re):
		switch code := re.HTTPStatusCode(); {
		case code == http.StatusUnauthorized, code == http.StatusForbidden:
			return NewSecretPermissionsError(key)
		case code == http.StatusNotFound:
			return NewSecretNotFoundError(key)
		case code >= http.StatusInternalServerError:
			return goaws.NewRetryableInternalError(err)
		default:
			return goaws.NewInternalError(err)
		}
	default:
		return goaws.NewInternalError(err)
	}
}
