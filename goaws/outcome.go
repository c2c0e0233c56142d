package goaws

import (
	"errors"

	"github.com/aws/smithy-go"

	"github.com/ggarcia209/go-aws-samples/internal/log"
)

// Succeeded reduces the outcome of a sample call to a bool. A failed call
// is logged with the operation name and, when the service returned one, its
// error code.
func Succeeded(op string, err error) bool {
	if err == nil {
		log.Debugf("%s succeeded", op)
		return true
	}

	entry := log.WithError(err).WithField("op", op)
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		entry = entry.WithField("code", apiErr.ErrorCode())
	}
	var awsErr AwsError
	if errors.As(err, &awsErr) {
		entry = entry.WithField("retryable", awsErr.Retryable())
	}
	entry.Error("aws call failed")

	return false
}
