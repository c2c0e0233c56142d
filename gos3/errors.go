package gos3

import (
	"errors"
	"fmt"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

type ItemNotFoundError struct {
	*goaws.ClientErr
}

func NewItemNotFoundError(item string) error {
	return &ItemNotFoundError{
		goaws.NewClientError(fmt.Errorf("item not found: %s", item)),
	}
}

type BucketNotFoundError struct {
	*goaws.ClientErr
}

func NewBucketNotFoundError(bucket string) error {
	return &BucketNotFoundError{
		goaws.NewClientError(fmt.Errorf("bucket not found: %s", bucket)),
	}
}

type BucketExistsError struct {
	*goaws.ClientErr
}

func NewBucketExistsError(bucket string) error {
	return &BucketExistsError{
		goaws.NewClientError(fmt.Errorf("bucket already exists: %s", bucket)),
	}
}

type BucketNotEmptyError struct {
	*goaws.ClientErr
}

func NewBucketNotEmptyError(bucket string) error {
	return &BucketNotEmptyError{
		goaws.NewClientError(fmt.Errorf("bucket not empty: %s", bucket)),
	}
}

type MissingChecksumError struct {
	*goaws.InternalError
}

func NewMissingChecksumError() error {
	return &MissingChecksumError{
		goaws.NewInternalError(errors.New("missing checksum")),
	}
}

// handleErr maps an SDK error to the package error types. key is empty for
// bucket level operations.
func handleErr(err error, bucket, key string) error {
	if err == nil {
		return nil
	}

	var (
		noSuchKey    *types.NoSuchKey
		noSuchBucket *types.NoSuchBucket
		exists       *types.BucketAlreadyExists
		owned        *types.BucketAlreadyOwnedByYou
		apiErr       smithy.APIError
		re           *awshttp.ResponseError
	)
	switch {
	case errors.As(err, &noSuchKey):
		return NewItemNotFoundError(key)
	case errors.As(err, &noSuchBucket):
		return NewBucketNotFoundError(bucket)
	case errors.As(err, &exists), errors.As(err, &owned):
		return NewBucketExistsError(bucket)
	case errors.As(err, &apiErr) && apiErr.ErrorCode() == "BucketNotEmpty":
		return NewBucketNotEmptyError(bucket)
	case errors.As(err, &re):
		switch {
		case re.HTTPStatusCode() == http.StatusNotFound && key != "":
			return NewItemNotFoundError(key)
		case re.HTTPStatusCode() == http.StatusNotFound:
			return NewBucketNotFoundError(bucket)
		case re.HTTPStatusCode() >= http.StatusInternalServerError:
			return goaws.NewRetryableInternalError(err)
		default:
			return goaws.NewInternalError(err)
		}
	default:
		return goaws.NewInternalError(err)
	}
}
