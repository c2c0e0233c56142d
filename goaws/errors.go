package goaws

// AwsError is a generic interface for implementing
// error handling for each service.
type AwsError interface {
	Error() string
	Retryable() bool
	ClientError() bool
}

type GenericError struct {
	err       error
	retryable bool
	clientErr bool
}

func (e *GenericError) Error() string {
	return e.err.Error()
}

func (e *GenericError) Unwrap() error {
	return e.err
}

func (e *GenericError) Retryable() bool {
	return e.retryable
}

func (e *GenericError) ClientError() bool {
	return e.clientErr
}

func NewGenericError(err error, retryable bool, clientErr bool) *GenericError {
	if err == nil {
		return nil
	}
	return &GenericError{
		err:       err,
		retryable: retryable,
		clientErr: clientErr,
	}
}

// InternalError is a failure on the AWS side or in this module that the
// caller cannot fix by changing the request.
type InternalError struct {
	err error
}

func (e *InternalError) Error() string {
	return e.err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.err
}

func (e *InternalError) Retryable() bool {
	return false
}

func (e *InternalError) ClientError() bool {
	return false
}

func NewInternalError(err error) *InternalError {
	if err == nil {
		return nil
	}
	return &InternalError{err: err}
}

// ClientErr is a failure caused by the request itself: a missing resource,
// a bad argument, a conflicting state.
type ClientErr struct {
	err error
}

func (e *ClientErr) Error() string {
	return e.err.Error()
}

func (e *ClientErr) Unwrap() error {
	return e.err
}

func (e *ClientErr) Retryable() bool {
	return false
}

func (e *ClientErr) ClientError() bool {
	return true
}

func NewClientError(err error) *ClientErr {
	if err == nil {
		return nil
	}
	return &ClientErr{err: err}
}

type RetryableInternalError struct {
	err error
}

func (e *RetryableInternalError) Error() string {
	return e.err.Error()
}

func (e *RetryableInternalError) Unwrap() error {
	return e.err
}

func (e *RetryableInternalError) Retryable() bool {
	return true
}

func (e *RetryableInternalError) ClientError() bool {
	return false
}

func NewRetryableInternalError(err error) *RetryableInternalError {
	if err == nil {
		return nil
	}
	return &RetryableInternalError{err: err}
}

type RetryableClientError struct {
	err error
}

func (e *RetryableClientError) Error() string {
	return e.err.Error()
}

func (e *RetryableClientError) Unwrap() error {
	return e.err
}

func (e *RetryableClientError) Retryable() bool {
	return true
}

func (e *RetryableClientError) ClientError() bool {
	return true
}

func NewRetryableClientError(err error) *RetryableClientError {
	if err == nil {
		return nil
	}
	return &RetryableClientError{err: err}
}
