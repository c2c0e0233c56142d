package testtools

import (
	"strings"

	"github.com/gofrs/uuid/v5"
)

// UUIDName returns prefix followed by a random suffix, short enough for
// IAM and SQS name limits.
func UUIDName(prefix string) string {
	id := uuid.Must(uuid.NewV4())
	suffix := strings.ReplaceAll(id.String(), "-", "")[:16]
	if prefix == "" {
		return suffix
	}
	return prefix + "-" + suffix
}

// PreconditionError is the message a test fails with when its set-up could
// not create what it needs.
func PreconditionError() string {
	return "failed to set up preconditions for the test, see the log for details"
}
