package goiam

import (
	"strings"

	json "github.com/goccy/go-json"
)

const policyVersion = "2012-10-17"

// PolicyDocument is an IAM policy in its JSON form.
type PolicyDocument struct {
	Version   string            `json:"Version"`
	Statement []PolicyStatement `json:"Statement"`
}

type PolicyStatement struct {
	Effect    string            `json:"Effect"`
	Action    []string          `json:"Action"`
	Principal map[string]string `json:"Principal,omitempty"`
	Resource  string            `json:"Resource,omitempty"`
}

// NewTrustPolicy returns a role trust policy that lets principal assume the
// role. A principal ending in .amazonaws.com is a service, anything else an
// account, user or role ARN.
func NewTrustPolicy(principal string) PolicyDocument {
	kind := "AWS"
	if strings.HasSuffix(principal, ".amazonaws.com") {
		kind = "Service"
	}
	return PolicyDocument{
		Version: policyVersion,
		Statement: []PolicyStatement{{
			Effect:    "Allow",
			Action:    []string{"sts:AssumeRole"},
			Principal: map[string]string{kind: principal},
		}},
	}
}

// NewAllowPolicy returns a policy that allows actions on resource.
func NewAllowPolicy(actions []string, resource string) PolicyDocument {
	return PolicyDocument{
		Version: policyVersion,
		Statement: []PolicyStatement{{
			Effect:   "Allow",
			Action:   actions,
			Resource: resource,
		}},
	}
}

func (d PolicyDocument) String() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
