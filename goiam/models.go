package goiam

import "time"

// AttachedPolicy is a managed policy attached to a role.
type AttachedPolicy struct {
	PolicyName string `json:"policy_name"`
	PolicyArn  string `json:"policy_arn"`
}

type ListAttachedPoliciesResponse struct {
	RoleName string           `json:"role_name"`
	Policies []AttachedPolicy `json:"policies"`
}

type CreateRoleResponse struct {
	RoleName string `json:"role_name"`
	RoleArn  string `json:"role_arn"`
}

type CreatePolicyResponse struct {
	PolicyName string `json:"policy_name"`
	PolicyArn  string `json:"policy_arn"`
}

type User struct {
	UserName   string    `json:"user_name"`
	UserArn    string    `json:"user_arn"`
	CreateDate time.Time `json:"create_date"`
}

type ListUsersResponse struct {
	Users []User `json:"users"`
}

// AccessKey holds a new access key. SecretAccessKey is only returned when
// the key is created.
type AccessKey struct {
	UserName        string `json:"user_name"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"-"`
	Status          string `json:"status"`
}
