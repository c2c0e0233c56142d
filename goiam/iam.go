// goiam contains common methods for managing AWS IAM roles, policies, users
// and access keys.
package goiam

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/internal/log"
)

//go:generate mockgen -destination=../mocks/goiammock/iam.go -package=goiammock . IAMLogic
type IAMLogic interface {
	AttachRolePolicy(ctx context.Context, roleName, policyArn string) error
	DetachRolePolicy(ctx context.Context, roleName, policyArn string) error
	ListAttachedRolePolicies(ctx context.Context, roleName string) (*ListAttachedPoliciesResponse, error)
	CreateRole(ctx context.Context, roleName, trustedPrincipal string) (*CreateRoleResponse, error)
	DeleteRole(ctx context.Context, roleName string) error
	CreatePolicy(ctx context.Context, name string, actions []string, resource string) (*CreatePolicyResponse, error)
	DeletePolicy(ctx context.Context, policyArn string) error
	AttachGroupPolicy(ctx context.Context, groupName, policyArn string) error
	CreateUser(ctx context.Context, userName string) (*User, error)
	DeleteUser(ctx context.Context, userName string) error
	ListUsers(ctx context.Context) (*ListUsersResponse, error)
	CreateAccessKey(ctx context.Context, userName string) (*AccessKey, error)
	DeleteAccessKey(ctx context.Context, userName, accessKeyID string) error
}

// IAMClientAPI defines the interface for the AWS IAM client methods used by this package.
//
//go:generate mockgen -destination=./iam_client_api_test.go -package=goiam . IAMClientAPI
type IAMClientAPI interface {
	AttachRolePolicy(ctx context.Context, params *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error)
	DetachRolePolicy(ctx context.Context, params *iam.DetachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DetachRolePolicyOutput, error)
	ListAttachedRolePolicies(ctx context.Context, params *iam.ListAttachedRolePoliciesInput, optFns ...func(*iam.Options)) (*iam.ListAttachedRolePoliciesOutput, error)
	CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error)
	DeleteRole(ctx context.Context, params *iam.DeleteRoleInput, optFns ...func(*iam.Options)) (*iam.DeleteRoleOutput, error)
	CreatePolicy(ctx context.Context, params *iam.CreatePolicyInput, optFns ...func(*iam.Options)) (*iam.CreatePolicyOutput, error)
	DeletePolicy(ctx context.Context, params *iam.DeletePolicyInput, optFns ...func(*iam.Options)) (*iam.DeletePolicyOutput, error)
	AttachGroupPolicy(ctx context.Context, params *iam.AttachGroupPolicyInput, optFns ...func(*iam.Options)) (*iam.AttachGroupPolicyOutput, error)
	CreateUser(ctx context.Context, params *iam.CreateUserInput, optFns ...func(*iam.Options)) (*iam.CreateUserOutput, error)
	DeleteUser(ctx context.Context, params *iam.DeleteUserInput, optFns ...func(*iam.Options)) (*iam.DeleteUserOutput, error)
	ListUsers(ctx context.Context, params *iam.ListUsersInput, optFns ...func(*iam.Options)) (*iam.ListUsersOutput, error)
	CreateAccessKey(ctx context.Context, params *iam.CreateAccessKeyInput, optFns ...func(*iam.Options)) (*iam.CreateAccessKeyOutput, error)
	DeleteAccessKey(ctx context.Context, params *iam.DeleteAccessKeyInput, optFns ...func(*iam.Options)) (*iam.DeleteAccessKeyOutput, error)
}

type IAM struct {
	svc IAMClientAPI
}

func NewIAM(config goaws.AwsConfig) *IAM {
	return &IAM{svc: iam.NewFromConfig(config.Config)}
}

// AttachRolePolicy attaches the managed policy to the role.
func (s *IAM) AttachRolePolicy(ctx context.Context, roleName, policyArn string) error {
	_, err := s.svc.AttachRolePolicy(ctx, &iam.AttachRolePolicyInput{
		RoleName:  aws.String(roleName),
		PolicyArn: aws.String(policyArn),
	})
	if err != nil {
		return handleErr(fmt.Errorf("s.svc.AttachRolePolicy: %w", err))
	}
	return nil
}

func (s *IAM) DetachRolePolicy(ctx context.Context, roleName, policyArn string) error {
	_, err := s.svc.DetachRolePolicy(ctx, &iam.DetachRolePolicyInput{
		RoleName:  aws.String(roleName),
		PolicyArn: aws.String(policyArn),
	})
	if err != nil {
		return handleErr(fmt.Errorf("s.svc.DetachRolePolicy: %w", err))
	}
	return nil
}

// ListAttachedRolePolicies returns every managed policy attached to the
// role, reading every page.
func (s *IAM) ListAttachedRolePolicies(ctx context.Context, roleName string) (*ListAttachedPoliciesResponse, error) {
	policies := make([]AttachedPolicy, 0)

	p := iam.NewListAttachedRolePoliciesPaginator(s.svc, &iam.ListAttachedRolePoliciesInput{
		RoleName: aws.String(roleName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, handleErr(fmt.Errorf("s.svc.ListAttachedRolePolicies: %w", err))
		}
		for _, ap := range page.AttachedPolicies {
			policies = append(policies, AttachedPolicy{
				PolicyName: aws.ToString(ap.PolicyName),
				PolicyArn:  aws.ToString(ap.PolicyArn),
			})
		}
	}

	return &ListAttachedPoliciesResponse{RoleName: roleName, Policies: policies}, nil
}

// CreateRole creates a role that trustedPrincipal is allowed to assume.
func (s *IAM) CreateRole(ctx context.Context, roleName, trustedPrincipal string) (*CreateRoleResponse, error) {
	doc, err := NewTrustPolicy(trustedPrincipal).String()
	if err != nil {
		return nil, goaws.NewClientError(fmt.Errorf("json.Marshal: %w", err))
	}

	result, err := s.svc.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 aws.String(roleName),
		AssumeRolePolicyDocument: aws.String(doc),
	})
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.CreateRole: %w", err))
	}
	log.Debugf("created role %s", roleName)

	res := &CreateRoleResponse{RoleName: roleName}
	if result.Role != nil {
		res.RoleArn = aws.ToString(result.Role.Arn)
	}
	return res, nil
}

// DeleteRole deletes a role. Attached policies must be detached first.
func (s *IAM) DeleteRole(ctx context.Context, roleName string) error {
	_, err := s.svc.DeleteRole(ctx, &iam.DeleteRoleInput{RoleName: aws.String(roleName)})
	if err != nil {
		return handleErr(fmt.Errorf("s.svc.DeleteRole: %w", err))
	}
	return nil
}

// CreatePolicy creates a managed policy allowing actions on resource.
func (s *IAM) CreatePolicy(ctx context.Context, name string, actions []string, resource string) (*CreatePolicyResponse, error) {
	if len(actions) == 0 {
		return nil, NewInvalidInputError("a policy needs at least one action")
	}
	doc, err := NewAllowPolicy(actions, resource).String()
	if err != nil {
		return nil, goaws.NewClientError(fmt.Errorf("json.Marshal: %w", err))
	}

	result, err := s.svc.CreatePolicy(ctx, &iam.CreatePolicyInput{
		PolicyName:     aws.String(name),
		PolicyDocument: aws.String(doc),
	})
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.CreatePolicy: %w", err))
	}

	res := &CreatePolicyResponse{PolicyName: name}
	if result.Policy != nil {
		res.PolicyArn = aws.ToString(result.Policy.Arn)
	}
	return res, nil
}

func (s *IAM) DeletePolicy(ctx context.Context, policyArn string) error {
	_, err := s.svc.DeletePolicy(ctx, &iam.DeletePolicyInput{PolicyArn: aws.String(policyArn)})
	if err != nil {
		return handleErr(fmt.Errorf("s.svc.DeletePolicy: %w", err))
	}
	return nil
}

func (s *IAM) AttachGroupPolicy(ctx context.Context, groupName, policyArn string) error {
	_, err := s.svc.AttachGroupPolicy(ctx, &iam.AttachGroupPolicyInput{
		GroupName: aws.String(groupName),
		PolicyArn: aws.String(policyArn),
	})
	if err != nil {
		return handleErr(fmt.Errorf("s.svc.AttachGroupPolicy: %w", err))
	}
	return nil
}

func (s *IAM) CreateUser(ctx context.Context, userName string) (*User, error) {
	result, err := s.svc.CreateUser(ctx, &iam.CreateUserInput{UserName: aws.String(userName)})
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.CreateUser: %w", err))
	}

	user := &User{UserName: userName}
	if result.User != nil {
		user.UserArn = aws.ToString(result.User.Arn)
		user.CreateDate = aws.ToTime(result.User.CreateDate)
	}
	return user, nil
}

// DeleteUser deletes a user. Access keys and attached policies must be
// removed first.
func (s *IAM) DeleteUser(ctx context.Context, userName string) error {
	_, err := s.svc.DeleteUser(ctx, &iam.DeleteUserInput{UserName: aws.String(userName)})
	if err != nil {
		return handleErr(fmt.Errorf("s.svc.DeleteUser: %w", err))
	}
	return nil
}

// ListUsers returns every user in the account, reading every page.
func (s *IAM) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	users := make([]User, 0)

	p := iam.NewListUsersPaginator(s.svc, &iam.ListUsersInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, handleErr(fmt.Errorf("s.svc.ListUsers: %w", err))
		}
		for _, u := range page.Users {
			users = append(users, User{
				UserName:   aws.ToString(u.UserName),
				UserArn:    aws.ToString(u.Arn),
				CreateDate: aws.ToTime(u.CreateDate),
			})
		}
	}

	return &ListUsersResponse{Users: users}, nil
}

// CreateAccessKey creates an access key for the user. The secret is only
// available in the returned value.
func (s *IAM) CreateAccessKey(ctx context.Context, userName string) (*AccessKey, error) {
	result, err := s.svc.CreateAccessKey(ctx, &iam.CreateAccessKeyInput{UserName: aws.String(userName)})
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.CreateAccessKey: %w", err))
	}
	if result.AccessKey == nil {
		return nil, goaws.NewInternalError(fmt.Errorf("s.svc.CreateAccessKey: no access key returned for %s", userName))
	}

	return &AccessKey{
		UserName:        aws.ToString(result.AccessKey.UserName),
		AccessKeyID:     aws.ToString(result.AccessKey.AccessKeyId),
		SecretAccessKey: aws.ToString(result.AccessKey.SecretAccessKey),
		Status:          string(result.AccessKey.Status),
	}, nil
}

func (s *IAM) DeleteAccessKey(ctx context.Context, userName, accessKeyID string) error {
	_, err := s.svc.DeleteAccessKey(ctx, &iam.DeleteAccessKeyInput{
		UserName:    aws.String(userName),
		AccessKeyId: aws.String(accessKeyID),
	})
	if err != nil {
		return handleErr(fmt.Errorf("s.svc.DeleteAccessKey: %w", err))
	}
	return nil
}
