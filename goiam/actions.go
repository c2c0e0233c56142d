package goiam

import (
	"context"
	"fmt"
	"time"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

// AttachRolePolicy attaches the managed policy to the role.
func AttachRolePolicy(ctx context.Context, cfg goaws.AwsConfig, roleName, policyArn string) bool {
	err := NewIAM(cfg).AttachRolePolicy(ctx, roleName, policyArn)
	if !goaws.Succeeded("iam.AttachRolePolicy", err) {
		return false
	}
	fmt.Printf("Attached policy %s to role %s.\n", policyArn, roleName)
	return true
}

func DetachRolePolicy(ctx context.Context, cfg goaws.AwsConfig, roleName, policyArn string) bool {
	err := NewIAM(cfg).DetachRolePolicy(ctx, roleName, policyArn)
	if !goaws.Succeeded("iam.DetachRolePolicy", err) {
		return false
	}
	fmt.Printf("Detached policy %s from role %s.\n", policyArn, roleName)
	return true
}

// ListAttachedRolePolicies prints the name and ARN of every policy attached
// to the role.
func ListAttachedRolePolicies(ctx context.Context, cfg goaws.AwsConfig, roleName string) bool {
	res, err := NewIAM(cfg).ListAttachedRolePolicies(ctx, roleName)
	if !goaws.Succeeded("iam.ListAttachedRolePolicies", err) {
		return false
	}
	if len(res.Policies) == 0 {
		fmt.Printf("Role %s has no attached policies.\n", roleName)
		return true
	}
	fmt.Printf("Policies attached to role %s:\n", roleName)
	for _, p := range res.Policies {
		fmt.Printf("\t%s (%s)\n", p.PolicyName, p.PolicyArn)
	}
	return true
}

// CreateRole creates a role that trustedPrincipal can assume.
func CreateRole(ctx context.Context, cfg goaws.AwsConfig, roleName, trustedPrincipal string) bool {
	res, err := NewIAM(cfg).CreateRole(ctx, roleName, trustedPrincipal)
	if !goaws.Succeeded("iam.CreateRole", err) {
		return false
	}
	fmt.Printf("Created role %s with ARN: %s\n", res.RoleName, res.RoleArn)
	return true
}

func DeleteRole(ctx context.Context, cfg goaws.AwsConfig, roleName string) bool {
	err := NewIAM(cfg).DeleteRole(ctx, roleName)
	if !goaws.Succeeded("iam.DeleteRole", err) {
		return false
	}
	fmt.Printf("Deleted role %s.\n", roleName)
	return true
}

// CreatePolicy creates a managed policy allowing actions on resource.
func CreatePolicy(ctx context.Context, cfg goaws.AwsConfig, name string, actions []string, resource string) bool {
	res, err := NewIAM(cfg).CreatePolicy(ctx, name, actions, resource)
	if !goaws.Succeeded("iam.CreatePolicy", err) {
		return false
	}
	fmt.Printf("Created policy %s with ARN: %s\n", res.PolicyName, res.PolicyArn)
	return true
}

func DeletePolicy(ctx context.Context, cfg goaws.AwsConfig, policyArn string) bool {
	err := NewIAM(cfg).DeletePolicy(ctx, policyArn)
	if !goaws.Succeeded("iam.DeletePolicy", err) {
		return false
	}
	fmt.Printf("Deleted policy %s.\n", policyArn)
	return true
}

func AttachGroupPolicy(ctx context.Context, cfg goaws.AwsConfig, groupName, policyArn string) bool {
	err := NewIAM(cfg).AttachGroupPolicy(ctx, groupName, policyArn)
	if !goaws.Succeeded("iam.AttachGroupPolicy", err) {
		return false
	}
	fmt.Printf("Attached policy %s to group %s.\n", policyArn, groupName)
	return true
}

func CreateUser(ctx context.Context, cfg goaws.AwsConfig, userName string) bool {
	res, err := NewIAM(cfg).CreateUser(ctx, userName)
	if !goaws.Succeeded("iam.CreateUser", err) {
		return false
	}
	fmt.Printf("Created user %s with ARN: %s\n", res.UserName, res.UserArn)
	return true
}

func DeleteUser(ctx context.Context, cfg goaws.AwsConfig, userName string) bool {
	err := NewIAM(cfg).DeleteUser(ctx, userName)
	if !goaws.Succeeded("iam.DeleteUser", err) {
		return false
	}
	fmt.Printf("Deleted user %s.\n", userName)
	return true
}

// ListUsers prints every user with its creation date.
func ListUsers(ctx context.Context, cfg goaws.AwsConfig) bool {
	res, err := NewIAM(cfg).ListUsers(ctx)
	if !goaws.Succeeded("iam.ListUsers", err) {
		return false
	}
	if len(res.Users) == 0 {
		fmt.Println("You don't have any users!")
		return true
	}
	fmt.Println("Users:")
	for _, u := range res.Users {
		fmt.Printf("\t%s created %s\n", u.UserName, u.CreateDate.UTC().Format(time.DateOnly))
	}
	return true
}

// CreateAccessKey creates an access key for the user and prints its ID. The
// secret is never printed.
func CreateAccessKey(ctx context.Context, cfg goaws.AwsConfig, userName string) bool {
	res, err := NewIAM(cfg).CreateAccessKey(ctx, userName)
	if !goaws.Succeeded("iam.CreateAccessKey", err) {
		return false
	}
	fmt.Printf("Created access key %s for user %s.\n", res.AccessKeyID, res.UserName)
	return true
}

func DeleteAccessKey(ctx context.Context, cfg goaws.AwsConfig, userName, accessKeyID string) bool {
	err := NewIAM(cfg).DeleteAccessKey(ctx, userName, accessKeyID)
	if !goaws.Succeeded("iam.DeleteAccessKey", err) {
		return false
	}
	fmt.Printf("Deleted access key %s of user %s.\n", accessKeyID, userName)
	return true
}
