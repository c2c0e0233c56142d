package godynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TablesLogic defines common methods interacting with dynamo db tables
//
//go:generate mockgen -destination=../mocks/godynamomock/tables.go -package=godynamomock . TablesLogic
type TablesLogic interface {
	ListTables(ctx context.Context, params ListTableParams) ([]string, int, error)
	CreateTable(ctx context.Context, table *Table) error
	DescribeTable(ctx context.Context, tableName string) (*TableInfo, error)
	WaitUntilActive(ctx context.Context, tableName string, maxWait time.Duration) error
	DeleteTable(ctx context.Context, tableName string) error
	WaitUntilDeleted(ctx context.Context, tableName string, maxWait time.Duration) error
}

// DynamoDBTablesClientAPI defines the interface for the AWS DynamoDB client methods used by this package.
//
//go:generate mockgen -destination=./tables_client_api_test.go -package=godynamo . DynamoDBTablesClientAPI
type DynamoDBTablesClientAPI interface {
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error)
}

// waiterMinDelay is the shortest pause between two DescribeTable polls.
const waiterMinDelay = 2 * time.Second

type Tables struct {
	svc DynamoDBTablesClientAPI
}

func NewTables(svc DynamoDBTablesClientAPI) *Tables {
	return &Tables{svc: svc}
}

// ListTables lists the tables in the database.
func (t *Tables) ListTables(ctx context.Context, params ListTableParams) ([]string, int, error) {
	names := []string{}
	input := &dynamodb.ListTablesInput{
		ExclusiveStartTableName: params.StartTable,
		Limit:                   params.Limit,
	}

	for {
		result, err := t.svc.ListTables(ctx, input)
		if err != nil {
			return nil, 0, handleErr(fmt.Errorf("t.svc.ListTables: %w", err))
		}
		names = append(names, result.TableNames...)

		// a call returns at most 100 names, continue from the last one read
		input.ExclusiveStartTableName = result.LastEvaluatedTableName
		if result.LastEvaluatedTableName == nil {
			break
		}
	}
	return names, len(names), nil
}

// CreateTable creates a new table with the parameters passed to the Table struct.
// NOTE: CreateTable creates Table in * On-Demand * billing mode.
func (t *Tables) CreateTable(ctx context.Context, table *Table) error {
	if table == nil {
		return NewNilModelError()
	}
	if table.TableName == "" || table.PrimaryKeyName == "" {
		return NewInvalidArgumentError("table name and partition key are required")
	}

	input := &dynamodb.CreateTableInput{
		AttributeDefinitions: []types.AttributeDefinition{
			{ // Primary Key
				AttributeName: aws.String(table.PrimaryKeyName),
				AttributeType: scalarType(table.PrimaryKeyType),
			},
		},
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String(table.PrimaryKeyName),
				KeyType:       types.KeyTypeHash,
			},
		},
		TableName: aws.String(table.TableName),
	}
	if table.HasSortKey() {
		input.AttributeDefinitions = append(input.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(table.SortKeyName),
			AttributeType: scalarType(table.SortKeyType),
		})
		input.KeySchema = append(input.KeySchema, types.KeySchemaElement{
			AttributeName: aws.String(table.SortKeyName),
			KeyType:       types.KeyTypeRange,
		})
	}

	if _, err := t.svc.CreateTable(ctx, input); err != nil {
		return handleErr(fmt.Errorf("t.svc.CreateTable: %w", err))
	}

	return nil
}

// DescribeTable returns the status, size and key schema of a table.
func (t *Tables) DescribeTable(ctx context.Context, tableName string) (*TableInfo, error) {
	result, err := t.svc.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	})
	if err != nil {
		return nil, handleErr(fmt.Errorf("t.svc.DescribeTable: %w", err))
	}
	if result.Table == nil {
		return nil, NewTableNotFoundError(tableName)
	}

	desc := result.Table
	info := &TableInfo{
		Name:      aws.ToString(desc.TableName),
		Arn:       aws.ToString(desc.TableArn),
		Status:    string(desc.TableStatus),
		ItemCount: aws.ToInt64(desc.ItemCount),
		SizeBytes: aws.ToInt64(desc.TableSizeBytes),
	}
	for _, k := range desc.KeySchema {
		info.KeyNames = append(info.KeyNames, aws.ToString(k.AttributeName))
	}
	return info, nil
}

// WaitUntilActive polls the table until its status is ACTIVE.
func (t *Tables) WaitUntilActive(ctx context.Context, tableName string, maxWait time.Duration) error {
	w := dynamodb.NewTableExistsWaiter(t.svc, func(o *dynamodb.TableExistsWaiterOptions) {
		o.MinDelay = waiterMinDelay
	})
	if err := w.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(tableName)}, maxWait); err != nil {
		return handleErr(fmt.Errorf("w.Wait: %w", err))
	}
	return nil
}

// DeleteTable deletes the selected table.
func (t *Tables) DeleteTable(ctx context.Context, tableName string) error {
	input := &dynamodb.DeleteTableInput{
		TableName: aws.String(tableName),
	}
	if _, err := t.svc.DeleteTable(ctx, input); err != nil {
		return handleErr(fmt.Errorf("t.svc.DeleteTable: %w", err))
	}

	return nil
}

// WaitUntilDeleted polls until DescribeTable reports the table is gone.
func (t *Tables) WaitUntilDeleted(ctx context.Context, tableName string, maxWait time.Duration) error {
	w := dynamodb.NewTableNotExistsWaiter(t.svc, func(o *dynamodb.TableNotExistsWaiterOptions) {
		o.MinDelay = waiterMinDelay
	})
	if err := w.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(tableName)}, maxWait); err != nil {
		return handleErr(fmt.Errorf("w.Wait: %w", err))
	}
	return nil
}

func scalarType(t string) types.ScalarAttributeType {
	if t == "" {
		return types.ScalarAttributeTypeS
	}
	return types.ScalarAttributeType(t)
}
