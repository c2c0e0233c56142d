package godynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/internal/log"
)

// maxBatchWrite is the BatchWriteItem limit on requests per call.
const maxBatchWrite = 25

// QueriesLogic defines common methods for querying dynamo db tables
//
//go:generate mockgen -destination=../mocks/godynamomock/queries.go -package=godynamomock . QueriesLogic
type QueriesLogic interface {
	RegisterTable(table *Table)
	CreateItem(ctx context.Context, item any, tableName string, expr Expression) error
	GetItem(ctx context.Context, query *Query, tableName string, itemPtr any, expr Expression) error
	UpdateItem(ctx context.Context, query *Query, tableName string, expr Expression) (QueryRow, error)
	DeleteItem(ctx context.Context, query *Query, tableName string, expr Expression) error
	BatchWriteCreate(ctx context.Context, tableName string, items []any) error
	BatchWriteDelete(ctx context.Context, tableName string, queries []*Query) error
	QueryItems(ctx context.Context, tableName string, startKey map[string]types.AttributeValue, expr Expression, perPage *int32) (*QueryResults, error)
	ScanItems(ctx context.Context, tableName string, startKey map[string]types.AttributeValue, expr Expression, perPage *int32) (*ScanResults, error)
}

// DynamoDBQueriesClientAPI defines the interface for the AWS DynamoDB client methods used by this package.
//
//go:generate mockgen -destination=./queries_client_api_test.go -package=godynamo . DynamoDBQueriesClientAPI
type DynamoDBQueriesClientAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type Queries struct {
	svc    DynamoDBQueriesClientAPI
	tables map[string]*Table
	fc     *FailConfig
}

func NewQueries(svc DynamoDBQueriesClientAPI, tables map[string]*Table, fc *FailConfig) *Queries {
	if fc == nil {
		fc = DefaultFailConfig
	}
	if tables == nil {
		tables = make(map[string]*Table)
	}

	return &Queries{svc: svc, tables: tables, fc: fc}
}

// RegisterTable makes the key schema of table known to the item operations.
// Not safe for use concurrently with the other methods.
func (q *Queries) RegisterTable(table *Table) {
	if table == nil {
		return
	}
	q.tables[table.TableName] = table
}

// CreateItem puts a new item in the table. A condition in expr, such as
// attribute_not_exists on the partition key, guards the write.
func (q *Queries) CreateItem(ctx context.Context, item any, tableName string, expr Expression) error {
	if item == nil {
		return NewNilModelError()
	}
	t := q.tables[tableName]
	if t == nil {
		return NewTableNotFoundError(tableName)
	}

	av, err := marshalMap(item)
	if err != nil {
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(t.TableName),
	}
	if expr.Condition() != nil {
		input.ConditionExpression = expr.Condition()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	if _, err = q.svc.PutItem(ctx, input); err != nil {
		return handleErr(fmt.Errorf("q.svc.PutItem: %w", err))
	}

	return nil
}

// GetItem reads an item from the database and unmarshals it's attribute map into the provided itemPtr.
// An item that does not exist yields ResourceNotFoundError.
func (q *Queries) GetItem(ctx context.Context, query *Query, tableName string, itemPtr any, expr Expression) error {
	if query == nil || itemPtr == nil {
		return NewNilModelError()
	}
	t := q.tables[tableName]
	if t == nil {
		return NewTableNotFoundError(tableName)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(t.TableName),
		Key:       keyMaker(query, t),
	}
	if expr.Projection() != nil {
		input.ExpressionAttributeNames = expr.Names()
		input.ProjectionExpression = expr.Projection()
	}

	result, err := q.svc.GetItem(ctx, input)
	if err != nil {
		return handleErr(fmt.Errorf("q.svc.GetItem: %w", err))
	}
	if len(result.Item) == 0 {
		return NewResourceNotFoundError(fmt.Sprintf("item %v in %s", query.PrimaryValue, tableName))
	}

	if err = attributevalue.UnmarshalMap(result.Item, itemPtr); err != nil {
		return goaws.NewInternalError(fmt.Errorf("attributevalue.UnmarshalMap: %w", err))
	}

	return nil
}

// UpdateItem applies the update expression in expr to the item selected by
// query and returns the item's attributes after the update.
func (q *Queries) UpdateItem(ctx context.Context, query *Query, tableName string, expr Expression) (QueryRow, error) {
	if query == nil {
		return nil, NewNilModelError()
	}
	if expr.Update() == nil {
		return nil, NewInvalidArgumentError("update expression is empty")
	}
	t, ok := q.tables[tableName]
	if !ok {
		return nil, NewTableNotFoundError(tableName)
	}

	input := &dynamodb.UpdateItemInput{
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		TableName:                 aws.String(t.TableName),
		Key:                       keyMaker(query, t),
		ReturnValues:              types.ReturnValueAllNew,
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
	}

	result, err := q.svc.UpdateItem(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("q.svc.UpdateItem: %w", err))
	}

	row := QueryRow{}
	if err := attributevalue.UnmarshalMap(result.Attributes, &row); err != nil {
		return nil, goaws.NewInternalError(fmt.Errorf("attributevalue.UnmarshalMap: %w", err))
	}
	return row, nil
}

// DeleteItem deletes the specified item defined in the Query
func (q *Queries) DeleteItem(ctx context.Context, query *Query, tableName string, expr Expression) error {
	if query == nil {
		return NewNilModelError()
	}
	t, ok := q.tables[tableName]
	if !ok {
		return NewTableNotFoundError(tableName)
	}

	input := &dynamodb.DeleteItemInput{
		Key:       keyMaker(query, t),
		TableName: aws.String(t.TableName),
	}
	if expr.Condition() != nil {
		input.ConditionExpression = expr.Condition()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	if _, err := q.svc.DeleteItem(ctx, input); err != nil {
		return handleErr(fmt.Errorf("q.svc.DeleteItem: %w", err))
	}

	return nil
}

// BatchWriteCreate writes a list of items to the database.
func (q *Queries) BatchWriteCreate(ctx context.Context, tableName string, items []any) error {
	if len(items) > maxBatchWrite {
		return NewCollectionSizeExceededError(len(items))
	}
	t, ok := q.tables[tableName]
	if !ok {
		return NewTableNotFoundError(tableName)
	}

	wrs := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		av, err := marshalMap(item)
		if err != nil {
			return err
		}
		wrs = append(wrs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}

	return q.batchWrite(ctx, t.TableName, wrs)
}

// BatchWriteDelete deletes a list of items from the database.
func (q *Queries) BatchWriteDelete(ctx context.Context, tableName string, queries []*Query) error {
	if len(queries) > maxBatchWrite {
		return NewCollectionSizeExceededError(len(queries))
	}
	t := q.tables[tableName]
	if t == nil {
		return NewTableNotFoundError(tableName)
	}

	wrs := make([]types.WriteRequest, 0, len(queries))
	for _, query := range queries {
		if query == nil {
			continue
		}
		wrs = append(wrs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: keyMaker(query, t)}})
	}

	return q.batchWrite(ctx, t.TableName, wrs)
}

// batchWrite sends wrs and resends unprocessed items and throttled or 5xx
// failed calls with exponential backoff until all are written or the
// FailConfig cap is reached.
func (q *Queries) batchWrite(ctx context.Context, tableName string, wrs []types.WriteRequest) error {
	if len(wrs) == 0 {
		return nil
	}

	input := &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{tableName: wrs},
	}
	retries := q.fc.NewRetries()
	for {
		result, err := q.svc.BatchWriteItem(ctx, input)
		if err != nil {
			err = handleErr(fmt.Errorf("q.svc.BatchWriteItem: %w", err))
			var awsErr goaws.AwsError
			if !errors.As(err, &awsErr) || !awsErr.Retryable() {
				return err
			}
			log.Debugf("batch write to %s: retrying after %v", tableName, err)
		} else {
			if len(result.UnprocessedItems) == 0 {
				return nil
			}
			log.Debugf("batch write to %s: %d unprocessed items", tableName, len(result.UnprocessedItems[tableName]))
			input = &dynamodb.BatchWriteItemInput{RequestItems: result.UnprocessedItems}
		}

		if err := retries.ExponentialBackoff(ctx); err != nil {
			return fmt.Errorf("retries.ExponentialBackoff: %w", err)
		}
	}
}

// ScanItems scans the given Table for items matching the given expression parameters.
func (q *Queries) ScanItems(ctx context.Context, tableName string, startKey map[string]types.AttributeValue, expr Expression, perPage *int32) (*ScanResults, error) {
	input := &dynamodb.ScanInput{
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		FilterExpression:          expr.Filter(),
		ProjectionExpression:      expr.Projection(),
		TableName:                 aws.String(tableName),
		Limit:                     perPage,
		ExclusiveStartKey:         startKey,
	}

	result, err := q.svc.Scan(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("q.svc.Scan: %w", err))
	}

	rows, err := unmarshalRows(result.Items)
	if err != nil {
		return nil, err
	}

	scanResult := &ScanResults{
		Rows:    rows,
		Count:   result.Count,
		LastKey: result.LastEvaluatedKey,
	}
	if perPage != nil {
		scanResult.PerPage = *perPage
	}
	return scanResult, nil
}

// QueryItems queries the given Table for items matching the given expression parameters.
// expr must carry a key condition.
func (q *Queries) QueryItems(ctx context.Context, tableName string, startKey map[string]types.AttributeValue, expr Expression, perPage *int32) (*QueryResults, error) {
	if expr.KeyCondition() == nil {
		return nil, NewInvalidArgumentError("key condition is required")
	}

	input := &dynamodb.QueryInput{
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		FilterExpression:          expr.Filter(),
		ProjectionExpression:      expr.Projection(),
		TableName:                 aws.String(tableName),
		Limit:                     perPage,
		ExclusiveStartKey:         startKey,
	}

	result, err := q.svc.Query(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("q.svc.Query: %w", err))
	}

	rows, err := unmarshalRows(result.Items)
	if err != nil {
		return nil, err
	}

	queryResult := &QueryResults{
		Rows:    rows,
		Count:   result.Count,
		LastKey: result.LastEvaluatedKey,
	}
	if perPage != nil {
		queryResult.PerPage = *perPage
	}
	return queryResult, nil
}

func unmarshalRows(items []map[string]types.AttributeValue) ([]QueryRow, error) {
	rows := make([]QueryRow, 0, len(items))
	for _, item := range items {
		row := QueryRow{}
		if err := attributevalue.UnmarshalMap(item, &row); err != nil {
			return nil, goaws.NewInternalError(fmt.Errorf("attributevalue.UnmarshalMap: %w", err))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// marshalMap marshals an interface object into an AttributeValue map
func marshalMap(input any) (map[string]types.AttributeValue, error) {
	marshal, err := attributevalue.MarshalMap(input)
	if err != nil {
		return nil, goaws.NewInternalError(fmt.Errorf("attributevalue.MarshalMap: %w", err))
	}
	return marshal, nil
}
