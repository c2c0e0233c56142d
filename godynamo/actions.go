package godynamo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/internal/log"
)

// TableWaitTimeout bounds how long CreateTable waits for a new table to
// become ACTIVE.
var TableWaitTimeout = 2 * time.Minute

// stringKeyTable describes a table whose partition key is a string, the
// shape every item sample works with.
func stringKeyTable(name, partitionKey string) *Table {
	return &Table{TableName: name, PrimaryKeyName: partitionKey, PrimaryKeyType: "S"}
}

// CreateTable creates table and waits until it is ACTIVE.
func CreateTable(ctx context.Context, cfg goaws.AwsConfig, table *Table) bool {
	db := NewDynamoDB(cfg, nil, nil)
	if err := db.Tables.CreateTable(ctx, table); err != nil {
		return goaws.Succeeded("dynamodb.CreateTable", err)
	}
	err := db.Tables.WaitUntilActive(ctx, table.TableName, TableWaitTimeout)
	if !goaws.Succeeded("dynamodb.CreateTable", err) {
		return false
	}
	fmt.Printf("Table %s created and active.\n", table.TableName)
	return true
}

// DescribeTable prints the name, status, item count and size of a table.
func DescribeTable(ctx context.Context, cfg goaws.AwsConfig, name string) bool {
	db := NewDynamoDB(cfg, nil, nil)
	info, err := db.Tables.DescribeTable(ctx, name)
	if !goaws.Succeeded("dynamodb.DescribeTable", err) {
		return false
	}
	fmt.Printf("Table name  : %s\n", info.Name)
	fmt.Printf("Table ARN   : %s\n", info.Arn)
	fmt.Printf("Status      : %s\n", info.Status)
	fmt.Printf("Item count  : %s\n", humanize.Comma(info.ItemCount))
	fmt.Printf("Size        : %s\n", humanize.Bytes(uint64(info.SizeBytes)))
	fmt.Printf("Key schema  : %v\n", info.KeyNames)
	return true
}

// ListTables prints the name of every table in the account and region.
func ListTables(ctx context.Context, cfg goaws.AwsConfig) bool {
	db := NewDynamoDB(cfg, nil, nil)
	names, count, err := db.Tables.ListTables(ctx, ListTableParams{})
	if !goaws.Succeeded("dynamodb.ListTables", err) {
		return false
	}
	if count == 0 {
		fmt.Println("No tables found.")
		return true
	}
	fmt.Printf("%d tables:\n", count)
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return true
}

// DeleteTable deletes the table called name.
func DeleteTable(ctx context.Context, cfg goaws.AwsConfig, name string) bool {
	db := NewDynamoDB(cfg, nil, nil)
	err := db.Tables.DeleteTable(ctx, name)
	if !goaws.Succeeded("dynamodb.DeleteTable", err) {
		return false
	}
	fmt.Printf("Table %s deleted.\n", name)
	return true
}

// PutItem writes an item whose attributes are keys[i] = values[i], all of
// string type. keys[0] must be the partition key.
func PutItem(ctx context.Context, cfg goaws.AwsConfig, name string, keys, values []string) bool {
	if len(keys) == 0 || len(keys) != len(values) {
		return goaws.Succeeded("dynamodb.PutItem",
			NewInvalidArgumentError(fmt.Sprintf("%d keys for %d values", len(keys), len(values))))
	}

	item := make(map[string]string, len(keys))
	for i, k := range keys {
		item[k] = values[i]
	}

	db := NewDynamoDB(cfg, []*Table{stringKeyTable(name, keys[0])}, nil)
	err := db.Queries.CreateItem(ctx, item, name, NewExpression())
	if !goaws.Succeeded("dynamodb.PutItem", err) {
		return false
	}
	fmt.Printf("Put item with %s = %s into %s.\n", keys[0], values[0], name)
	return true
}

// GetItem prints the attributes of the item whose partition key equals
// partitionValue.
func GetItem(ctx context.Context, cfg goaws.AwsConfig, name, partitionKey, partitionValue string) bool {
	db := NewDynamoDB(cfg, []*Table{stringKeyTable(name, partitionKey)}, nil)
	row := QueryRow{}
	err := db.Queries.GetItem(ctx, CreateNewQueryObj(partitionValue, nil), name, &row, NewExpression())
	if !goaws.Succeeded("dynamodb.GetItem", err) {
		return false
	}
	printRow(row)
	return true
}

// UpdateItem sets attributeKey to attributeValue on the item whose
// partition key equals partitionValue.
func UpdateItem(ctx context.Context, cfg goaws.AwsConfig, name, partitionKey, partitionValue, attributeKey, attributeValue string) bool {
	update := NewUpdateExpr()
	update.Set(attributeKey, attributeValue)
	eb := NewExprBuilder()
	eb.SetUpdate(update)
	expr, err := eb.BuildExpression()
	if err != nil {
		return goaws.Succeeded("dynamodb.UpdateItem", err)
	}

	db := NewDynamoDB(cfg, []*Table{stringKeyTable(name, partitionKey)}, nil)
	_, err = db.Queries.UpdateItem(ctx, CreateNewQueryObj(partitionValue, nil), name, expr)
	if !goaws.Succeeded("dynamodb.UpdateItem", err) {
		return false
	}
	fmt.Printf("Item %s updated: %s = %s.\n", partitionValue, attributeKey, attributeValue)
	return true
}

// DeleteItem deletes the item whose partition key equals partitionValue.
func DeleteItem(ctx context.Context, cfg goaws.AwsConfig, name, partitionKey, partitionValue string) bool {
	db := NewDynamoDB(cfg, []*Table{stringKeyTable(name, partitionKey)}, nil)
	err := db.Queries.DeleteItem(ctx, CreateNewQueryObj(partitionValue, nil), name, NewExpression())
	if !goaws.Succeeded("dynamodb.DeleteItem", err) {
		return false
	}
	fmt.Printf("Item %s deleted from %s.\n", partitionValue, name)
	return true
}

// QueryItems prints every item with the given partition key value,
// following pagination.
func QueryItems(ctx context.Context, cfg goaws.AwsConfig, name, partitionKey, partitionValue string) bool {
	eb := NewExprBuilder()
	eb.SetKeyCondition(partitionKey, partitionValue)
	expr, err := eb.BuildExpression()
	if err != nil {
		return goaws.Succeeded("dynamodb.Query", err)
	}

	db := NewDynamoDB(cfg, nil, nil)
	var rows []QueryRow
	res, err := db.Queries.QueryItems(ctx, name, nil, expr, nil)
	for err == nil {
		rows = append(rows, res.Rows...)
		if len(res.LastKey) == 0 {
			break
		}
		res, err = db.Queries.QueryItems(ctx, name, res.LastKey, expr, nil)
	}
	if !goaws.Succeeded("dynamodb.Query", err) {
		return false
	}

	fmt.Printf("Query returned %d items.\n", len(rows))
	for _, row := range rows {
		printRow(row)
	}
	return true
}

// ScanItems prints every item whose attribute equals value, following
// pagination.
func ScanItems(ctx context.Context, cfg goaws.AwsConfig, name, attribute, value string) bool {
	eb := NewExprBuilder()
	eb.SetFilter(attribute, value)
	expr, err := eb.BuildExpression()
	if err != nil {
		return goaws.Succeeded("dynamodb.Scan", err)
	}

	db := NewDynamoDB(cfg, nil, nil)
	var rows []QueryRow
	res, err := db.Queries.ScanItems(ctx, name, nil, expr, nil)
	for err == nil {
		rows = append(rows, res.Rows...)
		if len(res.LastKey) == 0 {
			break
		}
		res, err = db.Queries.ScanItems(ctx, name, res.LastKey, expr, nil)
	}
	if !goaws.Succeeded("dynamodb.Scan", err) {
		return false
	}

	fmt.Printf("Scan matched %d items.\n", len(rows))
	for _, row := range rows {
		printRow(row)
	}
	return true
}

// BatchWriteItems puts up to 25 string-attribute items in one batch,
// resending unprocessed items with backoff.
func BatchWriteItems(ctx context.Context, cfg goaws.AwsConfig, name string, items []map[string]string) bool {
	return batchWriteItems(ctx, cfg, name, items, DefaultFailConfig)
}

func batchWriteItems(ctx context.Context, cfg goaws.AwsConfig, name string, items []map[string]string, fc *FailConfig) bool {
	batch := make([]any, 0, len(items))
	for _, item := range items {
		batch = append(batch, item)
	}

	// the partition key name is not needed to put whole items
	db := NewDynamoDB(cfg, []*Table{{TableName: name}}, fc)
	err := db.Queries.BatchWriteCreate(ctx, name, batch)
	if !goaws.Succeeded("dynamodb.BatchWriteItem", err) {
		return false
	}
	log.Debugf("batch wrote %d items to %s", len(items), name)
	fmt.Printf("Wrote %d items to %s.\n", len(items), name)
	return true
}

func printRow(row QueryRow) {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %v\n", k, row[k])
	}
	fmt.Println()
}
