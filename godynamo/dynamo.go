// Package godynamo contains controls and objects for DynamoDB CRUD operations.
// Operations in this package are abstracted from all other application logic
// and are designed to be used with any DynamoDB table and any object schema.
// actions.go holds the sample programs built on top of them.
package godynamo

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/internal/log"
)

type DynamoDB struct {
	Tables  TablesLogic
	Queries QueriesLogic
}

// NewDynamoDB builds the table and query wrappers over one client created
// from config. tables registers the key schemas the queries will use.
func NewDynamoDB(config goaws.AwsConfig, tables []*Table, failConfig *FailConfig) *DynamoDB {
	tm := make(map[string]*Table)
	for _, t := range tables {
		tm[t.TableName] = t
	}
	log.Debugf("dynamodb client: region=%s tables=%d", config.Config.Region, len(tm))
	svc := dynamodb.NewFromConfig(config.Config)
	return &DynamoDB{
		Queries: NewQueries(svc, tm, failConfig),
		Tables:  NewTables(svc),
	}
}
