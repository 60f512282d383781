package dal

import (
	"context"
	"techservice-backend/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DatabaseClientInterface defines the contract for database operations
type DatabaseClientInterface interface {
	// Core item operations. GetItem returns models.ErrNotFound when no item matches.
	GetItem(ctx context.Context, config models.QueryConfig, result interface{}) error
	PutItem(ctx context.Context, tableName string, item interface{}) error
	// PutItemIfVersion writes item only when the stored "version" equals expectedVersion.
	// An expectedVersion of 0 requires the key to be absent. Losing the race returns models.ErrConflict.
	PutItemIfVersion(ctx context.Context, tableName string, item interface{}, expectedVersion int64) error
	UpdateItem(ctx context.Context, tableName, key, keyValue string, updates map[string]interface{}) error

	// Query and Scan operations read every page
	QueryByIndex(ctx context.Context, tableName, indexName, keyName, keyValue string, results interface{}) error
	Scan(ctx context.Context, tableName string, results interface{}) error

	// Table management operations
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error
	DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error)
}

// DALContainerInterface defines the contract for the DAL container
type DALContainerInterface interface {
	GetDatabaseClient() DatabaseClientInterface
}
