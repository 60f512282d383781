package worker

import (
	"context"
	"io"
	"techservice-backend/models"
	"techservice-backend/utils/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/mock"
)

// MockDatabaseClient implements dal.DatabaseClientInterface for testing
type MockDatabaseClient struct {
	mock.Mock
}

func (m *MockDatabaseClient) GetItem(ctx context.Context, cfg models.QueryConfig, result interface{}) error {
	return m.Called(ctx, cfg, result).Error(0)
}

func (m *MockDatabaseClient) PutItem(ctx context.Context, tableName string, item interface{}) error {
	return m.Called(ctx, tableName, item).Error(0)
}

func (m *MockDatabaseClient) PutItemIfVersion(ctx context.Context, tableName string, item interface{}, expectedVersion int64) error {
	return m.Called(ctx, tableName, item, expectedVersion).Error(0)
}

func (m *MockDatabaseClient) UpdateItem(ctx context.Context, tableName, key, keyValue string, updates map[string]interface{}) error {
	return m.Called(ctx, tableName, key, keyValue, updates).Error(0)
}

func (m *MockDatabaseClient) QueryByIndex(ctx context.Context, tableName, indexName, keyName, keyValue string, results interface{}) error {
	return m.Called(ctx, tableName, indexName, keyName, keyValue, results).Error(0)
}

func (m *MockDatabaseClient) Scan(ctx context.Context, tableName string, results interface{}) error {
	return m.Called(ctx, tableName, results).Error(0)
}

func (m *MockDatabaseClient) CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockDatabaseClient) DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(ctx, tableName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.DescribeTableOutput), args.Error(1)
}

func activeTable(name string, indexes int) *dynamodb.DescribeTableOutput {
	gsis := make([]types.GlobalSecondaryIndexDescription, indexes)
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:              aws.String(name),
		TableStatus:            types.TableStatusActive,
		GlobalSecondaryIndexes: gsis,
	}}
}

var errTableMissing = &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "Requested resource not found"}

func quietLogger() logger.Logger {
	return logger.NewLoggerWithOutput("error", "text", io.Discard)
}

func testConfig(lockFile string) *models.Config {
	return &models.Config{
		AppEnv:              "test",
		DynamoDBTablePrefix: "test",
		Tables:              []string{"service_requests", "users"},
		WorkerEnabled:       true,
		WorkerCronSchedule:  "0 */30 * * * *",
		WorkerLockFile:      lockFile,
		WorkerMaxRetries:    2,
	}
}
