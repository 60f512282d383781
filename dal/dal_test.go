package dal

import (
	"context"
	"errors"
	"io"
	"techservice-backend/models"
	"techservice-backend/utils/logger"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockDynamoDBAPI implements DynamoDBAPI for testing
type MockDynamoDBAPI struct {
	mock.Mock
}

func (m *MockDynamoDBAPI) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.GetItemOutput), args.Error(1)
}

func (m *MockDynamoDBAPI) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.PutItemOutput), args.Error(1)
}

func (m *MockDynamoDBAPI) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.UpdateItemOutput), args.Error(1)
}

func (m *MockDynamoDBAPI) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.QueryOutput), args.Error(1)
}

func (m *MockDynamoDBAPI) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.ScanOutput), args.Error(1)
}

func (m *MockDynamoDBAPI) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.CreateTableOutput), args.Error(1)
}

func (m *MockDynamoDBAPI) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.DescribeTableOutput), args.Error(1)
}

type record struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Version int64  `dynamodbav:"version"`
}

// DALTestSuite defines a test suite for the DynamoDB client
type DALTestSuite struct {
	suite.Suite
	api    *MockDynamoDBAPI
	client *DynamoDBClient
	ctx    context.Context
}

func (suite *DALTestSuite) SetupTest() {
	suite.api = &MockDynamoDBAPI{}
	suite.ctx = context.Background()
	log := logger.NewLoggerWithOutput("error", "text", io.Discard)
	suite.client = NewDynamoDBClientWithAPI(suite.api, &models.Config{DynamoDBTablePrefix: "test"}, log)
}

func (suite *DALTestSuite) TearDownTest() {
	suite.api.AssertExpectations(suite.T())
}

func (suite *DALTestSuite) TestGetItem_Found() {
	suite.api.On("GetItem", suite.ctx, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
		key, ok := in.Key["id"].(*types.AttributeValueMemberS)
		return *in.TableName == "test_things" && ok && key.Value == "r1"
	})).Return(&dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
		"id":      &types.AttributeValueMemberS{Value: "r1"},
		"name":    &types.AttributeValueMemberS{Value: "laptop"},
		"version": &types.AttributeValueMemberN{Value: "3"},
	}}, nil)

	var got record
	err := suite.client.GetItem(suite.ctx, models.QueryConfig{TableName: "test_things", KeyName: "id", KeyValue: "r1"}, &got)

	suite.Require().NoError(err)
	suite.Equal(record{ID: "r1", Name: "laptop", Version: 3}, got)
}

func (suite *DALTestSuite) TestGetItem_MissingReturnsNotFound() {
	suite.api.On("GetItem", suite.ctx, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

	var got record
	err := suite.client.GetItem(suite.ctx, models.QueryConfig{TableName: "test_things", KeyName: "id", KeyValue: "nope"}, &got)

	suite.True(errors.Is(err, models.ErrNotFound))
}

func (suite *DALTestSuite) TestPutItemIfVersion_NewItemRequiresAbsentKey() {
	suite.api.On("PutItem", suite.ctx, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		return *in.ConditionExpression == "attribute_not_exists(#id)" && in.ExpressionAttributeNames["#id"] == "id"
	})).Return(&dynamodb.PutItemOutput{}, nil)

	err := suite.client.PutItemIfVersion(suite.ctx, "test_things", record{ID: "r1", Version: 1}, 0)
	suite.NoError(err)
}

func (suite *DALTestSuite) TestPutItemIfVersion_ChecksStoredVersion() {
	suite.api.On("PutItem", suite.ctx, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		v, ok := in.ExpressionAttributeValues[":v"].(*types.AttributeValueMemberN)
		return *in.ConditionExpression == "#v = :v" && ok && v.Value == "4"
	})).Return(&dynamodb.PutItemOutput{}, nil)

	err := suite.client.PutItemIfVersion(suite.ctx, "test_things", record{ID: "r1", Version: 5}, 4)
	suite.NoError(err)
}

func (suite *DALTestSuite) TestPutItemIfVersion_ConditionFailureIsConflict() {
	apiErr := &smithy.GenericAPIError{Code: "ConditionalCheckFailedException", Message: "The conditional request failed"}
	suite.api.On("PutItem", suite.ctx, mock.Anything).Return(nil, apiErr)

	err := suite.client.PutItemIfVersion(suite.ctx, "test_things", record{ID: "r1", Version: 5}, 4)
	suite.True(errors.Is(err, models.ErrConflict))
}

func (suite *DALTestSuite) TestPutItemIfVersion_OtherErrorsPassThrough() {
	suite.api.On("PutItem", suite.ctx, mock.Anything).Return(nil, errors.New("throttled"))

	err := suite.client.PutItemIfVersion(suite.ctx, "test_things", record{ID: "r1", Version: 2}, 1)
	suite.Require().Error(err)
	suite.False(errors.Is(err, models.ErrConflict))
}

func (suite *DALTestSuite) TestScan_ReadsEveryPage() {
	lastKey := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "a"}}
	suite.api.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return in.ExclusiveStartKey == nil
	})).Return(&dynamodb.ScanOutput{
		Items:            []map[string]types.AttributeValue{{"id": &types.AttributeValueMemberS{Value: "a"}}},
		LastEvaluatedKey: lastKey,
	}, nil).Once()
	suite.api.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return in.ExclusiveStartKey != nil
	})).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{{"id": &types.AttributeValueMemberS{Value: "b"}}},
	}, nil).Once()

	var got []record
	err := suite.client.Scan(suite.ctx, "test_things", &got)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Equal("a", got[0].ID)
	suite.Equal("b", got[1].ID)
}

func (suite *DALTestSuite) TestQueryByIndex_UsesKeyCondition() {
	suite.api.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		v, ok := in.ExpressionAttributeValues[":kv0"].(*types.AttributeValueMemberS)
		return *in.IndexName == "status-index" && in.ExpressionAttributeNames["#kn0"] == "status" && ok && v.Value == "PENDING"
	})).Return(&dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{{"id": &types.AttributeValueMemberS{Value: "r9"}}},
	}, nil)

	var got []record
	err := suite.client.QueryByIndex(suite.ctx, "test_things", "status-index", "status", "PENDING", &got)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("r9", got[0].ID)
}

func (suite *DALTestSuite) TestQueryByIndex_Error() {
	suite.api.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	var got []record
	err := suite.client.QueryByIndex(suite.ctx, "test_things", "status-index", "status", "PENDING", &got)
	suite.EqualError(err, "boom")
}

func TestDALTestSuite(t *testing.T) {
	suite.Run(t, new(DALTestSuite))
}

func TestIsConditionalCheckFailed(t *testing.T) {
	assert.True(t, IsConditionalCheckFailed(&smithy.GenericAPIError{Code: "ConditionalCheckFailedException"}))
	assert.False(t, IsConditionalCheckFailed(&smithy.GenericAPIError{Code: "ResourceNotFoundException"}))
	assert.False(t, IsConditionalCheckFailed(errors.New("plain")))
}

func TestKeyAttribute(t *testing.T) {
	n, ok := keyAttribute(models.QueryConfig{KeyValue: "7", KeyType: models.NumberType}).(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "7", n.Value)

	s, ok := keyAttribute(models.QueryConfig{KeyValue: "x"}).(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "x", s.Value)
}
