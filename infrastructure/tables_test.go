package infrastructure

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaNames(t *testing.T) {
	assert.ElementsMatch(t, []string{"service_requests", "users", "audit_logs"}, SchemaNames())
}

func TestGetTables_ServiceRequests(t *testing.T) {
	input, err := GetTables("dev", "service_requests")
	require.NoError(t, err)

	assert.Equal(t, "dev_service_requests", *input.TableName)
	require.Len(t, input.KeySchema, 1)
	assert.Equal(t, "id", *input.KeySchema[0].AttributeName)
	assert.Equal(t, types.KeyTypeHash, input.KeySchema[0].KeyType)

	var indexes []string
	for _, g := range input.GlobalSecondaryIndexes {
		indexes = append(indexes, *g.IndexName)
		assert.Equal(t, types.ProjectionTypeAll, g.Projection.ProjectionType)
	}
	assert.ElementsMatch(t, []string{"status-index", "customerId-index", "assignedTo-index"}, indexes)
	assert.Len(t, input.AttributeDefinitions, 4)
}

func TestGetTables_EveryIndexKeyIsDefined(t *testing.T) {
	for _, name := range SchemaNames() {
		schema, err := GetSchema(name)
		require.NoError(t, err)

		defined := map[string]bool{}
		for _, a := range schema.AttributeDefinitions {
			defined[a.AttributeName] = true
		}
		for _, g := range schema.GlobalSecondaryIndexes {
			for _, k := range g.KeySchema {
				assert.True(t, defined[k.AttributeName], "%s: %s key %s has no attribute definition", name, g.IndexName, k.AttributeName)
			}
		}
	}
}

func TestGetTables_Unknown(t *testing.T) {
	_, err := GetTables("dev", "invoices")
	assert.Error(t, err)
}

func TestIndexNames(t *testing.T) {
	schema, err := GetSchema("users")
	require.NoError(t, err)
	assert.Equal(t, []string{"email-index"}, schema.IndexNames())
}
