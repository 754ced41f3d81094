package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jurisflow/docs"
)

func TestSwaggerDocument(t *testing.T) {
	var doc struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "/api/v1", doc.BasePath)
	for _, p := range []string{
		"/documents/extract",
		"/documents/draft",
		"/analysis/firac",
		"/analysis/distinguish",
		"/precedents/search",
		"/precedents/search/export",
	} {
		assert.Contains(t, doc.Paths, p)
	}
}
