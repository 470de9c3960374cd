package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/career-coach-ml/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"predict_request.schema.json",
	"predict_response.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_DeclareJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			assert.Contains(t, schemaObj, "$schema")
			assert.Equal(t, "object", schemaObj["type"])
			assert.Contains(t, schemaObj, "properties")
		})
	}
}

func TestRequestSchema_AcceptsContractBodies(t *testing.T) {
	schemaContent, err := os.ReadFile("predict_request.schema.json")
	require.NoError(t, err)

	valid := []string{
		`{}`,
		`{"skills": []}`,
		`{"skills": ["python"]}`,
		`{"skills": ["a", "b", "c", "d"]}`,
		`{"skills": null}`,
		`{"skills": [1, true, {"nested": "ok"}]}`,
	}
	for _, doc := range valid {
		assert.NoError(t, schemas.ValidateJSONString(string(schemaContent), doc), "doc: %s", doc)
	}

	invalid := []string{
		`{"skills": "python"}`,
		`{"skills": 5}`,
		`{"skills": {"python": true}}`,
	}
	for _, doc := range invalid {
		assert.Error(t, schemas.ValidateJSONString(string(schemaContent), doc), "doc: %s", doc)
	}
}

func TestResponseSchema_MatchesEstimatorOutput(t *testing.T) {
	schemaContent, err := os.ReadFile("predict_response.schema.json")
	require.NoError(t, err)

	valid := []string{
		`{"predicted_salary": 50000}`,
		`{"predicted_salary": 51000}`,
		`{"predicted_salary": 54000}`,
	}
	for _, doc := range valid {
		assert.NoError(t, schemas.ValidateJSONString(string(schemaContent), doc), "doc: %s", doc)
	}

	invalid := []string{
		`{}`,
		`{"predicted_salary": "54000"}`,
		`{"predicted_salary": 49000}`,
		`{"predicted_salary": 50000, "extra": true}`,
	}
	for _, doc := range invalid {
		assert.Error(t, schemas.ValidateJSONString(string(schemaContent), doc), "doc: %s", doc)
	}
}
