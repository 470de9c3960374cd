//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionRequest_Decode(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantCount int
	}{
		{
			name:      "skills with string elements",
			body:      `{"skills": ["python", "go", "sql"]}`,
			wantCount: 3,
		},
		{
			name:      "empty skills list",
			body:      `{"skills": []}`,
			wantCount: 0,
		},
		{
			name:      "skills field missing",
			body:      `{}`,
			wantCount: 0,
		},
		{
			name:      "skills null treated as absent",
			body:      `{"skills": null}`,
			wantCount: 0,
		},
		{
			name:      "mixed element types count equally",
			body:      `{"skills": ["python", 42, true, {"name": "go"}, null]}`,
			wantCount: 5,
		},
		{
			name:      "unknown fields ignored",
			body:      `{"skills": ["python"], "years_experience": 10, "location": "remote"}`,
			wantCount: 1,
		},
		{
			name:    "skills is a scalar",
			body:    `{"skills": 5}`,
			wantErr: true,
		},
		{
			name:    "skills is a string",
			body:    `{"skills": "python"}`,
			wantErr: true,
		},
		{
			name:    "skills is an object",
			body:    `{"skills": {"python": true}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req PredictionRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, req.SkillCount())
		})
	}
}

func TestPredictionRequest_ElementsStayRaw(t *testing.T) {
	body := `{"skills": [{"deeply": {"nested": ["anything"]}}, "plain"]}`

	var req PredictionRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.Equal(t, 2, req.SkillCount())

	// Elements round-trip untouched; nothing interprets them.
	assert.JSONEq(t, `{"deeply": {"nested": ["anything"]}}`, string(req.Skills[0]))
	assert.JSONEq(t, `"plain"`, string(req.Skills[1]))
}

func TestPredictionResponse_JSON(t *testing.T) {
	resp := PredictionResponse{PredictedSalary: 54000}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"predicted_salary": 54000}`, string(data))

	var decoded PredictionResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 54000, decoded.PredictedSalary)
}

func TestStatusResponse_JSON(t *testing.T) {
	resp := StatusResponse{Message: "ML Service is running!"}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message": "ML Service is running!"}`, string(data))
}
