package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validData = `[
  {
    "title": "Paper A",
    "decision": "Accept",
    "reviews": [
      {
        "reviewer": "human",
        "text": "Looks solid.",
        "metrics": {"coverage": 3, "specificity": 4, "source": "human"}
      },
      {
        "reviewer": "ai/gpt-4",
        "metrics": {"coverage": 5, "source": "ai", "comment": "confident"}
      }
    ]
  }
]`

func TestValidateDataBytes_Valid(t *testing.T) {
	findings := ValidateDataBytes([]byte(validData))
	assert.Empty(t, findings)
}

func TestValidateDataBytes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not_an_array", `{"title": "x"}`},
		{"missing_title", `[{"reviews": []}]`},
		{"missing_reviewer", `[{"title": "P", "reviews": [{"text": "hi"}]}]`},
		{"bad_reviewer", `[{"title": "P", "reviews": [{"reviewer": "robot"}]}]`},
		{"score_out_of_range", `[{"title": "P", "reviews": [{"reviewer": "human", "metrics": {"coverage": 9}}]}]`},
		{"bad_source", `[{"title": "P", "reviews": [{"reviewer": "human", "metrics": {"source": "maybe"}}]}]`},
		{"malformed_json", `[{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := ValidateDataBytes([]byte(tt.data))
			assert.NotEmpty(t, findings)
		})
	}
}

func TestValidateDataFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(validData), 0o644))

	findings, err := ValidateDataFile(path)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestValidateDataFile_Missing(t *testing.T) {
	_, err := ValidateDataFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
