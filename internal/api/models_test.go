package api

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/citecheck/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchValidateRequest(t *testing.T) {
	tests := []struct {
		name     string
		jsonData string
		valid    bool
	}{
		{
			name:     "valid batch",
			jsonData: `{"format":"mla","citations":["Smith, John. A Study."]}`,
			valid:    true,
		},
		{
			name:     "valid batch without format",
			jsonData: `{"citations":["a","b"]}`,
			valid:    true,
		},
		{
			name:     "empty citation strings are allowed",
			jsonData: `{"citations":[""]}`,
			valid:    true,
		},
		{
			name:     "missing citations",
			jsonData: `{"format":"apa"}`,
			valid:    false,
		},
		{
			name:     "empty citations",
			jsonData: `{"citations":[]}`,
			valid:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req BatchValidateRequest
			require.NoError(t, json.Unmarshal([]byte(tc.jsonData), &req))

			err := shared.ValidateRequest(req)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateCitationRequest_Format(t *testing.T) {
	tests := []struct {
		name     string
		jsonData string
		expected *string
	}{
		{name: "absent", jsonData: `{"citation":"x"}`, expected: nil},
		{name: "null", jsonData: `{"citation":"x","format":null}`, expected: nil},
		{name: "empty", jsonData: `{"citation":"x","format":""}`, expected: ptr("")},
		{name: "set", jsonData: `{"citation":"x","format":"MLA"}`, expected: ptr("MLA")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req ValidateCitationRequest
			require.NoError(t, json.Unmarshal([]byte(tc.jsonData), &req))
			assert.Equal(t, "x", req.Citation)
			assert.Equal(t, tc.expected, req.Format)
		})
	}
}

func TestValidateCitationRequest_NullCitation(t *testing.T) {
	var req ValidateCitationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"citation":null}`), &req))
	assert.Empty(t, req.Citation)
}

func ptr(s string) *string { return &s }
