package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Citation string  `json:"citation"`
		Format   *string `json:"format"`
	}

	tests := []struct {
		name        string
		requestBody string
		wantErr     error
		errContains string
		want        payload
	}{
		{
			name:        "valid json",
			requestBody: `{"citation": "Smith, J. (2020). A study.", "format": "APA"}`,
			want:        payload{Citation: "Smith, J. (2020). A study.", Format: strPtr("APA")},
		},
		{
			name:        "unknown fields ignored",
			requestBody: `{"citation": "x", "session": "abc"}`,
			want:        payload{Citation: "x"},
		},
		{
			name:        "invalid json",
			requestBody: `{"citation": "x",}`,
			errContains: "invalid character",
		},
		{
			name:        "wrong type",
			requestBody: `{"citation": 42}`,
			errContains: "cannot unmarshal",
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     ErrEmptyBody,
		},
		{
			name:        "trailing data",
			requestBody: `{"citation": "x"} {"citation": "y"}`,
			errContains: "unexpected data",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tc.requestBody))

			var got payload
			err := DecodeJSON(req, &got)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestDecodeJSON_NoBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	var v struct{}
	assert.ErrorIs(t, DecodeJSON(req, &v), ErrEmptyBody)
}

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if s.ok {
		return nil
	}
	return assert.AnError
}

func TestValidateRequest(t *testing.T) {
	type batch struct {
		Citations []string `validate:"required,min=1"`
	}

	assert.NoError(t, ValidateRequest(batch{Citations: []string{"a"}}))
	assert.Error(t, ValidateRequest(batch{}))
	assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
	assert.ErrorIs(t, ValidateRequest(selfValidating{ok: false}), assert.AnError)
}

func strPtr(s string) *string { return &s }
