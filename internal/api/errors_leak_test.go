package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/citecheck/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorLeakage checks that internal error details never reach the client.
func TestErrorLeakage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		sensitive      []string
	}{
		{
			name:           "file path",
			err:            errors.New("open /etc/citecheck/secret/config.yaml: permission denied"),
			expectedStatus: http.StatusInternalServerError,
			sensitive:      []string{"/etc/citecheck", "permission denied"},
		},
		{
			name:           "deeply wrapped",
			err:            fmt.Errorf("handler: %w", fmt.Errorf("registry: %w", errors.New("password=hunter2"))),
			expectedStatus: http.StatusInternalServerError,
			sensitive:      []string{"hunter2", "registry"},
		},
		{
			name:           "wrapped request error",
			err:            fmt.Errorf("decode %s: %w", "user@example.com", shared.ErrTrailingData),
			expectedStatus: http.StatusBadRequest,
			sensitive:      []string{"user@example.com"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/citations/validate", nil)
			w := httptest.NewRecorder()

			respondWithRequestError(w, r, tc.err)

			assert.Equal(t, tc.expectedStatus, w.Code)
			var resp shared.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Error)
			for _, s := range tc.sensitive {
				assert.NotContains(t, resp.Error, s)
			}
		})
	}
}
