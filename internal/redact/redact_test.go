package redact

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		contains   []string
		notContain []string
	}{
		{
			name:       "empty",
			input:      "",
			contains:   nil,
			notContain: nil,
		},
		{
			name:       "plain_message_untouched",
			input:      "Does not match APA format",
			contains:   []string{"Does not match APA format"},
			notContain: []string{"[REDACTED"},
		},
		{
			name:       "connection_string_credentials",
			input:      "dial failed: postgres://admin:hunter2@db/citations",
			contains:   []string{RedactedCredentialPlaceholder},
			notContain: []string{"hunter2", "admin:"},
		},
		{
			name:       "password_assignment",
			input:      "config error password=supersecret",
			contains:   []string{RedactedCredentialPlaceholder},
			notContain: []string{"supersecret"},
		},
		{
			name:       "api_key",
			input:      "api_key: abcdefgh12345678",
			contains:   []string{RedactedKeyPlaceholder},
			notContain: []string{"abcdefgh12345678"},
		},
		{
			name:       "email",
			input:      "contact jane.doe@example.org for access",
			contains:   []string{RedactedEmailPlaceholder},
			notContain: []string{"jane.doe@example.org"},
		},
		{
			name:       "go_source_path",
			input:      "runtime error at /home/ci/src/citecheck/internal/api/citation_handler.go:42",
			contains:   []string{RedactedPathPlaceholder},
			notContain: []string{"/home/ci", "citation_handler.go"},
		},
		{
			name:       "ip_and_port",
			input:      "connect to 10.0.0.12:5432 refused",
			contains:   []string{RedactedHostPlaceholder},
			notContain: []string{"10.0.0.12"},
		},
		{
			name:       "stack_trace",
			input:      "panic: boom\n\ngoroutine 1 [running]:\nmain.main()\n\t/tmp/x/main.go:5 +0x1d",
			contains:   []string{RedactedStackPlaceholder},
			notContain: []string{"main.go:5"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := String(tc.input)
			for _, s := range tc.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tc.notContain {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestRedactError(t *testing.T) {
	assert.Equal(t, "", Error(nil))

	err := fmt.Errorf("wrap: %w", errors.New("token=abcdefghijklmnop"))
	got := Error(err)
	assert.Contains(t, got, "wrap: ")
	assert.NotContains(t, got, "abcdefghijklmnop")
}

func TestRedactValue(t *testing.T) {
	assert.Equal(t, "", Value(nil))
	assert.Equal(t, "index out of range", Value("index out of range"))
	assert.Contains(t, Value(errors.New("open /var/lib/citecheck/rules/apa.yaml")), RedactedPathPlaceholder)
	assert.Equal(t, "42", Value(42))
}

func TestRedactCitation(t *testing.T) {
	assert.Equal(t, "[CITATION empty]", Citation(""))
	assert.Equal(t, "[CITATION 5 chars]", Citation("Smïth"))
}
