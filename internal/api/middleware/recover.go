package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/citecheck/internal/api/shared"
	"github.com/phrazzld/citecheck/internal/redact"
)

// Recoverer turns a panic in a downstream handler into a 500 response whose
// JSON body describes the fault. The description and the logged stack are
// redacted.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := fmt.Errorf("panic: %s\n%s", redact.Value(rec), debug.Stack())
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, redact.Value(rec), err)
		}()

		next.ServeHTTP(w, r)
	})
}
