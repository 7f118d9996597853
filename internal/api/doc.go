// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It is a thin adapter in front of the citation
// validator: it decodes payloads, applies defaults, and maps faults to status
// codes. A citation that fails its style check is a successful response, not
// an HTTP error.
package api
