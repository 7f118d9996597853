// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). Environment variables
// use the CITECHECK_ prefix, with nested keys joined by underscores
// (e.g. CITECHECK_SERVER_PORT).
package config
