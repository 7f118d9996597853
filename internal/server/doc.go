// Package server assembles the HTTP application: it wires configuration,
// logging, the citation registry and middleware into a chi router and runs
// the HTTP server with graceful shutdown.
package server
