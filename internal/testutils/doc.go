// Package testutils provides HTTP helpers shared by the handler and server
// tests.
package testutils
