// Package ciutil detects continuous integration environments and collects
// the CI metadata attached to log records.
package ciutil
