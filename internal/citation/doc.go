// Package citation checks whether a bibliographic citation string conforms
// structurally to a named citation style such as APA or MLA.
//
// The checks are positional and punctuation based. They say nothing about
// whether the cited work exists or whether the author, year or title are
// accurate. Styles are registered as Rule values in a Registry; the default
// registry knows "apa" and "mla" and every other style resolves to the fixed
// "Unsupported format" result.
//
// Validate is a pure function. It never panics, keeps no state between calls,
// performs no I/O and is safe for concurrent use.
package citation
