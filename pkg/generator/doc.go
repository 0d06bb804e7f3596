// Package generator renders version slices and upgrade pairings into CI
// configuration files.
//
// The generator is a thin caller of pkg/matrix: it reads a version list from
// a file (plain text with one version per line, or a JSON/YAML string list),
// parses all entries in parallel, derives the slice and pair sets, and emits
// one file per slice plus one upgrade-suite file per version into an output
// directory.
//
// Slice files are JSON lists of {"version": "<raw>"} objects, the shape
// consumed by downstream test schedulers. Custom CI syntaxes can be produced
// by supplying a text/template file; the template is expanded once per slice.
//
// Any malformed version in the input aborts the whole run. A partial matrix
// silently drops test coverage, so the generator never skips entries.
package generator
