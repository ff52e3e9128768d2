// Package transform implements the markdown tab-block transformer: it finds
// `=== "name"` tab sections, extracts a single named section, and flattens
// tabbed documents into plain markdown with real headings.
package transform
