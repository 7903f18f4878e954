// Package cli implements the weave command tree: render, init, list, man,
// and autocomplete. The framework is deliberately small; commands declare
// their flags lazily and dispatch walks the tree by the first positional
// argument.
package cli
