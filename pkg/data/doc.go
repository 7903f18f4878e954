// Package data defines the generic value tree shared by every pipeline
// stage: decoding structured documents (JSON, JSONC, YAML) into values,
// addressing locations inside a tree with paths, and deep-merging several
// trees into a single rendering context.
//
// Values are treated as immutable once constructed. Operations that change
// a tree (Merge, SetPath) return a new value and leave their inputs intact,
// so a stage can hand its context to the next stage without defensive
// copying.
package data
