// Package schema declares the expected shape of a rendering context and
// validates contexts against it. A schema is a tree of Nodes mirroring the
// context it validates; validation produces Violations (missing required
// values, kind mismatches, out-of-enum scalars) that drive the interactive
// resolver.
//
// Validation follows an open-world policy: context keys the schema does not
// mention are permitted and ignored, so ancillary data can travel alongside
// the validated fields.
package schema
