// Package props defines the typed UI property model produced by the
// collector: input properties, selectable options, visibility conditions,
// and routing templates. Everything here is a value type with explicit
// Clone methods so per-resource copies can be tagged independently without
// sharing mutable state. Struct fields carry JSON tags so consumers can
// serialise the model directly.
package props
