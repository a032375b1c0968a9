// Package collector implements the operation-collection pipeline: a Visit
// entry point invoked once per operation, a field assembler that turns
// parameters and request bodies into ordered property lists, and an
// insertion-ordered resource→options aggregate. Failures while collecting
// one operation never abort the traversal; they are reported through the
// diagnostic sink and the operation is dropped. Two derived views expose the
// result: one operation selector per resource and the flat global field
// list.
package collector
