// Package predicate declares the external-collaborator contracts the
// insertion engine depends on but does not implement itself: a positioning
// solver, an in-circle predicate, and a spatial index. Subpackage native
// supplies a concrete default of each.
package predicate
