// Package native supplies the default collaborator implementations the
// engine needs to be usable out of the box: a clearance-disk in-circle
// predicate, a closed-form/bisection positioning solver, and a bucket-grid
// spatial index. A caller with sharper numerics (arbitrary precision,
// kd-tree search, ...) can still swap any of the three in independently
// through the predicate package's interfaces.
package native
