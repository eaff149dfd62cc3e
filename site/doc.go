// Package site defines the tagged Site sum type owned by faces: a PointSite
// or a LineSite, each reporting its apex point and whether a query point
// projects into its region.
//
// No dynamic dispatch is required beyond the Site interface itself — a
// PointSite and a LineSite are plain structs, favoring concrete types
// over reflection-heavy generics.
package site
