// Package neo defines the two record types of the data set: near-Earth
// objects and their close approaches to Earth.
//
// Both types are passive data holders. They are constructed unlinked by
// the loaders (an Object with no approaches, an Approach with no resolved
// NEO) and are connected exactly once by db.New. After linking, records
// are treated as read-only for the remainder of the process.
//
// Optional fields use pointers rather than sentinel values:
//
//   - Name is nil when the object has no IAU name. No object has the
//     empty string as a name.
//   - Diameter, Distance and Velocity are nil when the source data does
//     not provide them. NaN sentinels are never used, so no NaN-equality
//     comparison exists anywhere.
//   - Hazardous is nil when the source field is absent. An absent flag is
//     distinct from false and must not silently collapse into it.
package neo
