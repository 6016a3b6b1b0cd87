// Package floss holds the reference catalog of embroidery thread colors and
// the nearest-color matcher used to assign a floss to every stitch.
//
// # Catalog
//
// A Catalog is loaded once from a CSV table with the columns
//
//	Floss#,Description,Red,Green,Blue
//
// (the aliases "identifier"/"id" and "name" are accepted for the first two).
// Every row becomes an immutable Entry. Malformed rows, out-of-range channel
// values, duplicate identifiers and empty tables fail with *CatalogLoadError.
// The DMC table shipped with the module is available through Default.
//
// # Matching
//
// Matcher.Closest returns the catalog entry with the smallest squared
// Euclidean RGB distance to the query. Ties go to the entry that appears
// first in the catalog, so catalogs containing several entries with the same
// reference color still resolve deterministically.
//
// Lookups are memoized in a MatchCache owned by the caller. A cache is meant
// to live for one conversion run; the Matcher itself holds no mutable state
// and is safe for concurrent use as long as each goroutine uses its own cache.
package floss
