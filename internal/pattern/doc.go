// Package pattern holds the compiled classification tables used by the
// axis detector and the candidate resolver.
//
// A Table is a declarative description: per semantic category, the axis-name
// regexps, standard_name synonyms, the expected axis code, and the
// destination-name families that belong to the category. Compile turns a
// Table into an immutable Registry exactly once; any malformed entry is
// reported as a *ConfigurationError at that point and never later.
//
// A Registry is never mutated after Compile returns, so a single instance
// may be shared by any number of goroutines without synchronization.
//
// Entry order is precedence order: when an axis name matches patterns of
// several categories, the category declared first wins. User extensions are
// merged after the built-in entries (see Table.Merge).
package pattern
