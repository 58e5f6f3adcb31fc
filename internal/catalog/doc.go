// Package catalog holds the set of known experiments and makes them
// retrievable by name.
//
// A Catalog is populated once, by Build or Populate, during application
// startup. After that it is only read, so concurrent lookups need no locking.
// Registering the same name twice is an error rather than an overwrite, which
// keeps built-in experiments and file-declared ones from silently shadowing
// each other.
package catalog
