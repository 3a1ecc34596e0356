// Package sora holds the shared vocabulary of the SORA risk engines: version
// tags, closed enumerations, the version-tagged request variants, result
// records, the error taxonomy and the regulatory lookup tables.
//
// The tables in this package are the single source of truth for every
// classification. The grc, arc and sail packages only read them through the
// lookup functions, and the tables are never modified after initialisation,
// so all of them may be used from any number of goroutines.
package sora
