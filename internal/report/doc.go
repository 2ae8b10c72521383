// Package report derives read-only views from journal records: daily and
// monthly rating series, rating distributions and the tag drill-down.
//
// Every function is total. Missing data is zero or empty, never an error,
// and inputs are treated as an immutable snapshot.
package report
