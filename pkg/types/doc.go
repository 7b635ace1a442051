// Package types defines the data shared by the frece engine: resolved paths,
// file records, scan results, recovery outcomes and catalog summaries, plus
// the FS interface the scanner and copier work through.
//
// Every value here is transient and belongs to a single operation.
package types
