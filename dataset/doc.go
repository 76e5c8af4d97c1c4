// Package dataset maps dataset labels to validated samples and handles the
// two ways samples enter the system: CSV ingestion and the bundled
// literature examples.
//
// A Set preserves insertion order, so batch analyses and rendered tables are
// reproducible run to run. The agreement engine itself never performs I/O;
// this package is the ingestion collaborator in front of it.
package dataset
