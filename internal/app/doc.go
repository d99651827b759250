// Package app sequences a report run: load users and companies, apply
// top-ups, write the report, verify it against a reference and optionally
// record the run in the ledger.
//
// Status lines for the operator go to the out writer; structured log lines
// (including the one line describing a fatal error) go to the log writer.
// Run returns the first error instead of exiting so that only main decides
// the process exit status.
package app
