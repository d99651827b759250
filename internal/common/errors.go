// Package common defines sentinel errors shared by the loading, mapping and
// orchestration layers. Callers should match them with errors.Is.
package common

import "errors"

var (
	// Source-level errors (missing file, unreadable data, malformed JSON).
	ErrSourceRead = errors.New("source read error")

	// Record-level errors (a single record cannot be mapped to an entity).
	ErrRecordMapping = errors.New("record mapping error")

	// Company ids must be unique across the companies source.
	ErrDuplicateCompanyID = errors.New("duplicate company id")

	// Configuration errors (bad flag values, unreadable config file).
	ErrInvalidConfig = errors.New("invalid config")
)
