package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/topup/internal/common"
)

var errTrailingData = errors.New("unexpected data after top-level array")

// SourceError reports a source that could not be opened, read or parsed.
// It matches common.ErrSourceRead.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("error loading %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{common.ErrSourceRead, e.Err}
}

// LoadFile reads the JSON array of objects stored at path.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Source: path, Err: err}
	}
	defer f.Close()

	return Decode(f, path)
}

// Decode reads a JSON array of objects from r. source names the input in
// errors. On failure no records are returned.
func Decode(r io.Reader, source string) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, &SourceError{Source: source, Err: err}
	}
	if raw == nil {
		return nil, &SourceError{Source: source, Err: errors.New("expected a JSON array, got null")}
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return nil, &SourceError{Source: source, Err: err}
	}

	result := make([]Record, 0, len(raw))
	for i, item := range raw {
		rec, err := decodeObject(item)
		if err != nil {
			return nil, &SourceError{Source: source, Err: fmt.Errorf("element %d: %w", i, err)}
		}
		result = append(result, rec)
	}

	return result, nil
}

func decodeObject(data json.RawMessage) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("expected a JSON object, got null")
	}
	return rec, nil
}
