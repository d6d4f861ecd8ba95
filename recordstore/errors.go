package recordstore

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrSchemaMismatch = errors.New("document schema does not match the store")
)

// DataError reports a stored value that cannot be decoded or fails its
// checksum.
type DataError struct {
	ID   string
	Data []byte
	Err  error
	Msg  string
}

func dataErrf(id string, data []byte, err error, format string, args ...any) error {
	return &DataError{id, data, err, fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func (e *DataError) Error() string {
	const prefixLen = 64
	const suffixLen = 32
	n := len(e.Data)
	var data string
	if n <= prefixLen+suffixLen {
		data = fmt.Sprintf("(%d) %x", n, e.Data)
	} else {
		data = fmt.Sprintf("(%d) %x...%x", n, e.Data[:prefixLen], e.Data[n-suffixLen:])
	}
	if e.Err != nil {
		return fmt.Sprintf("record %s: %s: %v: %s", e.ID, e.Msg, e.Err, data)
	}
	return fmt.Sprintf("record %s: %s: %s", e.ID, e.Msg, data)
}
