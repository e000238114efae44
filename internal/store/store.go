// Package store persists sessions: one business record, accumulating
// products across recording phases. Two implementations exist behind the
// same interface: JSON files on disk, and SQLite.
package store

import (
	"errors"
	"fmt"
	"time"

	"voice-catalog-go/internal/record"
)

// ErrNotFound is returned when a session id does not exist.
var ErrNotFound = errors.New("session not found")

// Session pairs a session id with its record. The JSON field names mirror
// the wire shape the frontend consumes.
type Session struct {
	ID     string                `json:"filename"`
	Record record.BusinessRecord `json:"data"`
}

// Store is the session persistence collaborator. AppendProducts must keep
// existing entries first and add the new ones after, never replacing.
type Store interface {
	Create(rec record.BusinessRecord) (string, error)
	Load(id string) (record.BusinessRecord, error)
	AppendProducts(id string, products []record.ProductRecord) (record.BusinessRecord, error)
	Replace(id string, rec record.BusinessRecord) (record.BusinessRecord, error)
	List() ([]Session, error)
	Delete(id string) (bool, error)
}

// newSessionID produces the timestamped identity a phase-1 upload creates.
// exists resolves collisions when two sessions land in the same second.
func newSessionID(now time.Time, exists func(string) bool) string {
	base := "session_" + now.Format("20060102_150405")
	id := base
	for n := 1; exists(id); n++ {
		id = fmt.Sprintf("%s_%d", base, n)
	}
	return id
}
