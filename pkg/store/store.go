// Package store is the persistence boundary: three independent
// string-keyed records, JSON-serialized. Reads of absent keys report
// (false, nil) so callers can substitute their defaults; the state
// layer treats write failures as best-effort and only logs them.
package store

// Storage keys for the three persisted records.
const (
	KeyAccountData     = "letter-agent-account-data"
	KeyCustomTemplates = "letter-agent-custom-templates"
	KeyKnowledgeBase   = "letter-agent-knowledge-base"
)

// Store is a string-keyed JSON record store.
type Store interface {
	// Get unmarshals the record at key into v. It returns false with a
	// nil error when the key is absent.
	Get(key string, v any) (bool, error)

	// Put marshals v and writes it at key, replacing any previous value.
	Put(key string, v any) error

	// Delete removes the record at key. Deleting an absent key is not
	// an error.
	Delete(key string) error

	Close() error
}
