package refdata

import "fmt"

// LookupError reports a key that has no row in a reference table. A missing
// key is distinct from a zero value: callers that need the distinction match
// with errors.As.
type LookupError struct {
	Table string // table name, e.g. "electricity_intensity"
	Key   string // region code or year that was requested
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("refdata: no entry for %q in table %s", e.Key, e.Table)
}
