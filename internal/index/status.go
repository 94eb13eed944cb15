package index

import "time"

// Status describes the outcome of the startup index load. The index is
// read-only after startup, so a Status stays accurate for the process
// lifetime.
type Status struct {
	Available bool
	Documents int
	LoadedAt  time.Time
}
