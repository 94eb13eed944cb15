package health

import "context"

// StorePinger checks session store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// IndexChecker checks search index availability.
type IndexChecker interface {
	HealthCheck(ctx context.Context) error
}

// CheckerFunc adapts a function to IndexChecker.
type CheckerFunc func(ctx context.Context) error

// HealthCheck calls f.
func (f CheckerFunc) HealthCheck(ctx context.Context) error { return f(ctx) }
