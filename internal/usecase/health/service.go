// Package health aggregates component health checks.
package health

import (
	"context"

	"github.com/kailas-cloud/articledex/internal/domain/language"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the store is not configured at all.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db      DBPinger
	indexes IndexChecker
}

// New creates a Service. db and indexes may be nil when the store is not
// configured; the report then marks the database unavailable.
func New(db DBPinger, indexes IndexChecker) *Service {
	return &Service{db: db, indexes: indexes}
}

// Check runs health checks against the store and each language index.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.db == nil {
		checks["database"] = CheckError
		return Report{Status: Unhealthy, Checks: checks}
	}

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
	} else {
		checks["database"] = CheckOK
	}

	if s.indexes != nil {
		for _, p := range language.Profiles() {
			name := "index:" + p.Code()
			ok, err := s.indexes.IndexExists(ctx, p.IndexName())
			if err != nil || !ok {
				checks[name] = CheckError
			} else {
				checks[name] = CheckOK
			}
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
