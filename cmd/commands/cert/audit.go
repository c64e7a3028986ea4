package cert

import (
	"time"

	"nathanbeddoewebdev/dynucert/internal/acme/challenge"
	"nathanbeddoewebdev/dynucert/internal/auditlog"
)

// auditedSolver wraps a Solver and records every present and cleanup as an
// audit entry. A nil repository disables recording without changing
// behaviour.
type auditedSolver struct {
	solver       *challenge.Solver
	repo         auditlog.Repository
	providerName string
}

func (a *auditedSolver) Present(domain, token, keyAuth string) error {
	start := time.Now()
	err := a.solver.Present(domain, token, keyAuth)
	a.record(auditlog.OpPresent, domain, start, err)
	return err
}

func (a *auditedSolver) CleanUp(domain, token, keyAuth string) error {
	start := time.Now()
	err := a.solver.CleanUp(domain, token, keyAuth)
	a.record(auditlog.OpCleanup, domain, start, err)
	return err
}

func (a *auditedSolver) Timeout() (timeout, interval time.Duration) {
	return a.solver.Timeout()
}

func (a *auditedSolver) record(op, domain string, start time.Time, err error) {
	if a.repo == nil {
		return
	}
	entry := &auditlog.Entry{
		Operation:  op,
		Domain:     challenge.NormalizeFQDN(domain),
		Provider:   a.providerName,
		Outcome:    auditlog.OutcomeSuccess,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = err.Error()
	}
	// Audit failures never interrupt issuance.
	_ = a.repo.Save(entry)
}
