// Package challenge implements the DNS-01 challenge solver. It provisions
// and removes _acme-challenge TXT records through a dns/domain.Provider and
// plugs into the lego certificate flow as a challenge provider.
package challenge

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-acme/lego/v4/challenge/dns01"
	"golang.org/x/sync/errgroup"

	dnsdomain "nathanbeddoewebdev/dynucert/internal/dns/domain"
)

const (
	challengePrefix = "_acme-challenge"

	// DefaultPropagation is how long verification waits for the TXT record
	// to spread to the provider's nameservers.
	DefaultPropagation = 120 * time.Second

	// DefaultPollInterval is how often verification re-checks the record.
	DefaultPollInterval = 2 * time.Second

	defaultTTL       = 300
	defaultOpTimeout = 2 * time.Minute
)

// WarnFunc receives non-fatal diagnostics, mainly from cleanup.
type WarnFunc func(format string, args ...any)

type handleKey struct {
	fqdn  string
	token string
}

// handle remembers where a challenge record was placed so cleanup can
// remove it without recomputing the zone.
type handle struct {
	zone       string
	recordName string
	recordID   string
}

// Solver provisions and removes DNS-01 challenge TXT records. It is safe
// for concurrent use and holds no state between unrelated invocations:
// the zone list is fetched fresh for every challenge.
type Solver struct {
	provider    dnsdomain.Provider
	ttl         int
	propagation time.Duration
	interval    time.Duration
	opTimeout   time.Duration
	warn        WarnFunc

	mu      sync.Mutex
	handles map[handleKey]handle
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithTTL sets the TTL for created challenge records.
func WithTTL(ttl int) SolverOption {
	return func(s *Solver) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithPropagation sets the propagation wait and polling interval reported
// to the verification loop.
func WithPropagation(wait, interval time.Duration) SolverOption {
	return func(s *Solver) {
		if wait > 0 {
			s.propagation = wait
		}
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithOperationTimeout bounds each provider round trip during Present and
// CleanUp.
func WithOperationTimeout(d time.Duration) SolverOption {
	return func(s *Solver) {
		if d > 0 {
			s.opTimeout = d
		}
	}
}

// WithWarnFunc routes non-fatal diagnostics to the given sink.
func WithWarnFunc(warn WarnFunc) SolverOption {
	return func(s *Solver) {
		if warn != nil {
			s.warn = warn
		}
	}
}

// NewSolver returns a Solver backed by the given DNS provider.
func NewSolver(provider dnsdomain.Provider, opts ...SolverOption) *Solver {
	s := &Solver{
		provider:    provider,
		ttl:         defaultTTL,
		propagation: DefaultPropagation,
		interval:    DefaultPollInterval,
		opTimeout:   defaultOpTimeout,
		warn: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
		handles: make(map[handleKey]handle),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Present creates the TXT record that answers the DNS-01 challenge for
// domain. A record with the expected name and value that already exists
// counts as success, so a retried challenge does not fail on its own
// leftovers.
func (s *Solver) Present(domain, token, keyAuth string) error {
	info := dns01.GetChallengeInfo(domain, keyAuth)
	fqdn := NormalizeFQDN(domain)

	ctx, cancel := context.WithTimeout(context.Background(), s.opTimeout)
	defer cancel()

	zone, err := resolveZone(ctx, s.provider, fqdn)
	if err != nil {
		return err
	}
	name := challengeRecordName(fqdn, zone)

	if existing, err := s.findRecord(ctx, zone, name, info.Value); err == nil && existing != nil {
		s.remember(fqdn, token, handle{zone: zone, recordName: name, recordID: existing.ID})
		return nil
	}

	rec, err := s.provider.CreateRecord(ctx, zone, dnsdomain.CreateRecordOpts{
		Name:    name,
		Type:    dnsdomain.RecordTypeTXT,
		Content: info.Value,
		TTL:     s.ttl,
	})
	if err != nil {
		// A concurrent or stale duplicate is fine as long as the value matches.
		if errors.Is(err, dnsdomain.ErrConflict) {
			if existing, ferr := s.findRecord(ctx, zone, name, info.Value); ferr == nil && existing != nil {
				s.remember(fqdn, token, handle{zone: zone, recordName: name, recordID: existing.ID})
				return nil
			}
		}
		return fmt.Errorf("challenge: creating TXT record %q in zone %q: %w", name, zone, err)
	}

	s.remember(fqdn, token, handle{zone: zone, recordName: name, recordID: rec.ID})
	return nil
}

// CleanUp removes the TXT record created by Present. Cleanup is best
// effort: a record that is already gone is success, and any other failure
// is reported through the warn sink rather than returned, so a failed
// cleanup never aborts an otherwise successful issuance.
func (s *Solver) CleanUp(domain, token, keyAuth string) error {
	info := dns01.GetChallengeInfo(domain, keyAuth)
	fqdn := NormalizeFQDN(domain)

	ctx, cancel := context.WithTimeout(context.Background(), s.opTimeout)
	defer cancel()

	h, ok := s.forget(fqdn, token)
	if !ok {
		// No handle from this process: recompute where the record would be.
		zone, err := resolveZone(ctx, s.provider, fqdn)
		if err != nil {
			s.warn("cleanup for %q: %v", fqdn, err)
			return nil
		}
		name := challengeRecordName(fqdn, zone)
		existing, err := s.findRecord(ctx, zone, name, info.Value)
		if err != nil {
			s.warn("cleanup for %q: %v", fqdn, err)
			return nil
		}
		if existing == nil {
			return nil
		}
		h = handle{zone: zone, recordName: name, recordID: existing.ID}
	}

	if err := s.provider.DeleteRecord(ctx, h.zone, h.recordID); err != nil {
		if errors.Is(err, dnsdomain.ErrNotFound) {
			return nil
		}
		s.warn("cleanup for %q: deleting TXT record %q in zone %q: %v",
			fqdn, h.recordName, h.zone, err)
	}
	return nil
}

// Timeout reports the propagation wait and polling interval for the
// verification loop.
func (s *Solver) Timeout() (timeout, interval time.Duration) {
	return s.propagation, s.interval
}

// Preflight verifies that every domain maps to a zone in the provider
// account before any challenge is attempted. Lookups run concurrently;
// the first failure wins.
func (s *Solver) Preflight(ctx context.Context, domains []string) error {
	seen := make(map[string]bool, len(domains))
	g, ctx := errgroup.WithContext(ctx)

	for _, d := range domains {
		fqdn := NormalizeFQDN(d)
		if fqdn == "" || seen[fqdn] {
			continue
		}
		seen[fqdn] = true

		g.Go(func() error {
			if _, err := resolveZone(ctx, s.provider, fqdn); err != nil {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}

// findRecord returns the TXT record in zone with the given node name and
// value, or nil when no such record exists.
func (s *Solver) findRecord(ctx context.Context, zone, name, value string) (*dnsdomain.Record, error) {
	records, err := s.provider.ListRecords(ctx, zone)
	if err != nil {
		return nil, fmt.Errorf("challenge: listing records in zone %q: %w", zone, err)
	}
	for _, r := range records {
		if r.Type == dnsdomain.RecordTypeTXT && r.Name == name && r.Content == value {
			return &r, nil
		}
	}
	return nil, nil
}

func (s *Solver) remember(fqdn, token string, h handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handles[handleKey{fqdn: fqdn, token: token}] = h
}

func (s *Solver) forget(fqdn, token string) (handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.handles[handleKey{fqdn: fqdn, token: token}]
	if ok {
		delete(s.handles, handleKey{fqdn: fqdn, token: token})
	}
	return h, ok
}
