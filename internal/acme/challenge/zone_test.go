package challenge

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	dnsdomain "nathanbeddoewebdev/dynucert/internal/dns/domain"
)

func TestNormalizeFQDN(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"example.com", "example.com"},
		{"EXAMPLE.COM", "example.com"},
		{"example.com.", "example.com"},
		{"  my.example.com  ", "my.example.com"},
		{"*.example.com", "example.com"},
		{"*.My.Example.COM.", "my.example.com"},
	}

	for _, c := range cases {
		if got := NormalizeFQDN(c.input); got != c.want {
			t.Errorf("NormalizeFQDN(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestCandidateZones(t *testing.T) {
	cases := []struct {
		fqdn string
		want []string
	}{
		{"example.com", []string{"example.com"}},
		{"my.example.com", []string{"my.example.com", "example.com"}},
		{"a.b.example.com", []string{"a.b.example.com", "b.example.com", "example.com"}},
		{"localhost", nil},
	}

	for _, c := range cases {
		got := candidateZones(c.fqdn)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("candidateZones(%q) mismatch (-want +got):\n%s", c.fqdn, diff)
		}
	}
}

func TestChallengeRecordName(t *testing.T) {
	cases := []struct {
		fqdn string
		zone string
		want string
	}{
		{"example.com", "example.com", "_acme-challenge"},
		{"my.example.com", "example.com", "_acme-challenge.my"},
		{"a.b.example.com", "example.com", "_acme-challenge.a.b"},
		{"a.b.example.com", "b.example.com", "_acme-challenge.a"},
	}

	for _, c := range cases {
		if got := challengeRecordName(c.fqdn, c.zone); got != c.want {
			t.Errorf("challengeRecordName(%q, %q) = %q, want %q", c.fqdn, c.zone, got, c.want)
		}
	}
}

func TestResolveZone_LongestSuffixWins(t *testing.T) {
	p := newFakeProvider("example.com", "my.example.com")

	zone, err := resolveZone(context.Background(), p, "a.my.example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if zone != "my.example.com" {
		t.Errorf("zone = %q, want %q", zone, "my.example.com")
	}
}

func TestResolveZone_CaseInsensitive(t *testing.T) {
	p := newFakeProvider("Example.COM")

	zone, err := resolveZone(context.Background(), p, "my.example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if zone != "example.com" {
		t.Errorf("zone = %q, want %q", zone, "example.com")
	}
}

func TestResolveZone_EmptyAccount(t *testing.T) {
	p := newFakeProvider()

	_, err := resolveZone(context.Background(), p, "my.example.com")
	if !errors.Is(err, dnsdomain.ErrZoneNotFound) {
		t.Errorf("expected ErrZoneNotFound, got %v", err)
	}
}

func TestResolveZone_NoMatch(t *testing.T) {
	p := newFakeProvider("other.net")

	_, err := resolveZone(context.Background(), p, "my.example.com")
	if !errors.Is(err, dnsdomain.ErrZoneNotFound) {
		t.Errorf("expected ErrZoneNotFound, got %v", err)
	}
}

func TestResolveZone_ProviderFailureIsNotMissingZone(t *testing.T) {
	p := newFakeProvider("example.com")
	p.listDomainsErr = dnsdomain.ErrUnavailable

	_, err := resolveZone(context.Background(), p, "my.example.com")
	if !errors.Is(err, dnsdomain.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if errors.Is(err, dnsdomain.ErrZoneNotFound) {
		t.Error("a provider failure must not be reported as a missing zone")
	}
}

func TestResolveZone_FetchesFreshEachCall(t *testing.T) {
	p := newFakeProvider()

	if _, err := resolveZone(context.Background(), p, "my.example.com"); err == nil {
		t.Fatal("expected error with empty account")
	}

	// A zone added after the first lookup must be visible to the next one.
	p.addZone("example.com")
	zone, err := resolveZone(context.Background(), p, "my.example.com")
	if err != nil {
		t.Fatalf("expected zone after adding it, got %v", err)
	}
	if zone != "example.com" {
		t.Errorf("zone = %q, want %q", zone, "example.com")
	}
	if p.listDomainsCalls != 2 {
		t.Errorf("expected 2 domain listings, got %d", p.listDomainsCalls)
	}
}
