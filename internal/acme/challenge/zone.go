package challenge

import (
	"context"
	"fmt"
	"strings"

	dnsdomain "nathanbeddoewebdev/dynucert/internal/dns/domain"
)

// NormalizeFQDN canonicalises a domain name for zone matching: it trims
// whitespace, lowercases, strips a trailing dot, and strips a leading
// wildcard label. A wildcard name resolves to the same zone as its base
// domain, so "*.example.com" and "example.com" are equivalent here.
func NormalizeFQDN(fqdn string) string {
	fqdn = strings.ToLower(strings.TrimSpace(fqdn))
	fqdn = strings.TrimSuffix(fqdn, ".")
	fqdn = strings.TrimPrefix(fqdn, "*.")
	return fqdn
}

// candidateZones returns the suffixes of fqdn that could be a registered
// zone, longest first. Suffixes shorter than two labels are never valid
// zones and are not produced.
//
//	"a.b.example.com" -> ["a.b.example.com", "b.example.com", "example.com"]
func candidateZones(fqdn string) []string {
	labels := strings.Split(fqdn, ".")
	if len(labels) < 2 {
		return nil
	}

	candidates := make([]string, 0, len(labels)-1)
	for i := 0; i <= len(labels)-2; i++ {
		candidates = append(candidates, strings.Join(labels[i:], "."))
	}
	return candidates
}

// challengeRecordName returns the TXT record node name for a challenge on
// fqdn within zone. The name is relative to the zone: a challenge on the
// zone apex is plain "_acme-challenge"; a challenge on a subdomain keeps
// the labels left of the zone.
//
//	("example.com",        "example.com") -> "_acme-challenge"
//	("my.example.com",     "example.com") -> "_acme-challenge.my"
//	("a.b.example.com",    "example.com") -> "_acme-challenge.a.b"
func challengeRecordName(fqdn, zone string) string {
	if fqdn == zone {
		return challengePrefix
	}
	left := strings.TrimSuffix(fqdn, "."+zone)
	return challengePrefix + "." + left
}

// resolveZone finds the registered zone for fqdn by listing the zones in
// the provider account and picking the longest suffix match. The match is
// case-insensitive. The domain list is fetched fresh on every call so a
// zone added between invocations is picked up.
//
// No matching zone yields ErrZoneNotFound. A failure to reach the provider
// propagates as-is and is never reported as a missing zone.
func resolveZone(ctx context.Context, provider dnsdomain.Provider, fqdn string) (string, error) {
	domains, err := provider.ListDomains(ctx)
	if err != nil {
		return "", fmt.Errorf("challenge: listing zones for %q: %w", fqdn, err)
	}

	registered := make(map[string]string, len(domains))
	for _, d := range domains {
		registered[strings.ToLower(d.Name)] = d.Name
	}

	for _, candidate := range candidateZones(fqdn) {
		if name, ok := registered[candidate]; ok {
			return strings.ToLower(name), nil
		}
	}

	return "", fmt.Errorf("challenge: no zone for %q among %d account zones: %w",
		fqdn, len(domains), dnsdomain.ErrZoneNotFound)
}
