package services

import (
	"fmt"
	"net"
	"strings"

	"nathanbeddoewebdev/dynucert/internal/dns/domain"
)

// DefaultTTL is the TTL applied when none is specified (Dynu's default).
const DefaultTTL = 300

// validRecordTypes is the set of record types the Dynu API accepts for
// create and update.
var validRecordTypes = map[domain.RecordType]bool{
	domain.RecordTypeA:     true,
	domain.RecordTypeAAAA:  true,
	domain.RecordTypeCNAME: true,
	domain.RecordTypeTXT:   true,
	domain.RecordTypeNS:    true,
	domain.RecordTypeMX:    true,
	domain.RecordTypeSPF:   true,
}

// normalizeDomain lowercases and strips any trailing dot from a domain name.
func normalizeDomain(d string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(d), "."))
}

// normalizeNodeName strips the zone suffix from a node name if the user
// accidentally passes a fully-qualified name (e.g. "www.example.com" when
// the zone is "example.com"), and lowercases the result.
func normalizeNodeName(node, domainName string) string {
	node = strings.TrimSpace(node)
	node = strings.TrimRight(node, ".")
	node = strings.ToLower(node)

	// Strip ".domainName" suffix if present.
	suffix := "." + domainName
	if strings.HasSuffix(node, suffix) {
		node = node[:len(node)-len(suffix)]
	}
	// Also strip if the caller passed the bare zone as the node name.
	if node == domainName {
		node = ""
	}

	return node
}

// validateRecordType returns an error if t is not a supported record type.
func validateRecordType(t domain.RecordType) error {
	if !validRecordTypes[t] {
		return fmt.Errorf("unsupported record type %q", t)
	}
	return nil
}

// validateContent checks that the content value is appropriate for the record type.
// It does not perform exhaustive validation, only catching obvious mismatches
// (e.g. a non-IP value for an A record) to give the user an early error.
func validateContent(t domain.RecordType, content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("record content cannot be empty")
	}

	switch t {
	case domain.RecordTypeA:
		ip := net.ParseIP(content)
		if ip == nil || ip.To4() == nil {
			return fmt.Errorf("A record content must be a valid IPv4 address, got %q", content)
		}
	case domain.RecordTypeAAAA:
		ip := net.ParseIP(content)
		if ip == nil || ip.To4() != nil {
			return fmt.Errorf("AAAA record content must be a valid IPv6 address, got %q", content)
		}
	}

	return nil
}
