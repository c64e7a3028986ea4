package util

import (
	"fmt"
	"regexp"
	"strings"
)

// validLabelChars matches only alphanumeric characters and hyphens.
var validLabelChars = regexp.MustCompile(`^[a-zA-Z0-9\-]+$`)

// ValidateDomainName checks that a name is a plausible domain to request a
// certificate for:
//   - At least two dot-separated labels (a bare TLD is never certifiable here)
//   - An optional single leading "*." wildcard label
//   - Labels of 1-63 characters, alphanumeric plus hyphens
//   - No label starting or ending with a hyphen
//
// Underscore labels (e.g. _acme-challenge) are intentionally rejected: they
// are record names, not certifiable hosts.
func ValidateDomainName(name string) error {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	if name == "" {
		return fmt.Errorf("domain name is empty")
	}

	name = strings.TrimPrefix(name, "*.")
	if strings.Contains(name, "*") {
		return fmt.Errorf("wildcard is only allowed as the leftmost label (got %q)", name)
	}

	labels := strings.Split(name, ".")
	if len(labels) < 2 {
		return fmt.Errorf("domain name %q must have at least two labels", name)
	}

	for _, label := range labels {
		if label == "" {
			return fmt.Errorf("domain name %q contains an empty label", name)
		}
		if len(label) > 63 {
			return fmt.Errorf("label %q exceeds 63 characters", label)
		}
		if !validLabelChars.MatchString(label) {
			return fmt.Errorf("label %q contains invalid characters (only a-z, A-Z, 0-9, and hyphens are allowed)", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("label %q must not start or end with a hyphen", label)
		}
	}

	return nil
}
