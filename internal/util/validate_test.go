package util

import "testing"

func TestValidateDomainName_Valid(t *testing.T) {
	valid := []string{
		"example.com",
		"my.example.com",
		"api.my.example.com",
		"*.example.com",
		"example.com.",
		"xn--nxasmq6b.example.com",
		"a-b.example.co.uk",
	}
	for _, name := range valid {
		if err := ValidateDomainName(name); err != nil {
			t.Errorf("ValidateDomainName(%q) = %v, want nil", name, err)
		}
	}
}

func TestValidateDomainName_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"com",
		"*.com",
		"example..com",
		"-example.com",
		"example-.com",
		"foo.*.example.com",
		"_acme-challenge.example.com",
		"exa mple.com",
	}
	for _, name := range invalid {
		if err := ValidateDomainName(name); err == nil {
			t.Errorf("ValidateDomainName(%q) = nil, want error", name)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	if got := NormalizeKey("  Dynu "); got != "dynu" {
		t.Errorf("NormalizeKey = %q, want %q", got, "dynu")
	}
}
