// Package issuer drives certificate issuance through the lego ACME client,
// answering authorizations with a DNS-01 challenge provider.
package issuer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-acme/lego/v4/certcrypto"
	"github.com/go-acme/lego/v4/certificate"
	"github.com/go-acme/lego/v4/challenge"
	"github.com/go-acme/lego/v4/lego"
	"github.com/go-acme/lego/v4/registration"
)

// Options configure an Issuer.
type Options struct {
	// Email is the ACME account contact address.
	Email string

	// Staging selects the Let's Encrypt staging directory instead of
	// production. Use it for anything experimental: production rate
	// limits are unforgiving.
	Staging bool

	// AccountDir is where the ACME account key is stored.
	AccountDir string
}

// Issuer obtains certificates from an ACME CA using DNS-01 challenges.
type Issuer struct {
	opts     Options
	provider challenge.Provider
}

// New returns an Issuer that answers challenges with the given provider.
func New(provider challenge.Provider, opts Options) *Issuer {
	return &Issuer{opts: opts, provider: provider}
}

// Obtain requests a bundled certificate for the given domains. The account
// is registered on first use and reused afterwards via the stored key.
func (i *Issuer) Obtain(domains []string) (*certificate.Resource, error) {
	if len(domains) == 0 {
		return nil, fmt.Errorf("issuer: no domains requested")
	}
	if i.opts.Email == "" {
		return nil, fmt.Errorf("issuer: account email is required")
	}

	key, err := LoadOrCreateAccountKey(i.opts.AccountDir)
	if err != nil {
		return nil, err
	}
	account := &Account{Email: i.opts.Email, key: key}

	cfg := lego.NewConfig(account)
	cfg.Certificate.KeyType = certcrypto.EC256
	if i.opts.Staging {
		cfg.CADirURL = lego.LEDirectoryStaging
	} else {
		cfg.CADirURL = lego.LEDirectoryProduction
	}

	client, err := lego.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("issuer: creating ACME client: %w", err)
	}
	if err := client.Challenge.SetDNS01Provider(i.provider); err != nil {
		return nil, fmt.Errorf("issuer: configuring DNS-01 provider: %w", err)
	}

	reg, err := client.Registration.ResolveAccountByKey()
	if err != nil {
		reg, err = client.Registration.Register(registration.RegisterOptions{TermsOfServiceAgreed: true})
		if err != nil {
			return nil, fmt.Errorf("issuer: registering ACME account: %w", err)
		}
	}
	account.Registration = reg

	res, err := client.Certificate.Obtain(certificate.ObtainRequest{
		Domains: domains,
		Bundle:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("issuer: obtaining certificate: %w", err)
	}
	return res, nil
}

// SaveCertificate writes the certificate chain and private key under dir
// and returns their paths. The key file gets owner-only permissions.
func SaveCertificate(dir string, res *certificate.Resource) (certPath, keyPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("issuer: creating certificate directory: %w", err)
	}

	base := certFileBase(res.Domain)
	certPath = filepath.Join(dir, base+".crt")
	keyPath = filepath.Join(dir, base+".key")

	if err := os.WriteFile(certPath, res.Certificate, 0o644); err != nil {
		return "", "", fmt.Errorf("issuer: writing certificate: %w", err)
	}
	if err := os.WriteFile(keyPath, res.PrivateKey, 0o600); err != nil {
		return "", "", fmt.Errorf("issuer: writing private key: %w", err)
	}
	return certPath, keyPath, nil
}

// certFileBase turns a certificate's primary domain into a safe filename.
// A wildcard label becomes "_wildcard" so "*.example.com" maps to
// "_wildcard.example.com".
func certFileBase(domain string) string {
	return strings.ReplaceAll(domain, "*", "_wildcard")
}
