package cert

import (
	"fmt"
	"os"
	"time"

	"nathanbeddoewebdev/dynucert/internal/acme/challenge"
	"nathanbeddoewebdev/dynucert/internal/acme/issuer"
	"nathanbeddoewebdev/dynucert/internal/auditlog"
	"nathanbeddoewebdev/dynucert/internal/config"
	"nathanbeddoewebdev/dynucert/internal/retry"

	"github.com/charmbracelet/huh/spinner"
	"github.com/go-acme/lego/v4/certificate"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ObtainCommand returns the "cert obtain" subcommand.
func ObtainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "obtain <domain> [domain...]",
		Short: "Obtain a certificate for one or more domains",
		Long: `Obtain a certificate from Let's Encrypt for the given domains, answering
DNS-01 challenges through the configured DNS provider. All domains go on a
single certificate; wildcards are supported.

Examples:
  dynucert cert obtain my.example.com
  dynucert cert obtain example.com "*.example.com" --staging
  dynucert cert obtain my.example.com --propagation 240`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runObtain,
		SilenceUsage: true,
	}

	cmd.Flags().String("email", "", "ACME account email (overrides acme-email config)")
	cmd.Flags().Bool("staging", false, "Use the Let's Encrypt staging directory")
	cmd.Flags().Int("propagation", 0, "Seconds to wait for DNS propagation (default: 120)")
	cmd.Flags().Int("ttl", 0, "TTL for challenge TXT records (default: 300)")
	cmd.Flags().String("cert-dir", "", "Directory to write the certificate and key (overrides cert-dir config)")

	return cmd
}

func runObtain(cmd *cobra.Command, args []string) error {
	domains := args
	if err := validateDomains(domains); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		email = cfg.ACMEEmail
	}
	if email == "" {
		return fmt.Errorf("no ACME email configured: use --email or 'dynucert config set acme-email <address>'")
	}

	staging, _ := cmd.Flags().GetBool("staging")
	staging = staging || cfg.ACMEStaging

	propagation := cfg.Propagation()
	if secs, _ := cmd.Flags().GetInt("propagation"); secs > 0 {
		propagation = time.Duration(secs) * time.Second
	}

	ttl := cfg.TTL()
	if flagTTL, _ := cmd.Flags().GetInt("ttl"); flagTTL > 0 {
		ttl = flagTTL
	}

	certDir, _ := cmd.Flags().GetString("cert-dir")
	if certDir == "" {
		certDir = cfg.CertDir
	}
	if certDir == "" {
		certDir = "."
	}

	provider, providerName, err := newProvider(cmd)
	if err != nil {
		return err
	}

	solver := challenge.NewSolver(provider,
		challenge.WithTTL(ttl),
		challenge.WithPropagation(propagation, challenge.DefaultPollInterval),
		challenge.WithWarnFunc(func(format string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: "+format+"\n", args...)
		}),
	)

	repo, err := auditlog.Open()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: audit log unavailable: %v\n", err)
		repo = nil
	}
	if repo != nil {
		defer repo.Close()
	}
	audited := &auditedSolver{solver: solver, repo: repoOrNil(repo), providerName: providerName}

	// Fail fast on unmanageable zones before touching the ACME server.
	if err := solver.Preflight(cmd.Context(), domains); err != nil {
		return err
	}

	accountDir, err := config.Dir()
	if err != nil {
		return err
	}
	iss := issuer.New(audited, issuer.Options{
		Email:      email,
		Staging:    staging,
		AccountDir: accountDir,
	})

	obtainStart := time.Now()
	res, err := obtainWithRetry(cmd, iss, domains)
	if repo != nil {
		entry := &auditlog.Entry{
			Operation:  auditlog.OpObtain,
			Domain:     domains[0],
			Provider:   providerName,
			Outcome:    auditlog.OutcomeSuccess,
			DurationMs: time.Since(obtainStart).Milliseconds(),
		}
		if err != nil {
			entry.Outcome = auditlog.OutcomeError
			entry.Detail = err.Error()
		}
		_ = repo.Save(entry)
	}
	if err != nil {
		return err
	}

	certPath, keyPath, err := issuer.SaveCertificate(certDir, res)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Certificate obtained for %s\n", res.Domain)
	fmt.Fprintf(cmd.OutOrStdout(), "  certificate: %s\n", certPath)
	fmt.Fprintf(cmd.OutOrStdout(), "  private key: %s\n", keyPath)
	return nil
}

// obtainWithRetry runs the issuance, retrying transient provider failures.
// A spinner is shown when attached to a terminal.
func obtainWithRetry(cmd *cobra.Command, iss *issuer.Issuer, domains []string) (*certificate.Resource, error) {
	var res *certificate.Resource

	obtain := func() error {
		var err error
		res, err = iss.Obtain(domains)
		return err
	}

	run := func() error {
		return retry.Do(cmd.Context(), retry.DefaultConfig(), retry.IsRetryable, obtain)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		accessible := os.Getenv("ACCESSIBLE") != ""
		var obtainErr error
		spinErr := spinner.New().
			Title("Obtaining certificate...").
			Accessible(accessible).
			Output(cmd.ErrOrStderr()).
			Action(func() {
				obtainErr = run()
			}).
			Run()
		if spinErr != nil {
			return nil, spinErr
		}
		return res, obtainErr
	}

	return res, run()
}

// repoOrNil keeps the typed-nil interface pitfall out of auditedSolver.
func repoOrNil(repo *auditlog.SQLiteRepository) auditlog.Repository {
	if repo == nil {
		return nil
	}
	return repo
}
