package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/datapipe/spfetch/internal/config"
	"github.com/datapipe/spfetch/internal/fetch"
)

// version is set at build time via ldflags.
var version = "dev"

// Global persistent flags, bound in newRootCmd().
var (
	flagConfigPath string
	flagSite       string
	flagVerbose    bool
	flagQuiet      bool
)

// resolvedCfg holds the effective configuration loaded by PersistentPreRunE.
// It is available to all subcommands after the root pre-run phase completes.
var resolvedCfg *config.Resolved

// newRootCmd builds and returns the fully-assembled root command with all
// subcommands registered. Called once from main().
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spfetch",
		Short: "Fetch a single file from a SharePoint document library",
		Long: `spfetch downloads one named file from a SharePoint site's Documents
library, given a root folder name and the file name. It searches the folder
tree depth-first and saves the first exact match, so pipelines can fetch a
spreadsheet or document without knowing its full path.`,
		Version: version,
		// Silence Cobra's default error/usage printing — we handle it ourselves.
		SilenceErrors: true,
		SilenceUsage:  true,
		// PersistentPreRunE resolves configuration before every command so
		// missing credentials fail fast, before any network call.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig()
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&flagSite, "site", "", "SharePoint site name (overrides config and SITE_NAME)")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress informational output")

	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newDrivesCmd())
	cmd.AddCommand(newLsCmd())

	return cmd
}

// loadConfig resolves the effective configuration from the override chain
// and stores the result in resolvedCfg for use by subcommands.
func loadConfig() error {
	cli := config.CLIOverrides{
		ConfigPath: flagConfigPath,
		SiteName:   flagSite,
	}

	resolved, err := config.Resolve(config.ReadEnvOverrides(), cli)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	resolvedCfg = resolved

	return nil
}

// buildLogger creates an slog.Logger configured by the resolved config and
// CLI flags. Config-file log level provides the baseline; --verbose and
// --quiet override it because CLI flags always win.
func buildLogger() *slog.Logger {
	level := slog.LevelInfo

	if resolvedCfg != nil {
		level = resolvedCfg.SlogLevel()
	}

	if flagVerbose {
		level = slog.LevelDebug
	}

	if flagQuiet {
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// buildDownloader constructs the Downloader from the resolved configuration.
// Site resolution happens here, so an unreachable or misnamed site fails
// before any folder traversal starts.
func buildDownloader(ctx context.Context, logger *slog.Logger) (*fetch.Downloader, error) {
	creds := fetch.Credentials{
		TenantID:      resolvedCfg.TenantID,
		ClientID:      resolvedCfg.ClientID,
		ClientSecret:  resolvedCfg.ClientSecret,
		CompanyTenant: resolvedCfg.CompanyTenantID,
		SiteName:      resolvedCfg.SiteName,
	}

	httpClient := &http.Client{Timeout: resolvedCfg.Timeout}

	return fetch.New(ctx, creds, httpClient, logger)
}

// exitOnError prints a user-friendly error message to stderr and exits.
func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
