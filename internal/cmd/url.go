package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/namewastaken/namewastaken/internal/core/provider"
	"github.com/namewastaken/namewastaken/internal/output"
)

var (
	urlOutput  string
	urlNoCache bool
)

var urlCmd = &cobra.Command{
	Use:   "url <profile-url>",
	Short: "Check the handle found in a profile URL",
	Long: `Extract the handle from a profile URL and check it on that platform.

Examples:
  namewastaken url https://instagram.com/somehandle
  namewastaken url https://t.me/somehandle --output json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runURLCheck(cmd, args[0], urlOutput, urlNoCache)
	},
}

// runURLCheck checks the handle found in a profile URL on its platform.
// Shared between the url command and check's URL fallthrough. The
// provider's URL pattern already constrains the handle grammar, so no
// generic handle validation happens here; GitHub allows hyphens that
// bare handles do not.
func runURLCheck(cmd *cobra.Command, rawURL, outputFormat string, noCache bool) error {
	p, handle, ok := provider.ParseProfileURL(rawURL)
	if !ok {
		return fmt.Errorf("unrecognized profile URL: %s", rawURL)
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	eng, db := buildEngine(ctx)
	if db != nil {
		defer db.Close() // nolint:errcheck // best-effort cleanup on CLI exit
	}

	cmd.SilenceUsage = true

	useCache := appCfg.Cache.Enabled && !noCache
	result := eng.CheckProviders(ctx, []*provider.Provider{p}, handle, useCache)

	rendered, err := output.NewFormatter(format).FormatCheck(result)
	if err != nil {
		return err
	}
	fmt.Println(rendered)

	if !result.FullyAvailable() {
		os.Exit(1)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(urlCmd)

	urlCmd.Flags().StringVarP(&urlOutput, "output", "o", "table", "output format: table, json or markdown")
	urlCmd.Flags().BoolVar(&urlNoCache, "no-cache", false, "skip the verdict cache")
}
