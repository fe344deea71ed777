package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/namewastaken/namewastaken/internal/core"
	"github.com/namewastaken/namewastaken/internal/core/provider"
	"github.com/namewastaken/namewastaken/internal/output"
)

var (
	checkPlatforms []string
	checkOutput    string
	checkNoCache   bool
	checkQuiet     bool
)

var checkCmd = &cobra.Command{
	Use:   "check <username> [username...]",
	Short: "Check username availability across platforms",
	Long: `Check whether one or more usernames are taken across the supported
platforms. Handles are normalized before checking: a leading @ is
stripped and the handle is lowercased.

Examples:
  namewastaken check somehandle
  namewastaken check @somehandle -p ig,tiktok
  namewastaken check somehandle --output json
  namewastaken check https://instagram.com/somehandle
  namewastaken check one two three -q`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && provider.IsURL(args[0]) {
			return runURLCheck(cmd, args[0], checkOutput, checkNoCache)
		}

		handles := make([]string, 0, len(args))
		for _, raw := range args {
			if provider.IsURL(raw) {
				return fmt.Errorf("%q: profile URLs must be checked one at a time", raw)
			}
			handle, err := core.ParseHandle(raw)
			if err != nil {
				return fmt.Errorf("%q: %w", raw, err)
			}
			handles = append(handles, handle)
		}

		selected, err := resolvePlatformFlags(checkPlatforms)
		if err != nil {
			return err
		}

		format, err := output.ParseFormat(checkOutput)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		eng, db := buildEngine(ctx)
		if db != nil {
			defer db.Close() // nolint:errcheck // best-effort cleanup on CLI exit
		}

		useCache := appCfg.Cache.Enabled && !checkNoCache

		cmd.SilenceUsage = true

		if len(handles) == 1 {
			result := eng.CheckProviders(ctx, selected, handles[0], useCache)
			if !checkQuiet {
				rendered, err := output.NewFormatter(format).FormatCheck(result)
				if err != nil {
					return err
				}
				fmt.Println(rendered)
			}
			if !result.FullyAvailable() {
				os.Exit(1)
			}
			return nil
		}

		result := eng.CheckBulkWithProviders(ctx, selected, handles, useCache)
		if !checkQuiet {
			rendered, err := output.NewFormatter(format).FormatBulk(result)
			if err != nil {
				return err
			}
			fmt.Println(rendered)
		}
		for _, r := range result.Results {
			if !r.FullyAvailable() {
				os.Exit(1)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringSliceVarP(&checkPlatforms, "platforms", "p", nil, "platforms to check (names or aliases; default all)")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "table", "output format: table, json or markdown")
	checkCmd.Flags().BoolVar(&checkNoCache, "no-cache", false, "skip the verdict cache")
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "suppress output; exit 0 when fully available, 1 otherwise")
}

// resolvePlatformFlags maps -p values to providers, defaulting to the
// full registry.
func resolvePlatformFlags(names []string) ([]*provider.Provider, error) {
	if len(names) == 0 {
		return provider.List(), nil
	}

	selected := make([]*provider.Provider, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		p, ok := provider.Resolve(name)
		if !ok {
			return nil, fmt.Errorf("unknown platform: %s", strings.TrimSpace(name))
		}
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		selected = append(selected, p)
	}
	return selected, nil
}
