package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/namewastaken/namewastaken/internal/core"
	"github.com/namewastaken/namewastaken/internal/output"
)

var (
	batchFile      string
	batchPlatforms []string
	batchOutput    string
	batchNoCache   bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Check a list of usernames from a file or stdin",
	Long: `Read one handle per line and check them all concurrently. Blank
lines and lines starting with # are skipped.

Examples:
  namewastaken batch --file names.txt
  cat names.txt | namewastaken batch --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var reader io.Reader = os.Stdin
		if batchFile != "" {
			f, err := os.Open(batchFile)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer f.Close() // nolint:errcheck // best-effort cleanup on CLI exit
			reader = f
		}

		handles, err := readHandles(reader)
		if err != nil {
			return err
		}
		if len(handles) == 0 {
			return fmt.Errorf("no handles to check")
		}

		selected, err := resolvePlatformFlags(batchPlatforms)
		if err != nil {
			return err
		}

		format, err := output.ParseFormat(batchOutput)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		eng, db := buildEngine(ctx)
		if db != nil {
			defer db.Close() // nolint:errcheck // best-effort cleanup on CLI exit
		}

		cmd.SilenceUsage = true

		useCache := appCfg.Cache.Enabled && !batchNoCache
		result := eng.CheckBulkWithProviders(ctx, selected, handles, useCache)

		rendered, err := output.NewFormatter(format).FormatBulk(result)
		if err != nil {
			return err
		}
		fmt.Println(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "file with one handle per line (default stdin)")
	batchCmd.Flags().StringSliceVarP(&batchPlatforms, "platforms", "p", nil, "platforms to check (names or aliases; default all)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "table", "output format: table, json or markdown")
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "skip the verdict cache")
}

// readHandles parses one handle per line, skipping blanks and comments.
func readHandles(r io.Reader) ([]string, error) {
	var handles []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		handle, err := core.ParseHandle(line)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", line, err)
		}
		handles = append(handles, handle)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read handles: %w", err)
	}
	return handles, nil
}
