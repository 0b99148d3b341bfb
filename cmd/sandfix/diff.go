package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/sandfix/pkg/errors"
	"github.com/arthur-debert/sandfix/pkg/sandbox"
)

var (
	diffExpectedFile string
	diffFilesOnly    bool
	diffShallow      bool
	diffIgnore       []string

	diffCmd = &cobra.Command{
		Use:   "diff <dir> [entry]...",
		Short: "Compare a directory tree against an expected listing",
		Long: `Compare a directory tree against an expected listing given as
arguments or read from a file (one entry per line, # comments allowed).
Directory entries must carry a trailing slash. On mismatch the three
partitions are reported and the exit status is non-zero.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expected := args[1:]
			if diffExpectedFile != "" {
				fromFile, err := readListing(diffExpectedFile)
				if err != nil {
					return err
				}
				expected = append(expected, fromFile...)
			}

			sb, err := sandbox.NewWithOptions(sandbox.Options{Path: args[0]})
			if err != nil {
				return err
			}

			opts := sandbox.CompareOptions{
				FilesOnly: diffFilesOnly,
				Shallow:   diffShallow,
			}
			if len(diffIgnore) > 0 {
				opts.Ignore = diffIgnore
			}

			err = sb.CompareWith(expected, opts)
			if err == nil {
				pterm.Success.Printfln("%s matches the expected listing", args[0])
				return nil
			}

			result, ok := sandbox.ComparisonDetail(err)
			if !ok {
				return err
			}

			printPartition(pterm.Info, "same", result.Same)
			printPartition(pterm.Warning, "expected but not found", result.ExpectedOnly)
			printPartition(pterm.Error, "found but not expected", result.ActualOnly)

			// The partitions were just printed; return a short error
			// so the top-level handler does not repeat them.
			return errors.Newf(errors.ErrComparison,
				"%s does not match the expected listing", args[0])
		},
	}
)

func printPartition(printer pterm.PrefixPrinter, title string, entries []string) {
	if len(entries) == 0 {
		return
	}
	printer.Printfln("%s:", title)
	for _, entry := range entries {
		pterm.Printfln("  %s", entry)
	}
}

// readListing reads one expected entry per line, skipping blanks and
// # comments.
func readListing(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries, scanner.Err()
}

func init() {
	diffCmd.Flags().StringVarP(&diffExpectedFile, "expected-file", "f", "", "File holding the expected listing, one entry per line")
	diffCmd.Flags().BoolVar(&diffFilesOnly, "files-only", false, "Compare files only, dropping directory entries")
	diffCmd.Flags().BoolVar(&diffShallow, "shallow", false, "Compare a single directory level instead of the full subtree")
	diffCmd.Flags().StringArrayVar(&diffIgnore, "ignore", nil, "Regular expression excluding matching entries (repeatable)")
}
