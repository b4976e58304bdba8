package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"macro-synth/internal/request"
)

// NewExpandCommand creates the expand command.
func NewExpandCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expand FILE...",
		Short: "Expand the requests of YAML or TOML request files",
		Long: `Load request files, validate them and expand every request.

Each expansion is printed with its diagnostics, or written to
<stem>.<n>.generated.txt in --out-dir. A file that fails validation is
reported and skipped. The exit status is non-zero if any request failed
or produced an error diagnostic.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep := newReporter(cmd)
			invalid := false

			var batches []Batch

			for _, path := range args {
				f, err := request.LoadFile(path)
				if err != nil {
					return err
				}

				res := request.Validate(f)
				rep.Diagnostics(res.All())

				if res.HasErrors() {
					invalid = true
					continue
				}

				reqs, err := f.ExpandRequests()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				batches = append(batches, Batch{Source: path, Requests: reqs})
			}

			err := runBatches(cmd, batches)
			if err == nil && invalid {
				return ErrExpansionFailed
			}

			return err
		},
	}
}
