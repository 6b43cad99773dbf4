package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fretmap/fretmap"
	"github.com/fretmap/fretmap/internal/report"
	"github.com/fretmap/fretmap/pkg/errors"
	"github.com/fretmap/fretmap/pkg/guitars"
)

func (a *App) newSubmitCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "submit <file>",
		Short: "Process a submission file against the registry",
		Long: `Process a JSON or YAML submission file through the full pipeline:
schema validation, business rules, entity resolution, and commit.
The file may hold a single submission or a batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := loadBatch(args[0])
			if err != nil {
				return err
			}

			cfg, err := a.config()
			if err != nil {
				return err
			}

			fm, err := fretmap.New(
				fretmap.WithResolverConfig(cfg.Resolver),
				fretmap.WithRuleConfig(cfg.Rules),
				fretmap.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			batchReport, err := fm.SubmitBatch(cmd.Context(), batch)
			if err != nil && !errors.IsCanceled(err) {
				return err
			}
			cancelErr := err

			switch output {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(batchReport); err != nil {
					return err
				}
			default:
				if err := report.WriteBatch(cmd.OutOrStdout(), batchReport); err != nil {
					return err
				}
			}
			return cancelErr
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "markdown", "output format (markdown, json)")
	return cmd
}

// loadBatch reads a submission file and normalizes it to a batch. A file
// holding a single submission becomes a one-element batch.
func loadBatch(path string) (*guitars.BatchSubmission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	yamlFile := false
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		yamlFile = true
	case ".json":
	default:
		return nil, fmt.Errorf("unsupported file extension %q: expected .json, .yaml, or .yml", filepath.Ext(path))
	}

	// Batch form first; an empty batch still decodes here so the pipeline
	// can report it as empty instead of a misleading single-submission
	// decode failure.
	if yamlFile {
		if batch, err := guitars.DecodeBatchYAML(data); err == nil {
			return batch, nil
		}
		sub, err := guitars.DecodeSubmissionYAML(data)
		if err != nil {
			return nil, err
		}
		return &guitars.BatchSubmission{Submissions: []guitars.GuitarSubmission{*sub}}, nil
	}

	if batch, err := guitars.DecodeBatch(data); err == nil {
		return batch, nil
	}
	sub, err := guitars.DecodeSubmission(data)
	if err != nil {
		return nil, err
	}
	return &guitars.BatchSubmission{Submissions: []guitars.GuitarSubmission{*sub}}, nil
}
