package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fretmap/fretmap"
)

func (a *App) newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a submission file without committing anything",
		Long: `Run schema and business rule validation over a JSON or YAML
submission file. The registry is never touched.`,
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

			invalid := 0
			for i := range batch.Submissions {
				result := fm.Validate(&batch.Submissions[i])
				fmt.Fprintf(cmd.OutOrStdout(), "submission %d: %s\n", i, result)
				if !result.Valid() {
					invalid++
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d submissions invalid", invalid, len(batch.Submissions))
			}
			return nil
		},
	}
}
