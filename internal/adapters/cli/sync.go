package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolio/internal/infrastructure/database"
	"portfolio/internal/shared/logger"
)

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Copy content files into PostgreSQL",
		Long: `Load the content tree of CONTENT_DIR and upsert every translation into the
translations table, so the server can run with CONTENT_SOURCE=postgres.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			store, err := a.fsLoader().Load(ctx)
			if err != nil {
				return err
			}
			pool, err := a.connect(ctx)
			if err != nil {
				return err
			}

			repo := database.NewTranslationRepository(pool, a.set, logger.WithComponent("database"))
			n, err := repo.Save(ctx, store)
			if err != nil {
				return err
			}
			a.log.InfoContext(ctx, "content synced", "rows", n, "namespaces", store.Len())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d translations synced\n", n)
			return err
		},
	}
}
