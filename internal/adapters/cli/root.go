package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the portfolio command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Localized content backend for the portfolio site",
		Long: `portfolio serves the translated content of the portfolio site as JSON,
resolving every request through the locale fallback chain.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(),
		newAuditCommand(),
		newMigrateCommand(),
		newSyncCommand(),
	)
	return root
}
