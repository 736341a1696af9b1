package command

import (
	"context"

	"github.com/spf13/cobra"
)

// Version information (set via -ldflags during build)
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lingualink",
		Short: "LinguaLink CLI: translation sessions, glossaries and history",
		Long: `LinguaLink CLI manages users, industry glossaries, collaborative
translation sessions and a translation history log.

Translations go through Google Cloud Translation when credentials are
configured (GOOGLE_TRANSLATE_API_KEY, or GOOGLE_CLOUD_PROJECT with
Application Default Credentials) and through a small built-in phrase table
otherwise.

The store is chosen with --db or DB_CONNECTION_STRING: a SQLite file path
(default lingualink.db), a postgres:// URL or a mysql:// DSN.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.dsn, "db", "", "Store connection string (overrides DB_CONNECTION_STRING)")

	root.AddCommand(
		newInitDBCmd(a),
		newSeedCmd(a),
		newCreateUserCmd(a),
		newTranslateTextCmd(a),
		newTranslationHistoryCmd(a),
		newListGlossariesCmd(a),
		newCreateGlossaryCmd(a),
		newCreateSessionCmd(a),
		newJoinSessionCmd(a),
		newLogsCmd(a),
		newVersionCmd(a),
	)

	return root
}

// Execute runs the CLI with os.Args and flushes logs and traces afterwards.
func Execute(ctx context.Context) error {
	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	a.close(ctx, err)
	return err
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.println(cmd, "VersionInfo", map[string]any{
				"Version": Version,
				"Commit":  Commit,
				"Date":    Date,
			})
		},
	}
}
