package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"plp-bookstore/configs"
	"plp-bookstore/internal/catalog"
	"plp-bookstore/internal/db"
	"plp-bookstore/internal/report"
	"plp-bookstore/internal/utils"
)

var continueOnError bool

var rootCmd = &cobra.Command{
	Use:           "bookstore",
	Short:         "Run the canned book queries against MongoDB",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCatalog,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the query catalog and print a transcript",
	RunE:  runCatalog,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, runCmd} {
		cmd.Flags().BoolVar(&continueOnError, "continue", false, "keep running remaining queries after a failure")
	}
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg := configs.LoadConfig()
	policy := catalog.AbortOnError
	if continueOnError {
		policy = catalog.ContinueOnError
	}
	return execute(cmd.Context(), cfg, policy, cmd.OutOrStdout())
}

// execute runs the catalog inside a single connection scope. Step failures
// are printed by the transcript as they happen; connection and teardown
// failures are printed afterwards. The transcript always ends with the
// connection being closed.
func execute(ctx context.Context, cfg configs.Config, policy catalog.Policy, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	transcript := report.NewTranscript(out)

	var runErr error
	err := db.WithClient(ctx, cfg.MongoURI, func(client *mongo.Client) error {
		transcript.Connected()

		books := db.GetCollection(client, cfg.DBName, cfg.CollectionName)
		runner := &catalog.Runner{
			Policy:   policy,
			OnResult: []func(context.Context, catalog.Result){transcript.Result},
		}
		if cfg.JournalCollection != "" {
			journal := &utils.Journal{Collection: db.GetCollection(client, cfg.DBName, cfg.JournalCollection)}
			runner.OnResult = append(runner.OnResult, journal.Hook)
		}

		_, runErr = runner.Run(ctx, catalog.Steps(catalog.New(books, cfg.QueryTimeout), catalog.DefaultParams()))
		return runErr
	})
	reportUnprinted(transcript, err, runErr)
	transcript.Closed()
	return err
}

// reportUnprinted prints the parts of err the transcript has not shown yet.
// printed is the step error already written by the runner hook.
func reportUnprinted(t *report.Transcript, err, printed error) {
	if err == nil || err == printed {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if e != printed {
				t.Error(e)
			}
		}
		return
	}
	t.Error(err)
}
