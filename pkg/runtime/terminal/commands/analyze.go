package commands

import (
	"fmt"

	"github.com/de-tools/isobench/pkg/runtime/terminal/export"
	"github.com/de-tools/isobench/pkg/services/report"
	"github.com/de-tools/isobench/pkg/store/blob"
	"github.com/de-tools/isobench/pkg/store/duckdb"
	"github.com/de-tools/isobench/pkg/store/duckdb/history"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	globals    *Globals
	dirs       resultDirs
	outputFile string
	historyDB  string
	publishURI string
	awsProfile string
	awsRegion  string
	reporter   *export.Reporter
}

func NewAnalyzeCmd(globals *Globals, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{globals: globals, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Generate the markdown comparison report",
		RunE:  ac.run,
	}

	ac.dirs.register(cmd)
	cmd.Flags().StringVar(&ac.outputFile, "output-file", "", "Path of the markdown report to write")
	cmd.Flags().StringVar(&ac.historyDB, "history-db", "", "DuckDB file to record the resolved profiles in")
	cmd.Flags().StringVar(&ac.publishURI, "publish-uri", "", "Upload the report to s3://bucket/key or gs://bucket/key")
	cmd.Flags().StringVar(&ac.awsProfile, "aws-profile", "", "AWS shared config profile used for s3:// uploads")
	cmd.Flags().StringVar(&ac.awsRegion, "aws-region", "", "AWS region used for s3:// uploads")

	_ = cmd.MarkFlagRequired("output-file")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	if err := ac.dirs.validate(); err != nil {
		return err
	}

	opts, err := ac.globals.reportOptions()
	if err != nil {
		return err
	}

	if ac.historyDB != "" {
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: ac.historyDB})
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer db.Close()

		runs, err := history.NewStore(db)
		if err != nil {
			return fmt.Errorf("failed to create history store: %w", err)
		}
		opts.Recorder = runs
	}

	if ac.publishURI != "" {
		pub, err := blob.NewPublisher(ctx, ac.publishURI, blob.Options{AWSProfile: ac.awsProfile, AWSRegion: ac.awsRegion})
		if err != nil {
			return fmt.Errorf("failed to create publisher: %w", err)
		}
		defer func() {
			if err := pub.Close(); err != nil {
				logger.Warn().Err(err).Msg("failed to close publisher")
			}
		}()
		opts.Publisher = pub
	}

	opts.OutputFile = ac.outputFile
	res, err := report.NewController(opts).Generate(ctx, ac.dirs.inputs())
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	return ac.reporter.HandleSummary(export.Summary{
		OutputFile: ac.outputFile,
		RunID:      res.RunID,
		Location:   res.Location,
		Sections:   len(res.Report.Sections),
		Findings:   len(res.Findings),
	})
}
