package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/de-tools/isobench/pkg/adapters"
	"github.com/de-tools/isobench/pkg/models/api"
	"github.com/de-tools/isobench/pkg/runtime/terminal/export"
	"github.com/de-tools/isobench/pkg/services/report"
	"github.com/spf13/cobra"
)

type CompareCmd struct {
	globals  *Globals
	dirs     resultDirs
	format   string
	reporter *export.Reporter
}

func NewCompareCmd(globals *Globals, reporter *export.Reporter) *cobra.Command {
	cc := &CompareCmd{globals: globals, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Print the metric comparisons and findings without writing a report",
		RunE:  cc.run,
	}

	cc.dirs.register(cmd)
	cmd.Flags().StringVar(&cc.format, "format", export.FormatTable,
		fmt.Sprintf("Output format (%s)", strings.Join(export.Formats, ", ")))

	return cmd
}

func (cc *CompareCmd) run(cmd *cobra.Command, _ []string) error {
	if !slices.Contains(export.Formats, cc.format) {
		return fmt.Errorf("unsupported format %q. Supported formats: %s", cc.format, strings.Join(export.Formats, ", "))
	}
	if err := cc.dirs.validate(); err != nil {
		return err
	}

	opts, err := cc.globals.reportOptions()
	if err != nil {
		return err
	}

	res, err := report.NewController(opts).Generate(cmd.Context(), cc.dirs.inputs())
	if err != nil {
		return fmt.Errorf("failed to compare results: %w", err)
	}

	return cc.reporter.Handle(cc.format, api.Analysis{
		Profiles:    adapters.MapDomainProfilesToApi(res.Profiles),
		Comparisons: adapters.MapDomainComparisonsToApi(res.Comparisons),
		Findings:    adapters.MapDomainFindingsToApi(res.Findings),
	})
}
