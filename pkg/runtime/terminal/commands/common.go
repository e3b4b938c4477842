package commands

import (
	"fmt"
	"time"

	"github.com/de-tools/isobench/pkg/services/config"
	"github.com/de-tools/isobench/pkg/services/report"
	"github.com/de-tools/isobench/pkg/services/resolver"
	"github.com/de-tools/isobench/pkg/store/fs"
	"github.com/spf13/cobra"
)

// Globals holds the flags shared by every command.
type Globals struct {
	ConfigPath  string
	TestbedPath string
	Verbose     bool
	Clock       func() time.Time
}

type resultDirs struct {
	baseline  string
	candidate string
	stress    string
}

func (d *resultDirs) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.baseline, "vm-dir", "", "Directory with the virtual machine results")
	cmd.Flags().StringVar(&d.candidate, "docker-dir", "", "Directory with the container results")
	cmd.Flags().StringVar(&d.stress, "stress-dir", "", "Directory with the load test result tables")

	_ = cmd.MarkFlagRequired("vm-dir")
	_ = cmd.MarkFlagRequired("docker-dir")
	_ = cmd.MarkFlagRequired("stress-dir")
}

func (d *resultDirs) validate() error {
	for _, f := range []struct{ flag, dir string }{
		{"--vm-dir", d.baseline},
		{"--docker-dir", d.candidate},
		{"--stress-dir", d.stress},
	} {
		if err := fs.ValidateDir(f.dir); err != nil {
			return fmt.Errorf("invalid %s: %w", f.flag, err)
		}
	}
	return nil
}

func (d *resultDirs) inputs() resolver.Inputs {
	return resolver.Inputs{BaselineDir: d.baseline, CandidateDir: d.candidate, StressDir: d.stress}
}

// reportOptions loads the configuration and testbed description into controller options.
func (g *Globals) reportOptions() (report.Options, error) {
	cfg, err := config.Load(g.ConfigPath)
	if err != nil {
		return report.Options{}, fmt.Errorf("failed to load config: %w", err)
	}

	testbedPath := g.TestbedPath
	if testbedPath == "" {
		testbedPath = cfg.Report.Testbed
	}
	testbed, err := config.LoadTestbed(testbedPath)
	if err != nil {
		return report.Options{}, err
	}

	return report.Options{
		Title:    cfg.Report.Title,
		Testbed:  testbed,
		Settings: cfg.Settings(),
		Clock:    g.Clock,
	}, nil
}
