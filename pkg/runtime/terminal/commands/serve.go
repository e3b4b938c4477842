package commands

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/isobench/pkg/server"
	"github.com/de-tools/isobench/pkg/services/report"
	"github.com/de-tools/isobench/pkg/store/duckdb"
	"github.com/de-tools/isobench/pkg/store/duckdb/history"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	defaultHost = "127.0.0.1"
	defaultPort = "8080"
)

type ServeCmd struct {
	globals   *Globals
	dirs      resultDirs
	host      string
	port      string
	historyDB string
}

// NewServeCmd serves the report API. Host and port default to SERVER_HOST and SERVER_PORT.
func NewServeCmd(globals *Globals) *cobra.Command {
	sc := &ServeCmd{globals: globals}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison over HTTP",
		RunE:  sc.run,
	}

	sc.dirs.register(cmd)
	cmd.Flags().StringVar(&sc.host, "host", envOr("SERVER_HOST", defaultHost), "Address to listen on")
	cmd.Flags().StringVar(&sc.port, "port", envOr("SERVER_PORT", defaultPort), "Port to listen on")
	cmd.Flags().StringVar(&sc.historyDB, "history-db", "", "DuckDB file with recorded runs to expose under /api/v1/runs")

	return cmd
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (sc *ServeCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.Ctx(cmd.Context())

	if err := sc.dirs.validate(); err != nil {
		return err
	}
	opts, err := sc.globals.reportOptions()
	if err != nil {
		return err
	}

	deps := server.Dependencies{
		Controller: report.NewController(opts),
		Inputs:     sc.dirs.inputs(),
		Logger:     *logger,
	}

	if sc.historyDB != "" {
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: sc.historyDB})
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer db.Close()

		runs, err := history.NewStore(db)
		if err != nil {
			return fmt.Errorf("failed to create history store: %w", err)
		}
		deps.History = runs
	}

	api := server.NewWebAPI(server.Config{
		Addr:         net.JoinHostPort(sc.host, sc.port),
		Dependencies: deps,
	})
	return api.Start()
}
