package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/diewo77/sales-insights/internal/config"
	"github.com/diewo77/sales-insights/internal/dataset"
	"github.com/diewo77/sales-insights/internal/db"
	"github.com/diewo77/sales-insights/internal/loader"
	"github.com/diewo77/sales-insights/internal/logging"
	"github.com/diewo77/sales-insights/internal/services"
	"github.com/diewo77/sales-insights/validation"
)

// cli holds what every subcommand shares.
type cli struct {
	cfg    *config.Config
	log    *zap.Logger
	output string
	source string
	dir    string
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "server",
		Short: "Sales insights over the dry-cleaning sales tables",
		Long: `Loads the customer, inventory, detail and pricelist tables, joins them
into sale lines and answers business questions about them, over HTTP or
from the command line.

Examples:
  server serve
  server query "How many orders are pending?"
  server analytics customer_segmentation --output yaml
  server import --dir ./data`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&c.output, "output", "o", outputJSON, "Output format: json or yaml")
	root.PersistentFlags().StringVar(&c.source, "source", "", "Data source: csv or db (default from DATA_SOURCE)")
	root.PersistentFlags().StringVar(&c.dir, "data-dir", "", "CSV directory (default from DATA_DIR)")

	root.AddCommand(
		c.serveCmd(),
		c.queryCmd(),
		c.summaryCmd(),
		c.analyticsCmd(),
		c.reportCmd(),
		c.migrateCmd(),
		c.importCmd(),
	)
	return root
}

func (c *cli) init() error {
	v := validation.Violations{}
	validation.OneOf("output", c.output, []string{outputJSON, outputYAML}, v)
	validation.OneOf("source", c.source, []string{"", config.SourceCSV, config.SourceDB}, v)
	if !v.Empty() {
		return fmt.Errorf("invalid flags: %v", v)
	}
	c.cfg = config.Load()
	if c.source != "" {
		c.cfg.Data.Source = c.source
	}
	if c.dir != "" {
		c.cfg.Data.Dir = c.dir
	}
	log, err := logging.New(c.cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	c.log = log
	return nil
}

func (c *cli) connect() (*gorm.DB, error) {
	conn, err := db.Connect(c.cfg.Database, c.log)
	if err != nil {
		return nil, err
	}
	if c.cfg.App.Migrations {
		if err := db.Migrate(conn); err != nil {
			return nil, err
		}
		c.log.Info("migrations completed")
	}
	return conn, nil
}

// service loads the configured source into a fresh store.
func (c *cli) service(ctx context.Context) (*services.InsightService, error) {
	var conn *gorm.DB
	if c.cfg.Data.Source == config.SourceDB {
		var err error
		if conn, err = c.connect(); err != nil {
			return nil, err
		}
	}
	src, err := loader.Open(c.cfg.Data.Source, c.cfg.Data.Dir, conn)
	if err != nil {
		return nil, err
	}
	svc := services.NewInsightService(dataset.NewStore(), c.log)
	if _, err := svc.Load(ctx, src); err != nil {
		return nil, err
	}
	return svc, nil
}

func (c *cli) print(cmd *cobra.Command, v any) error {
	return writeOutput(cmd.OutOrStdout(), c.output, v)
}

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.service(cmd.Context())
			if err != nil {
				return err
			}
			return c.serve(svc)
		},
	}
}

func (c *cli) serve(svc *services.InsightService) error {
	sc := c.cfg.Server
	srv := &http.Server{
		Addr:         ":" + sc.Port,
		Handler:      NewApp(svc, c.log, sc),
		ReadTimeout:  time.Duration(sc.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(sc.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(sc.IdleTimeout) * time.Second,
	}

	// Start server in goroutine
	errc := make(chan error, 1)
	go func() {
		c.log.Info("server starting", zap.String("port", sc.Port), zap.String("env", c.cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
		c.log.Info("shutdown signal received")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(sc.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		c.log.Error("error during shutdown", zap.Error(err))
	}
	c.log.Info("server stopped gracefully")
	return nil
}

func (c *cli) queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <question>",
		Short: "Answer one question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			v := validation.Violations{}
			validation.Required("question", text, v)
			if !v.Empty() {
				return fmt.Errorf("invalid arguments: %v", v)
			}
			svc, err := c.service(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := svc.Ask(cmd.Context(), text)
			if err != nil {
				return err
			}
			return c.print(cmd, resp)
		},
	}
}

func (c *cli) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the data summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.service(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(cmd, svc.Summary())
		},
	}
}

func (c *cli) analyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics [comprehensive|customer_segmentation|product_performance]",
		Short: "Run an advanced analysis",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.service(cmd.Context())
			if err != nil {
				return err
			}
			mode := ""
			if len(args) == 1 {
				mode = args[0]
			}
			resp, err := svc.Analyze(mode)
			if err != nil {
				return err
			}
			return c.print(cmd, resp)
		},
	}
}

func (c *cli) reportCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "report [summary|customer]",
		Short: "Render a text report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.service(cmd.Context())
			if err != nil {
				return err
			}
			kind := ""
			if len(args) == 1 {
				kind = args[0]
			}
			resp, err := svc.Report(kind)
			if err != nil {
				return err
			}
			if raw {
				_, err = fmt.Fprint(cmd.OutOrStdout(), resp.Report)
				return err
			}
			return c.print(cmd, resp)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", true, "Print the report text instead of the encoded response")
	return cmd
}

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the source tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.Connect(c.cfg.Database, c.log)
			if err != nil {
				return err
			}
			if err := db.Migrate(conn); err != nil {
				return err
			}
			c.log.Info("migrations completed successfully")
			return nil
		},
	}
}

func (c *cli) importCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the database tables with a CSV export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = c.cfg.Data.Dir
			}
			conn, err := db.Connect(c.cfg.Database, c.log)
			if err != nil {
				return err
			}
			if err := db.Migrate(conn); err != nil {
				return err
			}
			counts, err := db.Import(cmd.Context(), conn, loader.NewCSVSource(dir))
			if err != nil {
				return err
			}
			c.log.Info("import completed", zap.String("dir", dir))
			return c.print(cmd, counts)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "CSV directory to import (default from DATA_DIR)")
	return cmd
}
