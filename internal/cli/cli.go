// Package cli is the command-line surface: argument handling, the
// interactive prompt and wiring of the collaborators.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"stockvol/internal/app"
	"stockvol/internal/config"
	"stockvol/internal/logger"
	"stockvol/internal/provider"
	"stockvol/internal/render"
	"stockvol/internal/scheduler"
)

// ErrEmptySymbol is returned when no ticker symbol could be obtained
// from the arguments, the config or the prompt.
var ErrEmptySymbol = errors.New("stock symbol cannot be empty")

// CLI represents the command-line interface.
type CLI struct {
	rootCmd *cobra.Command

	configPath string
	useMock    bool

	input  io.Reader
	output io.Writer
}

// Options contain configuration for the CLI.
type Options struct {
	Input  io.Reader // prompt source; stdin when nil
	Output io.Writer // report sink; stdout when nil
}

// NewCLI creates a new CLI instance.
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{input: opts.Input, output: opts.Output}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stockvol [symbol]",
		Short: "Classify a stock's recent volatility",
		Long: "Fetches the last six daily closes for a ticker, derives the five\n" +
			"day-over-day moves and prints a volatility report. Without a symbol\n" +
			"argument the tool falls back to report.symbol from the config, then\n" +
			"to an interactive prompt.",
		Args: cobra.MaximumNArgs(1),
		RunE: c.runReport,
		// The caller prints the error once; usage on a runtime
		// failure is noise.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&c.configPath, "config", defaultConfigPath(), "path to the YAML config file (env CONFIG_PATH)")
	cmd.PersistentFlags().BoolVar(&c.useMock, "mock", false, "use canned data instead of the live API")

	cmd.AddCommand(c.newWatchCmd())
	return cmd
}

func defaultConfigPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "config.yaml"
}

func (c *CLI) runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	raw := cfg.Report.Symbol
	if len(args) == 1 {
		raw = args[0]
	}
	if strings.TrimSpace(raw) == "" {
		raw, err = c.promptSymbol()
		if err != nil {
			return err
		}
	}
	symbol := Normalize(raw)
	if symbol == "" {
		return ErrEmptySymbol
	}

	if !c.useMock {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a := app.New(c.newProvider(cfg), render.NewReporter(c.output))
	return a.Run(cmd.Context(), symbol)
}

func (c *CLI) newProvider(cfg *config.Config) provider.Client {
	if c.useMock {
		return &provider.MockClient{}
	}
	if cfg.Provider.Name == "yahoo" {
		return provider.NewYahoo(cfg.Provider.BaseURL, cfg.ProviderTimeout())
	}
	return provider.NewAlphaVantage(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.ProviderTimeout())
}

func (c *CLI) promptSymbol() (string, error) {
	fmt.Fprint(c.output, "Enter stock symbol (e.g., AAPL, TSLA): ")
	sc := bufio.NewScanner(c.input)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("read symbol: %w", err)
		}
		return "", ErrEmptySymbol
	}
	return sc.Text(), nil
}

// Normalize canonicalizes user symbol input: whitespace stripped,
// letters upcased.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

type watchCmd struct {
	cli        *CLI
	symbol     string
	cronExpr   string
	runOnStart bool
}

func (c *CLI) newWatchCmd() *cobra.Command {
	wc := &watchCmd{cli: c}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Produce the report on a fixed schedule",
		RunE:  wc.run,
	}

	cmd.Flags().StringVar(&wc.symbol, "symbol", "", "ticker to watch (defaults to report.symbol)")
	cmd.Flags().StringVar(&wc.cronExpr, "cron", "", "six-field cron expression (defaults to schedule.cron)")
	cmd.Flags().BoolVar(&wc.runOnStart, "run-on-start", false, "produce one report immediately on startup")

	return cmd
}

func (wc *watchCmd) run(cmd *cobra.Command, _ []string) error {
	c := wc.cli
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	raw := wc.symbol
	if raw == "" {
		raw = cfg.Report.Symbol
	}
	symbol := Normalize(raw)
	if symbol == "" {
		return fmt.Errorf("%w: watch needs --symbol or report.symbol", ErrEmptySymbol)
	}

	cronExpr := wc.cronExpr
	if cronExpr == "" {
		cronExpr = cfg.Schedule.Cron
	}

	if !c.useMock {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := app.New(c.newProvider(cfg), render.NewReporter(c.output))
	sched := scheduler.NewScheduler(ctx, a, symbol)
	if err := sched.Register(cronExpr); err != nil {
		return err
	}

	if wc.runOnStart {
		sched.RunNow()
	}

	sched.Start()
	defer sched.Stop()

	logger.L().Info().Str("symbol", symbol).Str("cron", cronExpr).Msg("watching; press Ctrl+C to stop")
	<-ctx.Done()
	return nil
}
