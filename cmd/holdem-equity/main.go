package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-equity/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every subcommand.
type Globals struct {
	Config   string `help:"Path to the HCL config file" default:"holdem-equity.hcl" env:"HOLDEM_EQUITY_CONFIG" type:"path"`
	LogLevel string `help:"Log level override (debug, info, warn, error)" env:"HOLDEM_EQUITY_LOG_LEVEL"`
	NoColor  bool   `help:"Disable coloured output" env:"NO_COLOR"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Odds     OddsCmd          `cmd:"" help:"Estimate each player's equity"`
	Classify ClassifyCmd      `cmd:"" help:"Classify the best five-card hand and any draws"`
	Showdown ShowdownCmd      `cmd:"" help:"Rank known hands on a complete board"`
	Range    RangeCmd         `cmd:"" help:"Expand range notation into hand classes and combos"`
	Top      TopCmd           `cmd:"" help:"Show the strongest starting hands by percentage"`
}

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := CLI{Globals: Globals{Stdout: os.Stdout, Stderr: os.Stderr}}
	ctx := kong.Parse(&cli,
		kong.Name("holdem-equity"),
		kong.Description("Texas Hold'em equity, hand ranking and range tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(sigCtx, (*context.Context)(nil)),
	)

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setup loads configuration and builds the logger for a command.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(g.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "holdem-equity",
		Level:           level,
	})
	return cfg, logger, nil
}
