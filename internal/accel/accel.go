// Package accel delegates equity simulation to an external binary when one is
// configured and installed.
package accel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/holdem-equity/equity"
	"github.com/lox/holdem-equity/internal/config"
	"github.com/lox/holdem-equity/poker"
)

// ErrBadResponse is returned when the accelerator output cannot be trusted.
var ErrBadResponse = errors.New("bad accelerator response")

// sumTolerance is how far the reported percentages may drift from 100.
const sumTolerance = 0.5

type request struct {
	ID      string          `json:"id"`
	Players []playerRequest `json:"players"`
	Board   []string        `json:"board"`
	Trials  int             `json:"trials"`
	Seed    int64           `json:"seed"`
}

type playerRequest struct {
	Name string `json:"name"`
	Hand string `json:"hand,omitempty"`
}

type response struct {
	Equity map[string]float64 `json:"equity"`
}

// External runs an external equity binary, one process per simulation.
type External struct {
	path    string
	args    []string
	env     []string
	timeout time.Duration
	logger  *log.Logger
	clock   quartz.Clock
}

// Option configures an External simulator.
type Option func(*External)

// WithArgs sets extra command line arguments for the binary.
func WithArgs(args ...string) Option {
	return func(e *External) { e.args = args }
}

// WithEnv adds environment variables for the binary.
func WithEnv(env ...string) Option {
	return func(e *External) { e.env = env }
}

// WithTimeout bounds each run. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(e *External) { e.timeout = d }
}

// WithClock sets the clock used for timing runs.
func WithClock(c quartz.Clock) Option {
	return func(e *External) { e.clock = c }
}

// NewExternal creates a simulator backed by the binary at path.
func NewExternal(path string, logger *log.Logger, opts ...Option) *External {
	e := &External{
		path:   path,
		logger: logger.WithPrefix("accel"),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Simulate implements equity.Simulator.
func (e *External) Simulate(ctx context.Context, players []equity.PlayerSpec, board []poker.Card, trials int, seed int64) (map[string]float64, error) {
	if _, err := equity.Validate(players, board); err != nil {
		return nil, err
	}

	req := request{
		ID:      uuid.NewString(),
		Players: make([]playerRequest, len(players)),
		Board:   make([]string, len(board)),
		Trials:  trials,
		Seed:    seed,
	}
	for i, p := range players {
		req.Players[i].Name = p.Name
		if p.Hand != nil {
			req.Players[i].Hand = p.Hand.String()
		}
	}
	for i, c := range board {
		req.Board[i] = c.String()
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.path, e.args...)
	cmd.Stdin = bytes.NewReader(payload)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if len(e.env) > 0 {
		cmd.Env = append(os.Environ(), e.env...)
	}

	start := e.clock.Now()
	if err := cmd.Run(); err != nil {
		e.logger.Error("Accelerator failed", "id", req.ID, "error", err, "stderr", strings.TrimSpace(stderr.String()))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("accelerator %s: %w", e.path, ctxErr)
		}
		return nil, fmt.Errorf("accelerator %s: %w", e.path, err)
	}

	var resp response
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if err := checkResponse(players, resp.Equity); err != nil {
		return nil, err
	}

	e.logger.Debug("Accelerator finished",
		"id", req.ID,
		"players", len(players),
		"trials", trials,
		"duration", e.clock.Since(start))
	return resp.Equity, nil
}

func checkResponse(players []equity.PlayerSpec, got map[string]float64) error {
	if len(got) != len(players) {
		return fmt.Errorf("%w: %d results for %d players", ErrBadResponse, len(got), len(players))
	}
	total := 0.0
	for _, p := range players {
		v, ok := got[p.Name]
		if !ok {
			return fmt.Errorf("%w: missing player %q", ErrBadResponse, p.Name)
		}
		if math.IsNaN(v) || v < 0 || v > 100 {
			return fmt.Errorf("%w: %q has equity %v", ErrBadResponse, p.Name, v)
		}
		total += v
	}
	if math.Abs(total-100) > sumTolerance {
		return fmt.Errorf("%w: equities sum to %.2f", ErrBadResponse, total)
	}
	return nil
}

// Select returns the external accelerator when it is configured and found on
// the system, and the built-in Monte Carlo engine otherwise.
func Select(cfg *config.Config, logger *log.Logger, opts ...Option) equity.Simulator {
	builtin := equity.NewMonteCarlo(equity.WithParallelism(cfg.Workers))
	if cfg.Accelerator.Path == "" {
		logger.Debug("Using built-in simulator")
		return builtin
	}

	path, err := exec.LookPath(cfg.Accelerator.Path)
	if err != nil {
		logger.Warn("Accelerator not found, using built-in simulator", "path", cfg.Accelerator.Path, "error", err)
		return builtin
	}

	logger.Info("Using accelerator", "path", path)
	opts = append([]Option{WithTimeout(cfg.Accelerator.TimeoutDuration())}, opts...)
	return NewExternal(path, logger, opts...)
}
