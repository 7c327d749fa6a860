package accel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-equity/equity"
	"github.com/lox/holdem-equity/internal/config"
	"github.com/lox/holdem-equity/poker"
)

const helperEnv = "HOLDEM_EQUITY_HELPER_PROCESS"

// TestHelperProcess is not a real test. It stands in for the accelerator
// binary when the test executable is re-run with helperEnv set.
func TestHelperProcess(t *testing.T) {
	mode := os.Getenv(helperEnv)
	if mode == "" {
		return
	}

	var req request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		fmt.Fprintln(os.Stderr, "bad request:", err)
		os.Exit(3)
	}

	out := map[string]float64{}
	for _, p := range req.Players {
		out[p.Name] = 100 / float64(len(req.Players))
	}

	switch mode {
	case "split":
	case "echo":
		// Report the request back through the first player's equity so the
		// test can check what was sent.
		out = map[string]float64{}
		for _, p := range req.Players {
			out[p.Name] = 0
		}
		if req.ID != "" && req.Trials == 1234 && req.Seed == 99 && len(req.Board) == 3 &&
			req.Board[0] == "Qs" && req.Players[0].Hand == "AhKh" && req.Players[1].Hand == "" {
			out[req.Players[0].Name] = 100
		}
	case "bad-sum":
		for name := range out {
			out[name] = 10
		}
	case "bad-name":
		out = map[string]float64{"stranger": 100}
	case "garbage":
		fmt.Print("not json")
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "boom")
		os.Exit(2)
	case "hang":
		time.Sleep(time.Minute)
	}

	_ = json.NewEncoder(os.Stdout).Encode(response{Equity: out})
	os.Exit(0)
}

func helper(t *testing.T, mode string, opts ...Option) *External {
	t.Helper()
	opts = append([]Option{
		WithArgs("-test.run=^TestHelperProcess$"),
		WithEnv(helperEnv + "=" + mode),
		WithClock(quartz.NewMock(t)),
	}, opts...)
	return NewExternal(os.Args[0], log.New(io.Discard), opts...)
}

func players(t *testing.T) []equity.PlayerSpec {
	t.Helper()
	h, err := poker.ParseHand("AhKh")
	require.NoError(t, err)
	return []equity.PlayerSpec{equity.Known("hero", h), equity.Unknown("villain")}
}

func TestExternalSimulate(t *testing.T) {
	t.Parallel()
	got, err := helper(t, "split").Simulate(context.Background(), players(t), nil, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"hero": 50, "villain": 50}, got)
}

func TestExternalSendsRequest(t *testing.T) {
	t.Parallel()
	board := poker.MustParseCards("QsJs2h")
	got, err := helper(t, "echo").Simulate(context.Background(), players(t), board, 1234, 99)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"hero": 100, "villain": 0}, got)
}

func TestExternalErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		mode    string
		wantErr error
	}{
		{mode: "bad-sum", wantErr: ErrBadResponse},
		{mode: "bad-name", wantErr: ErrBadResponse},
		{mode: "garbage", wantErr: ErrBadResponse},
		{mode: "fail"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			t.Parallel()
			_, err := helper(t, tt.mode).Simulate(context.Background(), players(t), nil, 100, 1)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestExternalTimeout(t *testing.T) {
	t.Parallel()
	_, err := helper(t, "hang", WithTimeout(200*time.Millisecond)).
		Simulate(context.Background(), players(t), nil, 100, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestExternalValidatesBeforeRunning(t *testing.T) {
	t.Parallel()
	// The binary does not exist, so reaching it would give a different error.
	e := NewExternal(filepath.Join(t.TempDir(), "missing"), log.New(io.Discard))
	_, err := e.Simulate(context.Background(), nil, nil, 100, 1)
	require.ErrorIs(t, err, equity.ErrNoPlayers)
}

func TestCheckResponse(t *testing.T) {
	t.Parallel()
	specs := []equity.PlayerSpec{equity.Unknown("a"), equity.Unknown("b")}
	tests := []struct {
		name string
		got  map[string]float64
		ok   bool
	}{
		{name: "exact", got: map[string]float64{"a": 60, "b": 40}, ok: true},
		{name: "within tolerance", got: map[string]float64{"a": 60.2, "b": 40.1}, ok: true},
		{name: "outside tolerance", got: map[string]float64{"a": 60.4, "b": 40.4}},
		{name: "missing player", got: map[string]float64{"a": 100}},
		{name: "extra player", got: map[string]float64{"a": 50, "b": 50, "c": 0}},
		{name: "negative", got: map[string]float64{"a": 110, "b": -10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkResponse(specs, tt.got)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrBadResponse)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()
	logger := log.New(io.Discard)

	t.Run("no accelerator configured", func(t *testing.T) {
		sim := Select(config.Default(), logger)
		assert.IsType(t, &equity.MonteCarlo{}, sim)
	})

	t.Run("accelerator missing", func(t *testing.T) {
		cfg := config.Default()
		cfg.Accelerator.Path = filepath.Join(t.TempDir(), "no-such-accelerator")
		sim := Select(cfg, logger)
		assert.IsType(t, &equity.MonteCarlo{}, sim)
	})

	t.Run("accelerator found", func(t *testing.T) {
		cfg := config.Default()
		cfg.Accelerator.Path = os.Args[0]
		sim := Select(cfg, logger,
			WithArgs("-test.run=^TestHelperProcess$"),
			WithEnv(helperEnv+"=split"))
		require.IsType(t, &External{}, sim)

		got, err := sim.Simulate(context.Background(), players(t), nil, 10, 1)
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"hero": 50, "villain": 50}, got)
	})
}
