package engine

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

var pos = testutil.Pos

// quietConfig returns defaults with logging sent to a buffer.
func quietConfig() (*config.Config, *bytes.Buffer) {
	logs := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().WithVerbosity(0).WithLogFile(logs).WithOutput(&bytes.Buffer{}).Build()
	return cfg, logs
}

// newTestGame builds a game on the given rows with toMove to play.
func newTestGame(t *testing.T, toMove chess.Color, rows ...string) *Game {
	t.Helper()
	b := testutil.MustBoard(t, rows...)
	b.SetCurrentPlayer(toMove)
	cfg, _ := quietConfig()
	return NewGameFromBoard(b, cfg)
}

// play applies coordinate moves and fails the test on the first rejection.
func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if _, err := g.ApplyAlgebraic(m); err != nil {
			t.Fatalf("ApplyAlgebraic(%q) error: %v", m, err)
		}
	}
}

func kindPtr(k chess.Kind) *chess.Kind {
	return &k
}
