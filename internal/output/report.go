// Package output renders a game's position and status for the command line.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Options selects what a report includes.
type Options struct {
	StatusOnly bool // Skip the board diagram and captured list
	ShowMoves  bool // List the legal moves of the side to move
}

// WriteText writes the board, captured pieces, side to move and status.
func WriteText(w io.Writer, game *engine.Game, display *config.DisplayConfig, opts Options) {
	if display == nil {
		display = config.NewDisplayConfig()
	}

	if !opts.StatusOnly {
		fmt.Fprint(w, game.Board().Format(display.ShowCoordinates, display.EmptySquare))
		if captured := game.CapturedPieces(); display.ShowCaptured && len(captured) > 0 {
			symbols := make([]string, len(captured))
			for i, p := range captured {
				symbols[i] = string(p.Symbol())
			}
			fmt.Fprintf(w, "Captured: %s\n", strings.Join(symbols, " "))
		}
	}

	fmt.Fprintf(w, "To move: %v\n", game.CurrentPlayer())
	fmt.Fprintf(w, "Status: %s\n", DescribeStatus(game))

	if opts.ShowMoves {
		moves := LegalMoveTexts(game)
		fmt.Fprintf(w, "Legal moves (%d): %s\n", len(moves), strings.Join(moves, " "))
	}
}

// DescribeStatus returns the status name, with the reason for a draw.
func DescribeStatus(game *engine.Game) string {
	status := game.Status()
	if status == engine.Draw {
		return fmt.Sprintf("%v (%v)", status, game.DrawReason())
	}
	return status.String()
}

// LegalMoveTexts returns the legal moves of the side to move in
// coordinate notation.
func LegalMoveTexts(game *engine.Game) []string {
	legal := game.LegalMoves()
	out := make([]string, len(legal))
	for i, m := range legal {
		out[i] = m.From.Algebraic() + m.To.Algebraic()
	}
	return out
}
