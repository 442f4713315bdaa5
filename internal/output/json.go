package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string     `json:"id"`
	Moves      []JSONMove `json:"moves,omitempty"`
	ToMove     string     `json:"toMove"`
	Status     string     `json:"status"`
	DrawReason string     `json:"drawReason,omitempty"`
	Board      []string   `json:"board"` // Row 0 first, '.' for empty
	Captured   []string   `json:"captured,omitempty"`
	LegalMoves []string   `json:"legalMoves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Kind      string `json:"kind,omitempty"` // Empty for a normal move
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to its JSON representation.
func GameToJSON(game *engine.Game, withMoves bool) *JSONGame {
	jg := &JSONGame{
		ID:     game.ID().String(),
		ToMove: strings.ToLower(game.CurrentPlayer().String()),
		Status: game.Status().String(),
	}
	if game.Status() == engine.Draw {
		jg.DrawReason = game.DrawReason().String()
	}

	for _, line := range strings.Split(strings.TrimSuffix(game.Board().Format(false, '.'), "\n"), "\n") {
		jg.Board = append(jg.Board, strings.ReplaceAll(line, " ", ""))
	}
	for _, p := range game.CapturedPieces() {
		jg.Captured = append(jg.Captured, string(p.Symbol()))
	}

	for i, m := range game.History().Moves() {
		jm := JSONMove{
			Ply:   i + 1,
			Color: strings.ToLower(m.Mover.String()),
			From:  m.From.Algebraic(),
			To:    m.To.Algebraic(),
			Piece: pieceName(m.Piece.Kind()),
		}
		if m.Kind.IsSpecial() {
			jm.Kind = m.Kind.String()
		}
		if m.Captured != nil {
			jm.Captured = pieceName(m.Captured.Kind())
		}
		if m.Kind == engine.PromotionMove {
			jm.Promotion = pieceName(m.Promotion)
		}
		jg.Moves = append(jg.Moves, jm)
	}

	if withMoves {
		jg.LegalMoves = LegalMoveTexts(game)
	}
	return jg
}

func pieceName(k chess.Kind) string {
	return strings.ToLower(k.String())
}

// WriteJSON writes a single game as indented JSON.
func WriteJSON(w io.Writer, game *engine.Game, withMoves bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(game, withMoves))
}

// WriteGamesJSON writes several games as a JSON object with a games array.
func WriteGamesJSON(w io.Writer, games []*engine.Game, withMoves bool) error {
	out := JSONOutput{Games: make([]*JSONGame, len(games))}
	for i, g := range games {
		out.Games[i] = GameToJSON(g, withMoves)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
