// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// options holds the parsed command line.
type options struct {
	// Logging
	verbosity int
	logFile   string
	appendLog string

	// Rules
	fifty      string
	fiftyLimit int
	repetition int
	promote    string

	// Display
	coords     bool
	emptyChar  string
	noCaptured bool
	showMoves  bool
	statusOnly bool
	jsonOutput bool

	// Input
	movesFile string
	batch     bool
	workers   int

	// Other options
	version bool
}

// newFlagSet binds the command-line flags to opts.
func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("chessrules", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs, stderr) }

	rules := config.NewRulesConfig()

	// Logging
	fs.IntVar(&opts.verbosity, "v", 1, "Verbosity: 0 silent, 1 summary, 2 every move")
	fs.StringVar(&opts.logFile, "l", "", "Write diagnostics to log file")
	fs.StringVar(&opts.appendLog, "L", "", "Append diagnostics to log file")

	// Rules
	fs.StringVar(&opts.fifty, "fifty", rules.FiftyMoveMode.String(), "Fifty-move rule: halfmove or total")
	fs.IntVar(&opts.fiftyLimit, "fiftylimit", rules.FiftyMoveLimit, "Plies without capture or pawn move that draw (halfmove mode)")
	fs.IntVar(&opts.repetition, "repetition", rules.RepetitionLimit, "Occurrences of a position that draw")
	fs.StringVar(&opts.promote, "promote", string(rules.DefaultPromotion.Symbol()), "Default promotion piece: Q, R, B or N")

	// Display
	fs.BoolVar(&opts.coords, "coords", true, "Label ranks and files on the board")
	fs.StringVar(&opts.emptyChar, "empty", ".", "Character drawn for an empty square")
	fs.BoolVar(&opts.noCaptured, "nocaptured", false, "Don't list captured pieces")
	fs.BoolVar(&opts.showMoves, "moves", false, "List the legal moves of the side to move")
	fs.BoolVar(&opts.statusOnly, "status", false, "Print only the side to move and status")
	fs.BoolVar(&opts.jsonOutput, "J", false, "Output in JSON format")

	// Input
	fs.StringVar(&opts.movesFile, "f", "", "File of moves to replay before the command-line moves (# for comments)")
	fs.BoolVar(&opts.batch, "batch", false, "Treat arguments as move files and replay each as a separate game")
	fs.IntVar(&opts.workers, "workers", 0, "Number of batch workers (0 = auto-detect based on CPU cores)")

	// Other options
	fs.BoolVar(&opts.version, "version", false, "Show version")

	return fs
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config, opts *options) error {
	cfg.Verbosity = opts.verbosity

	if err := applyRulesFlags(cfg.Rules, opts); err != nil {
		return err
	}
	if err := applyDisplayFlags(cfg.Display, opts); err != nil {
		return err
	}
	return cfg.Validate()
}

// applyRulesFlags configures the draw and promotion rules.
func applyRulesFlags(rules *config.RulesConfig, opts *options) error {
	mode, err := config.ParseFiftyMoveMode(opts.fifty)
	if err != nil {
		return err
	}
	rules.FiftyMoveMode = mode
	rules.FiftyMoveLimit = opts.fiftyLimit
	rules.RepetitionLimit = opts.repetition

	kind, ok := chess.ParseKind(opts.promote)
	if !ok {
		return fmt.Errorf("promotion piece %q: %w", opts.promote, errors.ErrInvalidConfig)
	}
	rules.DefaultPromotion = kind
	return nil
}

// applyDisplayFlags configures the board diagram.
func applyDisplayFlags(display *config.DisplayConfig, opts *options) error {
	if len(opts.emptyChar) != 1 {
		return fmt.Errorf("empty square %q must be one character: %w", opts.emptyChar, errors.ErrInvalidConfig)
	}
	display.ShowCoordinates = opts.coords
	display.EmptySquare = opts.emptyChar[0]
	display.ShowCaptured = !opts.noCaptured
	return nil
}
