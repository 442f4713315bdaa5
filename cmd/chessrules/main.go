// chessrules replays moves in coordinate notation through the rules engine
// and prints the resulting position and game status.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, replays the moves and reports. It returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "chessrules-go version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	cfg.SetOutput(stdout)
	cfg.LogFile = stderr
	if err := applyFlags(cfg, opts); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Set up logging
	closeLog, err := setupLogFile(cfg, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	if opts.batch {
		return runBatch(cfg, opts, fs.Args(), stderr)
	}

	moves := fs.Args()
	if opts.movesFile != "" {
		fileMoves, err := loadMovesFile(opts.movesFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		moves = append(fileMoves, moves...)
	}

	game := engine.NewGame(cfg)
	for _, text := range moves {
		if _, err := game.ApplyAlgebraic(text); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	report(cfg, game, opts)
	cfg.Logf(1, "%d moves replayed, %v\n", len(moves), output.DescribeStatus(game))
	return 0
}

// runBatch replays each move file as its own game on a worker pool and
// reports the games in argument order. Files that cannot be read are
// reported before any game is played.
func runBatch(cfg *config.Config, opts *options, files []string, stderr io.Writer) int {
	exitCode := 0
	jobs := make([]worker.Job, 0, len(files))
	for i, path := range files {
		moves, err := loadMovesFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			exitCode = 1
			continue
		}
		jobs = append(jobs, worker.Job{Index: i, Source: path, Moves: moves})
	}

	numWorkers := opts.workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	results := worker.ReplayAll(jobs, replayMoves(cfg), worker.WithWorkers(numWorkers))

	var games []*engine.Game
	for _, r := range results {
		fmt.Fprint(cfg.LogFile, r.Log)
		if r.Err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", r.Source, r.Err)
			exitCode = 1
			continue
		}
		if opts.jsonOutput {
			games = append(games, r.Game)
			continue
		}
		fmt.Fprintf(cfg.OutputFile, "== %s ==\n", r.Source)
		report(cfg, r.Game, opts)
	}
	if opts.jsonOutput {
		if err := output.WriteGamesJSON(cfg.OutputFile, games, opts.showMoves); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			exitCode = 1
		}
	}
	cfg.Logf(1, "%d games replayed with %d workers\n", len(results), numWorkers)
	return exitCode
}

// replayMoves returns a worker function that plays a job's moves on a
// fresh game. Each game logs to its own buffer so output from concurrent
// games is not interleaved.
func replayMoves(base *config.Config) worker.ReplayFunc {
	return func(job worker.Job) worker.Result {
		var logs strings.Builder
		cfg := *base
		cfg.LogFile = &logs

		result := worker.Result{Index: job.Index, Source: job.Source}
		result.Game = engine.NewGame(&cfg)
		for _, text := range job.Moves {
			if _, err := result.Game.ApplyAlgebraic(text); err != nil {
				result.Err = err
				break
			}
		}
		result.Log = logs.String()
		return result
	}
}

// setupLogFile redirects diagnostics to the file named by -l or -L. The
// returned function closes it.
func setupLogFile(cfg *config.Config, opts *options) (func(), error) {
	var file *os.File
	var err error

	switch {
	case opts.appendLog != "":
		file, err = os.OpenFile(opts.appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	case opts.logFile != "":
		file, err = os.Create(opts.logFile)
	default:
		return func() {}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	cfg.LogFile = file
	return func() { file.Close() }, nil
}

// loadMovesFile reads whitespace-separated moves. Text after '#' on a line
// is ignored.
func loadMovesFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, chesserrors.Wrapf(err, "moves file %s", path)
	}
	defer file.Close()

	var moves []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		moves = append(moves, strings.Fields(line)...)
	}
	return moves, chesserrors.Wrapf(scanner.Err(), "moves file %s", path)
}

// report prints the game to the output file as text or JSON.
func report(cfg *config.Config, game *engine.Game, opts *options) {
	if opts.jsonOutput {
		if err := output.WriteJSON(cfg.OutputFile, game, opts.showMoves); err != nil {
			cfg.Logf(1, "Error writing JSON: %v\n", err)
		}
		return
	}
	output.WriteText(cfg.OutputFile, game, cfg.Display, output.Options{
		StatusOnly: opts.statusOnly,
		ShowMoves:  opts.showMoves,
	})
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: chessrules [options] [moves...]\n\n")
	fmt.Fprintf(w, "Replays moves such as e7e5 or a2a1n and prints the resulting position.\n")
	fmt.Fprintf(w, "Row 0 is White's back rank and is labelled 8.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
}
