// Command powgo searches for sets of integers with many pairwise sums equal
// to a power of two.
//
// Two modes, selected by positional argument count:
//
//	powgo [options] <set-size> [max-set-size]
//	powgo [options] <triplet-count> <combiner-levels> <min-set-size> [max-set-size]
//
// The first refines a simple odd-number ladder; the second runs the full
// parallel triplet-combination search. One result group is printed per set
// size in [min, max].
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hupe1980/powgo"
)

func main() {
	program := "powgo"
	if len(os.Args) >= 1 {
		program = filepath.Base(os.Args[0])
	}

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, errHelp) {
			fmt.Fprint(os.Stderr, helpText(program))
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "%s error: %s\n", program, err)
		os.Exit(2)
	}

	mode, ok := selectMode(cfg.positionals)
	if !ok {
		fmt.Fprint(os.Stderr, usage(program))
		os.Exit(1)
	}

	if err := run(cfg, mode); err != nil {
		fmt.Fprintf(os.Stderr, "%s error: %s\n", program, err)
		os.Exit(1)
	}
}

func run(cfg *cliConfig, mode runMode) error {
	engine, err := newEngine(cfg, mode)
	if err != nil {
		return err
	}

	ctx := context.Background()

	for setSize := mode.minSetSize; setSize <= mode.maxSetSize; setSize++ {
		var result *powgo.Result
		if mode.simplified {
			result, err = engine.Simple(ctx, setSize)
		} else {
			result, err = engine.Search(ctx, setSize)
		}
		if err != nil {
			return err
		}

		if !mode.simplified {
			fmt.Printf("Tried %d combinations with %d improvements.\n", result.Combinations, result.Improvements)
		}
		printResult(result)
	}

	return nil
}

func newEngine(cfg *cliConfig, mode runMode) (*powgo.Engine, error) {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}

	logger := powgo.NewTextLogger(level)
	if cfg.jsonLog {
		logger = powgo.NewJSONLogger(level)
	}

	opts := []powgo.Option{
		powgo.WithTripletCount(mode.tripletCount),
		powgo.WithLevels(mode.levels),
		powgo.WithWorkers(int(cfg.workers)),
		powgo.WithProgressInterval(time.Duration(cfg.progressMS) * time.Millisecond),
		powgo.WithLogger(logger),
	}

	if cfg.exhaustive {
		opts = append(opts, powgo.WithExhaustiveMoveRule())
	}

	return powgo.New(opts...)
}

func printResult(result *powgo.Result) {
	fmt.Printf("%d numbers in %ds:", result.SetSize, int(result.Elapsed.Seconds()))
	for _, n := range result.Numbers {
		fmt.Printf(" %d", n)
	}
	fmt.Println()

	fmt.Printf("%d power pairs:", result.PairCount)
	for _, p := range result.Pairs {
		fmt.Printf(" %d+%d=%d", p.A, p.B, p.Sum())
	}
	fmt.Println()
}
