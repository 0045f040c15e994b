package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/runtime-kit/bench"
	"github.com/wippyai/runtime-kit/buffer"
)

func main() {
	var (
		scenarioFile = flag.String("scenarios", "", "Path to scenario YAML file (default: built-in scenarios)")
		ops          = flag.Int64("ops", 0, "Override op count for every scenario (0 = keep)")
		seed         = flag.Int64("seed", -1, "Override PRNG seed for every scenario (-1 = keep)")
		budget       = flag.Int64("budget", -1, "Override byte budget for every scenario (-1 = keep, 0 = unlimited)")
		verbose      = flag.Bool("v", false, "Verbose logging")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		scenarios, err := loadScenarios(*scenarioFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		applyOverrides(scenarios, *ops, *seed, *budget)
		if err := runInteractive(scenarios); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*scenarioFile, *ops, *seed, *budget, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scenarioFile string, ops, seed, budget int64, verbose bool) error {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
		bench.SetLogger(logger)
	}

	scenarios, err := loadScenarios(scenarioFile)
	if err != nil {
		return err
	}
	applyOverrides(scenarios, ops, seed, budget)

	runner := bench.NewRunner(nil)
	out := buffer.New(nil)
	defer out.Free()

	for i, s := range scenarios {
		res, err := runner.Run(s)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		if i > 0 {
			if err := out.Appendf("\n"); err != nil {
				return err
			}
		}
		if err := res.AppendTo(out); err != nil {
			return err
		}
	}

	if _, err := out.WriteTo(os.Stdout); err != nil {
		return err
	}
	return nil
}

func loadScenarios(path string) ([]bench.Scenario, error) {
	if path == "" {
		return bench.DefaultScenarios(), nil
	}
	scenarios, err := bench.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenarios: %w", err)
	}
	return scenarios, nil
}

func applyOverrides(scenarios []bench.Scenario, ops, seed, budget int64) {
	for i := range scenarios {
		if ops > 0 {
			scenarios[i].Ops = ops
		}
		if seed >= 0 {
			scenarios[i].Seed = uint64(seed)
		}
		if budget >= 0 {
			scenarios[i].Budget = budget
		}
	}
}
