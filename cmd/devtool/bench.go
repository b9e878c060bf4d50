package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	benchPackage    = "./benchmarks/rarity"
	benchResultsDir = "benchmarks/results"
	benchBaseline   = "baseline.txt"
	benchCurrent    = "current.txt"
)

type BenchCommand struct{}

func (c *BenchCommand) Name() string {
	return "bench"
}

func (c *BenchCommand) Description() string {
	return "Run rarity benchmarks (run|hot|baseline|compare)"
}

func (c *BenchCommand) Run(args []string) error {
	if len(args) == 0 {
		return c.runAll()
	}

	switch args[0] {
	case "run":
		return c.runAll()
	case "hot":
		return c.runHot()
	case "baseline":
		return c.runAndSave(benchBaseline, os.Stdout)
	case "compare":
		return c.compare()
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func (c *BenchCommand) runAll() error {
	PrintHeader("Running all benchmarks...")
	//nolint:forbidigo
	return runCommandVerbose("go", "test", "-run=^$", "-bench=.", "-benchmem", "-benchtime=2s", benchPackage)
}

func (c *BenchCommand) runHot() error {
	PrintHeader("Running hot path benchmarks...")
	fmt.Println("  → Service: GetRarity")
	//nolint:forbidigo
	return runCommandVerbose("go", "test", "-run=^$", "-bench=BenchmarkGetRarity", "-benchmem", "-benchtime=2s", benchPackage)
}

func (c *BenchCommand) runAndSave(filename string, echo io.Writer) error {
	if err := os.MkdirAll(benchResultsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(benchResultsDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	out := io.Writer(f)
	if echo != nil {
		out = io.MultiWriter(echo, f)
	}

	cmd := exec.Command("go", "test", "-run=^$", "-bench=.", "-benchmem", "-count=5", benchPackage)
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("benchmark execution failed: %w", err)
	}

	PrintSuccess("Results saved to %s (%s)", path, time.Now().Format(time.RFC3339))
	return nil
}

func (c *BenchCommand) compare() error {
	baseline := filepath.Join(benchResultsDir, benchBaseline)
	if _, err := os.Stat(baseline); os.IsNotExist(err) {
		return fmt.Errorf("no baseline found. Run 'devtool bench baseline' first")
	}

	PrintHeader("Running benchmarks and comparing to baseline...")
	if err := c.runAndSave(benchCurrent, nil); err != nil {
		return err
	}
	current := filepath.Join(benchResultsDir, benchCurrent)

	if _, err := exec.LookPath("benchstat"); err == nil {
		return runCommandVerbose("benchstat", baseline, current)
	}

	PrintWarning("benchstat not installed. Install with: go install golang.org/x/perf/cmd/benchstat@latest")
	fmt.Println("BASELINE:")
	printBenchLines(baseline, 5)
	fmt.Println("CURRENT:")
	printBenchLines(current, 5)
	return nil
}

func printBenchLines(path string, n int) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", path, err)
		return
	}
	count := 0
	for _, line := range strings.Split(string(content), "\n") {
		if !strings.HasPrefix(line, "Benchmark") {
			continue
		}
		fmt.Println(line)
		if count++; count >= n {
			return
		}
	}
}
