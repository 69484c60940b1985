// Package main benchmarks the githistory report across repository sizes and commit sources.
// Each repository is read several times per source; the first successful run counts as cold
// and the rest are averaged as warm. Results are written to a CSV file.
//
// Prerequisites:
// - githistory binary installed and available in PATH
// - Test repositories cloned to the specified base directory
// - Git repositories: csv-parser, fd, git, kubernetes
//
// Usage: go run benchmark/main.go [repo-base-dir]
//
//	repo-base-dir: Directory containing test repositories
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the timings of one repository read through one source.
type BenchmarkResult struct {
	Repository string
	Source     string
	Authors    string
	ColdTime   string
	WarmTime   string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RepoBase  string
	Timeout   time.Duration
	Runs      int
	TestRepos []string
	Sources   []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [repo-base-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		RepoBase:  os.Args[1],
		Timeout:   5 * time.Minute,
		Runs:      4,
		TestRepos: []string{"csv-parser", "fd", "git", "kubernetes"},
		Sources:   []string{"git", "go-git"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that githistory binary and test repositories exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("githistory"); err != nil {
		return fmt.Errorf("githistory binary not found in PATH")
	}

	for _, repo := range config.TestRepos {
		repoPath := filepath.Join(config.RepoBase, repo)
		if _, err := os.Stat(repoPath); os.IsNotExist(err) {
			return fmt.Errorf("repository %s not found at %s", repo, repoPath)
		}
	}

	return nil
}

// runBenchmarks reads every repository through every source
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d repos, %v timeout, %d runs per source\n",
		len(config.TestRepos), config.Timeout, config.Runs)

	for _, repo := range config.TestRepos {
		fmt.Printf("Benchmarking %s\n", repo)
		repoPath := filepath.Join(config.RepoBase, repo)
		for _, source := range config.Sources {
			results = append(results, runBenchmarkSuite(config, repo, repoPath, source))
		}
	}

	return results
}

// runBenchmarkSuite times one source on one repository
func runBenchmarkSuite(config BenchmarkConfig, repo, repoPath, source string) BenchmarkResult {
	fmt.Printf("  source %s (%d runs)\n", source, config.Runs)

	cold, warm, authors := runBenchmark(config, repoPath, source)

	coldTime := "TIMEOUT"
	if cold > 0 {
		coldTime = fmt.Sprintf("%.3fs", cold)
	}
	warmTime := "TIMEOUT"
	if len(warm) > 0 {
		var sum float64
		for _, t := range warm {
			sum += t
		}
		warmTime = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s, Authors: %s\n", coldTime, warmTime, authors)

	return BenchmarkResult{
		Repository: repo,
		Source:     source,
		Authors:    authors,
		ColdTime:   coldTime,
		WarmTime:   warmTime,
	}
}

// runBenchmark executes the report several times and returns cold time, warm times and the author count
func runBenchmark(config BenchmarkConfig, repoPath, source string) (coldTime float64, warmTimes []float64, authors string) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("githistory", "report", "--output", "csv")
		cmd.Dir = repoPath
		cmd.Env = append(os.Environ(), "GITHISTORY_SOURCE="+source, "GITHISTORY_COLOR=no")

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if n, ok := authorCount(output); cmdErr == nil && ok {
				times = append(times, time.Since(start).Seconds())
				authors = n
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// authorCount pulls the author total from the report header
func authorCount(output []byte) (string, bool) {
	for line := range strings.SplitSeq(string(output), "\n") {
		_, rest, found := strings.Cut(line, "Authors: ")
		if !found {
			continue
		}
		n, _, _ := strings.Cut(rest, ",")
		return n, true
	}
	return "", false
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/githistory_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"repo", "source", "authors", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{result.Repository, result.Source, result.Authors, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-12s %-7s: Cold: %s, Warm: %s\n", result.Repository, result.Source, result.ColdTime, result.WarmTime)
	}
}
