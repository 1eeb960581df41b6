package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// baselineImpl is the implementation every table variant is compared with.
const baselineImpl = "GoMap"

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string // "Insert", "Lookup", ...
	Impl        string // "StrMap", "XXMap", "IntMap", "GoMap"
	Size        string // "n=10000"
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ComparisonResult represents a table variant measured against the built-in map.
type ComparisonResult struct {
	Operation      string
	Size           string
	Impl           string
	TableNs        float64
	BaselineNs     float64
	Speedup        float64
	TableAllocs    int64
	BaselineAllocs int64
	TableOnly      bool
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	// Read benchmark output
	var scanner *bufio.Scanner
	var inputF *os.File
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		inputF = f
		scanner = bufio.NewScanner(f)
	} else {
		scanner = bufio.NewScanner(os.Stdin)
	}

	results := parseBenchmarks(scanner)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	comparisons := generateComparisons(results)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Generated %d comparisons\n", len(comparisons))
	}

	report := generateMarkdownReport(comparisons)

	if *outputFile != "" {
		err := os.WriteFile(*outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			if inputF != nil {
				inputF.Close()
			}
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
		}
	} else {
		fmt.Fprint(os.Stdout, report)
	}

	if inputF != nil {
		inputF.Close()
	}
}

// Benchmark_Insert_StrMap/n=10000-8    500    2450123 ns/op    1048576 B/op    12 allocs/op
var benchmarkRegex = regexp.MustCompile(
	`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+B/op)?(?:\s+([\d.]+)\s+allocs/op)?`,
)

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	for scanner.Scan() {
		line := scanner.Text()

		// Accept `go test -json` output as well as plain text
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		name := matches[1]
		operation, impl, size := splitName(name)
		if operation == "" {
			continue
		}

		r := BenchmarkResult{Name: name, Operation: operation, Impl: impl, Size: size}
		r.Iterations, _ = strconv.Atoi(matches[2])
		r.NsPerOp, _ = strconv.ParseFloat(matches[3], 64)
		if matches[4] != "" {
			r.BytesPerOp, _ = strconv.ParseInt(matches[4], 10, 64)
		}
		if matches[5] != "" {
			r.AllocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}
		results = append(results, r)
	}

	return results
}

// splitName parses Benchmark_<Operation>_<Impl>[/<size>][-<procs>].
func splitName(name string) (operation, impl, size string) {
	head, sub, _ := strings.Cut(name, "/")
	if sub != "" {
		size = trimProcs(sub)
	} else {
		head = trimProcs(head)
	}

	parts := strings.Split(strings.TrimPrefix(head, "Benchmark_"), "_")
	if len(parts) != 2 {
		return "", "", ""
	}
	return parts[0], parts[1], size
}

func trimProcs(s string) string {
	if i := strings.LastIndex(s, "-"); i > 0 {
		if _, err := strconv.Atoi(s[i+1:]); err == nil {
			return s[:i]
		}
	}
	return s
}

func generateComparisons(results []BenchmarkResult) []ComparisonResult {
	type key struct {
		operation string
		size      string
	}

	grouped := make(map[key]map[string]BenchmarkResult)
	for _, r := range results {
		k := key{r.Operation, r.Size}
		if grouped[k] == nil {
			grouped[k] = make(map[string]BenchmarkResult)
		}
		grouped[k][r.Impl] = r
	}

	var comparisons []ComparisonResult
	for k, impls := range grouped {
		base, hasBase := impls[baselineImpl]
		for impl, r := range impls {
			if impl == baselineImpl {
				continue
			}
			c := ComparisonResult{
				Operation:   k.operation,
				Size:        k.size,
				Impl:        impl,
				TableNs:     r.NsPerOp,
				TableAllocs: r.AllocsPerOp,
				TableOnly:   !hasBase,
			}
			if hasBase && r.NsPerOp > 0 {
				c.BaselineNs = base.NsPerOp
				c.BaselineAllocs = base.AllocsPerOp
				c.Speedup = base.NsPerOp / r.NsPerOp
			}
			comparisons = append(comparisons, c)
		}
	}

	sort.Slice(comparisons, func(i, j int) bool {
		a, b := comparisons[i], comparisons[j]
		if a.Operation != b.Operation {
			return a.Operation < b.Operation
		}
		if a.Size != b.Size {
			return sizeValue(a.Size) < sizeValue(b.Size)
		}
		return a.Impl < b.Impl
	})

	return comparisons
}

func sizeValue(s string) int {
	n, _ := strconv.Atoi(strings.ReplaceAll(strings.TrimPrefix(s, "n="), "_", ""))
	return n
}

func generateMarkdownReport(comparisons []ComparisonResult) string {
	var sb strings.Builder

	sb.WriteString("# Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	faster, slower, only := 0, 0, 0
	for _, c := range comparisons {
		switch {
		case c.TableOnly:
			only++
		case c.Speedup > 1.0:
			faster++
		case c.Speedup < 1.0:
			slower++
		}
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- Comparisons against the built-in map: %d\n", len(comparisons)-only))
	sb.WriteString(fmt.Sprintf("- Table faster: %d\n", faster))
	sb.WriteString(fmt.Sprintf("- Built-in map faster: %d\n", slower))
	if only > 0 {
		sb.WriteString(fmt.Sprintf("- Without a baseline: %d\n", only))
	}
	sb.WriteString("\n")

	sb.WriteString("## Results\n\n")
	sb.WriteString("| Operation | Size | Table | Table ns/op | Map ns/op | Speedup | Table allocs | Map allocs |\n")
	sb.WriteString("|---|---|---|---:|---:|---:|---:|---:|\n")
	for _, c := range comparisons {
		if c.TableOnly {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | - | - | %d | - |\n",
				c.Operation, c.Size, c.Impl, formatNs(c.TableNs), c.TableAllocs))
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %.2fx | %d | %d |\n",
			c.Operation, c.Size, c.Impl, formatNs(c.TableNs), formatNs(c.BaselineNs),
			c.Speedup, c.TableAllocs, c.BaselineAllocs))
	}

	return sb.String()
}

func formatNs(ns float64) string {
	switch {
	case ns >= 1e9:
		return fmt.Sprintf("%.2fs", ns/1e9)
	case ns >= 1e6:
		return fmt.Sprintf("%.2fms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.2fus", ns/1e3)
	}
	return fmt.Sprintf("%.0fns", ns)
}
