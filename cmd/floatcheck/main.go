// Package main provides a command-line conformance checker for the
// parsefloat library. It consumes files (or stdin) in the whitespace-
// separated line format "<f16-hex> <f32-hex> <f64-hex> <literal>", parses
// each literal as float32 and float64, and reports every line whose bit
// pattern deviates from the expectation. The float16 column is accepted for
// compatibility with external reference files and ignored.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/scigolib/parsefloat"
)

func main() {
	verbose := flag.Bool("v", false, "Log every checked literal")
	flag.Parse()

	checker := &checker{verbose: *verbose, out: os.Stdout}

	args := flag.Args()
	if len(args) == 0 {
		if err := checker.run("<stdin>", os.Stdin); err != nil {
			log.Fatalf("Failed to read stdin: %v", err)
		}
	}
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("Failed to open file: %v", err)
		}
		err = checker.run(name, f)
		_ = f.Close()
		if err != nil {
			log.Fatalf("Failed to read %s: %v", name, err)
		}
	}

	fmt.Printf("%d literals checked, %d mismatches\n", checker.checked, checker.failed)
	if checker.failed > 0 {
		os.Exit(1)
	}
}

type checker struct {
	verbose bool
	out     io.Writer
	checked int
	failed  int
}

func (c *checker) run(name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			fmt.Fprintf(c.out, "%s:%d: malformed line %q\n", name, lineno, line)
			c.failed++
			continue
		}
		want32, err := strconv.ParseUint(fields[1], 16, 32)
		if err != nil {
			fmt.Fprintf(c.out, "%s:%d: bad f32 field: %v\n", name, lineno, err)
			c.failed++
			continue
		}
		want64, err := strconv.ParseUint(fields[2], 16, 64)
		if err != nil {
			fmt.Fprintf(c.out, "%s:%d: bad f64 field: %v\n", name, lineno, err)
			c.failed++
			continue
		}
		c.check(name, lineno, fields[3], uint32(want32), want64)
	}
	return scanner.Err()
}

func (c *checker) check(name string, lineno int, literal string, want32 uint32, want64 uint64) {
	c.checked++
	if c.verbose {
		fmt.Fprintf(c.out, "%s:%d: %s\n", name, lineno, literal)
	}

	v64, err := parsefloat.ParseFloat64(literal)
	if err != nil {
		fmt.Fprintf(c.out, "%s:%d: %q: f64 parse failed: %v\n", name, lineno, literal, err)
		c.failed++
		return
	}
	if got := math.Float64bits(v64); got != want64 {
		fmt.Fprintf(c.out, "%s:%d: %q: f64 bits %016X, want %016X\n",
			name, lineno, literal, got, want64)
		c.failed++
	}

	v32, err := parsefloat.ParseFloat32(literal)
	if err != nil {
		fmt.Fprintf(c.out, "%s:%d: %q: f32 parse failed: %v\n", name, lineno, literal, err)
		c.failed++
		return
	}
	if got := math.Float32bits(v32); got != want32 {
		fmt.Fprintf(c.out, "%s:%d: %q: f32 bits %08X, want %08X\n",
			name, lineno, literal, got, want32)
		c.failed++
	}
}
