// Package main runs Lua editing scenarios against a fresh composer
// model, one model per script.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dshills/richtext/internal/script"
)

func main() {
	os.Exit(run())
}

func run() int {
	timeout := flag.Duration("timeout", 30*time.Second, "per-script execution timeout")
	verbose := flag.Bool("v", false, "print final state after each script")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: richtext-script [flags] script.lua ...")
		return 2
	}

	failed := 0
	for _, path := range flag.Args() {
		if err := runScript(path, *timeout, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("ok   %s\n", path)
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func runScript(path string, timeout time.Duration, verbose bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	h := script.New()
	defer h.Close()

	runID, err := h.RunFile(ctx, path)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("run %s\n%s\n", runID, h.Model().ToExampleFormat())
	}
	return nil
}
