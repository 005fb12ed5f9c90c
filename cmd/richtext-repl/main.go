// Package main is an interactive line REPL over a composer model. It
// reads editing commands from stdin and prints the example-format
// state after each one. With -watch it instead replays a Lua scenario
// script whenever the file changes.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/richtext"
	"github.com/dshills/richtext/internal/script"
)

type composerConfig struct {
	MaxUndoEntries int    `toml:"max_undo_entries"`
	InitialHTML    string `toml:"initial_html"`
}

type replConfig struct {
	Prompt string `toml:"prompt"`
}

type config struct {
	Composer composerConfig `toml:"composer"`
	REPL     replConfig     `toml:"repl"`
}

func defaultConfig() config {
	return config{REPL: replConfig{Prompt: "> "}}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.REPL.Prompt == "" {
		cfg.REPL.Prompt = "> "
	}
	return cfg, nil
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "TOML config file")
	watchPath := flag.String("watch", "", "replay a Lua scenario script on every change")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *watchPath != "" {
		if err := watch(*watchPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	model := richtext.New(
		richtext.WithContent(cfg.Composer.InitialHTML),
		richtext.WithMaxUndoEntries(cfg.Composer.MaxUndoEntries),
	)
	return repl(model, cfg.REPL.Prompt)
}

// watch replays the script once, then again on every write to it,
// until interrupted.
func watch(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	replay(path)
	for {
		select {
		case <-signals:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				replay(path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func replay(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	h := script.New()
	defer h.Close()

	runID, err := h.RunFile(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
		return
	}
	fmt.Printf("ok   %s (run %s)\n%s\n", path, runID, h.Model().ToExampleFormat())
}

func repl(model *richtext.ComposerModel, prompt string) int {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print(prompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return 0
		}
		if line != "" {
			dispatch(model, line)
			fmt.Println(model.ToExampleFormat())
		}
		fmt.Print(prompt)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func dispatch(model *richtext.ComposerModel, line string) {
	cmd, arg, _ := strings.Cut(line, " ")
	switch cmd {
	case "type":
		model.ReplaceText(arg)
	case "select":
		a, f, ok := strings.Cut(arg, " ")
		if !ok {
			fmt.Fprintln(os.Stderr, "usage: select <anchor> <focus>")
			return
		}
		anchor, err1 := strconv.Atoi(a)
		focus, err2 := strconv.Atoi(f)
		if err1 != nil || err2 != nil {
			fmt.Fprintln(os.Stderr, "usage: select <anchor> <focus>")
			return
		}
		model.Select(anchor, focus)
	case "backspace":
		model.Backspace()
	case "delete":
		model.Delete()
	case "enter":
		model.Enter()
	case "bold":
		model.Bold()
	case "italic":
		model.Italic()
	case "underline":
		model.Underline()
	case "strike":
		model.StrikeThrough()
	case "code":
		model.InlineCode()
	case "ol":
		model.OrderedList()
	case "ul":
		model.UnorderedList()
	case "link":
		model.SetLink(arg)
	case "unlink":
		model.RemoveLinks()
	case "undo":
		if _, err := model.Undo(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	case "redo":
		if _, err := model.Redo(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	case "html":
		fmt.Println(model.GetContentAsHTML())
	case "md":
		fmt.Println(model.GetContentAsMarkdown())
	case "tree":
		fmt.Print(model.ToTree())
	case "states":
		printStates(model.ActionStates())
	case "help":
		fmt.Println("commands: type select backspace delete enter bold italic underline strike code ol ul link unlink undo redo html md tree states quit")
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (try help)\n", cmd)
	}
}

func printStates(states richtext.MenuState) {
	for action := richtext.ActionBold; action <= richtext.ActionRedo; action++ {
		fmt.Printf("%-14s %s\n", action, states[action])
	}
}
