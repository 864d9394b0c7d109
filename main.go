package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/simbind/hdrgen/generator"
)

func main() {
	outputDir := flag.String("output", ".", "Output directory for generated Python files")
	configPath := flag.String("config", "", "Optional YAML file with seed constants, typedefs and enums")
	watch := flag.Bool("watch", false, "Keep running and regenerate when an input file changes")
	flag.Parse()

	headers := flag.Args()
	if len(headers) == 0 {
		fmt.Fprintln(os.Stderr, "error: at least one header file is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(headers, *configPath, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *watch {
		if err := watchLoop(headers, *configPath, *outputDir); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func run(headers []string, configPath, outputDir string) error {
	gen := generator.New()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		seed, err := generator.ParseSeed(data)
		if err != nil {
			return err
		}
		if err := gen.ApplySeed(seed); err != nil {
			return fmt.Errorf("applying seed config: %w", err)
		}
	}

	srcs := make([]string, len(headers))
	for i, path := range headers {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading header: %w", err)
		}
		srcs[i] = string(data)
	}

	// Enums and constants must be recorded for the whole header set before
	// the x-macro pass resolves any shape against them.
	for i, src := range srcs {
		if err := gen.ParseEnums(src); err != nil {
			return fmt.Errorf("%s: %w", headers[i], err)
		}
		if err := gen.ParseConstsTypedefs(src); err != nil {
			return fmt.Errorf("%s: %w", headers[i], err)
		}
	}
	for i, src := range srcs {
		if err := gen.ParseHints(src); err != nil {
			return fmt.Errorf("%s: %w", headers[i], err)
		}
	}

	files, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for filename, content := range files {
		path := filepath.Join(outputDir, filename)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", filename, err)
		}
		fmt.Printf("Generated: %s\n", path)
	}

	for _, diag := range gen.Diagnostics() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", diag)
	}

	return nil
}

func watchLoop(headers []string, configPath, outputDir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range headers {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}
	if configPath != "" {
		if err := watcher.Add(configPath); err != nil {
			return fmt.Errorf("watching %s: %w", configPath, err)
		}
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Printf("Changed: %s\n", ev.Name)
			if err := run(headers, configPath, outputDir); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}
