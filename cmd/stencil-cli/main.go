package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/goliatone/go-stencil/pkg/catalog"
	"github.com/goliatone/go-stencil/pkg/emit"
	"github.com/goliatone/go-stencil/pkg/scaffold"
	"github.com/goliatone/go-stencil/pkg/tui"
)

func main() {
	templateID := flag.String("template", "", "catalog entry to render (prompts when empty)")
	output := flag.String("output", "", "output file (entry default if empty)")
	catalogDir := flag.String("catalog", "", "directory with a custom catalog (embedded if empty)")
	list := flag.Bool("list", false, "list catalog entries and exit")
	stdout := flag.Bool("stdout", false, "print rendered output instead of writing a file")
	mkdir := flag.Bool("mkdir", false, "create missing parent directories for the output file")
	values := setFlags{}
	flag.Var(values, "set", "template variable as key=value (repeatable)")
	flag.Parse()

	ctx := context.Background()

	store, err := loadCatalog(*catalogDir)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	if *list {
		printEntries(store)
		return
	}

	var emitterOpts []emit.Option
	if *mkdir {
		emitterOpts = append(emitterOpts, emit.WithMkdirAll(0o755))
	}

	gen, err := scaffold.New(
		scaffold.WithCatalog(store),
		scaffold.WithEmitter(emit.New(emitterOpts...)),
	)
	if err != nil {
		log.Fatalf("Failed to build generator: %v", err)
	}

	req := scaffold.Request{
		Template: strings.TrimSpace(*templateID),
		Output:   *output,
		Values:   values.toValues(),
	}

	if req.Template == "" {
		if err := fillInteractively(ctx, store, &req, newPromptDriver()); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
	}

	if *stdout {
		rendered, err := gen.Generate(ctx, req)
		if err != nil {
			log.Fatalf("Failed to generate scaffold: %v", err)
		}
		fmt.Println(string(rendered))
		return
	}

	written, err := gen.Emit(ctx, req)
	if err != nil {
		log.Fatalf("Failed to emit scaffold: %v", err)
	}
	fmt.Printf("Scaffold written to %s\n", written)
}

func loadCatalog(dir string) (*catalog.Store, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return catalog.Default()
	}
	return catalog.LoadFS(os.DirFS(trimmed))
}

func printEntries(store *catalog.Store) {
	if store.Empty() {
		fmt.Println("catalog is empty")
		return
	}
	for _, entry := range store.Entries() {
		title := entry.Title
		if title == "" {
			title = entry.ID
		}
		fmt.Printf("%-16s %s\n", entry.ID, title)
		if entry.Description != "" {
			fmt.Printf("%-16s %s\n", "", entry.Description)
		}
	}
}

// newPromptDriver returns a survey-backed driver when stdin is a terminal,
// nil otherwise.
func newPromptDriver() tui.PromptDriver {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return tui.NewSurveyDriver()
	}
	return nil
}

// fillInteractively prompts for the catalog entry and any declared variables
// the caller did not pass via -set. A nil driver means no terminal is
// attached, so a template choice cannot be gathered.
func fillInteractively(ctx context.Context, store *catalog.Store, req *scaffold.Request, driver tui.PromptDriver) error {
	if driver == nil {
		return errors.New("a template is required when not running on a terminal (use -template)")
	}

	entries := store.Entries()
	if len(entries) == 0 {
		return errors.New("catalog is empty")
	}

	options := make([]string, len(entries))
	for i, entry := range entries {
		label := entry.ID
		if entry.Title != "" {
			label = fmt.Sprintf("%s: %s", entry.ID, entry.Title)
		}
		options[i] = label
	}

	idx, err := driver.Select(ctx, tui.SelectConfig{
		Message: "Scaffold to generate:",
		Options: options,
	})
	if err != nil {
		return err
	}
	entry := entries[idx]
	req.Template = entry.ID

	if req.Values == nil {
		req.Values = make(map[string]any, len(entry.Variables))
	}
	for _, variable := range entry.Variables {
		if _, supplied := req.Values[variable.Name]; supplied {
			continue
		}
		message := variable.Label
		if message == "" {
			message = variable.Name
		}
		answer, err := driver.Input(ctx, tui.InputConfig{
			Message: message + ":",
			Default: variable.Default,
		})
		if err != nil {
			return err
		}
		if answer != "" {
			req.Values[variable.Name] = answer
		}
	}

	return nil
}

type setFlags map[string]string

func (s setFlags) String() string {
	pairs := make([]string, 0, len(s))
	for key, value := range s {
		pairs = append(pairs, key+"="+value)
	}
	return strings.Join(pairs, ",")
}

func (s setFlags) Set(raw string) error {
	key, value, found := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return fmt.Errorf("expected key=value, got %q", raw)
	}
	s[key] = value
	return nil
}

func (s setFlags) toValues() map[string]any {
	if len(s) == 0 {
		return nil
	}
	out := make(map[string]any, len(s))
	for key, value := range s {
		out[key] = value
	}
	return out
}
