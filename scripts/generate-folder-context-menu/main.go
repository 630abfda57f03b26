package main

import (
	"context"
	"fmt"
	"os"

	stencil "github.com/goliatone/go-stencil"
)

func main() {
	ctx := context.Background()

	const (
		templateID = "context-menu"
		outputPath = "client/src/components/folder-context-menu.tsx"
	)

	written, err := stencil.Emit(ctx, templateID, outputPath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate context menu: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Generated folder context menu → %s\n", written)
}
