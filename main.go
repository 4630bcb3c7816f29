// Package main provides the entry point for folio.
package main

import (
	"context"
	"os"

	"github.com/kmacinski/folio/internal/cli"
)

var (
	version = "dev"
	commit  = ""
)

func main() {
	ctx := context.Background()
	if err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit}); err != nil {
		os.Exit(1)
	}
}
