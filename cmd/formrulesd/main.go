// Command formrulesd serves declarative form validation rules over HTTP.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/formrules/pkg/config"
)

func main() {
	os.Exit(execute(context.Background(), os.Stdout, os.Stderr))
}

// execute loads the configuration and runs the service until ctx is done.
// Errors are written to stderr and turned into a non-zero exit code.
func execute(ctx context.Context, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := run(ctx, cfg, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
