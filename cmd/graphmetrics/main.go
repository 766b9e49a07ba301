// Command graphmetrics builds a graph from a YAML connection list (or the
// built-in coursework graph) and prints its centrality, distance and
// clustering measures.
//
// Usage:
//
//	graphmetrics report
//	graphmetrics report --config graph.yaml --json
//	graphmetrics path 1 12 --all --max-paths 50
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	// Ctrl-C cancels a long path enumeration instead of killing mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
