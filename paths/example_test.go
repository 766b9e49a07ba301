package paths_test

import (
	"fmt"

	"github.com/katalvlaran/graphmetrics/internal/fixtures"
	"github.com/katalvlaran/graphmetrics/paths"
)

// ExampleAllPaths lists both routes around a square.
func ExampleAllPaths() {
	all, err := paths.AllPaths(fixtures.Square(), "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range all {
		fmt.Println(p)
	}
	// Output:
	// [A B C]
	// [A D C]
}
