package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphmetrics/dfs"
	"github.com/katalvlaran/graphmetrics/internal/fixtures"
)

func ExampleComponents() {
	comps, _ := dfs.Components(fixtures.TwoIslands())
	fmt.Println(len(comps), comps)
	// Output: 2 [[A B] [C D]]
}
