// Command pathrace races Dijkstra against A* on random or grid Euclidean
// graphs and reports paths, costs, timings and search effort.
package main

import (
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

func main() {
	code := 0
	if err := NewCommandCLI("pathrace", os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		code = 1
	}
	klog.Flush()
	os.Exit(code)
}
