// Command spatial evaluates layout scene scripts and inspects the result.
//
// Usage:
//
//	spatial layout scene.zy              Print the laid-out tree
//	spatial pick scene.zy --dir 0,0,-1   Report the leaf a ray hits first
//	spatial export scene.zy -o out.json  Write leaf meshes as JSON
//	spatial watch scene.zy               Re-run layout when the file changes
//	spatial config init spatial.yaml     Write the default settings
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
