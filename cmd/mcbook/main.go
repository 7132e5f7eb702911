// mcbook prints the /give command for a written book described in YAML.
//
// Usage:
//
//	mcbook give -f book.yaml                       # /give @s ... 1
//	mcbook give -f book.yaml -s @p -n 3 -d strict  # compact JSON dialect
//	mcbook validate -f book.yaml
//	mcbook version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
