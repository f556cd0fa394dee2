// Command spider is the crawl-and-index/retrieval CLI.
package main

import (
	"fmt"
	"os"

	"github.com/frejajensen9/web-based-search-engine-24/cmd/spider/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
