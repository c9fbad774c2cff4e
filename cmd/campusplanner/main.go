// Command campusplanner indexes campus buildings and answers road-network
// questions about them: traversals, shortest routes and the cheapest road
// backbone. Without --data it works on the built-in sample campus.
package main

import (
	"os"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
