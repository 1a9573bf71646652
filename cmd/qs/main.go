// SPDX-License-Identifier: MIT

// Command qs factors a 64-bit composite with the quadratic sieve.
//
//	qs -n 8051 -b 5 -i 50 -t --chart sieve.html
//
// Sizes not given on the command line come from the config file
// (qs_config.yaml), then QS_* environment variables, then built-in defaults.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
