// Command specfun evaluates the special functions of the specfun module
// from the command line.
package main

import (
	"log"
	"os"
)

func main() {

	log.SetFlags(0)
	log.SetPrefix("specfun: ")

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
