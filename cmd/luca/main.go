package main

import (
	"log"
	"os"

	"github.com/0xfalafel/luca/cmd/luca/cmd"
)

func main() {
	log.SetFlags(0)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
