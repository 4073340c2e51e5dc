package main

import (
	"os"

	"github.com/suitesync/suitesync/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
