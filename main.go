package main

import (
	"os"

	"github.com/earg-org/earg-api/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
