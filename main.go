package main

import (
	"os"

	"github.com/go-dashboard/go-dashboard/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
