package main

import (
	"os"

	"github.com/mohozompur-madrasa/madrasa-site/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
