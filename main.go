package main

import (
	"os"

	"github.com/ponto-de-aula/ponto-de-aula/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
