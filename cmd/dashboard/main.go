package main

import (
	"log"

	"github.com/avc-dev/shlink-dashboard/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
