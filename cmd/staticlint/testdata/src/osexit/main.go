package main

import (
	"fmt"
	"os"
)

func helper() {
	os.Exit(2)
}

func main() {
	defer fmt.Println("deferred")
	if len(os.Args) > 5 {
		helper()
	}
	os.Exit(1) // want "direct os.Exit call in main function"
}
