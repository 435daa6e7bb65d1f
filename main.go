package main

import "github.com/mdivincenzo/macrocoach/cmd/macrocoach"

func main() {
	macrocoach.Execute()
}
