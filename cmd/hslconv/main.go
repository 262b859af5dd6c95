package main

import "github.com/MeKo-Tech/hslconv/internal/cmd"

func main() {
	cmd.Execute()
}
