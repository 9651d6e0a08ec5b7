package main

import cmd "github.com/rohmanhakim/recipebox/internal/cli"

func main() {
	cmd.Execute()
}
