package main

import "github.com/wc-toolkit/cem-changelog/internal/cmd"

func main() {
	cmd.Execute()
}
