package main

import "github.com/nfrund/psyclinic/cmd/psyclinic-cli/cmd"

func main() {
	cmd.Execute()
}
