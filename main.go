package main

import (
	"github.com/HomingHamster/scale-and-chord-generator/cmd"
)

func main() {
	cmd.Execute()
}
