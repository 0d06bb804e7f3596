package main

import (
	"github.com/NVIDIA/release-matrix/pkg/cli"
)

func main() {
	cli.Execute()
}
