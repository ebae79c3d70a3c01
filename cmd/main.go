package main

import (
	"os"

	"github.com/docportal/docchat/cmd/docchat"
)

func main() {
	if err := docchat.Execute(); err != nil {
		os.Exit(1)
	}
}
