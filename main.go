package main

import (
	"os"

	"github.com/scan-io-git/isaval/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
