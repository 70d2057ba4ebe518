package main

import (
	"os"

	"github.com/ZacxDev/itemsort/fs"
)

func main() {
	if err := newRootCmd(fs.RealFileSystem{}).Execute(); err != nil {
		os.Exit(1)
	}
}
