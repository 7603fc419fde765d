// cmd/map-barcodes/main.go
package main

import (
	"readprep/internal/appshell"
	"readprep/internal/demuxapp"
)

func main() { appshell.Main(demuxapp.RunContext) }
