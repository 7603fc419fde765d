// cmd/split-reads/main.go
package main

import (
	"readprep/internal/appshell"
	"readprep/internal/splitapp"
)

func main() { appshell.Main(splitapp.RunContext) }
