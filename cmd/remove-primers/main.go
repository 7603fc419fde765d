// cmd/remove-primers/main.go
package main

import (
	"readprep/internal/appshell"
	"readprep/internal/trimapp"
)

func main() { appshell.Main(trimapp.RunContext) }
