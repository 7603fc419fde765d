// cmd/merge-pairs/main.go
package main

import (
	"readprep/internal/appshell"
	"readprep/internal/mergeapp"
)

func main() { appshell.Main(mergeapp.RunContext) }
