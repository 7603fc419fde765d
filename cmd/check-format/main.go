// cmd/check-format/main.go
package main

import (
	"readprep/internal/appshell"
	"readprep/internal/checkapp"
)

func main() { appshell.Main(checkapp.RunContext) }
