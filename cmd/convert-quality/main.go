// cmd/convert-quality/main.go
package main

import (
	"readprep/internal/appshell"
	"readprep/internal/convertapp"
)

func main() { appshell.Main(convertapp.RunContext) }
