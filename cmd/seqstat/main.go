// cmd/seqstat/main.go
package main

import (
	"seqstat/internal/app"
	"seqstat/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
