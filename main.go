package main

import (
	"github.com/ColonelBlimp/crashtrace/cmd"
	"github.com/ColonelBlimp/crashtrace/internal/recovery"
)

func main() {
	defer recovery.HandlePanic()
	cmd.Execute()
}
