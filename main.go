package main

import (
	"fmt"
	"os"

	"github.com/rook-computer/icongen/internal/app"
	"github.com/rook-computer/icongen/internal/icondir"
	"github.com/rook-computer/icongen/internal/render"
)

func main() {
	fmt.Println("icongen starting")

	a := app.New(render.NewCanvas(), icondir.NewWriter())
	a.Logger = app.NewFileLogger(os.Stdout)

	if err := a.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "icongen error:", err)
		os.Exit(1)
	}
}
