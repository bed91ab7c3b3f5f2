package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/macropower/termprofile/internal/cli"
	"github.com/macropower/termprofile/pkg/version"
)

func main() {
	err := fang.Execute(context.Background(), cli.NewRootCmd(),
		fang.WithColorSchemeFunc(cli.ColorSchemeFunc),
		fang.WithErrorHandler(cli.ErrorHandler),
		fang.WithVersion(version.String()),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err != nil {
		os.Exit(1)
	}
}
