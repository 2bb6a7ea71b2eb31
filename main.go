package main

import (
	"fmt"
	"os"

	"github.com/mpoegel/police-shootings/internal/app"
	"github.com/mpoegel/police-shootings/internal/misc"
)

var log = misc.NewLogger("Main", 2)

func main() {
	if err := misc.StartConsole(false); err != nil {
		fmt.Fprintf(os.Stderr, "Init console log failed: %v\n", err)
		os.Exit(1)
	}

	if err := app.NewApp(app.DefaultOption(), nil).Execute(); err != nil {
		log.Error("%+v", err)
		misc.StopConsole()
		os.Exit(1)
	}
	misc.StopConsole()
}
