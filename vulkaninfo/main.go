// Command vulkaninfo prints the instance layers and extensions and every
// physical device the loader exposes, then exits.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/explorevulkan/examples/tutorial"
)

func run() error {
	opts, err := tutorial.ProcessCommandLineArgs(os.Args[1:], tutorial.StagePhysicalDevice, false, os.Stdout)
	if errors.Is(err, tutorial.ErrHelpRequested) {
		return nil
	} else if err != nil {
		return err
	}

	// The report lists layers, it doesn't need any enabled.
	opts.Config.EnableValidation = false
	opts.Config.ExitAfterInit = true

	app, err := tutorial.NewApplication(opts)
	if err != nil {
		return err
	}

	// A run that finds no suitable device still has its survey to show.
	err = app.Run()
	fmt.Print(app.Report().Render())
	return err
}

func main() {
	runtime.LockOSThread()

	err := run()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
