package tutorial

import (
	"os"

	"github.com/cockroachdb/errors"
)

// Main parses the command line and runs an Application to stage. A help
// request is not an error. Callers must be locked to the main OS thread.
func Main(args []string, stage Stage, allowStage bool) error {
	opts, err := ProcessCommandLineArgs(args, stage, allowStage, os.Stdout)
	if errors.Is(err, ErrHelpRequested) {
		return nil
	} else if err != nil {
		return err
	}

	app, err := NewApplication(opts)
	if err != nil {
		return err
	}

	return app.Run()
}
