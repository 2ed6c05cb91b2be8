package tutorial

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// ErrHelpRequested is returned by ProcessCommandLineArgs after printing the
// usage text, so callers can exit cleanly.
var ErrHelpRequested = errors.New("help requested")

// Options is the result of ProcessCommandLineArgs: the merged config and the
// stage to initialize to.
type Options struct {
	Config Config
	Stage  Stage
}

// ProcessCommandLineArgs applies args over the defaults. A --config file is
// loaded first wherever it appears, so flags always win over the file.
// allowStage controls whether --stage is accepted; snapshot programs pin
// their own stage.
func ProcessCommandLineArgs(args []string, stage Stage, allowStage bool, out io.Writer) (Options, error) {
	opts := Options{
		Config: DefaultConfig(),
		Stage:  stage,
	}

	for i := 0; i < len(args); i++ {
		if args[i] != "--config" {
			continue
		}
		if i+1 >= len(args) {
			return opts, errors.Newf("--config requires a file name")
		}
		err := LoadConfigFile(args[i+1], &opts.Config)
		if err != nil {
			return opts, err
		}
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--config":
			i++
		case arg == "--no-validation":
			opts.Config.EnableValidation = false
		case arg == "--exit-after-init":
			opts.Config.ExitAfterInit = true
		case arg == "--stage" && allowStage:
			if i+1 >= len(args) {
				return opts, errors.Newf("--stage requires a stage name")
			}
			i++
			parsed, err := ParseStage(args[i])
			if err != nil {
				return opts, err
			}
			opts.Stage = parsed
		case arg == "--help" || arg == "-h":
			printUsage(out, allowStage)
			return opts, ErrHelpRequested
		default:
			fmt.Fprintf(out, "\nUnrecognized option: %s\n", arg)
			fmt.Fprintln(out, "\nUse --help or -h for option list.")
			return opts, errors.Newf("unrecognized option %s", arg)
		}
	}

	return opts, opts.Config.Validate()
}

func printUsage(out io.Writer, allowStage bool) {
	fmt.Fprintln(out, "\nOptions")
	fmt.Fprintln(out, "\t--config FILE")
	fmt.Fprintln(out, "\t\tLoad settings from a TOML file")
	fmt.Fprintln(out, "\t--no-validation")
	fmt.Fprintln(out, "\t\tDon't enable validation layers or the debug messenger")
	fmt.Fprintln(out, "\t--exit-after-init")
	fmt.Fprintln(out, "\t\tTear down as soon as initialization finishes")
	if allowStage {
		fmt.Fprintln(out, "\t--stage NAME")
		fmt.Fprintln(out, "\t\tStop initializing after NAME, one of:")
		for _, stage := range Stages() {
			fmt.Fprintf(out, "\t\t  %s\n", stage)
		}
	}
}
