// Command 05_window_surface adds a presentation surface, which also makes
// present support part of device selection.
package main

import (
	"log"
	"os"
	"runtime"

	"github.com/explorevulkan/examples/tutorial"
)

func main() {
	runtime.LockOSThread()

	err := tutorial.Main(os.Args[1:], tutorial.StageSurface, false)
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
