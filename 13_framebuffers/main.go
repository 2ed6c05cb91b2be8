// Command 13_framebuffers runs every init step: one framebuffer per swapchain
// image view, ready for drawing.
package main

import (
	"log"
	"os"
	"runtime"

	"github.com/explorevulkan/examples/tutorial"
)

func main() {
	runtime.LockOSThread()

	err := tutorial.Main(os.Args[1:], tutorial.StageFramebuffers, false)
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
