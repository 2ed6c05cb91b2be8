// Command 01_instance_creation opens a window and creates a Vulkan instance
// with the extensions SDL needs.
package main

import (
	"log"
	"os"
	"runtime"

	"github.com/explorevulkan/examples/tutorial"
)

func main() {
	runtime.LockOSThread()

	err := tutorial.Main(os.Args[1:], tutorial.StageInstance, false)
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
