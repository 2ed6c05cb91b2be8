package main

import (
	"log"
	"os"
	"runtime"

	"github.com/explorevulkan/examples/tutorial"
)

func main() {
	runtime.LockOSThread()

	err := tutorial.Main(os.Args[1:], tutorial.StageRenderPass, false)
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
