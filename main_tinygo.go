//go:build tinygo && baremetal

package main

import (
	"aios/app"
	"aios/hal"
)

// kernel_main is called by the loader with the frame buffer it set up.
//
//export kernel_main
func kernelMain(fb *hal.BootFrameBuffer) {
	app.Run(hal.New(fb))
}

func main() {
	select {}
}
