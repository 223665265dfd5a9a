//go:build tinygo

package main

import (
	"shaderbox/app"
	"shaderbox/hal"
)

func main() {
	app.Run(hal.New(), app.Config{})
}
