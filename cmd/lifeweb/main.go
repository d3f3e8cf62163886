//go:build js && wasm

package main

import (
	"fmt"

	"lifeview/internal/app"
	_ "lifeview/internal/engine/life"
	"lifeview/internal/web"
)

func main() {
	cfg := app.NewConfig()
	if err := web.Run(cfg, cfg.Logger()); err != nil {
		fmt.Println("lifeweb:", err)
	}
}
