package main

import (
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"voxelcull/internal/config"
	"voxelcull/internal/graphics/renderables/chunks"
	"voxelcull/internal/graphics/renderables/overlay"
	renderer "voxelcull/internal/graphics/renderer"
	"voxelcull/internal/input"
	"voxelcull/internal/world"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	closer.Bind(glfw.Terminate)
	defer closer.Close()

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}

	inputManager := input.NewInputManager()

	log.Println("generating chunks, this may take a while")
	store := world.Build(
		config.GetChunkRange(),
		config.GetChunkSize(),
		config.GetDensityThreshold(),
		world.CaveField(config.GetWorldSeed()),
	)
	log.Printf("generated %d chunks, %d quads", len(store.Chunks), store.QuadCount())

	width, height := window.GetSize()
	chunksRenderer := chunks.NewChunks(store)
	overlayRenderer := overlay.NewOverlay(width, height)

	r, err := renderer.NewRenderer(width, height, chunksRenderer, overlayRenderer)
	if err != nil {
		log.Fatalf("renderer setup: %v", err)
	}
	closer.Bind(r.Dispose)

	setupInputHandlers(window, r, inputManager)

	loop := NewGameLoop(window, r, chunksRenderer, overlayRenderer, inputManager)
	loop.Run()
}
