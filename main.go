package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/Belfer/PointCloudViewer/engine"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	configPath := flag.String("config", "pclview.toml", "viewer configuration file")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("usage: pclview [-config file] scene.obj")
	}
	objPath := flag.Arg(0)

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal("config: ", err)
	}

	shading, err := cfg.ShadingState()
	if err != nil {
		log.Fatal("config: ", err)
	}

	renderer, err := engine.NewRenderer(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		log.Fatal("renderer: ", err)
	}
	defer renderer.Dispose()

	store := engine.NewStore(renderer.Device(), cfg.Bounds.IncludeOrigin)
	defer store.Dispose()

	shapes, err := engine.LoadOBJ(objPath)
	if err != nil {
		log.Fatal("load: ", err)
	}

	scene, err := store.Load(shapes)
	if err != nil {
		log.Fatal("load: ", err)
	}
	store.Replace(scene)
	log.Printf("loaded %v: %v clouds, %v vertices", objPath, len(scene.PointClouds()), scene.VertexCount())

	camera := engine.NewCamera(cfg.Camera.MoveSpeed, cfg.Camera.RotateSpeed)
	scheduler := engine.NewScheduler(cfg.Frame.FPS)

	drawBounds := cfg.Bounds.Draw
	var reload bool

	control := engine.NewControl(renderer.Window())
	control.OnMode = func(m engine.DrawMode) {
		shading.Mode = m
		log.Printf("draw mode: %v", m)
	}
	control.OnToggleBounds = func() { drawBounds = !drawBounds }
	control.OnToggleScale = func() { shading.PointScale = !shading.PointScale }
	control.OnReload = func() { reload = true }
	control.OnQuit = renderer.Quit

	for renderer.Running() {
		dt := scheduler.Tick()

		if reload {
			// frame boundary; a failed reload keeps the current scene
			reload = false
			if shapes, err := engine.LoadOBJ(objPath); err != nil {
				log.Println("reload: ", err)
			} else if scene, err := store.Load(shapes); err != nil {
				log.Println("reload: ", err)
			} else {
				store.Replace(scene)
				log.Printf("reloaded %v: %v vertices", objPath, scene.VertexCount())
			}
		}

		camera.Update(control.Poll(dt))

		renderer.Frame(store.Current(), camera, shading, drawBounds)
		renderer.SwapBuffers()
	}
}
