package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"GopherQueue/internal/config"
	"GopherQueue/internal/logger"
	"GopherQueue/internal/queue"
	"GopherQueue/internal/renderer"
	"GopherQueue/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var cubeVertices = []mgl32.Vec3{
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
}

func main() {
	configPath := flag.String("config", "", "queue config file (.json, .toml, .yaml)")
	frames := flag.Int("frames", 3, "number of frames to render")
	watch := flag.Bool("watch", false, "reload the config file when it changes")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if err := logger.InitWithLevel(cfg.LogLevel, cfg.LogDevelopment); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, *configPath, *frames, *watch); err != nil {
		logger.Log.Error("Demo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.QueueConfig, configPath string, frames int, watch bool) error {
	log := logger.Log

	q, err := config.BuildQueue(cfg, log)
	if err != nil {
		return err
	}

	reloads := make(chan config.QueueConfig, 1)
	if watch && configPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			err := config.Watch(ctx, configPath, log, func(c config.QueueConfig) {
				// keep only the latest change
				select {
				case <-reloads:
				default:
				}
				reloads <- c
			})
			if err != nil {
				log.Error("Config watch stopped", zap.Error(err))
			}
		}()
	}

	root := buildScene()
	cam := renderer.NewDefaultCamera(1280, 720)
	cam.SetPosition(mgl32.Vec3{0, 2, 12})

	manager := renderer.NewManager(renderer.LogBackend{Log: log}, log)
	manager.RenderTranslucent = cfg.RenderTranslucent
	flattener := scene.NewFlattener(cfg.FrustumCulling, log)

	for frame := 0; frame < frames; frame++ {
		select {
		case c := <-reloads:
			// comparators may only change while the queue is empty
			q.Clear()
			if err := config.Apply(c, q); err != nil {
				log.Warn("Config change not applied", zap.Error(err))
			}
			manager.RenderTranslucent = c.RenderTranslucent
			flattener.FrustumCulling = c.FrustumCulling
		default:
		}

		manager.ResetStats()
		flat, err := flattener.Flatten(root, cam, q)
		if err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		if err := manager.RenderShadows(q, queue.ShadowCast, cam, true); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		if err := manager.RenderViewPort(q, cam, true); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		// receivers are only needed while the shadow pass runs
		q.Clear()

		stats := manager.Stats()
		log.Info("Frame rendered",
			zap.Int("frame", frame),
			zap.Int("queued", flat.Queued),
			zap.Int("culled", flat.Culled),
			zap.Int("drawCalls", stats.DrawCalls),
			zap.Int("shaderSwitches", stats.ShaderSwitches),
			zap.Int("textureSwitches", stats.TextureSwitches),
			zap.Int("shadowDraws", stats.ShadowDraws))
		manager.LogStats()

		cam.ProcessMouseMovement(150, 0, true)
	}
	return nil
}

func buildScene() *scene.Node {
	root := scene.NewNode("root")
	root.ShadowMode = queue.ShadowCastAndReceive

	materials := []*renderer.Material{
		renderer.NewMaterial("stone", "lit"),
		renderer.NewMaterial("wood", "lit"),
		renderer.NewMaterial("metal", "pbr"),
	}
	materials[1].TextureID = 1
	materials[2].TextureID = 2

	world := scene.NewNode("world")
	root.AttachChild(world)
	i := 0
	for x := -2; x <= 2; x++ {
		for z := -2; z <= 2; z++ {
			mat := materials[i%len(materials)]
			if (x+z)%4 == 0 {
				mat = renderer.NewMaterial("glass", "lit")
			}
			g := renderer.NewGeometry(fmt.Sprintf("crate-%d-%d", x, z), cubeVertices, mat)
			g.SetPosition(float32(x)*3, 0, float32(z)*3)
			if mat.Name == "glass" {
				g.SetAlpha(0.5)
			}
			world.Attach(g)
			i++
		}
	}

	sky := scene.NewNode("sky")
	sky.QueueBucket = queue.Sky
	sky.ShadowMode = queue.ShadowOff
	dome := renderer.NewGeometry("dome", nil, renderer.NewMaterial("sky", "sky"))
	sky.Attach(dome)
	root.AttachChild(sky)

	smoke := renderer.NewGeometry("smoke", cubeVertices, renderer.NewMaterial("smoke", "particles"))
	smoke.QueueBucket = queue.Translucent
	smoke.SetPosition(0, 3, 0)
	world.Attach(smoke)

	hud := scene.NewNode("hud")
	hud.QueueBucket = queue.Gui
	hud.ShadowMode = queue.ShadowOff
	for layer := 0; layer < 3; layer++ {
		label := renderer.NewGeometry(fmt.Sprintf("label-%d", layer), nil, renderer.NewMaterial("text", "gui"))
		label.SetPosition(10, float32(20*layer), float32(2-layer))
		hud.Attach(label)
	}
	root.AttachChild(hud)

	return root
}
