package main

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/minevis/internal/config"
	"github.com/philipparndt/minevis/internal/logger"
	"github.com/philipparndt/minevis/pkg/blockmodel"
	"github.com/philipparndt/minevis/pkg/colorramp"
	"github.com/philipparndt/minevis/pkg/dataset"
	"github.com/philipparndt/minevis/pkg/geometry"
	"github.com/philipparndt/minevis/pkg/surface"
	"go.uber.org/zap"
)

// App holds the viewer state: the dataset, the uploaded surface mesh,
// the current block section and the orbit camera.
type App struct {
	cfg *config.Config
	ds  *dataset.Dataset

	cache       *surface.Cache
	surfaceMesh *surface.RenderableMesh
	mesh        rl.Mesh
	meshLoaded  bool
	material    rl.Material

	offset geometry.Vector3
	levels blockmodel.Levels
	filter blockmodel.SectionFilter
	blocks []blockmodel.Block

	camera         rl.Camera3D
	cameraDistance float32
	cameraAngleX   float32
	cameraAngleY   float32
	cameraTarget   rl.Vector3
	sceneSize      float32
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: minevis-view <dataset.json>")
		os.Exit(1)
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	ds, err := dataset.Load(os.Args[1])
	if err != nil {
		fmt.Printf("Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	screenWidth := int32(1400)
	screenHeight := int32(900)
	rl.InitWindow(screenWidth, screenHeight, "MineVis - Surface and Block Model Viewer")
	rl.SetTargetFPS(60)

	app := &App{
		cfg:    cfg,
		ds:     ds,
		cache:  surface.NewCache(cfg.Mesh.CacheEntries),
		offset: blockmodel.Offset(ds.Blocks, cfg.Blocks.AutoCenter),
		levels: blockmodel.MaxLevels(ds.Blocks, ds.GridDefinition),
	}
	app.applySection()

	bbox := app.sceneBounds()
	if len(ds.Surfaces) > 0 {
		app.surfaceMesh = app.cache.Build(&ds.Surfaces[0], surface.ColorField{Ramp: cfg.Mesh.Ramp})
		if app.surfaceMesh != nil {
			app.mesh = toRaylibMesh(app.surfaceMesh, app.offset)
			app.meshLoaded = true
			app.material = rl.LoadMaterialDefault()
			logger.Log.Info("surface mesh uploaded",
				zap.String("surface", ds.Surfaces[0].Name),
				zap.Int("faces", app.surfaceMesh.FaceCount),
				zap.Int("skipped", app.surfaceMesh.SkippedCount),
				zap.Int("degenerate", app.surfaceMesh.DegenerateCount))
		}
	}

	app.setupCamera(bbox)

	for !rl.WindowShouldClose() {
		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.camera)
		if app.meshLoaded {
			rl.DrawMesh(app.mesh, app.material, rl.MatrixIdentity())
		}
		app.drawBlocks()
		rl.EndMode3D()

		app.drawHUD()
		rl.EndDrawing()
	}

	if app.meshLoaded {
		rl.UnloadMesh(&app.mesh)
	}
	rl.CloseWindow()
}

// sceneBounds covers the surface vertices and block centroids after
// the centering offset is applied.
func (app *App) sceneBounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for i := range app.ds.Surfaces {
		for _, v := range app.ds.Surfaces[i].Vertices {
			bbox.Extend(v.Sub(app.offset))
		}
	}
	for _, b := range app.ds.Blocks {
		bbox.Extend(geometry.NewVector3(b.X, b.Y, b.Z).Sub(app.offset))
	}
	if bbox.IsEmpty() {
		bbox.Extend(geometry.NewVector3(-50, -50, -50))
		bbox.Extend(geometry.NewVector3(50, 50, 50))
	}
	return bbox
}

func (app *App) setupCamera(bbox geometry.BoundingBox) {
	center := bbox.Center()
	distance := float32(bbox.MaxDimension() * 2.0)
	if distance == 0 {
		distance = 100
	}

	app.cameraTarget = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.sceneSize = float32(bbox.MaxDimension())
	app.cameraDistance = distance
	app.cameraAngleX = 0.4
	app.cameraAngleY = 0.6

	app.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: distance},
		Target:     app.cameraTarget,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

func (app *App) applySection() {
	app.blocks = blockmodel.FilterBySection(app.ds.Blocks, app.filter)
}

func (app *App) handleInput() {
	// Orbit with left mouse drag
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		app.cameraAngleY -= delta.X * 0.01
		app.cameraAngleX += delta.Y * 0.01

		maxAngle := float32(math.Pi/2 - 0.1)
		if app.cameraAngleX > maxAngle {
			app.cameraAngleX = maxAngle
		}
		if app.cameraAngleX < -maxAngle {
			app.cameraAngleX = -maxAngle
		}
	}

	// Zoom with the mouse wheel
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		app.cameraDistance *= 1.0 - wheel*0.1
		minDist := app.sceneSize * 0.2
		if minDist == 0 {
			minDist = 1
		}
		if app.cameraDistance < minDist {
			app.cameraDistance = minDist
		}
	}

	// Section controls: pick the axis, step the level, clear
	switch {
	case rl.IsKeyPressed(rl.KeyX):
		app.setAxis(blockmodel.AxisX)
	case rl.IsKeyPressed(rl.KeyY):
		app.setAxis(blockmodel.AxisY)
	case rl.IsKeyPressed(rl.KeyZ):
		app.setAxis(blockmodel.AxisZ)
	case rl.IsKeyPressed(rl.KeyA):
		app.filter = blockmodel.SectionFilter{}
		app.applySection()
	case rl.IsKeyPressed(rl.KeyUp):
		app.stepLevel(1)
	case rl.IsKeyPressed(rl.KeyDown):
		app.stepLevel(-1)
	}
}

func (app *App) setAxis(axis blockmodel.Axis) {
	app.filter = blockmodel.SectionFilter{Axis: axis, Level: 0}
	app.applySection()
}

func (app *App) stepLevel(delta int) {
	if app.filter.Axis == blockmodel.AxisNone {
		return
	}
	max := app.levels.On(app.filter.Axis)
	level := app.filter.Level + delta
	if level < 0 || level >= max {
		return
	}
	app.filter.Level = level
	app.applySection()
}

func (app *App) updateCamera() {
	x := app.cameraDistance * float32(math.Cos(float64(app.cameraAngleX))) * float32(math.Sin(float64(app.cameraAngleY)))
	y := app.cameraDistance * float32(math.Sin(float64(app.cameraAngleX)))
	z := app.cameraDistance * float32(math.Cos(float64(app.cameraAngleX))) * float32(math.Cos(float64(app.cameraAngleY)))

	app.camera.Position = rl.Vector3{
		X: app.cameraTarget.X + x,
		Y: app.cameraTarget.Y + y,
		Z: app.cameraTarget.Z + z,
	}
	app.camera.Target = app.cameraTarget
}

// drawBlocks renders the current section as value-colored cubes.
func (app *App) drawBlocks() {
	if len(app.blocks) == 0 {
		return
	}

	minV, maxV := app.blocks[0].Value, app.blocks[0].Value
	for _, b := range app.blocks {
		if b.Value < minV {
			minV = b.Value
		}
		if b.Value > maxV {
			maxV = b.Value
		}
	}

	size := float32(app.cfg.Blocks.BlockSize)
	for _, b := range app.blocks {
		c := colorramp.ColorAt(b.Value, minV, maxV, "thermal")
		pos := rl.Vector3{
			X: float32(b.X - app.offset.X),
			Y: float32(b.Y - app.offset.Y),
			Z: float32(b.Z - app.offset.Z),
		}
		rl.DrawCube(pos, size, size, size, rl.NewColor(
			uint8(c.R*255), uint8(c.G*255), uint8(c.B*255), 255))
	}
}

func (app *App) drawHUD() {
	rl.DrawText("MineVis", 10, 10, 20, rl.White)

	section := "all blocks"
	if app.filter.Axis != blockmodel.AxisNone {
		section = fmt.Sprintf("section %s=%d of %d", app.filter.Axis, app.filter.Level, app.levels.On(app.filter.Axis))
	}
	rl.DrawText(fmt.Sprintf("%d blocks (%s)", len(app.blocks), section), 10, 35, 16, rl.LightGray)

	if app.surfaceMesh != nil {
		rl.DrawText(fmt.Sprintf("surface: %d faces", app.surfaceMesh.FaceCount), 10, 55, 16, rl.LightGray)
	}

	rl.DrawText("drag: orbit | wheel: zoom | X/Y/Z: section axis | up/down: level | A: all", 10, 80, 14, rl.Gray)
	rl.DrawFPS(10, 105)
}

// toRaylibMesh uploads the renderable buffers into a raylib mesh,
// shifting positions by the centering offset.
func toRaylibMesh(src *surface.RenderableMesh, offset geometry.Vector3) rl.Mesh {
	vertexCount := src.FaceCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(src.FaceCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	for i := 0; i < vertexCount; i++ {
		vertices[i*3+0] = src.Positions[i*3+0] - float32(offset.X)
		vertices[i*3+1] = src.Positions[i*3+1] - float32(offset.Y)
		vertices[i*3+2] = src.Positions[i*3+2] - float32(offset.Z)

		normals[i*3+0] = src.Normals[i*3+0]
		normals[i*3+1] = src.Normals[i*3+1]
		normals[i*3+2] = src.Normals[i*3+2]

		colors[i*4+0] = uint8(src.Colors[i*3+0] * 255)
		colors[i*4+1] = uint8(src.Colors[i*3+1] * 255)
		colors[i*4+2] = uint8(src.Colors[i*3+2] * 255)
		colors[i*4+3] = 255
	}

	if vertexCount > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	rl.UploadMesh(&mesh, false)
	return mesh
}
