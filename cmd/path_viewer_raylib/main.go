package main

import (
	"flag"
	"fmt"
	"log"

	"curve-defense/internal/config"
	"curve-defense/internal/defs"
	"curve-defense/internal/system"
	"curve-defense/pkg/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const coordScale = 4.0 // мировая единица -> единица сцены

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

// toScene кладёт точку игровой плоскости на "пол" сцены (ось Y сцены смотрит вверх).
func toScene(p geom.Vec2, height float32) rl.Vector3 {
	return rl.NewVector3(float32(p.X*coordScale), height, float32(-p.Y*coordScale))
}

func toRL(c interface{ RGBA() (r, g, b, a uint32) }) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

type turretView struct {
	pos     geom.Vec2
	color   rl.Color
	outline []geom.Vec2
}

func main() {
	levelPath := flag.String("level", "", "path to a level JSON file (built-in level when empty)")
	flag.Parse()

	level := defs.DefaultLevel()
	if *levelPath != "" {
		loaded, err := defs.LoadLevel(*levelPath)
		if err != nil {
			log.Fatalf("load level: %v", err)
		}
		level = loaded
	}
	curve, err := level.Spawner.Curve()
	if err != nil {
		log.Fatalf("level path: %v", err)
	}
	path := curve.Sample(config.PathSamples)

	// Конусы считаются той же функцией, что и в игре
	turrets := make([]turretView, 0, len(level.Turrets))
	for _, def := range level.Turrets {
		pos := def.Position.Vec()
		turret := turretFromDef(def)
		turrets = append(turrets, turretView{
			pos:     pos,
			color:   toRL(config.TurretColors[string(def.Type)]),
			outline: system.TurretRangeOutline(turret, pos),
		})
	}

	// --- Инициализация ---
	const screenWidth = 1280
	const screenHeight = 720
	backgroundColor := toRL(config.BackgroundColor)

	rl.InitWindow(screenWidth, screenHeight, "Path Viewer | Q/E - Rotate, Mouse Wheel - Change Angle, Space - Pause")
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	isoPos := rl.NewVector3(60, 110, 110)
	topDownPos := rl.NewVector3(0, 190, 0.1)
	isoFovy := float32(55.0)
	topDownFovy := float32(40.0)
	cameraAngleT := float32(0.5)

	duration := level.Spawner.PathDuration
	elapsed := 0.0
	paused := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cameraAngleT += wheel * 0.05
			if cameraAngleT > 0.99 {
				cameraAngleT = 0.99
			} else if cameraAngleT < 0.0 {
				cameraAngleT = 0.0
			}
		}
		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = rl.NewVector3(0, 0, 0)
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		// Маркер бежит по пути так же, как враг: t = elapsed / duration
		if !paused {
			elapsed += float64(rl.GetFrameTime())
			if duration > 0 && elapsed > duration {
				elapsed = 0
			}
		}
		t := 1.0
		if duration > 0 {
			t = elapsed / duration
		}
		marker := curve.At(t)

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)

		rl.DrawGrid(40, coordScale)
		for i := 1; i < len(path); i++ {
			rl.DrawLine3D(toScene(path[i-1], 0.1), toScene(path[i], 0.1), toRL(config.PathColor))
		}
		for _, p := range curve.Points {
			rl.DrawSphere(toScene(p, 0.1), 0.6, toRL(config.ControlColor))
		}
		rl.DrawCylinderWires(toScene(level.Goal.Vec(), 0), float32(level.Session.GoalReachedDistance*coordScale),
			float32(level.Session.GoalReachedDistance*coordScale), 0.5, 24, toRL(config.GoalColor))

		for _, tv := range turrets {
			rl.DrawCylinder(toScene(tv.pos, 0), float32(config.TurretRadius*coordScale), float32(config.TurretRadius*coordScale), 2, 12, tv.color)
			for i := 1; i < len(tv.outline); i++ {
				rl.DrawLine3D(toScene(tv.outline[i-1], 0.2), toScene(tv.outline[i], 0.2), toRL(config.RangeColor))
			}
		}
		rl.DrawSphere(toScene(marker, float32(config.EnemyRadius*coordScale)), float32(config.EnemyRadius*coordScale), toRL(config.EnemyColor))
		rl.DrawSphere(toScene(level.Player.Start.Vec(), 1), float32(config.PlayerRadius*coordScale), toRL(config.PlayerColor))

		rl.EndMode3D()

		rl.DrawText(fmt.Sprintf("%s | %s path, t = %.2f", level.Name, curve.Degree, geom.Clamp01(t)), 10, 10, 20, rl.White)
		rl.DrawFPS(10, 40)
		rl.EndDrawing()
	}

	rl.CloseWindow()
}
