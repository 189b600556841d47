// cmd/game_raylib/main.go
package main

import (
	"flag"
	"log"

	"go-rail-defense/internal/app"
	"go-rail-defense/internal/assets"
	"go-rail-defense/internal/audio"
	"go-rail-defense/internal/config"
	"go-rail-defense/internal/defs"
	"go-rail-defense/internal/input"
	"go-rail-defense/internal/rlview"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	// --- Флаги командной строки ---
	mute := flag.Bool("mute", false, "Start without sound")
	showFPS := flag.Bool("fps", false, "Draw the FPS counter")
	flag.Parse()

	// --- Загрузка определений ---
	d, err := defs.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}

	// --- Инициализация Raylib ---
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Rail Defense")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // Escape нужен экрану настроек

	// --- Загрузка шрифта ---
	var fontChars []rune
	for i := 32; i <= 127; i++ {
		fontChars = append(fontChars, rune(i))
	}
	fontChars = append(fontChars, '…', '×')
	font := rl.LoadFontFromMemory(".ttf", assets.RegularTTF(), 64, fontChars)
	defer rl.UnloadFont(font)

	// --- Инициализация игры ---
	game := app.NewGame(d, app.Options{EchoLog: true})
	if !*mute {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer sound.Cleanup()
		game.EventDispatcher.SubscribeAll(sound)
	}
	view := rlview.NewView(game, input.NewBindings(d.Keys), font)
	clock := app.NewClock()

	// --- Главный цикл игры ---
	for !rl.WindowShouldClose() {
		view.Update(clock.Tick())

		rl.BeginDrawing()
		view.Draw()
		if *showFPS {
			rl.DrawFPS(10, config.ScreenHeight-24)
		}
		rl.EndDrawing()
	}
}
