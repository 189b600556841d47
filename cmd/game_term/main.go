// cmd/game_term/main.go
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"go-rail-defense/internal/app"
	"go-rail-defense/internal/audio"
	"go-rail-defense/internal/defs"
	"go-rail-defense/internal/input"
	"go-rail-defense/internal/termview"

	"github.com/gdamore/tcell/v2"
)

func main() {
	mute := flag.Bool("mute", false, "Start without sound")
	logFile := flag.String("log", "", "Write the debug log to this file")
	flag.Parse()

	// Вывод log поверх tcell ломает экран: пишем в файл или никуда.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	d, err := defs.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	if *logFile == "" {
		log.SetOutput(io.Discard)
	}

	game := app.NewGame(d, app.Options{EchoLog: *logFile != ""})
	if !*mute {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("audio disabled: %v", err)
		}
		defer sound.Cleanup()
		game.EventDispatcher.SubscribeAll(sound)
	}

	termview.NewView(screen, game, input.NewBindings(d.Keys)).Run()
}
