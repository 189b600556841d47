// cmd/game/main.go
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
	"go-rail-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
	clock        *app.Clock
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.clock.Tick())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	mute := flag.Bool("mute", false, "Start without sound")
	flag.Parse()

	d, err := defs.LoadDefault()
	if err != nil {
		log.Fatal(err)
	}
	fonts, err := assets.LoadFonts(config.FontSize, config.TitleFontSize)
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(d, app.Options{EchoLog: true})

	if !*mute {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer sound.Cleanup()
		game.EventDispatcher.SubscribeAll(sound)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game, input.NewBindings(d.Keys), fonts))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Rail Defense")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, clock: app.NewClock()}); err != nil {
		log.Fatal(err)
	}
}
