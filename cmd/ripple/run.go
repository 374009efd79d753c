package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-ripple-toggle/internal/config"
	"go-ripple-toggle/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runCmd() *cobra.Command {
	opts := config.DefaultOptions()
	var pprofAddr string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the toggle window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			if pprofAddr != "" {
				go func() {
					log.Println(http.ListenAndServe(pprofAddr, nil))
				}()
			}

			var logger *log.Logger
			if opts.Verbose {
				logger = log.New(os.Stderr, "ripple: ", log.LstdFlags|log.Lmicroseconds)
			}

			sm := state.NewStateMachine()
			sm.SetState(state.NewToggleState(opts, logger))
			defer sm.Close()

			app := &AppGame{
				stateMachine:   sm,
				lastUpdateTime: time.Now(),
			}
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			ebiten.SetWindowTitle("Ripple Toggle")
			if err := ebiten.RunGame(app); err != nil {
				return fmt.Errorf("run game: %w", err)
			}
			return nil
		},
	}

	bindRippleFlags(cmd, &opts)
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log ripple lifecycle to stderr")
	cmd.Flags().StringVar(&pprofAddr, "pprof", "", "Serve net/http/pprof on this address, e.g. localhost:6060")
	return cmd
}
