package game

import (
	"log"

	"simplequest/internal/config"
	"simplequest/internal/shop"

	"github.com/hajimehoshi/ebiten/v2"
)

// ShopGame is the ebiten host for a shop session.
type ShopGame struct {
	config   *config.Config
	session  *shop.Session
	input    *InputHandler
	renderer *Renderer
}

func NewShopGame(cfg *config.Config, session *shop.Session) *ShopGame {
	return &ShopGame{
		config:   cfg,
		session:  session,
		input:    NewInputHandler(),
		renderer: NewRenderer(cfg),
	}
}

// Update delivers this tick's input to the menu stack. A configuration error
// ends the game; leaving town saves the party and terminates cleanly.
func (g *ShopGame) Update() error {
	for _, ev := range g.input.Events() {
		if err := g.session.Handle(ev); err != nil {
			return err
		}
		if g.session.Done() {
			if err := g.session.Save(); err != nil {
				log.Printf("Warning: Failed to save party: %v", err)
			}
			return ebiten.Termination
		}
	}
	return nil
}

func (g *ShopGame) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session.Screen())
}

func (g *ShopGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}
