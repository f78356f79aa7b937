package engine

import (
	"GopherFishing/internal/logger"

	"github.com/g3n/engine/core"
	"github.com/g3n/engine/gui"
	"github.com/g3n/engine/math32"
	"go.uber.org/zap"
)

const hudMargin = 12

// hud shows the catch counter and the sunset banner as GUI labels.
type hud struct {
	counter *gui.Label
	banner  *gui.Label
}

func newHUD(scene *core.Node, width int) *hud {
	h := &hud{
		counter: gui.NewLabel(""),
		banner:  gui.NewLabel(""),
	}
	h.counter.SetFontSize(20)
	h.counter.SetColor(math32.NewColor("white"))
	h.counter.SetPosition(hudMargin, hudMargin)

	h.banner.SetFontSize(32)
	h.banner.SetColor(math32.NewColor("white"))
	h.banner.SetVisible(false)

	scene.Add(h.counter)
	scene.Add(h.banner)
	h.layout(width)
	return h
}

func (h *hud) layout(width int) {
	x := (float32(width) - h.banner.Width()) / 2
	if x < hudMargin {
		x = hudMargin
	}
	h.banner.SetPosition(x, hudMargin*4)
}

// SetCatchText implements session.HUD.
func (e *Engine) SetCatchText(text string) {
	e.hud.counter.SetText(text)
}

// ShowBanner implements session.HUD.
func (e *Engine) ShowBanner(text string) {
	e.hud.banner.SetText(text)
	e.hud.banner.SetVisible(true)
	width, _ := e.app.GetSize()
	e.hud.layout(width)
	logger.Log.Info("Banner shown", zap.String("text", text))
}
