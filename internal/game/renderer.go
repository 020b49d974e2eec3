package game

import (
	"image/color"

	"simplequest/internal/config"
	"simplequest/internal/graphics"
	"simplequest/internal/menu"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	panelMargin  = 16
	panelPadding = 8
	panelGap     = 6
	panelIndent  = 20
)

const helpText = "Arrows: move  Enter: choose  Esc: back"

var (
	colorBackground = color.RGBA{18, 16, 24, 255}
	colorPanel      = color.RGBA{40, 34, 52, 230}
	colorBorder     = color.RGBA{150, 130, 90, 255}
	colorSelected   = color.RGBA{0, 100, 200, 128}
	colorText       = color.RGBA{235, 230, 215, 255}
	colorDisabled   = color.RGBA{110, 105, 100, 255}
	colorField      = color.RGBA{230, 200, 120, 255}
)

// Fields shown without their key.
var bareFields = map[string]bool{"name": true, "title": true, "item": true, "description": true}

type panelBox struct {
	panel      *menu.Panel
	x, y, w, h int
}

// Renderer draws the retained panel tree as stacked boxes.
type Renderer struct {
	width, height int
	rowHeight     int
	panelWidth    int
	icons         *graphics.IconManager
}

func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{
		width:      cfg.GetScreenWidth(),
		height:     cfg.GetScreenHeight(),
		rowHeight:  cfg.UI.RowHeight,
		panelWidth: cfg.UI.PanelWidth,
		icons:      graphics.NewIconManager(cfg.Assets.Icons),
	}
}

// layout places every visible panel that has something to show, top to
// bottom, indented by depth.
func (r *Renderer) layout(root *menu.Panel) []panelBox {
	var boxes []panelBox
	y := panelMargin
	root.Walk(func(p *menu.Panel, depth int) {
		rows := len(p.Fields()) + len(p.Elements)
		if rows == 0 {
			return
		}
		h := rows*r.rowHeight + 2*panelPadding
		boxes = append(boxes, panelBox{
			panel: p,
			x:     panelMargin + (depth-1)*panelIndent,
			y:     y,
			w:     r.panelWidth,
			h:     h,
		})
		y += h + panelGap
	})
	return boxes
}

func (r *Renderer) Draw(screen *ebiten.Image, root *menu.Panel) {
	screen.Fill(colorBackground)
	for _, b := range r.layout(root) {
		r.drawPanel(screen, b)
	}
	ebitenutil.DebugPrintAt(screen, helpText, panelMargin, r.height-panelMargin-8)
}

func (r *Renderer) drawPanel(screen *ebiten.Image, b panelBox) {
	x, y, w, h := float32(b.x), float32(b.y), float32(b.w), float32(b.h)
	vector.DrawFilledRect(screen, x, y, w, h, colorPanel, false)
	vector.StrokeRect(screen, x, y, w, h, 1, colorBorder, false)

	rowY := b.y + panelPadding
	for _, key := range b.panel.Fields() {
		drawText(screen, fieldText(key, b.panel.Field(key)), b.x+panelPadding, rowY, colorField)
		rowY += r.rowHeight
	}
	for i, el := range b.panel.Elements {
		clr := color.Color(colorText)
		if !el.Enabled() {
			clr = colorDisabled
		}
		if i == b.panel.Selection {
			vector.DrawFilledRect(screen, x+2, float32(rowY-3), w-4, float32(r.rowHeight), colorSelected, false)
		}
		labelX := b.x + panelPadding
		if icon := r.icons.GetIcon(el.Icon); icon != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(labelX), float64(rowY-1))
			if !el.Enabled() {
				op.ColorScale.ScaleAlpha(0.4)
			}
			screen.DrawImage(icon, op)
			labelX += graphics.IconSize + 4
		}
		drawText(screen, el.Label, labelX, rowY, clr)
		if el.Detail != "" {
			dw := font.MeasureString(basicfont.Face7x13, el.Detail).Round()
			drawText(screen, el.Detail, b.x+b.w-panelPadding-dw, rowY, clr)
		}
		rowY += r.rowHeight
	}
}

func fieldText(key, value string) string {
	if bareFields[key] {
		return value
	}
	return key + ": " + value
}

func drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	face := basicfont.Face7x13
	ebitext.Draw(screen, s, face, x, y+face.Ascent, clr)
}
