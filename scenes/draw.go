package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/notmarioland/config"
	"github.com/automoto/notmarioland/game"
	"github.com/automoto/notmarioland/gamemath"
	"github.com/automoto/notmarioland/level"
	"github.com/automoto/notmarioland/tiles"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const tilePx = gamemath.TilePixels

var keyColors = [tiles.NumColors]color.RGBA{
	colornames.Red,
	colornames.Yellow,
	colornames.Lime,
	colornames.Cyan,
	colornames.Royalblue,
	colornames.Magenta,
}

// tileColor returns the fill for a tile kind. ok is false for tiles that
// are not drawn.
func tileColor(t tiles.Tile) (c color.RGBA, ok bool) {
	if col, isKey := t.KeyColor(); isKey {
		return keyColors[col], true
	}
	if col, isLock := t.LockColor(); isLock {
		c = keyColors[col]
		c.A = 160
		return c, true
	}
	if _, _, isLauncher := t.Launcher(); isLauncher {
		return colornames.Darkorange, true
	}
	switch t.Kind {
	case tiles.Wall:
		return colornames.Slategray, true
	case tiles.Wall2:
		return colornames.Lightslategray, true
	case tiles.Wall3:
		return colornames.Steelblue, true
	case tiles.Wall4:
		return colornames.Dimgray, true
	case tiles.BackWall, tiles.BackWall2, tiles.BackWall3, tiles.BackWall4:
		return colornames.Darkslategray, true
	case tiles.Door:
		return colornames.Saddlebrown, true
	case tiles.SecretDoor:
		return colornames.Rebeccapurple, true
	case tiles.Spikes:
		return colornames.Crimson, true
	case tiles.OneWayUp, tiles.OneWayDown, tiles.OneWayLeft, tiles.OneWayRight:
		return colornames.Lightgray, true
	case tiles.Secret:
		return colornames.Gold, true
	case tiles.Goal:
		return colornames.Limegreen, true
	case tiles.JumpArrow:
		return colornames.Aqua, true
	case tiles.JumpArrowOutline:
		return colornames.Teal, true
	case tiles.Binocular:
		return colornames.White, true
	case tiles.IceCube:
		return colornames.Lightblue, true
	case tiles.Vanish:
		return colornames.Violet, true
	}
	return c, false
}

func objectColor(k level.ObjectKind) color.RGBA {
	switch k {
	case level.PlayerObject:
		return colornames.Dodgerblue
	case level.SawObject:
		return colornames.Silver
	case level.LauncherObject:
		return colornames.Orange
	}
	return colornames.Teal
}

// camera returns the screen offset in pixels for world pixel coordinates.
// Levels smaller than the screen are centred; larger ones follow the
// player, or show the level centre while the player looks through a
// binocular.
func camera(f game.Frame, screenW, screenH int) (float32, float32) {
	levelW := f.Tiles.Width() * tilePx
	levelH := f.Tiles.Height() * tilePx

	focusX, focusY := levelW/2, levelH/2
	if !f.Binocular {
		for _, o := range f.Objects {
			if o.Kind == level.PlayerObject {
				cx, cy := o.Box.Center()
				focusX, focusY = gamemath.ToPixels(cx), gamemath.ToPixels(cy)
				break
			}
		}
	}
	return float32(follow(focusX, levelW, screenW)), float32(follow(focusY, levelH, screenH))
}

func follow(focus, size, screen int) int {
	if size <= screen {
		return (screen - size) / 2
	}
	off := screen/2 - focus
	return max(min(off, 0), screen-size)
}

// drawGrid fills every drawable tile of g with its origin at ox, oy.
func drawGrid(screen *ebiten.Image, g tiles.Grid, ox, oy float32, dim bool) {
	g.Each(func(layer, row, col int, t tiles.Tile) {
		c, ok := tileColor(t)
		if !ok {
			return
		}
		if dim {
			c.A /= 3
		}
		x := ox + float32(col*tilePx)
		y := oy + float32(row*tilePx)
		switch t.Kind {
		case tiles.OneWayUp:
			vector.FillRect(screen, x, y, tilePx, 2, c, false)
		case tiles.OneWayDown:
			vector.FillRect(screen, x, y+tilePx-2, tilePx, 2, c, false)
		case tiles.OneWayLeft:
			vector.FillRect(screen, x, y, 2, tilePx, c, false)
		case tiles.OneWayRight:
			vector.FillRect(screen, x+tilePx-2, y, 2, tilePx, c, false)
		default:
			vector.FillRect(screen, x, y, tilePx, tilePx, c, false)
		}
	})
}

func drawBox(screen *ebiten.Image, box gamemath.AABB, ox, oy float32, c color.Color, outline bool) {
	x := ox + float32(gamemath.ToPixels(box.X))
	y := oy + float32(gamemath.ToPixels(box.Y))
	w := float32(gamemath.ToPixels(box.W))
	h := float32(gamemath.ToPixels(box.H))
	if !outline {
		vector.FillRect(screen, x, y, w, h, c, false)
		return
	}
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

// DrawFrame renders a frame with flat colours: the theme background,
// neighbouring levels, the current level, its objects, the HUD and the
// transition overlay.
func DrawFrame(screen *ebiten.Image, f game.Frame, showBoxes bool) {
	screen.Fill(themeBackground(f))
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ox, oy := camera(f, w, h)

	for _, n := range f.Neighbours {
		nx := ox + float32(gamemath.ToPixels(n.X))
		ny := oy + float32(gamemath.ToPixels(n.Y))
		drawGrid(screen, n.Tiles, nx, ny, true)
	}
	drawGrid(screen, f.Tiles, ox, oy, false)

	for _, o := range f.Objects {
		if o.Kind == level.PlayerObject && f.Invisible {
			continue
		}
		if o.Kind == level.ArrowRespawnObject && !showBoxes {
			continue
		}
		drawBox(screen, o.Box, ox, oy, objectColor(o.Kind), false)
		if showBoxes {
			drawBox(screen, o.Box, ox, oy, colornames.Cyan, true)
		}
	}

	drawTransition(screen, f.Transition, w, h)
	drawHUD(screen, f)
}

// themeBackground picks a flat colour per theme. The default theme is
// black.
func themeBackground(f game.Frame) color.Color {
	if f.Theme == nil {
		return color.Black
	}
	palette := []color.RGBA{
		colornames.Midnightblue,
		colornames.Darkolivegreen,
		colornames.Indigo,
		colornames.Maroon,
	}
	sum := 0
	for _, r := range f.Theme.Name {
		sum += int(r)
	}
	return palette[sum%len(palette)]
}

func drawTransition(screen *ebiten.Image, t game.Transition, w, h int) {
	if !t.Active() {
		return
	}
	c := color.RGBA{}
	alpha := t.Progress
	switch t.Kind {
	case game.OpenTransition:
		alpha = 1 - t.Progress
	case game.DeathTransition:
		c = colornames.Darkred
	case game.SecretDoorTransition:
		c = colornames.Indigo
	case game.WinTransition:
		c = colornames.White
		alpha *= 0.6
	}
	c.A = uint8(alpha * 255)
	vector.FillRect(screen, 0, 0, float32(w), float32(h), premultiply(c), false)
}

func premultiply(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(c.A) / 255),
		G: uint8(uint16(c.G) * uint16(c.A) / 255),
		B: uint8(uint16(c.B) * uint16(c.A) / 255),
		A: c.A,
	}
}

func drawHUD(screen *ebiten.Image, f game.Frame) {
	hud := f.HUD
	keys := ""
	for c, n := range hud.Keys {
		if n > 0 {
			keys += fmt.Sprintf(" %s:%d", tiles.Color(c), n)
		}
	}
	secs := hud.Timer / max(cfg.Screen.TickRate, 1)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %02d:%02d  deaths %d  secrets %d/%d  jumps %d%s",
		f.Name, secs/60, secs%60, hud.Deaths, hud.Secrets, hud.SecretTotal, hud.Jumps, keys), 4, 4)

	switch f.Mode {
	case game.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", 4, 20)
	case game.Won:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("YOU WIN  %d deaths", hud.Deaths), 4, 20)
	}
}
