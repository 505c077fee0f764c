// seehuhn.de/go/paint - an interactive raster painting engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command paint opens a window and lets you draw on it.
//
// The left mouse button draws with the active color, the right button
// erases. Digit keys select palette colors, Backspace clears the
// canvas, Ctrl-Z undoes, Ctrl-R redoes, and "[" / "]" shrink or grow
// the draw radius (with Ctrl held: the erase radius).
//
// Configuration is read from paint/config.toml in the user's config
// directory; a file with the defaults is written on first run.
package main

import (
	"image"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/draw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	epaint "golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"seehuhn.de/go/paint"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	if cfg.Debug {
		h := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		slog.SetDefault(h)
		paint.SetLogger(h)
	}

	driver.Main(func(s screen.Screen) {
		run(s, cfg)
	})
}

func run(s screen.Screen, cfg *config) {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Title:  "paint",
		Width:  cfg.WindowWidth,
		Height: cfg.WindowHeight,
	})
	if err != nil {
		log.Fatalf("opening window: %v", err)
	}
	defer w.Release()

	sur := &surface{screen: s, win: w, marker: time.Now()}
	defer sur.release()

	eng := paint.New(paint.Config{
		Width:        cfg.WindowWidth,
		Height:       cfg.WindowHeight,
		Background:   cfg.background,
		Color:        cfg.palette[len(cfg.palette)-1],
		DrawRadius:   cfg.DrawRadius,
		EraseRadius:  cfg.EraseRadius,
		HistoryDepth: cfg.HistoryDepth,
		Presenter:    sur,
	})

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}

		case size.Event:
			sur.resize(e.Size())
			eng.Resize(e.WidthPx, e.HeightPx)

		case mouse.Event:
			x, y := int(e.X), int(e.Y)
			switch e.Direction {
			case mouse.DirPress:
				switch e.Button {
				case mouse.ButtonLeft:
					eng.PointerDown(x, y, paint.ButtonPrimary)
				case mouse.ButtonRight:
					eng.PointerDown(x, y, paint.ButtonSecondary)
				}
			case mouse.DirRelease:
				switch e.Button {
				case mouse.ButtonLeft:
					eng.PointerUp(paint.ButtonPrimary)
				case mouse.ButtonRight:
					eng.PointerUp(paint.ButtonSecondary)
				}
			case mouse.DirNone:
				eng.PointerMove(x, y)
			}

		case key.Event:
			if e.Direction != key.DirPress {
				break
			}
			handleKey(eng, cfg, e)

		case epaint.Event:
			sur.publish()

		case error:
			log.Print(e)
		}
	}
}

func handleKey(eng *paint.Engine, cfg *config, e key.Event) {
	ctrl := e.Modifiers&key.ModControl != 0

	// digit keys select palette colors
	if e.Code >= key.Code1 && e.Code <= key.Code0 {
		i := int(e.Code - key.Code1)
		if i < len(cfg.palette) {
			eng.SelectColor(cfg.palette[i])
		}
		return
	}

	switch e.Code {
	case key.CodeDeleteBackspace:
		eng.ClearCanvas()
	case key.CodeZ:
		if ctrl {
			eng.Undo()
		}
	case key.CodeR:
		if ctrl {
			eng.Redo()
		}
	case key.CodeLeftSquareBracket:
		eng.AdjustRadius(radiusTool(ctrl), -1)
	case key.CodeRightSquareBracket:
		eng.AdjustRadius(radiusTool(ctrl), +1)
	}
}

func radiusTool(ctrl bool) paint.Tool {
	if ctrl {
		return paint.ToolErase
	}
	return paint.ToolDraw
}

// surface adapts a shiny window to the engine's Presenter interface.
// Damage rectangles map directly onto rectangle-limited uploads.
type surface struct {
	screen screen.Screen
	win    screen.Window
	buf    screen.Buffer

	frames int
	marker time.Time
}

// Present implements paint.Presenter.
func (s *surface) Present(img *image.RGBA, dmg image.Rectangle) {
	if s.buf == nil {
		return
	}
	draw.Draw(s.buf.RGBA(), dmg, img, dmg.Min, draw.Src)
	s.win.Upload(dmg.Min, s.buf, dmg)
	s.win.Publish()
	s.countFrame()
}

// publish re-uploads the whole window buffer, for paint events where
// the window system lost our previous contents.
func (s *surface) publish() {
	if s.buf == nil {
		return
	}
	s.win.Upload(image.Point{}, s.buf, s.buf.Bounds())
	s.win.Publish()
	s.countFrame()
}

func (s *surface) resize(sz image.Point) {
	s.release()
	b, err := s.screen.NewBuffer(sz)
	if err != nil {
		log.Fatalf("allocating window buffer: %v", err)
	}
	s.buf = b
}

func (s *surface) release() {
	if s.buf != nil {
		s.buf.Release()
		s.buf = nil
	}
}

func (s *surface) countFrame() {
	s.frames++
	if now := time.Now(); now.Sub(s.marker) >= time.Second {
		slog.Debug("frame rate", "fps", s.frames)
		s.frames = 0
		s.marker = now
	}
}
