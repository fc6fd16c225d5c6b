package demo

import (
	"fmt"
	"image/color"

	"github.com/automoto/tethered/components"
	"github.com/automoto/tethered/config"
	"github.com/automoto/tethered/fonts"
	"github.com/automoto/tethered/physics"
	"github.com/automoto/tethered/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	probeColor = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	hitColor   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

func (s *Scene) drawLevel(e *ecs.ECS, screen *ebiten.Image) {
	off := s.camera.Offset()

	components.Geometry.Each(e.World, func(entry *donburi.Entry) {
		g := components.Geometry.Get(entry)
		c := config.Render.SolidColor
		if g.Anchorable {
			c = config.Render.AnchorableColor
		}

		x, y := g.X+off.X, g.Y+off.Y
		if g.SlopeType == "" {
			vector.FillRect(screen, float32(x), float32(y), float32(g.W), float32(g.H), c, false)
			if !g.Jumpable {
				// Slippery surfaces get a light top edge.
				vector.FillRect(screen, float32(x), float32(y), float32(g.W), 2, config.White, false)
			}
			return
		}

		// Ramps are drawn as thin columns under the diagonal.
		const column = 2.0
		for cx := 0.0; cx < g.W; cx += column {
			top := physics.SlopeSurfaceY(g.Object, g.X+cx+column/2)
			vector.FillRect(screen, float32(x+cx), float32(top+off.Y), column, float32(g.Y+g.H-top), c, false)
		}
	})
}

func (s *Scene) drawRope(_ *ecs.ECS, screen *ebiten.Image) {
	points := s.rope.Points()
	off := s.camera.Offset()
	for i := 1; i < len(points); i++ {
		a, b := points[i-1].Add(off), points[i].Add(off)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			config.Render.RopeWidth, config.Render.RopeColor, true)
	}
}

func (s *Scene) drawCharacters(_ *ecs.ECS, screen *ebiten.Image) {
	off := s.camera.Offset()

	for i := 0; i < 2; i++ {
		c := s.match.Character(i)
		state := s.match.State(i)
		pose := render.PoseFor(state.CurrentState, state.StateTimer, state.LandingTimer, state.LandingImpact)
		size := c.Body.Size()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		// Scale around the feet so squash keeps them on the ground.
		drawOp.GeoM.Translate(-0.5, -1)
		drawOp.GeoM.Scale(size.X*pose.ScaleX, size.Y*pose.ScaleY)
		drawOp.GeoM.Translate(0, size.Y/2)
		if c.Facing() < 0 {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Rotate(c.Rotation())
		pos := c.Position().Add(off)
		drawOp.GeoM.Translate(pos.X, pos.Y)

		clr := config.Render.CharacterColors[i]
		if c.IsAnchored() {
			clr = config.Render.AnchoredColor
		}
		drawOp.ColorScale.ScaleWithColor(clr)
		screen.DrawImage(s.pixel, drawOp)

		// Eye on the facing side.
		eye := c.Body.Up().Scale(size.Y * 0.25).Add(c.Body.Right().Scale(c.Facing() * size.X * 0.2))
		eyePos := pos.Add(eye)
		vector.FillRect(screen, float32(eyePos.X-1.5), float32(eyePos.Y-1.5), 3, 3, color.Black, false)
	}
}

func (s *Scene) drawProbes(_ *ecs.ECS, screen *ebiten.Image) {
	if !config.Debug.DrawProbes {
		return
	}
	off := s.camera.Offset()
	cfg := s.match.Config().Character

	for i := 0; i < 2; i++ {
		c := s.match.Character(i)
		size := c.Body.Size()
		center := c.Position().Add(off)
		reach := float32(size.Y/2 + cfg.GroundCheckDistance)

		for _, dx := range []float64{-size.X/2 + cfg.GroundCheckSidePadding, 0, size.X/2 - cfg.GroundCheckSidePadding} {
			x := float32(center.X + dx)
			vector.StrokeLine(screen, x, float32(center.Y), x, float32(center.Y)+reach, 1, probeColor, false)
		}

		if hit, ok := c.GroundHit(); ok {
			p := hit.Point.Add(off)
			n := p.Add(hit.Normal.Scale(8))
			vector.FillRect(screen, float32(p.X-2), float32(p.Y-2), 4, 4, hitColor, false)
			vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(n.X), float32(n.Y), 1, hitColor, false)
		}
	}
}

func (s *Scene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	text.Draw(screen, s.match.Level().Name, face, 8, 16, config.White)

	for i := 0; i < 2; i++ {
		c := s.match.Character(i)
		state := s.match.State(i)
		line := fmt.Sprintf("P%d %-9s jumps %d", i+1, state.CurrentState, state.Jumps)
		if c.SwingInverted() {
			line += " inverted"
		}
		text.Draw(screen, line, face, 8, 32+16*i, config.Render.CharacterColors[i])
	}

	rope := s.match.Tether()
	dist := s.match.Character(0).Position().Distance(s.match.Character(1).Position())
	status := fmt.Sprintf("rope %.0f / %.0f  t %.1fs", dist, rope.MaxLength(), s.match.Time())
	text.Draw(screen, status, face, 8, 68, config.White)

	if s.message != "" {
		text.Draw(screen, s.message, fonts.Debug.Get(), 8, config.C.Height-8, config.Yellow)
	}
}

func (s *Scene) drawFade(_ *ecs.ECS, screen *ebiten.Image) {
	alpha := s.fade.Alpha()
	if alpha <= 0 {
		return
	}
	a := uint8(alpha * 255)
	vector.FillRect(screen, 0, 0, float32(config.C.Width), float32(config.C.Height), color.RGBA{A: a}, false)
}
