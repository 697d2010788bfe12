// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/duality/internal/application/game"
	"github.com/younwookim/duality/internal/application/replay"
	"github.com/younwookim/duality/internal/application/scene"
	"github.com/younwookim/duality/internal/application/state"
	"github.com/younwookim/duality/internal/application/system"
	"github.com/younwookim/duality/internal/domain/entity"
	"github.com/younwookim/duality/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorSolid          = color.RGBA{80, 80, 100, 255}
	colorSpike          = color.RGBA{200, 50, 50, 255}
	colorGoal           = color.RGBA{255, 215, 0, 255}
	colorBGLight        = color.RGBA{220, 220, 235, 255}
	colorBGDark         = color.RGBA{26, 26, 46, 255}
	colorPlatformActive = color.RGBA{120, 140, 180, 255}
	colorPlatformGhost  = color.RGBA{120, 140, 180, 70}
	colorAbilityBlock   = color.RGBA{160, 100, 200, 255}
	colorKey            = color.RGBA{240, 200, 60, 255}
	colorDoor           = color.RGBA{140, 90, 50, 255}
	colorDoorOpen       = color.RGBA{140, 90, 50, 70}
)

// Playing is the main gameplay scene
type Playing struct {
	cfg     *config.PhysicsConfig
	sim     *game.Session
	input   *system.Input
	loop    *game.Loop
	state   state.GameState
	watcher *config.Watcher

	screenW  int
	screenH  int
	tileSize int

	lastFrame time.Time

	// Input recording and playback
	recorder       *Recorder
	recordFilename string
	replayer       *replay.Replayer
	replayDone     bool
}

// New creates a new Playing scene.
// If recordPath is not empty, gameplay is recorded to that file. A non-nil
// watcher delivers reloaded physics configs, applied between ticks.
func New(sim *game.Session, cfg *config.PhysicsConfig, watcher *config.Watcher, recordPath string) *Playing {
	p := &Playing{
		cfg:            cfg,
		sim:            sim,
		input:          system.NewInput(),
		loop:           game.NewLoop(cfg.Tick.Rate, cfg.Tick.MaxCatchUp),
		state:          state.StatePlaying,
		watcher:        watcher,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		tileSize:       cfg.Display.TileSize,
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = NewRecorder(sim.StageName())
		log.Printf("Recording enabled: %s", recordPath)
	}

	return p
}

// NewReplay creates a Playing scene that feeds its input from a recording
// instead of the keyboard.
func NewReplay(sim *game.Session, cfg *config.PhysicsConfig, replayer *replay.Replayer) *Playing {
	p := New(sim, cfg, nil, "")
	p.replayer = replayer
	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	now := time.Now()
	if p.lastFrame.IsZero() {
		p.lastFrame = now
	}
	dt := now.Sub(p.lastFrame).Seconds()
	p.lastFrame = now

	p.applyConfigUpdates()

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying(dt)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
			p.loop.Reset()
			p.lastFrame = time.Time{}
		}
	}

	return nil, nil // nil = stay on this scene
}

// applyConfigUpdates swaps in a reloaded physics config between ticks
func (p *Playing) applyConfigUpdates() {
	if p.watcher == nil {
		return
	}
	select {
	case cfg := <-p.watcher.Updates():
		if cfg.Tick.Rate != p.cfg.Tick.Rate || cfg.Tick.MaxCatchUp != p.cfg.Tick.MaxCatchUp {
			p.loop = game.NewLoop(cfg.Tick.Rate, cfg.Tick.MaxCatchUp)
		}
		p.cfg = cfg
		p.sim.SetConfig(cfg)
		log.Printf("Physics config reloaded")
	default:
	}
}

func (p *Playing) updatePlaying(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// F5: save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	// F1: cycle the active world's ability (development helper)
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		p.sim.CycleAbility()
	}

	p.loop.Advance(dt, func() {
		if p.replayer != nil {
			p.tickFromReplay()
			return
		}

		p.readKeyboard()
		p.input.Tick()

		if p.recorder != nil {
			p.recorder.RecordTick(p.input)
		}

		if err := p.sim.Tick(p.input); err != nil {
			log.Printf("Simulation error: %v", err)
		}
	})
}

func (p *Playing) tickFromReplay() {
	frame, ok := p.replayer.GetInput()
	if !ok {
		p.replayDone = true
		return
	}

	setButton(p.input, system.ButtonLeft, frame.Left)
	setButton(p.input, system.ButtonRight, frame.Right)
	setButton(p.input, system.ButtonUp, frame.Up)
	setButton(p.input, system.ButtonDown, frame.Down)
	setButton(p.input, system.ButtonJump, frame.Jump)
	setButton(p.input, system.ButtonAbility, frame.Ability)
	setButton(p.input, system.ButtonSwitch, frame.Switch)
	setButton(p.input, system.ButtonSwitchAndAbility, frame.SwitchAndAbility)
	p.input.Tick()

	if err := p.sim.Tick(p.input); err != nil {
		log.Printf("Simulation error: %v", err)
	}
}

// readKeyboard samples the keyboard into the logical button set
func (p *Playing) readKeyboard() {
	setButton(p.input, system.ButtonLeft,
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA))
	setButton(p.input, system.ButtonRight,
		ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD))
	setButton(p.input, system.ButtonUp,
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW))
	setButton(p.input, system.ButtonDown,
		ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS))
	setButton(p.input, system.ButtonJump, ebiten.IsKeyPressed(ebiten.KeySpace))
	setButton(p.input, system.ButtonAbility,
		ebiten.IsKeyPressed(ebiten.KeyK) || ebiten.IsKeyPressed(ebiten.KeyE))
	setButton(p.input, system.ButtonSwitch,
		ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyJ))
	setButton(p.input, system.ButtonSwitchAndAbility, ebiten.IsKeyPressed(ebiten.KeyQ))
}

func setButton(in *system.Input, t system.ButtonType, held bool) {
	if held {
		in.SetPressed(t)
	} else {
		in.SetReleased(t)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d ticks)", filename, p.recorder.TickCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	world := p.sim.World()
	if world == entity.WorldLight {
		screen.Fill(colorBGLight)
	} else {
		screen.Fill(colorBGDark)
	}

	camX, camY := p.cameraOffset()

	p.drawTiles(screen, camX, camY)
	p.drawObjects(screen, camX, camY, world)
	p.drawPlayer(screen, camX, camY, world)
	p.drawUI(screen, world)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
	if p.replayDone {
		ebitenutil.DebugPrintAt(screen, "REPLAY FINISHED", p.screenW/2-50, p.screenH/2)
	}
}

// cameraOffset centers the camera on the player, clamped to the stage
func (p *Playing) cameraOffset() (float64, float64) {
	player := p.sim.Player()
	tilemap := p.sim.Stage().Tilemap
	ts := float64(p.tileSize)

	camX := player.Position.X*ts - float64(p.screenW)/2
	camY := player.Position.Y*ts - float64(p.screenH)/2

	maxCamX := float64(tilemap.Width())*ts - float64(p.screenW)
	maxCamY := float64(tilemap.Height())*ts - float64(p.screenH)
	if camX > maxCamX {
		camX = maxCamX
	}
	if camY > maxCamY {
		camY = maxCamY
	}
	if camX < 0 {
		camX = 0
	}
	if camY < 0 {
		camY = 0
	}
	return camX, camY
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	tilemap := p.sim.Stage().Tilemap
	ts := float64(p.tileSize)

	startX := int(camX / ts)
	startY := int(camY / ts)
	endX := int((camX+float64(p.screenW))/ts) + 1
	endY := int((camY+float64(p.screenH))/ts) + 1

	for ty := startY; ty <= endY && ty < tilemap.Height(); ty++ {
		for tx := startX; tx <= endX && tx < tilemap.Width(); tx++ {
			if tx < 0 || ty < 0 {
				continue
			}
			tile := tilemap.GetTile(tx, ty)
			if tile == entity.TileAir || tile == entity.TileSpawnPoint {
				continue
			}

			x := float64(tx)*ts - camX
			y := float64(ty)*ts - camY

			switch {
			case tile == entity.TileSolid:
				ebitenutil.DrawRect(screen, x, y, ts, ts, colorSolid)
			case tile == entity.TileSpikeAllSides:
				ebitenutil.DrawRect(screen, x, y, ts, ts, colorSpike)
			case tile.IsLethal():
				p.drawFacingTile(screen, x, y, tile, colorSpike)
			case tile.IsGoal():
				p.drawFacingTile(screen, x, y, tile, colorGoal)
			}
		}
	}
}

// drawFacingTile draws a tile as a slab against the face it points away
// from, so spikes and goals read as attached to the adjacent surface.
func (p *Playing) drawFacingTile(screen *ebiten.Image, x, y float64, tile entity.Tile, c color.Color) {
	ts := float64(p.tileSize)
	thickness := ts * 0.4

	dir, ok := tile.Facing()
	if !ok {
		ebitenutil.DrawRect(screen, x, y, ts, ts, c)
		return
	}

	switch dir {
	case entity.DirUp:
		ebitenutil.DrawRect(screen, x, y+ts-thickness, ts, thickness, c)
	case entity.DirDown:
		ebitenutil.DrawRect(screen, x, y, ts, thickness, c)
	case entity.DirLeft:
		ebitenutil.DrawRect(screen, x+ts-thickness, y, thickness, ts, c)
	case entity.DirRight:
		ebitenutil.DrawRect(screen, x, y, thickness, ts, c)
	}
}

func (p *Playing) drawObjects(screen *ebiten.Image, camX, camY float64, world entity.WorldType) {
	ts := float64(p.tileSize)
	stage := p.sim.Stage()

	for _, pl := range stage.Platforms {
		b := pl.Bounds()
		c := colorPlatformActive
		if !pl.ActiveIn(world) {
			c = colorPlatformGhost
		}
		ebitenutil.DrawRect(screen, b.Min.X*ts-camX, b.Min.Y*ts-camY,
			(b.Max.X-b.Min.X)*ts, (b.Max.Y-b.Min.Y)*ts, c)
		for dir, spiky := range pl.Spiky {
			if spiky {
				p.drawPlatformSpikes(screen, b, entity.Direction(dir), camX, camY)
			}
		}
	}

	for _, ab := range stage.AbilityBlocks {
		b := ab.Bounds()
		ebitenutil.DrawRect(screen, b.Min.X*ts-camX, b.Min.Y*ts-camY,
			(b.Max.X-b.Min.X)*ts, (b.Max.Y-b.Min.Y)*ts, colorAbilityBlock)
	}

	for _, k := range stage.Keys {
		if k.Collected {
			continue
		}
		b := k.Bounds()
		ebitenutil.DrawRect(screen, b.Min.X*ts-camX, b.Min.Y*ts-camY,
			(b.Max.X-b.Min.X)*ts, (b.Max.Y-b.Min.Y)*ts, colorKey)
	}

	for _, d := range stage.Doors {
		b := d.Bounds()
		c := colorDoor
		if d.Open {
			c = colorDoorOpen
		}
		ebitenutil.DrawRect(screen, b.Min.X*ts-camX, b.Min.Y*ts-camY,
			(b.Max.X-b.Min.X)*ts, (b.Max.Y-b.Min.Y)*ts, c)
	}
}

func (p *Playing) drawPlatformSpikes(screen *ebiten.Image, b entity.Bounds, dir entity.Direction, camX, camY float64) {
	ts := float64(p.tileSize)
	thickness := ts * 0.25
	w := (b.Max.X - b.Min.X) * ts
	h := (b.Max.Y - b.Min.Y) * ts
	x := b.Min.X*ts - camX
	y := b.Min.Y*ts - camY

	switch dir {
	case entity.DirUp:
		ebitenutil.DrawRect(screen, x, y-thickness, w, thickness, colorSpike)
	case entity.DirDown:
		ebitenutil.DrawRect(screen, x, y+h, w, thickness, colorSpike)
	case entity.DirLeft:
		ebitenutil.DrawRect(screen, x-thickness, y, thickness, h, colorSpike)
	case entity.DirRight:
		ebitenutil.DrawRect(screen, x+w, y, thickness, h, colorSpike)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64, world entity.WorldType) {
	player := p.sim.Player()
	ts := float64(p.tileSize)
	b := player.Bounds()

	c := player.ActiveAbility(world).Color()
	ebitenutil.DrawRect(screen, b.Min.X*ts-camX, b.Min.Y*ts-camY,
		(b.Max.X-b.Min.X)*ts, (b.Max.Y-b.Min.Y)*ts, c)
}

func (p *Playing) drawUI(screen *ebiten.Image, world entity.WorldType) {
	player := p.sim.Player()
	info := fmt.Sprintf("%s | %s | %s | Move: arrows/WASD  Jump: space  Switch: shift  Ability: K\n"+
		"pos (%.2f, %.2f)  vel (%.3f, %.3f)  coyote %d  buffer %d",
		p.sim.StageName(), world, player.ActiveAbility(world),
		player.Position.X, player.Position.Y,
		player.Velocity.X, player.Velocity.Y,
		player.CoyoteTicks, player.JumpBufferTicks)
	ebitenutil.DebugPrint(screen, info)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.lastFrame = time.Time{}
	p.loop.Reset()
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
