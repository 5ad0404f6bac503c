// Command range-sandbox drives a firing range from the keyboard and draws it
// top-down in the terminal, with cues played through the sound card.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/skyshot/armory/internal/config"
	"github.com/skyshot/armory/internal/data"
	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/feedback/cue"
	"github.com/skyshot/armory/internal/firingrange"
	"github.com/skyshot/armory/internal/input"
	"github.com/skyshot/armory/internal/scripting"
)

const (
	viewWidth   = 12.0 // metres across
	viewDepth   = 40.0 // metres downrange
	handStep    = 0.05
	triggerHold = 120 * time.Millisecond
	logFile     = "range-sandbox.log"
)

var (
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTarget     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTargetHit  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleWeapon     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLane       = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

type sandbox struct {
	screen        tcell.Screen
	width, height int

	rng      *firingrange.Range
	hand     feedback.Hand
	wing     bool
	release  time.Time // when a tapped trigger lets go
	audio    bool
	lastNote string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := "config/armory.toml"
	if p := os.Getenv("ARMORY_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// the keyboard replaces the scripted run
	cfg.Range.Script = nil

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	engine, err := scripting.NewEngine(cfg.Scripting.Dir, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer engine.Close()

	armory, err := data.Load(cfg.Data, engine, log)
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}

	var fb feedback.Set
	var bank *cue.Bank
	if cfg.Audio.Enabled {
		bank = cue.NewBank(cfg.Audio.SampleRate, cue.DefaultSpecs(), log)
		fb.Audio = bank
	}

	rng, err := firingrange.New(firingrange.Options{Config: cfg, Armory: armory, Feedback: fb, Log: log})
	if err != nil {
		return fmt.Errorf("range: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	s := &sandbox{screen: screen, rng: rng, hand: rng.Primary.Hand()}
	s.width, s.height = screen.Size()

	if bank != nil {
		rate := beep.SampleRate(cfg.Audio.SampleRate)
		if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
			// Non-fatal, the range runs silent
			log.Warn("speaker init failed", zap.Error(err))
		} else {
			speaker.Play(bank.Streamer())
			s.audio = true
			defer speaker.Close()
		}
	}

	s.loop(cfg.Simulation.FrameRate)
	return nil
}

func (s *sandbox) loop(frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !s.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			if !s.release.IsZero() && now.After(s.release) {
				s.push(input.Trigger, 0, false)
				s.release = time.Time{}
			}
			s.step(now.Sub(last))
			last = now
			s.draw()
		}
	}
}

// step advances the range. The speaker pulls from the cue mixer on its own
// goroutine, so the simulation holds its lock while it can add cues.
func (s *sandbox) step(d time.Duration) {
	if s.audio {
		speaker.Lock()
		defer speaker.Unlock()
	}
	s.rng.Advance(d)
}

func (s *sandbox) push(name string, value float64, pressed bool) {
	s.rng.Queue.Push(input.Action{Hand: s.hand, Name: name, Value: value, Pressed: pressed})
}

func (s *sandbox) moveHand(delta mgl64.Vec3) {
	p := s.rng.Player.HandPose(s.hand)
	p.Pos = p.Pos.Add(delta)
	s.rng.Player.SetHandPose(s.hand, p)
}

func (s *sandbox) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.width, s.height = s.screen.Size()
		s.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			s.moveHand(mgl64.Vec3{-handStep, 0, 0})
		case tcell.KeyRight:
			s.moveHand(mgl64.Vec3{handStep, 0, 0})
		case tcell.KeyUp:
			s.moveHand(mgl64.Vec3{0, 0, handStep})
		case tcell.KeyDown:
			s.moveHand(mgl64.Vec3{0, 0, -handStep})
		case tcell.KeyRune:
			return s.handleRune(ev.Rune())
		}
	}
	return true
}

func (s *sandbox) handleRune(r rune) bool {
	w := s.rng.Primary
	switch r {
	case 'q':
		return false
	case ' ':
		s.push(input.Trigger, 1, true)
		s.release = time.Now().Add(triggerHold)
	case 'e':
		s.push(input.Eject, 1, true)
		s.lastNote = "eject"
	case 'r':
		w.FullyLoadDefault()
		s.lastNote = fmt.Sprintf("reloaded %d", w.LoadedCount())
	case 'c':
		w.CloseBreach()
		s.lastNote = "breach closed"
	case 'w':
		s.wing = !s.wing
		v := 0.0
		if s.wing {
			v = 1
		}
		s.push(input.Wing, v, false)
	}
	return true
}

// project maps a range position to a screen cell, downrange at the top.
func (s *sandbox) project(p mgl64.Vec3) (int, int, bool) {
	rows := s.height - 2
	if rows <= 0 || s.width <= 0 {
		return 0, 0, false
	}
	x := int(math.Round((p.X()/viewWidth + 0.5) * float64(s.width-1)))
	y := rows - 1 - int(math.Round(p.Z()/viewDepth*float64(rows-1)))
	if x < 0 || x >= s.width || y < 0 || y >= rows {
		return 0, 0, false
	}
	return x, y, true
}

func (s *sandbox) put(p mgl64.Vec3, r rune, style tcell.Style) {
	if x, y, ok := s.project(p); ok {
		s.screen.SetContent(x, y, r, nil, style)
	}
}

func (s *sandbox) text(x, y int, str string, style tcell.Style) {
	for i, r := range str {
		if x+i >= s.width {
			return
		}
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *sandbox) draw() {
	s.screen.Clear()

	for z := 5.0; z < viewDepth; z += 5 {
		s.put(mgl64.Vec3{-viewWidth / 2, 0, z}, '┄', styleLane)
	}
	for _, t := range s.rng.Targets {
		style := styleTarget
		if t.Hits() > 0 {
			style = styleTargetHit
		}
		s.put(t.Center, 'O', style)
	}
	for _, p := range s.rng.Sim.Live() {
		s.put(p.Pos, '•', styleProjectile)
	}
	w := s.rng.Primary
	s.put(w.Pose().Pos, '╫', styleWeapon)
	if off := s.rng.Offhand; off != nil {
		s.put(off.Pose().Pos, '†', styleWeapon)
	}

	st := s.rng.Stats()
	breach := "closed"
	if w.BreachOpen() {
		breach = "open"
	}
	s.text(0, s.height-2, fmt.Sprintf(" %s  ammo %d/%d  breach %s  shots %d  hits %d  wing %v  %s",
		w.Name(), w.LoadedCount(), w.Capacity(), breach, st.Shots, st.Hits, s.wing, s.lastNote), styleHUD)
	s.text(0, s.height-1, " space fire  e eject  r reload  c close  w wing  arrows move  q quit", styleLane)

	s.screen.Show()
}

// newLogger writes to a file; the terminal belongs to the screen.
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Format != "json" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{logFile}
	zapCfg.ErrorOutputPaths = []string{logFile}

	return zapCfg.Build()
}
