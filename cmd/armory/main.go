package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/skyshot/armory/internal/config"
	"github.com/skyshot/armory/internal/data"
	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/feedback/cue"
	"github.com/skyshot/armory/internal/firingrange"
	"github.com/skyshot/armory/internal/persist"
	"github.com/skyshot/armory/internal/scripting"
	"github.com/skyshot/armory/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(loadout string, seed int64) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              armory  v0.1.0               \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m      headless firing-range simulation     \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mloadout:\033[0m %s \033[90m(seed: %d)\033[0m\n\n", loadout, seed)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, value any) {
	numStr := fmt.Sprint(value)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Range run ─────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/armory.toml"
	if p := os.Getenv("ARMORY_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Range.Loadout, cfg.Simulation.Seed)

	// 3. Scripts and data tables
	printSection("data")

	engine, err := scripting.NewEngine(cfg.Scripting.Dir, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer engine.Close()
	printOK("lua engine ready")

	armory, err := data.Load(cfg.Data, engine, log)
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	printStat("rounds", armory.Rounds.Count())
	printStat("weapons", armory.Weapons.Count())
	printStat("modifiers", armory.Modifiers.Count())
	fmt.Println()

	// 4. Optional shot journal
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		journal *persist.JournalRepo
		writer  system.JournalWriter
		runID   uuid.UUID
	)
	if cfg.Database.Enabled {
		printSection("journal")
		db, err := persist.NewDB(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		printOK("PostgreSQL connected")

		version, err := persist.RunMigrations(ctx, db.Pool)
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		printStat("schema version", version)

		journal = persist.NewJournalRepo(db)
		if runID, err = journal.StartRun(ctx, cfg.Simulation.Seed, cfg.Range.Loadout); err != nil {
			return err
		}
		writer = journal
		printStat("run", runID.String()[:8])
		fmt.Println()
	}

	// 5. Feedback
	var fb feedback.Set
	var bank *cue.Bank
	if cfg.Audio.Enabled {
		bank = cue.NewBank(cfg.Audio.SampleRate, cue.DefaultSpecs(), log)
		fb.Audio = bank
	}

	// 6. Assemble the range
	printSection("range")
	rng, err := firingrange.New(firingrange.Options{
		Config:   cfg,
		Armory:   armory,
		Feedback: fb,
		Journal:  writer,
		Run:      runID,
		Log:      log,
	})
	if err != nil {
		return fmt.Errorf("range: %w", err)
	}
	printStat("targets", len(rng.Targets))
	printStat("chambers", rng.Primary.Capacity())
	printStat("script steps", len(cfg.Range.Script))
	printReady(fmt.Sprintf("tick %s, frame %s", cfg.Simulation.TickRate, cfg.Simulation.FrameRate))
	fmt.Println()

	// 7. Frame loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Simulation.FrameRate)
	defer ticker.Stop()

	last := time.Now()
	for running := true; running; {
		select {
		case now := <-ticker.C:
			rng.Advance(now.Sub(last))
			last = now
			if bank != nil {
				if peak := bank.Render(cfg.Simulation.FrameRate); peak > 0 {
					log.Debug("audio", zap.Float64("peak", peak))
				}
			}
			if d := cfg.Simulation.Duration; d > 0 && rng.Elapsed() >= d {
				running = false
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			running = false
		}
	}
	rng.Close()

	// 8. Report
	st := rng.Stats()
	printSection("results")
	printStat("ticks", st.Ticks)
	printStat("shots", st.Shots)
	printStat("hits", st.Hits)
	printStat("burnouts", st.Burnouts)
	printStat("shells expired", st.Shells)
	for _, t := range rng.Targets {
		printStat("target "+t.Name(), fmt.Sprintf("%d hits / %.1f dmg", t.Hits(), t.Damage()))
	}
	if rng.Journal != nil {
		printStat("journal written", rng.Journal.Written())
		printStat("journal dropped", rng.Journal.Dropped())
		sumCtx, sumCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer sumCancel()
		if sum, err := journal.Summary(sumCtx, runID); err != nil {
			log.Warn("journal summary", zap.Error(err))
		} else {
			printStat("journaled shots", sum.Shots)
			printStat("journaled damage", fmt.Sprintf("%.1f", sum.Damage))
		}
	}
	fmt.Println()
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
