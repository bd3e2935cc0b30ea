package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/herobrine/internal/ai"
	"github.com/udisondev/herobrine/internal/config"
	"github.com/udisondev/herobrine/internal/db"
	"github.com/udisondev/herobrine/internal/game/combat"
	"github.com/udisondev/herobrine/internal/game/conversion"
	"github.com/udisondev/herobrine/internal/game/storm"
	"github.com/udisondev/herobrine/internal/game/structure"
	"github.com/udisondev/herobrine/internal/model"
	"github.com/udisondev/herobrine/internal/observer"
	"github.com/udisondev/herobrine/internal/snapshot"
	"github.com/udisondev/herobrine/internal/spawn"
	"github.com/udisondev/herobrine/internal/world"
)

const (
	ConfigPath = "config/herobrine.yaml"

	// saveEveryTicks is the database save cadence (one minute at 20 ticks/s).
	saveEveryTicks = 1200
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("HEROBRINE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("herobrine server starting",
		"log_level", cfg.LogLevel,
		"seed", cfg.Seed,
		"difficulty", cfg.Difficulty)

	// World
	w := world.New(world.WithDifficulty(model.ParseDifficulty(cfg.Difficulty)))
	seed := uint64(cfg.Seed)

	// Database
	var persistence *db.WorldPersistenceService
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		persistence = db.NewWorldPersistenceService(database.Pool(),
			db.NewFlagRepository(database.Pool()),
			db.NewActorStateRepository(database.Pool()))
	}

	// Terrain and statues
	gate := structure.NewGate(cfg.Rules)
	structRng := rand.New(rand.NewPCG(seed, 0x5747))
	placed := generateTerrain(w, world.NewGenerator(cfg.Seed), gate, structRng, cfg.ViewRadius)
	slog.Info("terrain generated", "chunks", w.ChunkCount(), "statues", placed)

	// Managers
	aiMgr := ai.NewTickManager(cfg.TickInterval)
	conversions := conversion.NewRegistry(w)
	spawnMgr := spawn.NewManager(w, aiMgr, cfg.Rules, seed)
	spawnMgr.SetConversionRegistry(conversions)

	combatMgr := combat.NewCombatManager(w, rand.New(rand.NewPCG(seed, 0xC0B)))
	combatMgr.SetConversionRegistry(conversions)
	combatMgr.SetDeathFunc(func(a *model.Actor) {
		spawnMgr.Despawn(a.ID())
	})

	// Restore persisted state
	if persistence != nil {
		state, err := persistence.LoadWorld(ctx)
		if err != nil {
			return fmt.Errorf("loading world state: %w", err)
		}
		w.SetWorldBossEnabled(state.WorldBossEnabled)
		if _, err := spawnMgr.RestoreRecords(state.Actors); err != nil {
			slog.Warn("some actors were not restored", "error", err)
		}
	}
	slog.Info("world ready",
		"worldBoss", w.WorldBossEnabled(),
		"actors", w.ActorCount(),
		"controllers", aiMgr.Count())

	// Observer cue stream
	var hub *observer.Hub
	if cfg.Observer.Enabled {
		hub = observer.NewHub()
		w.SetCueSink(hub)
	}

	// Snapshots
	var index *snapshot.Index
	if cfg.Snapshot.EveryTicks > 0 {
		index, err = snapshot.OpenIndex(cfg.Snapshot.IndexPath)
		if err != nil {
			return fmt.Errorf("opening snapshot index: %w", err)
		}
		defer index.Close()
	}
	capture := func() snapshot.SnapshotV1 {
		return snapshot.SnapshotV1{
			Seed:             cfg.Seed,
			Difficulty:       w.Difficulty().String(),
			Weather:          w.Weather().String(),
			WorldBossEnabled: w.WorldBossEnabled(),
			Actors:           spawnMgr.Capture(),
			Structures:       w.Structures(),
		}
	}
	snapWriter := snapshot.NewWriter(cfg.Snapshot.Dir, cfg.Snapshot.EveryTicks, index, capture)

	// Tick hooks, in order
	natural := spawn.NewNaturalSpawner(spawnMgr, rand.New(rand.NewPCG(seed, 0x5A17)),
		cfg.Rules.SpawnEveryTicks, cfg.Rules.SpawnAttempts)
	weather := storm.NewDriver(w, conversions, combatMgr, rand.New(rand.NewPCG(seed, 0x5707)))
	saves := make(chan db.WorldState, 1)

	aiMgr.OnTick(func(uint64) { w.AdvanceTick() })
	aiMgr.OnTick(func(uint64) { w.TickEffects() })
	aiMgr.OnTick(weather.OnTick)
	aiMgr.OnTick(func(uint64) { conversions.Sweep() })
	aiMgr.OnTick(natural.OnTick)
	aiMgr.OnTick(snapWriter.OnTick)
	if persistence != nil {
		aiMgr.OnTick(func(tick uint64) {
			if tick%saveEveryTicks != 0 {
				return
			}
			state := db.WorldState{WorldBossEnabled: w.WorldBossEnabled(), Actors: spawnMgr.Capture()}
			select {
			case saves <- state:
			default:
				slog.Warn("previous world save still running, skipping", "tick", tick)
			}
		})
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting tick loop", "interval", cfg.TickInterval)
		if err := aiMgr.Start(gctx); err != nil && gctx.Err() == nil {
			return fmt.Errorf("tick loop: %w", err)
		}
		return nil
	})

	if persistence != nil {
		g.Go(func() error {
			slog.Info("starting world save loop", "everyTicks", saveEveryTicks)
			for {
				select {
				case <-gctx.Done():
					return nil
				case state := <-saves:
					saveCtx, cancel := context.WithTimeout(gctx, 30*time.Second)
					if err := persistence.SaveWorld(saveCtx, state); err != nil {
						slog.Error("world save failed", "error", err)
					}
					cancel()
				}
			}
		})
	}

	if hub != nil {
		g.Go(func() error {
			if err := hub.Serve(gctx, cfg.Observer.Addr()); err != nil {
				return fmt.Errorf("observer: %w", err)
			}
			return nil
		})
	}

	slog.Info("all services started, waiting for shutdown signal")

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	// Tick loop has stopped; capture is safe from this goroutine.
	if persistence != nil {
		saveCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		state := db.WorldState{WorldBossEnabled: w.WorldBossEnabled(), Actors: spawnMgr.Capture()}
		if err := persistence.SaveWorld(saveCtx, state); err != nil {
			return fmt.Errorf("final world save: %w", err)
		}
	}
	if cfg.Snapshot.EveryTicks > 0 {
		if _, err := snapWriter.Save(context.Background(), aiMgr.CurrentTick()); err != nil {
			slog.Error("final snapshot failed", "error", err)
		}
	}

	slog.Info("herobrine server stopped")
	return nil
}

// chunkSource produces the terrain of one chunk.
type chunkSource interface {
	Generate(pos world.ChunkPos) *world.Chunk
}

// generateTerrain loads every chunk within radius of the origin, then runs the
// statue gate once per chunk. Returns the number of statues placed.
func generateTerrain(w *world.World, src chunkSource, gate *structure.Gate, rng model.Rand, radius int) int {
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			w.LoadChunk(src.Generate(world.ChunkPos{X: int32(cx), Z: int32(cz)}))
		}
	}

	placed := 0
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			res := gate.Generate(rng, int32(cx), int32(cz), w, w)
			placed += len(res.Placed)
		}
	}
	return placed
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
