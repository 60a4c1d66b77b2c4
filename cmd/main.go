package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/royalcat/rastermap/config"
	"github.com/royalcat/rastermap/internal/stats"
	"github.com/royalcat/rastermap/internal/telemetry"
	"github.com/royalcat/rastermap/mapdb"
	"github.com/royalcat/rastermap/osmload"
	"github.com/royalcat/rastermap/server"

	_ "net/http/pprof"

	_ "github.com/KimMachineGun/automemlimit"
	"github.com/urfave/cli/v3"
	_ "go.uber.org/automaxprocs"
)

const appName = "rastermap"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	app := &cli.App{
		Name:        appName,
		Description: "Map viewer backend: tile rastering, road graph queries and place search",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "serve the map api",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "config",
						Aliases:   []string{"c"},
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:      "map",
						Aliases:   []string{"m"},
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:        "listen",
						DefaultText: ":4567",
					},
					&cli.StringFlag{
						Name:        "tiles",
						DefaultText: "img",
						TakesFile:   true,
					},
					&cli.StringFlag{
						Name: "otel.endpoint",
					},
				},
				Action: serve,
			},
			{
				Name:    "build",
				Aliases: []string{"b"},
				Usage:   "load a map and report graph and index stats",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "config",
						Aliases:   []string{"c"},
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:      "map",
						Aliases:   []string{"m"},
						TakesFile: true,
					},
					&cli.StringSliceFlag{
						Name:        "highway",
						DefaultText: "config or built-in list",
					},
					&cli.IntFlag{
						Name:        "threads",
						Aliases:     []string{"t"},
						DefaultText: "max",
					},
					&cli.BoolFlag{
						Name: "progress",
					},
					&cli.StringFlag{
						Name:        "stats",
						Usage:       "write a runtime stats report to this file",
						DefaultText: "",
						TakesFile:   true,
					},
					&cli.StringFlag{
						Name:        "pprof.listen",
						DefaultText: "",
					},
					&cli.BoolFlag{
						Name:        "pprof.profile",
						DefaultText: "",
					},
				},
				Action: build,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if file := ctx.String("config"); file != "" {
		var err error
		cfg, err = config.Load(file)
		if err != nil {
			return cfg, err
		}
	}

	if v := ctx.String("map"); v != "" {
		cfg.Map = v
	}
	if v := ctx.String("listen"); v != "" {
		cfg.Listen = v
	}
	if v := ctx.String("tiles"); v != "" {
		cfg.TilesDir = v
	}
	if v := ctx.String("otel.endpoint"); v != "" {
		cfg.OtelEndpoint = v
	}
	if v := ctx.StringSlice("highway"); len(v) > 0 {
		cfg.Highways = v
	}

	if cfg.Map == "" {
		return cfg, fmt.Errorf("map file is not set, use --map or the config file")
	}
	return cfg, nil
}

func loadMap(ctx context.Context, cfg config.Config, loadOpts ...osmload.Option) (*mapdb.MapDB, error) {
	loadOpts = append(loadOpts, osmload.WithHighways(cfg.Highways))
	return mapdb.LoadFromFile(ctx, cfg.Map,
		mapdb.WithLogger(slog.Default()),
		mapdb.WithRaster(cfg.Raster.ToRaster()),
		mapdb.WithLoadOptions(loadOpts...),
	)
}

func serve(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	tel, err := telemetry.Setup(ctx.Context, appName, cfg.OtelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer tel.Shutdown(context.Background())

	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Loading map", "file", cfg.Map)
	db, err := loadMap(runCtx, cfg)
	if err != nil {
		return err
	}

	return server.Run(runCtx, cfg.Listen, cfg.TilesDir, db)
}

func build(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	tel, err := telemetry.Setup(ctx.Context, appName, cfg.OtelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer tel.Shutdown(context.Background())

	log := slog.Default()

	threads := ctx.Int("threads")
	if threads == 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	log = log.With("threads", threads)

	if pprofListen := ctx.String("pprof.listen"); pprofListen != "" {
		go func() {
			log.Info("Starting pprof server")
			err := http.ListenAndServe(pprofListen, nil)
			if err != nil {
				log.Error("Error starting pprof server", "error", err)
			}
		}()
	}

	if ctx.Bool("pprof.profile") {
		f, err := os.OpenFile("profile.cpu.pprof", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("error creating pprof file: %w", err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("error starting pprof: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	statsFile := ctx.String("stats")
	var collector *stats.Collector
	if statsFile != "" {
		collector, err = stats.NewCollector(100 * time.Millisecond)
		if err != nil {
			return fmt.Errorf("error creating stats collector: %w", err)
		}
		collector.Start()
	}

	db, err := loadMap(ctx.Context, cfg,
		osmload.WithLogger(log),
		osmload.WithThreads(threads),
		osmload.WithProgress(ctx.Bool("progress")),
	)
	if err != nil {
		return err
	}

	g := db.Graph()
	log.Info("Build complete",
		"vertices", g.Len(),
		"ways", g.WayCount(),
	)

	if collector != nil {
		collector.Mark("load")
		collector.Annotate("map", cfg.Map)
		collector.Annotate("vertices", g.Len())
		collector.Annotate("ways", g.WayCount())
		collector.Annotate("highways", cfg.Highways)

		report := collector.Stop()
		log.Info("Runtime stats", "stats", report)
		if err := report.SaveToFile(statsFile); err != nil {
			return err
		}
		log.Info("Stats saved", "file", statsFile)
	}

	return tel.Flush(context.Background())
}
