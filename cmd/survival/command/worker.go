package command

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/pixil98/go-service"
	"github.com/pixil98/go-survival/internal/driver"
	"github.com/pixil98/go-survival/internal/game"
	"github.com/pixil98/go-survival/internal/listener"
	"github.com/pixil98/go-survival/internal/mapgen"
	"github.com/pixil98/go-survival/internal/messaging"
	"github.com/pixil98/go-survival/internal/npc"
	"github.com/pixil98/go-survival/internal/player"
	"github.com/pixil98/go-survival/internal/rules"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}
	ctx := context.Background()

	r, err := rules.Load(cfg.RulesPath)
	if err != nil {
		return nil, err
	}
	cat, err := cfg.Catalog.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))

	// Generate the world
	grid := mapgen.NewGenerator(cat, r.Map, mapgen.WithSeed(seed)).Generate(ctx)
	world := game.NewWorld(grid, cat, r)
	npcs := npc.NewManager(r.Population, rng)
	if err := npcs.Seed(ctx, world); err != nil {
		return nil, fmt.Errorf("seeding npcs: %w", err)
	}
	slog.Info("world generated", "seed", seed, "width", world.Width, "height", world.Height)

	// Messaging
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	publisher := messaging.NewNatsPublisher(natsServer)

	workers := service.WorkerList{
		"nats": natsServer,
	}

	// Setup the driver
	tick, _ := parseDuration(cfg.TickInterval, driver.DefaultTickLength)
	day, _ := parseDuration(cfg.DayInterval, driver.DefaultDayLength)
	driverOpts := []driver.DriverOpt{
		driver.WithTickLength(tick),
		driver.WithDayLength(day),
	}

	j, err := cfg.Journal.BuildJournal()
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	if j != nil {
		driverOpts = append(driverOpts, driver.WithRecorder(j))
		workers["journal"] = j
	}

	d := driver.NewDriver(world, publisher, npcs, rng, driverOpts...)
	workers["driver"] = d

	// Connections
	pm := player.NewPlayerManager(d, natsServer, cfg.Listener.playerManagerOpts()...)
	workers["players"] = pm

	listenerOpts := []listener.WebListenerOpt{listener.WithReady(natsServer.Ready())}
	store, err := cfg.Accounts.BuildStore()
	if err != nil {
		return nil, fmt.Errorf("opening accounts: %w", err)
	}
	if store != nil {
		listenerOpts = append(listenerOpts, listener.WithAccounts(store))
		workers["accounts"] = store
	}
	workers["listener"] = cfg.Listener.BuildListener(listener.NewConnectionManager(pm), listenerOpts...)

	return workers, nil
}
