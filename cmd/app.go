package cmd

import (
	"context"
	"fmt"
	"time"

	"gametool/calendar"
	"gametool/config"
	"gametool/database"
	"gametool/events"
	"gametool/models"
	"gametool/repository"
	"gametool/service"

	log "github.com/sirupsen/logrus"
)

// app holds the wired collaborators shared by the commands that touch the database
type app struct {
	cfg      *config.Config
	db       *database.DB
	eventBus *events.Bus
	games    *config.GameCatalog
	deps     *models.Dependencies

	uowFactory service.UnitOfWorkFactory
}

func newApp(ctx context.Context) (*app, error) {
	cfg := config.Get()

	games, err := config.LoadGames(cfg.GamesFile)
	if err != nil {
		return nil, err
	}
	log.WithField("games", len(games.Games())).Debug("Game catalogue loaded")

	log.Debug("Connecting to database...")
	db, err := database.NewConnection(ctx, database.ConstructDatabaseURL(cfg.DatabaseURL, cfg.DatabaseName))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	eventBus := events.NewBus()
	subscribeImportLogging(eventBus)

	deps := &models.Dependencies{
		Games:         games,
		Calendar:      calendar.New(time.UTC),
		Boards:        models.NumberBoardFactory{},
		Prizes:        repository.NewPrizeRepository(db),
		Cancellations: repository.NewCancellationRepository(db),
		Validations:   repository.NewValidationRepository(db),
	}

	return &app{
		cfg:        cfg,
		db:         db,
		eventBus:   eventBus,
		games:      games,
		deps:       deps,
		uowFactory: repository.NewUnitOfWorkFactory(db, eventBus),
	}, nil
}

// Close waits for pending event handlers, then releases the pool
func (a *app) Close() {
	a.eventBus.Wait()
	a.db.Close()
}

func subscribeImportLogging(bus *events.Bus) {
	bus.Subscribe(events.EventTypeTicketImported, func(ctx context.Context, event events.Event) {
		e := event.(events.TicketImportedEvent)
		log.WithFields(log.Fields{
			"ticket":   e.TicketKeyString,
			"game":     e.Game,
			"retailer": e.RetailerLocNo,
			"cost":     e.TicketCost.StringFixed(2),
		}).Debug("Ticket imported")
	})
	bus.Subscribe(events.EventTypeTicketDuplicate, func(ctx context.Context, event events.Event) {
		e := event.(events.TicketDuplicateEvent)
		log.WithField("ticket", e.TicketKeyString).Info("Ticket already stored, skipped")
	})
	bus.Subscribe(events.EventTypeRecordRejected, func(ctx context.Context, event events.Event) {
		e := event.(events.RecordRejectedEvent)
		log.WithFields(log.Fields{
			"record": e.RecordNumber,
			"ticket": e.TicketKeyString,
			"reason": e.Reason,
		}).Warn("Record rejected")
	})
}
