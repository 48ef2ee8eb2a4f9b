package background

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"artvault/internal/cart"
	"artvault/internal/services"
	"artvault/internal/wishlist"
)

// Sessions idle longer than this lose their cart and wishlist.
const sessionMaxIdle = 24 * time.Hour

// JobScheduler runs the periodic housekeeping: sweeping abandoned session
// state and keeping the category cache warm.
type JobScheduler struct {
	scheduler  gocron.Scheduler
	carts      *cart.Store
	wishlists  *wishlist.Store
	productSvc services.ProductService
}

// NewJobScheduler creates a new job scheduler
func NewJobScheduler(carts *cart.Store, wishlists *wishlist.Store, productSvc services.ProductService) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:  scheduler,
		carts:      carts,
		wishlists:  wishlists,
		productSvc: productSvc,
	}
	js.registerJobs()
	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	// Session sweep - every hour
	if _, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.sweepSessions),
		gocron.WithName("session-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		log.Printf("Failed to create session sweep job: %v", err)
	}

	// Catalog cache warm - every 15 minutes
	if _, err := js.scheduler.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(js.warmCatalog),
		gocron.WithName("catalog-warm"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		log.Printf("Failed to create catalog warm job: %v", err)
	}
}

func (js *JobScheduler) sweepSessions() {
	carts := js.carts.SweepIdle(sessionMaxIdle)
	wishlists := js.wishlists.SweepIdle(sessionMaxIdle)
	if carts > 0 || wishlists > 0 {
		log.Printf("Swept %d idle carts and %d idle wishlists", carts, wishlists)
	}
}

func (js *JobScheduler) warmCatalog() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := js.productSvc.WarmCatalogCache(ctx); err != nil {
		log.Printf("Catalog cache warm failed: %v", err)
	}
}
