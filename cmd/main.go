package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/archilink/jobboard/internal/auth"
	"github.com/archilink/jobboard/internal/clients/razorpay"
	"github.com/archilink/jobboard/internal/config"
	"github.com/archilink/jobboard/internal/entities"
	"github.com/archilink/jobboard/internal/events"
	"github.com/archilink/jobboard/internal/logger"
	"github.com/archilink/jobboard/internal/metrics"
	"github.com/archilink/jobboard/internal/repositories"
	"github.com/archilink/jobboard/internal/services"
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

// buildBoard wires the core the way an embedding caller (the mobile shell
// or an automated client) consumes it.
func buildBoard(cfg *config.Config, dbContext *repositories.DbContext,
	bus EventBus.Bus) (*services.Board, error) {

	jobs := repositories.NewJobsRepository(dbContext.DB)
	featured := repositories.NewCachedFeatured(jobs)
	payments := repositories.NewPaymentsRepository(dbContext.DB)

	session, err := auth.NewSession(bus)
	if err != nil {
		return nil, err
	}

	processor := razorpay.NewClient(cfg.Payment.GatewayURL, cfg.Payment.KeyID)
	if cfg.Payment.MaxRequestsPerSecond > 0 {
		processor.SetRateLimit(cfg.Payment.MaxRequestsPerSecond)
	}

	directory := services.NewDirectory(jobs, featured, session, bus)
	workflow := services.NewWorkflow(directory, processor, payments, session, cfg.Payment.PostingFeePaise)
	return services.NewBoard(directory, workflow), nil
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Board.MetricsAddress)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	if cfg.Board.SeedSampleData {
		jobs := repositories.NewJobsRepository(dbContext.DB)
		if err = jobs.SeedSampleJobs(ctx, "sample-firm"); err != nil {
			log.Errorf("can't seed sample jobs: %v", err)
		}
	}

	bus := EventBus.New()
	err = bus.Subscribe(events.JobPostedTopic, func(event events.JobPosted) {
		log.Infof("job posted: %v (%v at %v, featured=%v)", event.JobID, event.Title, event.Company, event.Featured)
	})
	if err != nil {
		log.Fatalf("can't subscribe to job posted events: %v", err)
	}

	board, err := buildBoard(cfg, dbContext, bus)
	if err != nil {
		log.Fatalf("can't build job board core: %v", err)
	}

	payments := repositories.NewPaymentsRepository(dbContext.DB)
	reconciler, err := services.NewReconciler(payments, cfg.Board.PaymentRetentionInDays)
	if err != nil {
		log.Fatalf("can't create payment reconciler: %v", err)
	}
	defer reconciler.Stop()

	warmUp(ctx, board, cfg.Board.FeaturedLimit)

	<-ctx.Done()

	log.Info("Shutting down services...")
	log.Info("Services stopped.")
}

func warmUp(ctx context.Context, board *services.Board, featuredLimit int) {
	featured := board.Directory.ListFeatured(ctx, featuredLimit)
	log.Infof("featured listing warm: %v postings", len(featured))

	all, err := board.Directory.ListJobs(ctx, entities.JobFilters{})
	if err != nil {
		log.Errorf("listing smoke check failed: %v", err)
		return
	}
	log.Infof("directory reachable, %v postings total", len(all))
}
