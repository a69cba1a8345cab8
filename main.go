package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"granitereply/infrastructure/cache"
	googleclient "granitereply/infrastructure/clients/google"
	openaiclient "granitereply/infrastructure/clients/openai"
	"granitereply/infrastructure/clients/resend"
	"granitereply/infrastructure/configuration"
	"granitereply/infrastructure/logger"
	"granitereply/infrastructure/persistence"
	"granitereply/infrastructure/pubsub"
	"granitereply/infrastructure/servicebus"
	httpHandler "granitereply/interfaces/http"
	"granitereply/server"
	"granitereply/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	psqlDb, err := persistence.NewPostgreSQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to PostgreSQL")
		os.Exit(1)
	}
	if err := persistence.EnsureSchema(psqlDb); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed ensuring database schema")
		os.Exit(1)
	}
	logger.GetLogger().Info("Database connected.")

	mongoDb, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB not available - continuing without Mongo features")
		mongoDb = nil
	} else {
		if err := mongoDb.Ping(ctx, nil); err != nil {
			logger.GetLogger().WithField("error", err).Warn("MongoDB ping failed - continuing without Mongo features")
			mongoDb = nil
		} else {
			logger.GetLogger().Info("MongoDB connected successfully")
		}
	}

	pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub.ProjectID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Pub/Sub not available - continuing without sync events")
		pubSubClient = nil
	}

	azServiceBusClient, err := servicebus.NewServiceBus(ctx, configuration.C.ServiceBus.Namespace)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - continuing without Service Bus features")
		azServiceBusClient = nil
	}

	redisClient, err := cache.NewRedisClient(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without cache")
		redisClient = nil
	} else {
		logger.GetLogger().Info("Redis client initialized successfully.")
	}

	// Repositories
	userRepository := persistence.NewUserRepository(psqlDb)
	reviewRepository := persistence.NewReviewRepository(psqlDb)
	connectionRepository := persistence.NewConnectionRepository(psqlDb)
	locationRepository := persistence.NewLocationRepository(psqlDb)
	responseRepository := persistence.NewResponseRepository(psqlDb)
	brandVoiceRepository := persistence.NewBrandVoiceRepository(psqlDb)
	leadRepository := persistence.NewLeadRepository(psqlDb)
	chatLogRepository := persistence.NewChatLogRepository(mongoDb, configuration.C.Database.Mongo.Name)

	// External clients
	profileClient := googleclient.NewClientFromAppConfig()
	completionClient := openaiclient.NewClient(configuration.C.OpenAI.APIKey)
	leadMailer := resend.NewMailer(
		configuration.C.Resend.APIKey,
		configuration.C.Resend.FromEmail,
		configuration.C.Resend.NotificationEmail,
	)
	voiceCache := cache.NewBrandVoiceCache(redisClient)

	var syncEvents pubsub.ISyncEvents
	if pubSubClient != nil {
		syncEvents = pubsub.NewSyncEvents(pubSubClient)
	}
	var leadQueue servicebus.ILeadQueue
	if azServiceBusClient != nil {
		leadQueue = servicebus.NewLeadQueue(azServiceBusClient, configuration.C.ServiceBus.Queue)
	}

	// Usecases
	userUsecase := usecase.NewUserUsecase(userRepository, app.SecretKey)
	aiUsecase := usecase.NewAIUsecase(completionClient, brandVoiceRepository, responseRepository, reviewRepository, voiceCache, configuration.C.OpenAI.Model)
	syncUsecase := usecase.NewSyncUsecase(connectionRepository, locationRepository, reviewRepository, profileClient, syncEvents, configuration.C.Pubsub.Topic, configuration.C.Sync.PageSize)
	respondUsecase := usecase.NewRespondUsecase(reviewRepository, locationRepository, connectionRepository, responseRepository, profileClient, aiUsecase, configuration.C.OpenAI.Model)
	chatUsecase := usecase.NewChatUsecase(completionClient, chatLogRepository, configuration.C.OpenAI.ChatModel)
	demoUsecase := usecase.NewDemoUsecase(completionClient, configuration.C.OpenAI.Model)
	leadUsecase := usecase.NewLeadUsecase(leadRepository, leadMailer, leadQueue)

	// Handlers
	userHandler := httpHandler.NewUserHandler(userUsecase)
	aiHandler := httpHandler.NewAIHandler(aiUsecase)
	reviewHandler := httpHandler.NewReviewHandler(syncUsecase, respondUsecase)
	siteHandler := httpHandler.NewSiteHandler(chatUsecase, demoUsecase, leadUsecase)
	googleOAuthHandler := httpHandler.NewGoogleOAuthHandler(profileClient, connectionRepository)

	router := server.InitiateRouter(userHandler, aiHandler, reviewHandler, siteHandler, googleOAuthHandler, userRepository, app.SecretKey)

	// Background review sync (simple ticker loop)
	if interval := configuration.C.Sync.IntervalMinutes; interval > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(time.Duration(interval) * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-ticker.C:
					syncCtx, cancelSync := context.WithTimeout(ctx, 10*time.Minute)
					result := syncUsecase.SyncAll(syncCtx)
					cancelSync()
					logger.GetLogger().WithField("locations", len(result.Results)).Info("Scheduled review sync finished")
				}
			}
		})
	}

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
