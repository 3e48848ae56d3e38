// launching the server, classifier client, event sinks, stats backend
package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/tomato-gateway/config"
	"github.com/ds124wfegd/tomato-gateway/internal/classifier"
	"github.com/ds124wfegd/tomato-gateway/internal/database"
	"github.com/ds124wfegd/tomato-gateway/internal/pkg/kafka"
	"github.com/ds124wfegd/tomato-gateway/internal/pkg/rabbitMQ"
	"github.com/ds124wfegd/tomato-gateway/internal/service"
	"github.com/ds124wfegd/tomato-gateway/internal/simulation"
	"github.com/ds124wfegd/tomato-gateway/internal/transport"
	"github.com/ds124wfegd/tomato-gateway/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func setupLogger(cfg *config.LogConfig) {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// newStatsRepository подключает redis; если он недоступен, считаем в памяти
func newStatsRepository(cfg *config.StatsConfig) (database.StatsRepository, *redis.Client) {
	if cfg.Driver != "redis" {
		return database.NewMemoryStatsRepository(), nil
	}

	client := database.NewRedisClient(&cfg.Redis)
	repo := database.NewRedisStatsRepository(client, cfg.Redis.KeyPrefix)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout+time.Second)
	defer cancel()

	if err := repo.Ping(ctx); err != nil {
		logrus.Warnf("Redis unavailable (%v), using in-memory stats", err)
		client.Close()
		return database.NewMemoryStatsRepository(), nil
	}

	logrus.Infof("Stats stored in redis at %s", cfg.Redis.Addr)
	return repo, client
}

// newEventPublisher returns the configured sink and the driver actually in use.
func newEventPublisher(cfg *config.EventsConfig) (service.EventPublisher, string) {
	switch cfg.Driver {
	case "kafka":
		producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logrus.Warnf("Kafka unavailable (%v), events go to log only", err)
			return service.LogPublisher{}, "log"
		}
		return service.NewKafkaAdapter(producer), "kafka"
	case "rabbitmq":
		queue, err := rabbitMQ.NewRabbitMQ(rabbitMQ.RabbitMQConfig{
			URL:       cfg.RabbitMQ.URL,
			QueueName: cfg.RabbitMQ.QueueName,
		})
		if err != nil {
			logrus.Warnf("RabbitMQ unavailable (%v), events go to log only", err)
			return service.LogPublisher{}, "log"
		}
		return service.NewRabbitAdapter(queue), "rabbitmq"
	default:
		return service.LogPublisher{}, "log"
	}
}

func NewServer(cfg *config.Config) {

	setupLogger(&cfg.Log)

	statsRepo, redisClient := newStatsRepository(&cfg.Stats)
	publisher, eventsDriver := newEventPublisher(&cfg.Events)

	dispatcher := worker.NewEventDispatcher(publisher, statsRepo, cfg.Events.BufferSize)
	dispatchCtx, stopDispatcher := context.WithCancel(context.Background())
	go dispatcher.Start(dispatchCtx)

	classifierClient := classifier.NewClient(&cfg.Classifier)
	rng := simulation.NewLockedRand(uint64(time.Now().UnixNano()))

	classService := service.NewClassificationService(classifierClient, simulation.NewSimulator(), rng, dispatcher)
	statsService := service.NewStatsService(statsRepo)
	healthService := service.NewHealthService(classifierClient, statsRepo, publisher, eventsDriver)

	classHandler := transport.NewClassificationHandler(classService)
	sysHandler := transport.NewSystemHandler(statsService, healthService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(cfg, classHandler, sysHandler)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.WithFields(logrus.Fields{
		"port":    cfg.Server.Port,
		"version": cfg.Server.AppVersion,
		"disease": cfg.Classifier.DiseaseURL,
		"quality": cfg.Classifier.QualityURL,
		"events":  eventsDriver,
		"stats":   statsRepo.Name(),
	}).Info("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}

	stopDispatcher()
	select {
	case <-dispatcher.Done():
	case <-ctx.Done():
		logrus.Warn("Event dispatcher did not stop in time")
	}

	if err := publisher.Close(); err != nil {
		logrus.Errorf("error occured on closing event publisher: %s", err.Error())
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logrus.Errorf("error occured on closing redis: %s", err.Error())
		}
	}
}
