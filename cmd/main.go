package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "machine_monitoring/docs"
	"machine_monitoring/internal/broker"
	"machine_monitoring/internal/config"
	"machine_monitoring/internal/feed"
	"machine_monitoring/internal/handlers"
	"machine_monitoring/internal/logger"
	"machine_monitoring/internal/metrics"
	"machine_monitoring/internal/repository"
	"machine_monitoring/internal/repository/db"
	"machine_monitoring/internal/server"
	"machine_monitoring/internal/service"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const shutdownTimeout = 10 * time.Second

// @title                       Machine Monitoring API
// @version                     1.0
// @description                 Simulated heat-treatment machine readings, charts, overrides and event logs.
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	conn, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DBPath, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()
	opts := service.Options{
		Machines:        cfg.Simulation.Machines,
		HistoryLimit:    cfg.Simulation.HistoryLimit,
		HourlyRetention: cfg.Simulation.HourlyRetention,
		SigningKey:      cfg.Auth.SigningKey,
		TokenTTL:        cfg.Auth.TokenTTL,
		Metrics:         m,
		Log:             log.Named("simulator"),
	}

	mqttClient := startMQTT(ctx, cfg, m, log, &opts)
	if mqttClient != nil {
		defer mqttClient.Disconnect(250)
	}
	if kafkaPub := startKafka(cfg, m, log); kafkaPub != nil {
		opts.Publishers = append(opts.Publishers, kafkaPub)
		defer func() { _ = kafkaPub.Close() }()
	}

	repos := repository.NewRepository(conn)
	services := service.NewService(repos, opts)
	apiHandler := handlers.NewHandler(services, m, log.Named("http"))

	go services.Simulator.Run(ctx, cfg.Simulation.Interval)

	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	go func() {
		log.Infow("http_server_started", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(cancel, srv, log)
}

// startMQTT connects to the broker when enabled, registers the reading
// publisher and starts the feed listener. A failed connection disables both.
func startMQTT(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log *logger.Logger, opts *service.Options) mqtt.Client {
	if !cfg.MQTT.Enabled {
		log.Infow("mqtt_disabled")
		return nil
	}
	hooks := &broker.ConnectHooks{}
	client, err := broker.ConnectMQTT(cfg.MQTT, log.Named("mqtt"), hooks)
	if err != nil {
		log.Errorw("mqtt_connect_failed", "broker", cfg.MQTT.Broker, "err", err)
		return nil
	}

	opts.Publishers = append(opts.Publishers, broker.NewMQTTPublisher(client, cfg.MQTT.PublishTopic, m))

	store := feed.NewStore()
	opts.Feed = store
	listener := feed.NewListener(client, cfg.MQTT.FeedTopic, store, m, log.Named("feed"))
	hooks.Add(listener.Resubscribe)
	go func() {
		if err := listener.Run(ctx); err != nil {
			log.Errorw("feed_listener_failed", "topic", cfg.MQTT.FeedTopic, "err", err)
		}
	}()
	return client
}

func startKafka(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) *broker.KafkaPublisher {
	if !cfg.Kafka.Enabled {
		log.Infow("kafka_disabled")
		return nil
	}
	p, err := broker.NewKafkaPublisher(cfg.Kafka, m)
	if err != nil {
		log.Errorw("kafka_publisher_init_failed", "err", err)
		return nil
	}
	log.Infow("kafka_publisher_ready", "topic", cfg.Kafka.Topic, "brokers", cfg.Kafka.Brokers)
	return p
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop simulator and feed listener
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
