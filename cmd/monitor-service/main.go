package main

import (
	"VCS_API_Monitor/internal/monitor-service/api/handler"
	"VCS_API_Monitor/internal/monitor-service/api/routes"
	"VCS_API_Monitor/internal/monitor-service/config"
	"VCS_API_Monitor/internal/monitor-service/notifier"
	"VCS_API_Monitor/internal/monitor-service/probe"
	"VCS_API_Monitor/internal/monitor-service/recorder"
	"VCS_API_Monitor/internal/monitor-service/repository"
	"VCS_API_Monitor/internal/monitor-service/scheduler"
	"VCS_API_Monitor/internal/monitor-service/service"
	"VCS_API_Monitor/pkg/infra"
	"VCS_API_Monitor/pkg/logger"
	"VCS_API_Monitor/pkg/mail"
	"VCS_API_Monitor/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "monitor-service"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	//set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:            appConfig.Postgres.Host,
		Port:            appConfig.Postgres.Port,
		User:            appConfig.Postgres.User,
		Password:        appConfig.Postgres.Password,
		DBName:          appConfig.Postgres.DBName,
		MaxOpenConns:    appConfig.Postgres.MaxOpenConns,
		MaxIdleConns:    appConfig.Postgres.MaxIdleConns,
		ConnMaxLifetime: appConfig.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host:     appConfig.Redis.Host,
		Port:     appConfig.Redis.Port,
		Password: appConfig.Redis.Password,
		DB:       appConfig.Redis.DB,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	//set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
		Username:  appConfig.Elasticsearch.Username,
		Password:  appConfig.Elasticsearch.Password,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}

	kafkaWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.MetricTopic)
	defer kafkaWriter.Close()

	// set up dependencies
	monitorRepo := repository.NewMonitorRepository(db)
	requestRepo := repository.NewCachedRequestRepository(redisClient, repository.NewRequestRepository(db), appConfig.Redis.CacheTTL, zapLogger)
	metricRepo := repository.NewMetricRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	metricSearchRepo := repository.NewMetricSearchRepository(esClient)

	executor := probe.NewExecutor(appConfig.Scheduler.ProbeTimeout)
	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.FromName, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
	emailNotifier := notifier.NewEmailNotifier(mailSender, zapLogger)
	metricRecorder := recorder.NewMetricRecorder(metricRepo, kafkaWriter, zapLogger)
	alertIssuer := recorder.NewAlertIssuer(alertRepo, zapLogger)

	monitorScheduler := scheduler.NewMonitorScheduler(
		scheduler.NewTimerRegistry(logger.NewCronLogger(zapLogger)),
		monitorRepo,
		requestRepo,
		metricRepo,
		executor,
		metricRecorder,
		alertIssuer,
		emailNotifier,
		scheduler.Config{
			FailureThreshold: appConfig.Scheduler.FailureThreshold,
			EmailCooldown:    appConfig.Scheduler.EmailCooldown,
			SettleDelay:      appConfig.Scheduler.SettleDelay,
			TickTimeout:      2 * appConfig.Scheduler.ProbeTimeout,
		},
		zapLogger,
	)
	startCtx, startCancel := context.WithTimeout(context.Background(), time.Minute)
	err = monitorScheduler.Start(startCtx)
	startCancel()
	if err != nil {
		zapLogger.Fatal("failed to start monitor scheduler", zap.Error(err))
	}

	monitorService := service.NewMonitorService(monitorRepo, requestRepo, metricRepo, alertRepo, metricSearchRepo, executor, monitorScheduler, appConfig.Scheduler.SettleDelay)
	monitorHandler := handler.NewMonitorHandler(zapLogger, monitorService)

	m := middleware.NewAuthMiddleware()

	// Create cronjob for metric retention
	cronJob := cron.New(cron.WithLogger(logger.NewCronLogger(zapLogger)))
	_, err = cronJob.AddFunc(appConfig.Scheduler.HousekeepingSchedule, func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel2()
		deleted, e := monitorService.PruneMetrics(ctx2, appConfig.Scheduler.MetricRetention)
		if e != nil {
			zapLogger.Error("failed to prune metrics", zap.Error(e))
			return
		}
		zapLogger.Info("pruned old metrics", zap.Int64("deleted", deleted), zap.Duration("retention", appConfig.Scheduler.MetricRetention))
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for metric retention", zap.Error(err))
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.SetUpMonitorRoutes(r, monitorHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	<-cronJob.Stop().Done()
	select {
	case <-monitorScheduler.Stop().Done():
	case <-ctx.Done():
		zapLogger.Warn("in-flight monitor ticks did not finish before shutdown timeout")
	}
	zapLogger.Info("server exiting")
}
