package main

import (
	"VCS_API_Monitor/internal/monitor-service/config"
	"VCS_API_Monitor/migrations"
	"VCS_API_Monitor/pkg/infra"
	"VCS_API_Monitor/pkg/logger"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, zapcore.AddSync(io.Discard)).
		With(zap.String("service.name", "migrate"))
	defer zapLogger.Sync()

	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	applied, err := migrations.Apply(ctx, db)
	if err != nil {
		zapLogger.Fatal("failed to apply migrations", zap.Strings("applied", applied), zap.Error(err))
	}
	zapLogger.Info("migrations applied", zap.Strings("applied", applied))
}
