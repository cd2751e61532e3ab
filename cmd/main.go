package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	createReservationHandler "github.com/m04kA/SMC-ClassroomService/internal/api/handlers/create_reservation"
	getAvailableRoomsHandler "github.com/m04kA/SMC-ClassroomService/internal/api/handlers/get_available_rooms"
	getEndTimesHandler "github.com/m04kA/SMC-ClassroomService/internal/api/handlers/get_end_times"
	getReservationHandler "github.com/m04kA/SMC-ClassroomService/internal/api/handlers/get_reservation"
	getUserNotificationsHandler "github.com/m04kA/SMC-ClassroomService/internal/api/handlers/get_user_notifications"
	getUserReservationsHandler "github.com/m04kA/SMC-ClassroomService/internal/api/handlers/get_user_reservations"
	getUserScheduleHandler "github.com/m04kA/SMC-ClassroomService/internal/api/handlers/get_user_schedule"
	healthHandler "github.com/m04kA/SMC-ClassroomService/internal/api/handlers/health"
	listReservationsHandler "github.com/m04kA/SMC-ClassroomService/internal/api/handlers/list_reservations"
	updateReservationStatusHandler "github.com/m04kA/SMC-ClassroomService/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/SMC-ClassroomService/internal/api/middleware"
	"github.com/m04kA/SMC-ClassroomService/internal/config"
	"github.com/m04kA/SMC-ClassroomService/internal/infra/cache"
	"github.com/m04kA/SMC-ClassroomService/internal/infra/feed"
	"github.com/m04kA/SMC-ClassroomService/internal/infra/migrator"
	facultyRepo "github.com/m04kA/SMC-ClassroomService/internal/infra/storage/faculty"
	reservationRepo "github.com/m04kA/SMC-ClassroomService/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/SMC-ClassroomService/internal/infra/storage/schedule"
	notificationsService "github.com/m04kA/SMC-ClassroomService/internal/service/notifications"
	reservationsService "github.com/m04kA/SMC-ClassroomService/internal/service/reservations"
	schedulesService "github.com/m04kA/SMC-ClassroomService/internal/service/schedules"
	createReservationUC "github.com/m04kA/SMC-ClassroomService/internal/usecase/create_reservation"
	getAvailableRoomsUC "github.com/m04kA/SMC-ClassroomService/internal/usecase/get_available_rooms"
	getEndTimesUC "github.com/m04kA/SMC-ClassroomService/internal/usecase/get_end_times"
	"github.com/m04kA/SMC-ClassroomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClassroomService/pkg/logger"
	"github.com/m04kA/SMC-ClassroomService/pkg/metrics"
	"github.com/m04kA/SMC-ClassroomService/pkg/txmanager"
)

const poolStatsInterval = 15 * time.Second

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ClassroomService...")

	// Инициализируем метрики (если включены). nil коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Применяем миграции
	if cfg.Database.RunMigrations {
		m, err := migrator.New(db, log)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := m.Run(ctx); err != nil {
			log.Fatal("Failed to migrate database: %v", err)
		}
	}

	wrappedDB := dbmetrics.Wrap(db, metricsCollector)
	wrappedDB.CollectPoolStats(poolStatsInterval, stopMetricsCh)

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB, log)
	facultyRepository := facultyRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш снимков расписаний и заявок
	snapshots := cache.NewSnapshots(
		scheduleRepository,
		reservationRepository,
		cfg.Cache.TTLDuration(),
		cfg.Cache.CleanupDuration(),
		metricsCollector,
	)

	// Живые изменения из PostgreSQL сбрасывают кэш
	if cfg.Feed.Enabled {
		channels := []string{feed.ChannelSchedules, feed.ChannelReservations}

		hub, err := feed.NewHub(cfg.Database.DSN(), channels, log, metricsCollector)
		if err != nil {
			log.Fatal("Failed to start change feed: %v", err)
		}
		defer hub.Close()
		go hub.Run(ctx)

		subscriptions := feed.NewManager(hub, log)
		defer subscriptions.Close()

		if err := subscriptions.Subscribe(ctx, "cache", channels, snapshots.HandleEvent); err != nil {
			log.Fatal("Failed to subscribe cache to change feed: %v", err)
		}
		log.Info("Change feed enabled (channels=%v)", channels)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, txMgr, log)
	notificationSvc := notificationsService.NewService(reservationRepository, snapshots, log)
	scheduleSvc := schedulesService.NewService(snapshots, facultyRepository, log)

	// Инициализируем use cases
	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(snapshots, cfg.Reservation.WindowDays, log)
	getEndTimesUseCase := getEndTimesUC.NewUseCase(snapshots, cfg.Reservation.WindowDays, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		snapshots,
		metricsCollector,
		cfg.Reservation.WindowDays,
		log,
	)

	// Инициализируем handlers
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	getEndTimes := getEndTimesHandler.NewHandler(getEndTimesUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getUserNotifications := getUserNotificationsHandler.NewHandler(notificationSvc, log)
	getUserSchedule := getUserScheduleHandler.NewHandler(scheduleSvc, log)
	health := healthHandler.NewHandler(db, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Свободные аудитории на дату
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)

	// Допустимые времена окончания от выбранного начала
	api.HandleFunc("/rooms/{roomName}/end-times", getEndTimes.Handle).Methods(http.MethodGet)

	// Заявки (для администратора)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId:[0-9]+}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Name header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/me/reservations", getUserReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/me/notifications", getUserNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/me/schedule", getUserSchedule.Handle).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.UserNameHeader, middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем подписки и сбор статистики пула
	stop()
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
