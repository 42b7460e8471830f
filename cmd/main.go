package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/create_booking"
	createRefundHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/create_refund"
	deleteScheduleHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/delete_schedule"
	generateScheduleHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/generate_schedule"
	getBookingHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/get_booking"
	listRefundsHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/list_refunds"
	listSalaryPeriodsHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/list_salary_periods"
	listSchedulesHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/list_schedules"
	previewSalariesHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/preview_salaries"
	saveSalariesHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/save_salaries"
	updateBookingHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/update_booking"
	updateRefundStatusHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/update_refund_status"
	updateSalaryStatusHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/update_salary_status"
	updateTaskStatusHandler "github.com/m04kA/SMC-PropertyService/internal/api/handlers/update_task_status"
	"github.com/m04kA/SMC-PropertyService/internal/api/middleware"
	"github.com/m04kA/SMC-PropertyService/internal/config"
	apartmentRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/apartment"
	bookingRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/booking"
	payRuleRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/payrule"
	propertyRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/property"
	refundRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/refund"
	salaryRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/salary"
	scheduleRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/schedule"
	taskRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/task"
	userRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-PropertyService/internal/service/bookings"
	occupancyService "github.com/m04kA/SMC-PropertyService/internal/service/occupancy"
	payrollService "github.com/m04kA/SMC-PropertyService/internal/service/payroll"
	salariesService "github.com/m04kA/SMC-PropertyService/internal/service/salaries"
	schedulesService "github.com/m04kA/SMC-PropertyService/internal/service/schedules"
	createBookingUC "github.com/m04kA/SMC-PropertyService/internal/usecase/create_booking"
	createRefundUC "github.com/m04kA/SMC-PropertyService/internal/usecase/create_refund"
	generateScheduleUC "github.com/m04kA/SMC-PropertyService/internal/usecase/generate_schedule"
	saveSalariesUC "github.com/m04kA/SMC-PropertyService/internal/usecase/save_salaries"
	updateBookingUC "github.com/m04kA/SMC-PropertyService/internal/usecase/update_booking"
	updateRefundStatusUC "github.com/m04kA/SMC-PropertyService/internal/usecase/update_refund_status"
	updateTaskStatusUC "github.com/m04kA/SMC-PropertyService/internal/usecase/update_task_status"
	"github.com/m04kA/SMC-PropertyService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PropertyService/pkg/logger"
	"github.com/m04kA/SMC-PropertyService/pkg/metrics"
	"github.com/m04kA/SMC-PropertyService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-PropertyService/pkg/txmanager"
)

// Клиенты без запросов дольше этого интервала удаляются из лимитера
const rateLimitVisitorTTL = 3 * time.Minute

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

	log.Info("Starting SMC-PropertyService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var events metrics.EventRecorder = metrics.NopRecorder{}
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		events = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Выбираем исполнителя запросов и transaction manager (с метриками или без)
	var (
		executor dbmetrics.DBExecutor
		txMgr    *txmanager.TransactionManager
	)
	txOpts := []txmanager.Option{txmanager.WithSerializableRetries(cfg.Database.SerializableRetries)}

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB, txOpts...)
		log.Info("Database metrics collection started")
	} else {
		executor = db
		txMgr = simpletxmanager.NewTransactionManager(db, txOpts...)
	}

	// Репозитории
	bookings := bookingRepo.NewRepository(executor)
	apartments := apartmentRepo.NewRepository(executor)
	refunds := refundRepo.NewRepository(executor)
	users := userRepo.NewRepository(executor)
	schedules := scheduleRepo.NewRepository(executor)
	tasks := taskRepo.NewRepository(executor)
	payRules := payRuleRepo.NewRepository(executor)
	salaries := salaryRepo.NewRepository(executor)
	properties := propertyRepo.NewRepository(executor)
	log.Info("Repositories initialized")

	// Сервисы
	occupancySvc := occupancyService.NewService(bookings, apartments, log)
	bookingsSvc := bookingsService.NewService(bookings, apartments, refunds, users, txMgr, log)
	payrollSvc := payrollService.NewService(tasks, payRules, salaries, users, properties, log)
	salariesSvc := salariesService.NewService(salaries, users, payrollSvc, txMgr, log)
	schedulesSvc := schedulesService.NewService(schedules, users, log)

	// Источник случайности для генерации расписаний
	seed := cfg.Scheduler.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>1)))

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookings, apartments, users, occupancySvc, txMgr, events, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(bookings, apartments, users, occupancySvc, txMgr, events, log)
	createRefundUseCase := createRefundUC.NewUseCase(bookings, apartments, refunds, users, occupancySvc, txMgr, events, log)
	updateRefundStatusUseCase := updateRefundStatusUC.NewUseCase(bookings, apartments, refunds, users, occupancySvc, txMgr, events, log)
	generateScheduleUseCase := generateScheduleUC.NewUseCase(schedules, users, txMgr, events, rnd, cfg.Scheduler.MaxWeeks, log)
	saveSalariesUseCase := saveSalariesUC.NewUseCase(payrollSvc, salaries, users, txMgr, events, log)
	updateTaskStatusUseCase := updateTaskStatusUC.NewUseCase(tasks, apartments, users, txMgr, events, log)
	log.Info("Services and use cases initialized")

	// Handlers
	createBookingH := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookingH := getBookingHandler.NewHandler(bookingsSvc, log)
	updateBookingH := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	listRefundsH := listRefundsHandler.NewHandler(bookingsSvc, log)
	createRefundH := createRefundHandler.NewHandler(createRefundUseCase, log)
	updateRefundStatusH := updateRefundStatusHandler.NewHandler(updateRefundStatusUseCase, log)
	generateScheduleH := generateScheduleHandler.NewHandler(generateScheduleUseCase, log)
	listSchedulesH := listSchedulesHandler.NewHandler(schedulesSvc, log)
	deleteScheduleH := deleteScheduleHandler.NewHandler(schedulesSvc, log)
	previewSalariesH := previewSalariesHandler.NewHandler(salariesSvc, log)
	saveSalariesH := saveSalariesHandler.NewHandler(saveSalariesUseCase, log)
	listSalaryPeriodsH := listSalaryPeriodsHandler.NewHandler(salariesSvc, log)
	updateSalaryStatusH := updateSalaryStatusHandler.NewHandler(salariesSvc, log)
	updateTaskStatusH := updateTaskStatusHandler.NewHandler(updateTaskStatusUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, rateLimitVisitorTTL, log)
		r.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Все бизнес-эндпоинты требуют токен
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth(middleware.AuthConfig{
		Secret: []byte(cfg.Auth.JWTSecret),
		Issuer: cfg.Auth.Issuer,
		Leeway: time.Duration(cfg.Auth.LeewaySeconds) * time.Second,
	}, log))

	// Бронирования
	protected.HandleFunc("/bookings", createBookingH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBookingH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBookingH.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/refunds", listRefundsH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/refunds", createRefundH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/refunds/{refundId}", updateRefundStatusH.Handle).Methods(http.MethodPatch)

	// Расписания
	protected.HandleFunc("/schedules/generate", generateScheduleH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedules/preview", generateScheduleH.HandlePreview).Methods(http.MethodPost)
	protected.HandleFunc("/schedules", listSchedulesH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/{scheduleId}", deleteScheduleH.Handle).Methods(http.MethodDelete)

	// Зарплаты
	protected.HandleFunc("/salaries/preview", previewSalariesH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salaries/periods", listSalaryPeriodsH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salaries", saveSalariesH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/salaries/{salaryId}", updateSalaryStatusH.Handle).Methods(http.MethodPatch)

	// Задачи
	protected.HandleFunc("/tasks/{taskId}/status", updateTaskStatusH.Handle).Methods(http.MethodPatch)

	log.Info("Routes registered")

	// Создаем HTTP сервер
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Info("Server starting on port %d", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик пула соединений
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
