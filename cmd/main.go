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
	goredis "github.com/redis/go-redis/v9"

	beginBookingHandler "github.com/salaoflow/booking-service/internal/api/handlers/begin_booking"
	confirmBookingHandler "github.com/salaoflow/booking-service/internal/api/handlers/confirm_booking"
	createAppointmentHandler "github.com/salaoflow/booking-service/internal/api/handlers/create_appointment"
	createSessionHandler "github.com/salaoflow/booking-service/internal/api/handlers/create_session"
	getCalendarHandler "github.com/salaoflow/booking-service/internal/api/handlers/get_calendar"
	getProfessionalsHandler "github.com/salaoflow/booking-service/internal/api/handlers/get_professionals"
	getServicesHandler "github.com/salaoflow/booking-service/internal/api/handlers/get_services"
	getSessionHandler "github.com/salaoflow/booking-service/internal/api/handlers/get_session"
	getTimeSlotsHandler "github.com/salaoflow/booking-service/internal/api/handlers/get_time_slots"
	goBackHandler "github.com/salaoflow/booking-service/internal/api/handlers/go_back"
	registerCustomerHandler "github.com/salaoflow/booking-service/internal/api/handlers/register_customer"
	selectCategoryHandler "github.com/salaoflow/booking-service/internal/api/handlers/select_category"
	selectDateHandler "github.com/salaoflow/booking-service/internal/api/handlers/select_date"
	selectProfessionalHandler "github.com/salaoflow/booking-service/internal/api/handlers/select_professional"
	selectServiceHandler "github.com/salaoflow/booking-service/internal/api/handlers/select_service"
	selectTimeHandler "github.com/salaoflow/booking-service/internal/api/handlers/select_time"
	"github.com/salaoflow/booking-service/internal/api/middleware"
	"github.com/salaoflow/booking-service/internal/config"
	"github.com/salaoflow/booking-service/internal/infra/events"
	memorySessionStore "github.com/salaoflow/booking-service/internal/infra/sessionstore/memory"
	redisSessionStore "github.com/salaoflow/booking-service/internal/infra/sessionstore/redis"
	appointmentRepo "github.com/salaoflow/booking-service/internal/infra/storage/appointment"
	customerRepo "github.com/salaoflow/booking-service/internal/infra/storage/customer"
	appointmentServiceClient "github.com/salaoflow/booking-service/internal/integrations/appointmentservice"
	catalogServiceClient "github.com/salaoflow/booking-service/internal/integrations/catalogservice"
	customerServiceClient "github.com/salaoflow/booking-service/internal/integrations/customerservice"
	bookingflowService "github.com/salaoflow/booking-service/internal/service/bookingflow"
	catalogService "github.com/salaoflow/booking-service/internal/service/catalog"
	identityService "github.com/salaoflow/booking-service/internal/service/identity"
	scheduleService "github.com/salaoflow/booking-service/internal/service/schedule"
	confirmBookingUC "github.com/salaoflow/booking-service/internal/usecase/confirm_booking"
	createAppointmentUC "github.com/salaoflow/booking-service/internal/usecase/create_appointment"
	registerCustomerUC "github.com/salaoflow/booking-service/internal/usecase/register_customer"
	"github.com/salaoflow/booking-service/pkg/dbmetrics"
	"github.com/salaoflow/booking-service/pkg/logger"
	"github.com/salaoflow/booking-service/pkg/metrics"
	"github.com/salaoflow/booking-service/pkg/simpletxmanager"
	"github.com/salaoflow/booking-service/pkg/txmanager"
)

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

	log.Info("Starting SalaoFlow BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	// Инициализируем хранилище сессий
	sessionTTL := time.Duration(cfg.SessionStore.TTLMinutes) * time.Minute
	var sessionStore bookingflowService.SessionStore

	if cfg.SessionStore.Backend == "redis" {
		redisClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.SessionStore.RedisAddr,
			Password: cfg.SessionStore.RedisPassword,
			DB:       cfg.SessionStore.RedisDB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		sessionStore = redisSessionStore.NewStore(redisClient, sessionTTL)
		log.Info("Session store: redis (%s, ttl=%s)", cfg.SessionStore.RedisAddr, sessionTTL)
	} else {
		sessionStore = memorySessionStore.NewStore(sessionTTL)
		log.Info("Session store: in-memory (ttl=%s)", sessionTTL)
	}

	// Инициализируем интеграционных клиентов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	customerClient := customerServiceClient.NewClient(
		cfg.CustomerService.URL,
		time.Duration(cfg.CustomerService.Timeout)*time.Second,
		log,
	)
	appointmentClient := appointmentServiceClient.NewClient(
		cfg.AppointmentService.URL,
		time.Duration(cfg.AppointmentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Catalog=%s, Customer=%s, Appointment=%s)",
		cfg.CatalogService.URL, cfg.CustomerService.URL, cfg.AppointmentService.URL)

	// Инициализируем публикацию событий
	var publisher events.Publisher
	if cfg.Events.Enabled {
		amqpPublisher, err := events.NewAmqpPublisher(cfg.Events.AmqpURL, cfg.Events.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to rabbitmq: %v", err)
		}
		publisher = amqpPublisher
		log.Info("Event publisher connected to %s (exchange=%s)", cfg.Events.AmqpURL, cfg.Events.Exchange)
	} else {
		publisher = events.NoopPublisher{}
		log.Info("Event publishing disabled")
	}
	defer publisher.Close()

	// Инициализируем репозитории (с метриками или без)
	var (
		customerRepository    *customerRepo.Repository
		appointmentRepository *appointmentRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		customerRepository = customerRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		customerRepository = customerRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		cfg.Booking.WorkdayStartHour,
		cfg.Booking.WorkdayEndHour,
		cfg.Booking.SlotStepMinutes,
	)
	catalogSvc := catalogService.NewService(catalogClient, log)
	identityResolver := identityService.NewResolver(customerClient, log)
	flowSvc := bookingflowService.NewService(
		sessionStore,
		catalogSvc,
		scheduleSvc,
		&bookingflowService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		sessionStore,
		identityResolver,
		appointmentClient,
		catalogSvc,
		log,
	)
	registerCustomerUseCase := registerCustomerUC.NewUseCase(
		customerRepository,
		txMgr,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		customerRepository,
		appointmentRepository,
		publisher,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(flowSvc, log)
	getSession := getSessionHandler.NewHandler(flowSvc, log)
	beginBooking := beginBookingHandler.NewHandler(flowSvc, log)
	selectCategory := selectCategoryHandler.NewHandler(flowSvc, log)
	selectService := selectServiceHandler.NewHandler(flowSvc, log)
	selectProfessional := selectProfessionalHandler.NewHandler(flowSvc, log)
	selectDate := selectDateHandler.NewHandler(flowSvc, log)
	selectTime := selectTimeHandler.NewHandler(flowSvc, log)
	goBack := goBackHandler.NewHandler(flowSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(scheduleSvc, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(scheduleSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getProfessionals := getProfessionalsHandler.NewHandler(catalogSvc, log)
	registerCustomer := registerCustomerHandler.NewHandler(registerCustomerUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// ФЛОУ ЗАПИСИ (оркестратор)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()

	// Сессии
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", getSession.Handle).Methods(http.MethodGet)

	// Шаги флоу
	api.HandleFunc("/sessions/{id}/begin", beginBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/category", selectCategory.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/service", selectService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/professional", selectProfessional.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/date", selectDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/time", selectTime.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/back", goBack.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// Справочники для UI
	api.HandleFunc("/calendar/{year}/{month}", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getTimeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals", getProfessionals.Handle).Methods(http.MethodGet)

	// ============================================================
	// ВНЕШНИЕ ИНТЕГРАЦИИ (реестр клиентов и хранилище записей)
	// ============================================================

	r.HandleFunc("/api/register-customer", registerCustomer.Handle).Methods(http.MethodPost)
	r.HandleFunc("/api/create-appointment", createAppointment.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
