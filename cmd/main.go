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

	assignBookingHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/assign_booking"
	bookingResultsHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/booking_results"
	calendarEventsHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/calendar_events"
	capacityOverridesHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/capacity_overrides"
	confirmBookingHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/create_booking"
	dayBlocksHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/day_blocks"
	exportBookingsHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/export_bookings"
	getBookingHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/list_bookings"
	packagesHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/packages"
	probeCapacityHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/probe_capacity"
	rejectBookingHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/reject_booking"
	teamHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/team"
	teamUnavailableHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/team_unavailable"
	updateSessionStatusHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/update_session_status"
	uploadAttachmentHandler "github.com/m04kA/SMC-PhotoStudioService/internal/api/handlers/upload_attachment"
	"github.com/m04kA/SMC-PhotoStudioService/internal/api/middleware"
	"github.com/m04kA/SMC-PhotoStudioService/internal/config"
	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	attachmentRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/attachment"
	bookingRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/booking"
	capacityOverrideRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/capacityoverride"
	dayBlockRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/dayblock"
	packageRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/photopackage"
	teamUnavailableRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/teamunavailable"
	userRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/user"
	"github.com/m04kA/SMC-PhotoStudioService/internal/integrations/mailer"
	attachmentsService "github.com/m04kA/SMC-PhotoStudioService/internal/service/attachments"
	availabilityService "github.com/m04kA/SMC-PhotoStudioService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-PhotoStudioService/internal/service/bookings"
	calendarService "github.com/m04kA/SMC-PhotoStudioService/internal/service/calendar"
	capacityService "github.com/m04kA/SMC-PhotoStudioService/internal/service/capacity"
	packagesService "github.com/m04kA/SMC-PhotoStudioService/internal/service/packages"
	resultsService "github.com/m04kA/SMC-PhotoStudioService/internal/service/results"
	teamService "github.com/m04kA/SMC-PhotoStudioService/internal/service/team"
	confirmBookingUC "github.com/m04kA/SMC-PhotoStudioService/internal/usecase/confirm_booking"
	createBookingUC "github.com/m04kA/SMC-PhotoStudioService/internal/usecase/create_booking"
	probeCapacityUC "github.com/m04kA/SMC-PhotoStudioService/internal/usecase/probe_capacity"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/filestore"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/logger"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/metrics"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/txmanager"
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

	log.Info("Starting SMC-PhotoStudioService...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс студии: в нем считаются границы дня для блокировок
	// и расчета вместимости
	location, err := cfg.Studio.Location()
	if err != nil {
		log.Fatal("Failed to load studio timezone: %v", err)
	}
	log.Info("Studio timezone: %s", cfg.Studio.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Локальное файловое хранилище вложений
	store, err := filestore.New(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize file store: %v", err)
	}
	log.Info("File store initialized at %s", cfg.Storage.UploadDir)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Инициализируем репозитории (с метриками или без)
	var (
		bookings    *bookingRepo.Repository
		dayBlocks   *dayBlockRepo.Repository
		overrides   *capacityOverrideRepo.Repository
		unavailable *teamUnavailableRepo.Repository
		users       *userRepo.Repository
		packages    *packageRepo.Repository
		attachments *attachmentRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookings = bookingRepo.NewRepository(wrappedDB)
		dayBlocks = dayBlockRepo.NewRepository(wrappedDB)
		overrides = capacityOverrideRepo.NewRepository(wrappedDB)
		unavailable = teamUnavailableRepo.NewRepository(wrappedDB)
		users = userRepo.NewRepository(wrappedDB)
		packages = packageRepo.NewRepository(wrappedDB)
		attachments = attachmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookings = bookingRepo.NewRepository(db)
		dayBlocks = dayBlockRepo.NewRepository(db)
		overrides = capacityOverrideRepo.NewRepository(db)
		unavailable = teamUnavailableRepo.NewRepository(db)
		users = userRepo.NewRepository(db)
		packages = packageRepo.NewRepository(db)
		attachments = attachmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Почтовые уведомления (при smtp.enabled = false только логируются)
	mail := mailer.New(cfg.SMTP, cfg.Studio.Name, location, log)

	// Инициализируем сервисы
	capacitySvc := capacityService.NewService(bookings, dayBlocks, overrides, unavailable, users, location)
	calendarSvc := calendarService.NewService(bookings, dayBlocks, location)
	bookingsSvc := bookingsService.NewService(bookings, users, mail, log)
	availabilitySvc := availabilityService.NewService(dayBlocks, overrides, unavailable, users, location, log)
	packagesSvc := packagesService.NewService(packages, log)
	teamSvc := teamService.NewService(users, log)
	attachmentsSvc := attachmentsService.NewService(bookings, attachments, store, log)
	resultsSvc := resultsService.NewService(
		bookings,
		attachments,
		mail,
		log,
		cfg.Studio.BaseURL,
		cfg.Results.TokenSecret,
		time.Duration(cfg.Results.TokenTTLMinutes)*time.Minute,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookings, packages, capacitySvc, txMgr, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(bookings, capacitySvc, mail, txMgr, log)
	probeCapacityUseCase := probeCapacityUC.NewUseCase(capacitySvc, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	probeCapacity := probeCapacityHandler.NewHandler(probeCapacityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	assignBooking := assignBookingHandler.NewHandler(bookingsSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingsSvc, log)
	updateSessionStatus := updateSessionStatusHandler.NewHandler(bookingsSvc, log)
	calendarEvents := calendarEventsHandler.NewHandler(calendarSvc, log)
	dayBlocksH := dayBlocksHandler.NewHandler(availabilitySvc, log)
	capacityOverrides := capacityOverridesHandler.NewHandler(availabilitySvc, log)
	teamUnavailable := teamUnavailableHandler.NewHandler(availabilitySvc, log)
	packagesH := packagesHandler.NewHandler(packagesSvc, log)
	teamH := teamHandler.NewHandler(teamSvc, log)
	uploadAttachment := uploadAttachmentHandler.NewHandler(attachmentsSvc, bookingsSvc, log)
	bookingResults := bookingResultsHandler.NewHandler(resultsSvc, attachmentsSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingsSvc, location, log)

	// Ограничитель частоты запросов для публичных эндпоинтов
	rateLimiter := middleware.NewRateLimiter(
		cfg.RateLimit.RPS,
		cfg.RateLimit.Burst,
		time.Duration(cfg.RateLimit.TTLMinutes)*time.Minute,
	)
	defer rateLimiter.Stop()

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, с rate limit)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.RateLimit(rateLimiter))

	// Каталог пакетов съемки
	public.HandleFunc("/packages", packagesH.HandleList).Methods(http.MethodGet)
	public.HandleFunc("/packages/{packageId:[0-9]+}", packagesH.HandleGet).Methods(http.MethodGet)

	// Предварительная проверка доступности времени
	public.HandleFunc("/bookings/capacity", probeCapacity.Handle).Methods(http.MethodPost)

	// Скачивание результата по подписанному токену
	public.HandleFunc("/results/download", bookingResults.HandleDownload).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(users, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/session-status", updateSessionStatus.Handle).Methods(http.MethodPatch)

	// --- Вложения ---
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/attachments", uploadAttachment.HandleUpload).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/attachments", uploadAttachment.HandleList).Methods(http.MethodGet)

	// --- Результаты съемки ---
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/results", bookingResults.HandleAccess).Methods(http.MethodPost)

	// --- Календарь ---
	protected.HandleFunc("/calendar/events", calendarEvents.Handle).Methods(http.MethodGet)

	// --- Недоступность сотрудников (админ и сотрудники) ---
	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireRoles(domain.RoleAdmin, domain.RoleTeam))
	staff.HandleFunc("/availability/team-unavailable", teamUnavailable.HandleList).Methods(http.MethodGet)
	staff.HandleFunc("/availability/team-unavailable", teamUnavailable.HandleCreate).Methods(http.MethodPost)
	staff.HandleFunc("/availability/team-unavailable/{entryId:[0-9]+}", teamUnavailable.HandleDelete).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireRoles(domain.RoleAdmin))

	// --- Модерация бронирований ---
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/assign", assignBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/reject", rejectBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/results/publish", bookingResults.HandlePublish).Methods(http.MethodPost)

	// --- Блокировки дней ---
	admin.HandleFunc("/availability/day-blocks", dayBlocksH.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/availability/day-blocks", dayBlocksH.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/availability/day-blocks/{blockId:[0-9]+}", dayBlocksH.HandleDelete).Methods(http.MethodDelete)

	// --- Переопределения вместимости ---
	admin.HandleFunc("/availability/capacity-overrides", capacityOverrides.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/availability/capacity-overrides", capacityOverrides.HandleSet).Methods(http.MethodPost, http.MethodPut)
	admin.HandleFunc("/availability/capacity-overrides/{day}", capacityOverrides.HandleDelete).Methods(http.MethodDelete)

	// --- Управление пакетами ---
	admin.HandleFunc("/packages", packagesH.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/packages/{packageId:[0-9]+}", packagesH.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/packages/{packageId:[0-9]+}", packagesH.HandleDelete).Methods(http.MethodDelete)

	// --- Команда ---
	admin.HandleFunc("/team", teamH.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/team", teamH.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/team/{userId:[0-9]+}/active", teamH.HandleSetActive).Methods(http.MethodPatch)

	// --- Отчеты ---
	admin.HandleFunc("/admin/bookings/export", exportBookings.Handle).Methods(http.MethodGet)

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
