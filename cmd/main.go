package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"github.com/chaxxbarbers/booking-service/internal/api/handlers"
	blockSlotHandler "github.com/chaxxbarbers/booking-service/internal/api/handlers/block_slot"
	cancelBookingHandler "github.com/chaxxbarbers/booking-service/internal/api/handlers/cancel_booking"
	createBookingsHandler "github.com/chaxxbarbers/booking-service/internal/api/handlers/create_bookings"
	createUserHandler "github.com/chaxxbarbers/booking-service/internal/api/handlers/create_user"
	getAvailableSlotsHandler "github.com/chaxxbarbers/booking-service/internal/api/handlers/get_available_slots"
	listBlockedSlotsHandler "github.com/chaxxbarbers/booking-service/internal/api/handlers/list_blocked_slots"
	listBookingsHandler "github.com/chaxxbarbers/booking-service/internal/api/handlers/list_bookings"
	listUsersHandler "github.com/chaxxbarbers/booking-service/internal/api/handlers/list_users"
	loginHandler "github.com/chaxxbarbers/booking-service/internal/api/handlers/login"
	unblockSlotHandler "github.com/chaxxbarbers/booking-service/internal/api/handlers/unblock_slot"
	"github.com/chaxxbarbers/booking-service/internal/api/middleware"
	"github.com/chaxxbarbers/booking-service/internal/config"
	"github.com/chaxxbarbers/booking-service/internal/domain"
	blockedSlotRepo "github.com/chaxxbarbers/booking-service/internal/infra/storage/blockedslot"
	bookingRepo "github.com/chaxxbarbers/booking-service/internal/infra/storage/booking"
	userRepo "github.com/chaxxbarbers/booking-service/internal/infra/storage/user"
	mailjetClient "github.com/chaxxbarbers/booking-service/internal/integrations/mailjet"
	bookingsService "github.com/chaxxbarbers/booking-service/internal/service/bookings"
	notificationsService "github.com/chaxxbarbers/booking-service/internal/service/notifications"
	scheduleService "github.com/chaxxbarbers/booking-service/internal/service/schedule"
	usersService "github.com/chaxxbarbers/booking-service/internal/service/users"
	admitBookingsUC "github.com/chaxxbarbers/booking-service/internal/usecase/admit_bookings"
	getAvailabilityUC "github.com/chaxxbarbers/booking-service/internal/usecase/get_availability"
	loginUC "github.com/chaxxbarbers/booking-service/internal/usecase/login"
	"github.com/chaxxbarbers/booking-service/pkg/dbmetrics"
	"github.com/chaxxbarbers/booking-service/pkg/logger"
	"github.com/chaxxbarbers/booking-service/pkg/metrics"
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

	log.Info("Starting booking-service...")
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

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	blockedSlotRepository := blockedSlotRepo.NewRepository(executor)
	userRepository := userRepo.NewRepository(executor)

	// Инициализируем почтового клиента Mailjet
	mailer := mailjetClient.NewClient(
		cfg.Mailjet.APIKey,
		cfg.Mailjet.SecretKey,
		time.Duration(cfg.Mailjet.Timeout)*time.Second,
		log,
	)
	if mailer.IsConfigured() {
		log.Info("Mailjet client initialized (from=%s, admin=%s)", cfg.Mailjet.FromEmail, cfg.Mailjet.AdminEmail)
	} else {
		log.Warn("Mailjet credentials missing, email notifications disabled")
	}

	// Инициализируем сервисы
	notificationsSvc := notificationsService.NewService(
		mailer,
		cfg.Mailjet.FromEmail,
		cfg.Mailjet.FromName,
		cfg.Mailjet.AdminEmail,
		log,
	)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := scheduleService.NewService(blockedSlotRepository, log)
	usersSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	admitBookingsUseCase := admitBookingsUC.NewUseCase(bookingRepository, notificationsSvc, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingRepository, blockedSlotRepository, log)
	loginUseCase := loginUC.NewUseCase(userRepository, log)

	// Создаем админа при первом запуске
	if err := seedAdminUser(context.Background(), cfg, userRepository, log); err != nil {
		log.Fatal("Failed to seed admin user: %v", err)
	}

	// Инициализируем handlers
	createBookings := createBookingsHandler.NewHandler(admitBookingsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailabilityUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	blockSlot := blockSlotHandler.NewHandler(scheduleSvc, log)
	unblockSlot := unblockSlotHandler.NewHandler(scheduleSvc, log)
	listBlockedSlots := listBlockedSlotsHandler.NewHandler(scheduleSvc, log)
	loginH := loginHandler.NewHandler(loginUseCase, log)
	createUser := createUserHandler.NewHandler(usersSvc, log)
	listUsers := listUsersHandler.NewHandler(usersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// JSON 404 вместо стандартного plain-text ответа
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		handlers.RespondNotFound(w, "Route not found")
	})

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Создание бронирований: одиночное или пакетное
	r.HandleFunc("/bookings", createBookings.Handle).Methods(http.MethodPost)

	// Доступность слотов на дату
	r.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Вход администратора
	r.HandleFunc("/login", loginH.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := r.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Блокировки расписания ---
	admin.HandleFunc("/admin/block-slot", blockSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/admin/unblock-slot", unblockSlot.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/admin/blocked-slots", listBlockedSlots.Handle).Methods(http.MethodGet)

	// --- Учетные записи ---
	admin.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)

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

// seedAdminUser создает администратора из конфигурации, если его еще нет.
// Повторные запуски сервиса ничего не меняют.
func seedAdminUser(ctx context.Context, cfg *config.Config, repo *userRepo.Repository, log *logger.Logger) error {
	if cfg.Admin.SeedEmail == "" || cfg.Admin.SeedPassword == "" {
		log.Warn("Admin seed credentials missing, skipping admin user creation")
		return nil
	}

	_, err := repo.GetByEmail(ctx, cfg.Admin.SeedEmail)
	if err == nil {
		log.Info("Admin user already exists (%s)", cfg.Admin.SeedEmail)
		return nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	hashStr := string(hash)
	email := cfg.Admin.SeedEmail
	created, err := repo.Create(ctx, &domain.User{
		Name:         "Admin",
		Email:        &email,
		PasswordHash: &hashStr,
	})
	if err != nil {
		return err
	}

	log.Info("Admin user created (id=%d, email=%s)", created.ID, cfg.Admin.SeedEmail)
	return nil
}
