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

	chatbotMessageHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/chatbot_message"
	createAppointmentHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/create_appointment"
	createInvoiceHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/create_invoice"
	createLeadHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/create_lead"
	getAppointmentHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/get_appointment"
	getAppointmentsByDateHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/get_appointments_by_date"
	getAvailableDatesHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/get_available_slots"
	getExperimentStatsHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/get_experiment_stats"
	getLeadsHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/get_leads"
	getVariantHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/get_variant"
	recordConversionHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/record_conversion"
	stripeWebhookHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/stripe_webhook"
	updateAppointmentHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/update_appointment"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/update_appointment_status"
	updateLeadStatusHandler "github.com/m04kA/SMC-SiteOpsService/internal/api/handlers/update_lead_status"
	"github.com/m04kA/SMC-SiteOpsService/internal/api/middleware"
	"github.com/m04kA/SMC-SiteOpsService/internal/config"
	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	appointmentStorage "github.com/m04kA/SMC-SiteOpsService/internal/infra/storage/appointment"
	leadStorage "github.com/m04kA/SMC-SiteOpsService/internal/infra/storage/lead"
	freshbooksClient "github.com/m04kA/SMC-SiteOpsService/internal/integrations/freshbooks"
	smtpmailClient "github.com/m04kA/SMC-SiteOpsService/internal/integrations/smtpmail"
	stripeClient "github.com/m04kA/SMC-SiteOpsService/internal/integrations/stripeinvoice"
	twilioClient "github.com/m04kA/SMC-SiteOpsService/internal/integrations/twilio"
	zapierClient "github.com/m04kA/SMC-SiteOpsService/internal/integrations/zapier"
	abtestService "github.com/m04kA/SMC-SiteOpsService/internal/service/abtest"
	appointmentsService "github.com/m04kA/SMC-SiteOpsService/internal/service/appointments"
	billingService "github.com/m04kA/SMC-SiteOpsService/internal/service/billing"
	chatbotService "github.com/m04kA/SMC-SiteOpsService/internal/service/chatbot"
	leadsService "github.com/m04kA/SMC-SiteOpsService/internal/service/leads"
	notificationsService "github.com/m04kA/SMC-SiteOpsService/internal/service/notifications"
	createAppointmentUC "github.com/m04kA/SMC-SiteOpsService/internal/usecase/create_appointment"
	getAvailableDatesUC "github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/SMC-SiteOpsService/internal/usecase/get_available_slots"
	rescheduleAppointmentUC "github.com/m04kA/SMC-SiteOpsService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-SiteOpsService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SiteOpsService/pkg/logger"
	"github.com/m04kA/SMC-SiteOpsService/pkg/memtx"
	"github.com/m04kA/SMC-SiteOpsService/pkg/metrics"
	"github.com/m04kA/SMC-SiteOpsService/pkg/txmanager"
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

	log.Info("Starting SMC-SiteOpsService...")
	log.Info("Configuration loaded from config.toml")

	// Конфигурация календаря (таймзона и рабочие часы)
	calendar, err := cfg.CalendarDomain()
	if err != nil {
		log.Fatal("Failed to load calendar configuration: %v", err)
	}
	log.Info("Calendar configured: timezone=%s, slot=%dm, buffer=%dm, horizon=%dd",
		calendar.Timezone, calendar.SlotDurationMinutes, calendar.BufferMinutes, calendar.MaxAdvanceDays)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Полный набор операций хранилища записей: usecases и сервисы
	// объявляют свои узкие подмножества этого интерфейса
	type AppointmentStore interface {
		Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
		GetByID(ctx context.Context, id string) (*domain.Appointment, error)
		GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
		Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
		UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	}

	// Инициализируем хранилища согласно выбранному драйверу
	var (
		appointmentStore AppointmentStore
		leadStore        leadsService.LeadRepository
		txMgr            TxManager
	)

	switch cfg.Storage.Driver {
	case "postgres":
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			appointmentStore = appointmentStorage.NewRepository(wrappedDB)
			leadStore = leadStorage.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			appointmentStore = appointmentStorage.NewRepository(db)
			leadStore = leadStorage.NewRepository(db)
			txMgr = txmanager.NewTransactionManager(&txmanager.SQLDBAdapter{DB: db})
		}

	default:
		// Журнал записей в памяти: состояние теряется при рестарте
		appointmentStore = appointmentStorage.NewMemoryStore()
		leadStore = leadStorage.NewMemoryStore()
		txMgr = memtx.NewManager()
		log.Info("Using in-memory storage (state is lost on restart)")
	}

	// Инициализируем интеграционных клиентов (nil, если канал выключен)
	var emailSender notificationsService.EmailSender
	if cfg.Integrations.SMTP.Enabled {
		emailSender = smtpmailClient.NewClient(
			cfg.Integrations.SMTP.Host,
			cfg.Integrations.SMTP.Port,
			cfg.Integrations.SMTP.Username,
			cfg.Integrations.SMTP.Password,
			cfg.Integrations.SMTP.From,
			log,
		)
		log.Info("SMTP client initialized (host=%s, port=%d)",
			cfg.Integrations.SMTP.Host, cfg.Integrations.SMTP.Port)
	}

	var smsSender notificationsService.SMSSender
	if cfg.Integrations.Twilio.Enabled {
		smsSender = twilioClient.NewClient(
			cfg.Integrations.Twilio.BaseURL,
			cfg.Integrations.Twilio.AccountSID,
			cfg.Integrations.Twilio.AuthToken,
			cfg.Integrations.Twilio.FromNumber,
			time.Duration(cfg.Integrations.Twilio.Timeout)*time.Second,
			log,
		)
		log.Info("Twilio client initialized (from=%s)", cfg.Integrations.Twilio.FromNumber)
	}

	var hookClient notificationsService.HookClient
	if cfg.Integrations.Zapier.Enabled {
		hookClient = zapierClient.NewClient(
			time.Duration(cfg.Integrations.Zapier.Timeout)*time.Second,
			log,
		)
		log.Info("Zapier client initialized")
	}

	// Сервис уведомлений: все доменные события проходят через него
	notifier := notificationsService.NewService(
		notificationsService.Config{
			Enabled:        cfg.Notifications.Enabled,
			AdminEmail:     cfg.Notifications.AdminEmail,
			AdminPhone:     cfg.Notifications.AdminPhone,
			NotifyCustomer: cfg.Notifications.NotifyCustomer,
			LeadHookURL:    cfg.Integrations.Zapier.LeadHookURL,
			BookingHookURL: cfg.Integrations.Zapier.BookingHookURL,
			InvoiceHookURL: cfg.Integrations.Zapier.InvoiceHookURL,
		},
		emailSender,
		smsSender,
		hookClient,
		metricsCollector,
		log,
	)

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentStore, notifier, log)
	leadSvc := leadsService.NewService(leadStore, notifier, log)
	abtestSvc := abtestService.NewService(cfg.Experiments(), metricsCollector, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(appointmentStore, calendar, log)

	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(getAvailableSlotsUseCase, calendar, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentStore,
		getAvailableSlotsUseCase,
		calendar,
		cfg.ProjectPrices(),
		txMgr,
		notifier,
		log,
	)

	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentStore,
		getAvailableSlotsUseCase,
		calendar,
		txMgr,
		notifier,
		log,
	)

	// Чат-бот: правила намерений из конфигурации
	intents := make([]chatbotService.Intent, 0, len(cfg.Chatbot.Intents))
	for _, intent := range cfg.Chatbot.Intents {
		intents = append(intents, chatbotService.Intent{
			Name:       intent.Name,
			Keywords:   intent.Keywords,
			Reply:      intent.Reply,
			OfferDates: intent.OfferDates,
		})
	}
	chatbotSvc := chatbotService.NewService(
		cfg.Chatbot.Greeting,
		cfg.Chatbot.FallbackReply,
		intents,
		getAvailableDatesUseCase,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getAppointmentsByDate := getAppointmentsByDateHandler.NewHandler(appointmentSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentSvc, rescheduleAppointmentUseCase, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	createLead := createLeadHandler.NewHandler(leadSvc, log)
	getLeads := getLeadsHandler.NewHandler(leadSvc, log)
	updateLeadStatus := updateLeadStatusHandler.NewHandler(leadSvc, log)
	chatbotMessage := chatbotMessageHandler.NewHandler(chatbotSvc, log)
	getVariant := getVariantHandler.NewHandler(abtestSvc, log)
	recordConversion := recordConversionHandler.NewHandler(abtestSvc, log)
	getExperimentStats := getExperimentStatsHandler.NewHandler(abtestSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Календарь записей ---
	// Слоты на дату
	api.HandleFunc("/appointments/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Даты со свободными слотами
	api.HandleFunc("/appointments/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// --- Заявки ---
	// Создание заявки
	api.HandleFunc("/leads", createLead.Handle).Methods(http.MethodPost)

	// --- Чат-бот ---
	api.HandleFunc("/chatbot/message", chatbotMessage.Handle).Methods(http.MethodPost)

	// --- A/B-эксперименты ---
	// Назначение варианта посетителю
	api.HandleFunc("/abtests/{testId}/variant", getVariant.Handle).Methods(http.MethodGet)

	// Фиксация конверсии
	api.HandleFunc("/abtests/{testId}/convert", recordConversion.Handle).Methods(http.MethodPost)

	// --- Биллинг (если Stripe включен) ---
	if cfg.Integrations.Stripe.Enabled {
		stripe := stripeClient.NewClient(
			cfg.Integrations.Stripe.APIKey,
			cfg.Integrations.Stripe.WebhookSecret,
			time.Duration(cfg.Integrations.Stripe.WebhookTolerance)*time.Second,
			log,
		)
		log.Info("Stripe client initialized")

		var freshbooks billingService.FreshBooksClient
		if cfg.Integrations.FreshBooks.Enabled {
			freshbooks = freshbooksClient.NewClient(
				cfg.Integrations.FreshBooks.BaseURL,
				cfg.Integrations.FreshBooks.AccountID,
				cfg.Integrations.FreshBooks.APIToken,
				time.Duration(cfg.Integrations.FreshBooks.Timeout)*time.Second,
				log,
			)
			log.Info("FreshBooks client initialized (account=%s)", cfg.Integrations.FreshBooks.AccountID)
		}

		billingSvc := billingService.NewService(stripe, freshbooks, notifier, metricsCollector, log)

		stripeWebhook := stripeWebhookHandler.NewHandler(billingSvc, log)
		createInvoice := createInvoiceHandler.NewHandler(billingSvc, log)

		// Вебхуки Stripe (подпись проверяется в сервисе)
		api.HandleFunc("/webhooks/stripe", stripeWebhook.Handle).Methods(http.MethodPost)

		// Выставление счета (админский маршрут)
		billingProtected := api.PathPrefix("").Subrouter()
		billingProtected.Use(middleware.Auth(cfg.Auth.AdminToken))
		billingProtected.HandleFunc("/invoices", createInvoice.Handle).Methods(http.MethodPost)
	}

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.AdminToken))

	// --- Записи ---
	// Список записей на дату
	protected.HandleFunc("/appointments", getAppointmentsByDate.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена или перенос записи
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Заявки ---
	// Список заявок
	protected.HandleFunc("/leads", getLeads.Handle).Methods(http.MethodGet)

	// Смена статуса заявки
	protected.HandleFunc("/leads/{leadId}/status", updateLeadStatus.Handle).Methods(http.MethodPatch)

	// --- A/B-эксперименты ---
	// Статистика эксперимента
	protected.HandleFunc("/abtests/{testId}/stats", getExperimentStats.Handle).Methods(http.MethodGet)

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
