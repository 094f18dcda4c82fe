package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	adminLoginHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/admin_login"
	createAppointmentHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/create_appointment"
	createOrderHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/create_order"
	getAvailableSlotsHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/get_available_slots"
	lineWebhookHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/line_webhook"
	listAppointmentsHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/list_appointments"
	listOrdersHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/list_orders"
	manageGalleryHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/manage_gallery"
	manageProductsHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/manage_products"
	managePromotionsHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/manage_promotions"
	manageServicesHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/manage_services"
	manageSettingsHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/manage_settings"
	manageStaffHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/manage_staff"
	setOrderStatusHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/set_order_status"
	transitionAppointmentHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/transition_appointment"
	updateOrderHandler "github.com/mulelash/MB-BeautyService/internal/api/handlers/update_order"
	"github.com/mulelash/MB-BeautyService/internal/api/middleware"
	"github.com/mulelash/MB-BeautyService/internal/api/ws"
	"github.com/mulelash/MB-BeautyService/internal/config"
	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/internal/infra/dedup"
	"github.com/mulelash/MB-BeautyService/internal/infra/filestore"
	appointmentRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/appointment"
	catalogRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/catalog"
	galleryRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/gallery"
	orderRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/order"
	outboxRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/outbox"
	promotionRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/promotion"
	settingsRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/settings"
	staffRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/staff"
	"github.com/mulelash/MB-BeautyService/internal/integrations/lineauth"
	"github.com/mulelash/MB-BeautyService/internal/integrations/linemessaging"
	"github.com/mulelash/MB-BeautyService/internal/notify"
	appointmentsService "github.com/mulelash/MB-BeautyService/internal/service/appointments"
	catalogService "github.com/mulelash/MB-BeautyService/internal/service/catalog"
	galleryService "github.com/mulelash/MB-BeautyService/internal/service/gallery"
	ordersService "github.com/mulelash/MB-BeautyService/internal/service/orders"
	promotionsService "github.com/mulelash/MB-BeautyService/internal/service/promotions"
	settingsService "github.com/mulelash/MB-BeautyService/internal/service/settings"
	staffService "github.com/mulelash/MB-BeautyService/internal/service/staff"
	"github.com/mulelash/MB-BeautyService/internal/store"
	createAppointmentUC "github.com/mulelash/MB-BeautyService/internal/usecase/create_appointment"
	createOrderUC "github.com/mulelash/MB-BeautyService/internal/usecase/create_order"
	getAvailableSlotsUC "github.com/mulelash/MB-BeautyService/internal/usecase/get_available_slots"
	transitionAppointmentUC "github.com/mulelash/MB-BeautyService/internal/usecase/transition_appointment"
	"github.com/mulelash/MB-BeautyService/pkg/dbmetrics"
	"github.com/mulelash/MB-BeautyService/pkg/logger"
	"github.com/mulelash/MB-BeautyService/pkg/metrics"
	"github.com/mulelash/MB-BeautyService/pkg/simpletxmanager"
	"github.com/mulelash/MB-BeautyService/pkg/txmanager"
)

func main() {
	// .env is optional; deployments set real environment variables
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting MB-BeautyService...")
	log.Info("Configuration loaded from config.toml")

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set; refusing to start without a signing key")
	}

	// Metrics (if enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Database
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

	// Transaction manager and the executor repositories share
	type txMgrIface interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr txMgrIface
	var dbExec dbmetrics.DBExecutor = db

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, 15*time.Second, stopMetricsCh)
		dbExec = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Repositories
	appointmentRepository := appointmentRepo.NewRepository(dbExec)
	catalogRepository := catalogRepo.NewRepository(dbExec)
	staffRepository := staffRepo.NewRepository(dbExec)
	orderRepository := orderRepo.NewRepository(dbExec)
	outboxRepository := outboxRepo.NewRepository(dbExec)
	promotionRepository := promotionRepo.NewRepository(dbExec)
	settingsRepository := settingsRepo.NewRepository(dbExec)
	galleryRepository := galleryRepo.NewRepository(dbExec)

	// Redis-backed webhook dedup (if enabled)
	var deduper lineWebhookHandler.Deduper = dedup.Noop{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		defer redisClient.Close()
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		deduper = dedup.NewRedisDeduper(redisClient)
		log.Info("Redis connected at %s, webhook dedup enabled", cfg.Redis.Addr)
	}

	// File storage for gallery uploads
	files, err := filestore.NewStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL, cfg.Uploads.ThumbnailWidth, log)
	if err != nil {
		log.Fatal("Failed to initialize file store: %v", err)
	}

	// LINE integration clients
	lineVerifier := lineauth.NewClient(
		cfg.Line.ChannelID,
		time.Duration(cfg.Line.VerifyTimeout)*time.Second,
		log,
	)
	lineSender := linemessaging.NewClient(
		cfg.Line.ChannelAccessToken,
		time.Duration(cfg.Line.PushTimeout)*time.Second,
		log,
	)
	log.Info("LINE clients initialized (channel=%s, verify timeout=%ds, push timeout=%ds)",
		cfg.Line.ChannelID, cfg.Line.VerifyTimeout, cfg.Line.PushTimeout)

	// Reactive hub: services publish after each mutation, the websocket
	// endpoint streams fresh snapshots to subscribers
	hub := store.NewHub(log)
	registerCollections(hub, appointmentRepository, orderRepository, catalogRepository,
		staffRepository, promotionRepository, settingsRepository, galleryRepository)

	// Services
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, hub, log)
	staffSvc := staffService.NewService(staffRepository, hub, log)
	ordersSvc := ordersService.NewService(orderRepository, hub, log)
	promotionsSvc := promotionsService.NewService(promotionRepository, hub, log)
	settingsSvc := settingsService.NewService(settingsRepository, hub, log)
	gallerySvc := galleryService.NewService(galleryRepository, files, hub, log)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		staffRepository,
		txMgr,
		hub,
		cfg.Booking.AutoConfirm,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(catalogRepository, staffRepository, log)
	transitionAppointmentUseCase := transitionAppointmentUC.NewUseCase(
		appointmentRepository,
		outboxRepository,
		txMgr,
		hub,
		log,
	)
	createOrderUseCase := createOrderUC.NewUseCase(orderRepository, catalogRepository, txMgr, hub, log)

	// Notification dispatcher drains the outbox in the background
	dispatcher := notify.NewDispatcher(
		outboxRepository,
		lineSender,
		time.Duration(cfg.Booking.OutboxPollSeconds)*time.Second,
		cfg.Booking.OutboxMaxAttempts,
		log,
	)
	dispatchCtx, stopDispatcher := context.WithCancel(context.Background())
	go dispatcher.Run(dispatchCtx)
	log.Info("Notification dispatcher started (poll=%ds, max attempts=%d)",
		cfg.Booking.OutboxPollSeconds, cfg.Booking.OutboxMaxAttempts)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	transitionAppointment := transitionAppointmentHandler.NewHandler(transitionAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	listOrders := listOrdersHandler.NewHandler(ordersSvc, log)
	setOrderStatus := setOrderStatusHandler.NewHandler(ordersSvc, log)
	updateOrder := updateOrderHandler.NewHandler(ordersSvc, log)
	manageServices := manageServicesHandler.NewHandler(catalogSvc, log)
	manageProducts := manageProductsHandler.NewHandler(catalogSvc, log)
	manageStaff := manageStaffHandler.NewHandler(staffSvc, log)
	managePromotions := managePromotionsHandler.NewHandler(promotionsSvc, log)
	manageSettings := manageSettingsHandler.NewHandler(settingsSvc, log)
	manageGallery := manageGalleryHandler.NewHandler(gallerySvc, log)
	adminLogin := adminLoginHandler.NewHandler(
		lineVerifier,
		settingsSvc,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)
	lineWebhook := lineWebhookHandler.NewHandler(cfg.Line.ChannelSecret, deduper, log)
	wsSubscribe := ws.NewHandler(hub, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Uploaded gallery files
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))))

	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		api.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)

	api.HandleFunc("/services", manageServices.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/products", manageProducts.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/staff", manageStaff.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/promotions", managePromotions.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/gallery", manageGallery.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/settings", manageSettings.HandlePublicGet).Methods(http.MethodGet)

	api.HandleFunc("/auth/login", adminLogin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/line/webhook", lineWebhook.Handle).Methods(http.MethodPost)
	api.HandleFunc("/subscribe/{collection}", wsSubscribe.HandleSubscribe).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (operator token required)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Auth.JWTSecret))

	admin.HandleFunc("/appointments", listAppointments.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", listAppointments.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/status", transitionAppointment.Handle).Methods(http.MethodPatch)

	admin.HandleFunc("/orders", listOrders.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}", listOrders.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}/status", setOrderStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/orders/{id}", updateOrder.Handle).Methods(http.MethodPatch)

	admin.HandleFunc("/services", manageServices.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", manageServices.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", manageServices.HandleDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/products", manageProducts.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", manageProducts.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", manageProducts.HandleDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/staff", manageStaff.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/staff/{id}", manageStaff.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/staff/{id}", manageStaff.HandleDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/promotions", managePromotions.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/promotions/{id}", managePromotions.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/promotions/{id}", managePromotions.HandleDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/settings", manageSettings.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/settings", manageSettings.HandleUpdate).Methods(http.MethodPut)

	admin.HandleFunc("/gallery", manageGallery.HandleUpload).Methods(http.MethodPost)
	admin.HandleFunc("/gallery/{id}", manageGallery.HandleDelete).Methods(http.MethodDelete)

	// CORS: the LIFF app and the admin panel are served from other origins
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Line-Signature"},
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	stopDispatcher()

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

	log.Info("Server stopped")
}

// registerCollections installs one snapshot loader per published collection.
// Loader output uses the same response models the REST endpoints serve, so a
// client sees identical shapes over both transports.
func registerCollections(
	hub *store.Hub,
	appointments *appointmentRepo.Repository,
	orders *orderRepo.Repository,
	catalog *catalogRepo.Repository,
	staff *staffRepo.Repository,
	promotions *promotionRepo.Repository,
	settings *settingsRepo.Repository,
	gallery *galleryRepo.Repository,
) {
	hub.Register(domain.CollectionBookings, func(ctx context.Context) ([]json.RawMessage, error) {
		list, err := appointments.List(ctx, domain.AppointmentsFilter{})
		if err != nil {
			return nil, err
		}
		out := make([]json.RawMessage, 0, len(list))
		for _, a := range list {
			raw, err := json.Marshal(listAppointmentsHandler.FromDomain(a))
			if err != nil {
				return nil, err
			}
			out = append(out, raw)
		}
		return out, nil
	})

	hub.Register(domain.CollectionOrders, func(ctx context.Context) ([]json.RawMessage, error) {
		list, err := orders.List(ctx, domain.OrdersFilter{})
		if err != nil {
			return nil, err
		}
		out := make([]json.RawMessage, 0, len(list))
		for _, o := range list {
			raw, err := json.Marshal(listOrdersHandler.FromDomain(o))
			if err != nil {
				return nil, err
			}
			out = append(out, raw)
		}
		return out, nil
	})

	hub.Register(domain.CollectionServices, func(ctx context.Context) ([]json.RawMessage, error) {
		list, err := catalog.ListServices(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]json.RawMessage, 0, len(list))
		for _, s := range list {
			raw, err := json.Marshal(manageServicesHandler.FromDomain(s))
			if err != nil {
				return nil, err
			}
			out = append(out, raw)
		}
		return out, nil
	})

	hub.Register(domain.CollectionProducts, func(ctx context.Context) ([]json.RawMessage, error) {
		list, err := catalog.ListProducts(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]json.RawMessage, 0, len(list))
		for _, p := range list {
			raw, err := json.Marshal(manageProductsHandler.FromDomain(p))
			if err != nil {
				return nil, err
			}
			out = append(out, raw)
		}
		return out, nil
	})

	hub.Register(domain.CollectionStaff, func(ctx context.Context) ([]json.RawMessage, error) {
		list, err := staff.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]json.RawMessage, 0, len(list))
		for _, m := range list {
			raw, err := json.Marshal(manageStaffHandler.FromDomain(m))
			if err != nil {
				return nil, err
			}
			out = append(out, raw)
		}
		return out, nil
	})

	hub.Register(domain.CollectionPromotions, func(ctx context.Context) ([]json.RawMessage, error) {
		list, err := promotions.List(ctx, false)
		if err != nil {
			return nil, err
		}
		out := make([]json.RawMessage, 0, len(list))
		for _, p := range list {
			raw, err := json.Marshal(managePromotionsHandler.FromDomain(p))
			if err != nil {
				return nil, err
			}
			out = append(out, raw)
		}
		return out, nil
	})

	hub.Register(domain.CollectionSettings, func(ctx context.Context) ([]json.RawMessage, error) {
		s, err := settings.Get(ctx)
		if err != nil {
			return nil, err
		}
		// the allow-list never crosses the unauthenticated websocket
		raw, err := json.Marshal(manageSettingsHandler.PublicFromDomain(s))
		if err != nil {
			return nil, err
		}
		return []json.RawMessage{raw}, nil
	})

	hub.Register(domain.CollectionGallery, func(ctx context.Context) ([]json.RawMessage, error) {
		list, err := gallery.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]json.RawMessage, 0, len(list))
		for _, img := range list {
			raw, err := json.Marshal(manageGalleryHandler.FromDomain(img))
			if err != nil {
				return nil, err
			}
			out = append(out, raw)
		}
		return out, nil
	})
}
