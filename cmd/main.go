package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"fotostudio/internal/auth"
	"fotostudio/internal/config"
	"fotostudio/internal/handler"
	"fotostudio/internal/mail"
	"fotostudio/internal/media"
	"fotostudio/internal/preview"
	"fotostudio/internal/repository"
	"fotostudio/internal/service"
	"fotostudio/internal/storage"
)

func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*sqlx.DB, error) {
	dsn := cfg.Database.GetDSN()

	// Сначала подключаемся к базе postgres (системная база, которая всегда существует)
	pgDSN := strings.Replace(dsn, "dbname="+cfg.Database.Name, "dbname=postgres", 1)
	pgDB, err := sqlx.Connect("postgres", pgDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres database: %v", err)
	}
	defer pgDB.Close()

	// Проверяем, существует ли целевая база
	var exists bool
	err = pgDB.Get(&exists, "SELECT EXISTS(SELECT datname FROM pg_catalog.pg_database WHERE datname = $1)", cfg.Database.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check database existence: %v", err)
	}

	// Если базы нет, создаем её
	if !exists {
		log.Printf("Database %s does not exist, creating...", cfg.Database.Name)
		_, err = pgDB.Exec(fmt.Sprintf("CREATE DATABASE %s", cfg.Database.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to create database: %v", err)
		}
	}

	var db *sqlx.DB
	for i := 0; i < maxAttempts; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return db, nil
		}

		log.Printf("Failed to connect to database (attempt %d/%d): %v", i+1, maxAttempts, err)
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %v", maxAttempts, err)
}

func runMigrations(cfg *config.Config) error {
	databaseURL := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	var m *migrate.Migrate
	var err error

	for i := 0; i < 5; i++ {
		m, err = migrate.New("file://migrations", databaseURL)
		if err == nil {
			break
		}
		log.Printf("Failed to create migrate instance (attempt %d/5): %v", i+1, err)
		time.Sleep(time.Second * 5)
	}

	if err != nil {
		return fmt.Errorf("failed to create migrate instance after retries: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		log.Printf("Found dirty database state at version %d, attempting to force version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func main() {
	// Загружаем конфигурации
	appConfig, err := config.NewConfig(".app.env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(appConfig, 5, time.Second*5)
	if err != nil {
		log.Fatalf("Failed to connect to database after retries: %v", err)
	}
	defer db.Close()

	if err := runMigrations(appConfig); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// Инициализация S3 клиента. Без полной конфигурации сервис поднимется,
	// но операции с хранилищем будут отвечать 503.
	s3Config, err := storage.NewConfig(".s3.env")
	if err != nil {
		log.Fatalf("Failed to load S3 config: %v", err)
	}

	s3Client, err := storage.NewClient(s3Config)
	if err != nil {
		log.Fatalf("Failed to create S3 client: %v", err)
	}

	// Почтовые уведомления о заявках (необязательные)
	mailConfig, err := mail.NewConfig(".mail.env")
	if err != nil {
		log.Fatalf("Failed to load mail config: %v", err)
	}
	mailer := mail.NewMailer(mailConfig)

	// Инициализация репозиториев
	eventRepo := repository.NewEventRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	faqRepo := repository.NewFAQRepository(db)

	// Инициализация сервисов
	uploadService := media.NewUploadService(s3Client, s3Config.PublicBaseURL)
	cleanupService := media.NewCoordinator(s3Client, s3Config.PublicBaseURL)
	previewService := preview.NewService(s3Client, s3Config.PublicBaseURL)
	eventService := service.NewEventService(eventRepo, photoRepo, uploadService, previewService, cleanupService)
	videoService := service.NewVideoService(videoRepo, uploadService, cleanupService)
	teamService := service.NewTeamService(teamRepo, cleanupService)
	reviewService := service.NewReviewService(reviewRepo, commentRepo, cleanupService)
	leadService := service.NewLeadService(leadRepo, mailer)
	faqService := service.NewFAQService(faqRepo)

	// Инициализация хендлеров
	uploadHandler := handler.NewUploadHandler(uploadService)
	eventHandler := handler.NewEventHandler(eventService)
	videoHandler := handler.NewVideoHandler(videoService)
	teamHandler := handler.NewTeamHandler(teamService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	leadHandler := handler.NewLeadHandler(leadService)
	faqHandler := handler.NewFAQHandler(faqService)

	// Настройка HTTP роутера
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("Incoming request: %s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	})

	// Публичные маршруты
	r.Route("/v1", func(r chi.Router) {
		r.Get("/events", eventHandler.ListPublished)
		r.Get("/events/{slug}", eventHandler.GetBySlug)
		r.Get("/events/{id}/comments", reviewHandler.ListComments)
		r.Post("/events/{id}/comments", reviewHandler.AddComment)

		r.Get("/videos", videoHandler.List)
		r.Get("/team", teamHandler.List)
		r.Get("/faq", faqHandler.List)

		r.Get("/reviews", reviewHandler.ListApproved)
		r.Post("/reviews", reviewHandler.Submit)
		r.Post("/reviews/avatar", uploadHandler.UploadAvatar)

		r.Post("/leads", leadHandler.Submit)

		// Административные маршруты
		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAdmin(appConfig.Admin.Token))

			r.Post("/uploads", uploadHandler.UploadFile)
			r.Post("/uploads/presign", uploadHandler.IssuePresign)

			r.Get("/events", eventHandler.ListAll)
			r.Post("/events", eventHandler.Create)
			r.Route("/events/{id}", func(r chi.Router) {
				r.Put("/", eventHandler.Update)
				r.Delete("/", eventHandler.Delete)
				r.Post("/photos", eventHandler.UploadPhoto)
			})
			r.Delete("/photos/{id}", eventHandler.DeletePhoto)
			r.Put("/photos/{id}/position", eventHandler.UpdatePhotoPosition)

			r.Post("/videos", videoHandler.Upload)
			r.Post("/videos/register", videoHandler.Register)
			r.Delete("/videos/{id}", videoHandler.Delete)

			r.Post("/team", teamHandler.Create)
			r.Put("/team/{id}", teamHandler.Update)
			r.Delete("/team/{id}", teamHandler.Delete)

			r.Get("/reviews", reviewHandler.ListAll)
			r.Put("/reviews/{id}/approve", reviewHandler.Approve)
			r.Delete("/reviews/{id}", reviewHandler.Delete)
			r.Put("/comments/{id}/approve", reviewHandler.ApproveComment)
			r.Delete("/comments/{id}", reviewHandler.DeleteComment)

			r.Get("/leads", leadHandler.List)
			r.Put("/leads/{id}/processed", leadHandler.SetProcessed)
			r.Delete("/leads/{id}", leadHandler.Delete)

			r.Post("/faq", faqHandler.Create)
			r.Put("/faq/{id}", faqHandler.Update)
			r.Delete("/faq/{id}", faqHandler.Delete)
		})
	})

	// Создаем HTTP сервер
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}

	// Канал для сигналов завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Запускаем HTTP сервер
	go func() {
		log.Printf("Starting HTTP server on port %s", appConfig.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("HTTP server forced to shutdown: %v", err)
	}

	if err := db.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}

	log.Println("Server exited properly")
}
