package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/controller"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/repository"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/service"
	"github.com/Wiktor-Wewe/psi-projekt/internal/infrastructure/cache"
	"github.com/Wiktor-Wewe/psi-projekt/internal/infrastructure/catalog_proxy"
	"github.com/Wiktor-Wewe/psi-projekt/internal/infrastructure/db"
	"github.com/Wiktor-Wewe/psi-projekt/internal/infrastructure/metrics"
	"github.com/Wiktor-Wewe/psi-projekt/internal/infrastructure/pprof"
	"github.com/Wiktor-Wewe/psi-projekt/pkg/responder"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Warn("couldn't load .env file", zap.Error(err))
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET environment variable is required but not set")
	}
	tokenAuth := NewTokenAuth(jwtSecret)

	dbConn, err := db.NewPostgresDB(logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbConn.Close()

	if err := db.RunMigrations(dbConn, logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	rentPolicy := service.RentPolicy{}
	if strict, err := strconv.ParseBool(os.Getenv("RENT_STRICT_DATES")); err == nil {
		rentPolicy.StrictDates = strict
	}

	r := setupRouter(dbConn, tokenAuth, rentPolicy, logger)
	r.Handle("/metrics", promhttp.Handler())

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatal("failed to create listener", zap.Error(err))
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("addr", addr))
	<-done
	logger.Info("server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}

func setupRouter(dbConn *sqlx.DB, tokenAuth *jwtauth.JWTAuth, rentPolicy service.RentPolicy, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.HTTPMetricsMiddleware)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Repositories
	authorRepo := repository.NewAuthorRepository(dbConn)
	genreRepo := repository.NewGenreRepository(dbConn)
	houseRepo := repository.NewPublishingHouseRepository(dbConn)
	bookRepo := repository.NewBookRepository(dbConn)
	employeeRepo := repository.NewEmployeeRepository(dbConn)
	memberRepo := repository.NewMemberRepository(dbConn)
	rentRepo := repository.NewRentRepository(dbConn)

	// Services
	authorService := service.NewAuthorService(authorRepo, bookRepo)
	genreService := service.NewGenreService(genreRepo, bookRepo)
	houseService := service.NewPublishingHouseService(houseRepo, bookRepo)
	bookService := service.NewBookService(bookRepo, authorRepo, genreRepo)
	employeeService := service.NewEmployeeService(employeeRepo, logger)
	memberService := service.NewMemberService(memberRepo, rentRepo)
	rentService := service.NewRentService(rentRepo, rentPolicy, logger)

	// Publishing house reads go through the caching proxy.
	memoryCache := cache.NewInMemoryCache()
	houseProxy := catalog_proxy.NewPublishingHouseProxy(houseService, memoryCache, 5*time.Minute)

	jsonResponder := responder.NewJSONResponder()
	authorController := controller.NewAuthorController(authorService, jsonResponder)
	genreController := controller.NewGenreController(genreService, jsonResponder)
	houseController := controller.NewPublishingHouseController(houseProxy, jsonResponder)
	bookController := controller.NewBookController(bookService, houseProxy, jsonResponder)
	employeeController := controller.NewEmployeeController(employeeService, tokenAuth, jsonResponder)
	memberController := controller.NewMemberController(memberService, jsonResponder)
	rentController := controller.NewRentController(rentService, jsonResponder)

	authRequired := AuthMiddleware(tokenAuth)

	// Open catalog reads and employee auth
	r.Group(func(r chi.Router) {
		r.Post("/api/employees/register", employeeController.Register)
		r.Post("/api/employees/login", employeeController.Login)

		r.Get("/api/authors", authorController.ListAuthors)
		r.Get("/api/authors/{id}", authorController.GetAuthor)
		r.Get("/api/authors/{id}/books", authorController.ListAuthorBooks)

		r.Get("/api/genres", genreController.ListGenres)
		r.Get("/api/genres/{id}", genreController.GetGenre)
		r.Get("/api/genres/{id}/books", genreController.ListGenreBooks)

		r.Get("/api/publishing-houses", houseController.ListPublishingHouses)
		r.Get("/api/publishing-houses/{id}", houseController.GetPublishingHouse)
		r.Get("/api/publishing-houses/{id}/books", houseController.ListPublishingHouseBooks)

		r.Get("/api/books", bookController.ListBooks)
		r.Get("/api/books/{id}", bookController.GetBook)
		r.Get("/api/books/{id}/authors", bookController.ListBookAuthors)
		r.Get("/api/books/{id}/genres", bookController.ListBookGenres)
		r.Get("/api/books/{id}/publishing-house", bookController.GetBookPublishingHouse)
	})

	// Mutations and patron/loan data need an employee token
	r.Group(func(r chi.Router) {
		r.Use(authRequired)

		r.Post("/api/authors", authorController.CreateAuthor)
		r.Put("/api/authors/{id}", authorController.UpdateAuthor)
		r.Delete("/api/authors/{id}", authorController.DeleteAuthor)

		r.Post("/api/genres", genreController.CreateGenre)
		r.Put("/api/genres/{id}", genreController.UpdateGenre)
		r.Delete("/api/genres/{id}", genreController.DeleteGenre)

		r.Post("/api/publishing-houses", houseController.CreatePublishingHouse)
		r.Put("/api/publishing-houses/{id}", houseController.UpdatePublishingHouse)
		r.Delete("/api/publishing-houses/{id}", houseController.DeletePublishingHouse)

		r.Post("/api/books", bookController.CreateBook)
		r.Put("/api/books/{id}", bookController.UpdateBook)
		r.Delete("/api/books/{id}", bookController.DeleteBook)

		r.Get("/api/employees", employeeController.ListEmployees)
		r.Get("/api/employees/{id}", employeeController.GetEmployee)
		r.Put("/api/employees/{id}", employeeController.UpdateEmployee)
		r.Delete("/api/employees/{id}", employeeController.DeleteEmployee)

		r.Get("/api/members", memberController.ListMembers)
		r.Post("/api/members", memberController.CreateMember)
		r.Get("/api/members/{id}", memberController.GetMember)
		r.Put("/api/members/{id}", memberController.UpdateMember)
		r.Delete("/api/members/{id}", memberController.DeleteMember)
		r.Get("/api/members/{id}/rents", memberController.ListMemberRents)

		r.Get("/api/rents", rentController.ListRents)
		r.Post("/api/rents", rentController.CreateRent)
		r.Get("/api/rents/{id}", rentController.GetRent)
		r.Put("/api/rents/{id}", rentController.UpdateRent)
		r.Delete("/api/rents/{id}", rentController.DeleteRent)

		r.Mount("/debug/pprof", pprof.Handler())
	})

	return r
}
