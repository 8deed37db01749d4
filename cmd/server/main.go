package main

import (
	"fitter/internal/http/handlers"
	commenth "fitter/internal/http/handlers/comment"
	posth "fitter/internal/http/handlers/post"
	teamh "fitter/internal/http/handlers/team"
	userh "fitter/internal/http/handlers/user"
	mw "fitter/internal/http/middleware"
	"fitter/internal/lib/config"
	"fitter/internal/lib/sl"
	repo "fitter/internal/repository"
	"fitter/internal/service/comment"
	"fitter/internal/service/post"
	"fitter/internal/service/team"
	"fitter/internal/service/user"

	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("starting fitter", slog.String("env", cfg.Env))

	db, err := sqlx.Connect("postgres", cfg.Storage.DSN)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	teamRepo := repo.NewTeamRepo(db, trmsqlx.DefaultCtxGetter)
	postRepo := repo.NewPostRepo(db, trmsqlx.DefaultCtxGetter)
	commentRepo := repo.NewCommentRepo(db, trmsqlx.DefaultCtxGetter)
	attachmentRepo := repo.NewAttachmentRepo(db, trmsqlx.DefaultCtxGetter)

	userService := user.NewUserService(userRepo, teamRepo, cfg.Security.BcryptCost)
	teamService := team.NewTeamService(trManager, teamRepo, userRepo, postRepo)
	postService := post.NewPostService(trManager, postRepo, attachmentRepo, commentRepo, userRepo)
	commentService := comment.NewCommentService(trManager, commentRepo)

	userHandler := userh.NewUserHandler(log, userService)
	teamHandler := teamh.NewTeamHandler(log, teamService)
	postHandler := posth.NewPostHandler(log, postService)
	commentHandler := commenth.NewCommentHandler(log, commentService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	// public methods
	router.Get("/health", handlers.Healthcheck(log, db))
	router.Post("/users", userHandler.Create)

	// user methods
	router.Group(func(r chi.Router) {
		r.Use(mw.Auth(cfg.Auth.AdminSecret, cfg.Auth.UserSecret))

		r.Get("/users/{id}", userHandler.Get)
		r.Get("/users/{id}/teams", userHandler.GetTeams)

		r.Post("/teams", teamHandler.Create)
		r.Get("/teams/exists", teamHandler.Exists)
		r.Get("/teams/{id}", teamHandler.Get)
		r.Get("/teams/{id}/members", teamHandler.GetMembers)
		r.Post("/teams/{id}/members", teamHandler.AddMember)
		r.Delete("/teams/{id}/members/{userID}", teamHandler.RemoveMember)
		r.Get("/teams/{id}/posts", teamHandler.GetPosts)

		r.Post("/posts", postHandler.Create)
		r.Get("/posts/{id}", postHandler.Get)
		r.Get("/posts/{id}/comments", commentHandler.GetForPost)
		r.Get("/posts/{id}/comments/search", commentHandler.Search)
		r.Get("/posts/{id}/attachments", postHandler.GetAttachments)
		r.Post("/posts/{id}/attachments", postHandler.AddAttachment)
		r.Get("/attachments/{id}", postHandler.GetAttachment)

		r.Post("/comments", commentHandler.Create)
	})

	// admin methods
	router.Group(func(r chi.Router) {
		r.Use(mw.Auth(cfg.Auth.AdminSecret, cfg.Auth.UserSecret))
		r.Use(mw.AdminOnly)

		r.Delete("/users/{id}", userHandler.Delete)
		r.Delete("/teams/{id}", teamHandler.Delete)
		r.Delete("/posts/{id}", postHandler.Delete)
		r.Delete("/comments/{id}", commentHandler.Delete)
		r.Delete("/attachments/{id}", postHandler.DeleteAttachment)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start http server", sl.Err(err))
			os.Exit(1)
		}
	}()

	<-done
	log.Info("stopping http server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to stop http server", sl.Err(err))
		return
	}

	log.Info("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
