package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"pawcare-admin/internal/config"
	"pawcare-admin/internal/consts"
	"pawcare-admin/internal/db"
	"pawcare-admin/internal/di"
	"pawcare-admin/internal/logger"
	"pawcare-admin/internal/platform/redisclient"
	"pawcare-admin/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "config", "directory containing config.yaml")
	exportRoutes := flag.Bool("export", false, "write the route table to routes.json and exit")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLogger, err := logger.New(cfg.Log, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	if err := run(cfg, appLogger, *exportRoutes); err != nil {
		appLogger.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, appLogger *zap.Logger, exportRoutes bool) error {
	gin.SetMode(cfg.Server.Mode)

	gormDB, err := db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	if cfg.Upload.Driver == "" || cfg.Upload.Driver == "local" {
		if err := checkSecurePath(cfg.Upload.Path); err != nil {
			return err
		}
	}
	backend, err := storage.NewBackend(context.Background(), cfg.Upload)
	if err != nil {
		return fmt.Errorf("init upload storage: %w", err)
	}

	rdb := redisclient.New(cfg.Redis, appLogger)
	defer func() {
		if err := rdb.Close(); err != nil {
			appLogger.Warn("close redis", zap.Error(err))
		}
	}()

	app, err := di.InitializeApplication(cfg, appLogger, gormDB, storage.New(backend), rdb)
	if err != nil {
		return fmt.Errorf("wire application: %w", err)
	}

	engine := gin.New()
	app.Router.Init(engine)

	if exportRoutes {
		return exportAPI(engine, "routes.json")
	}

	printWelcomeMessage(cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           app.Router.Handler(engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server started", zap.String("addr", srv.Addr), zap.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case sig := <-quit:
		appLogger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	appLogger.Info("server exited")
	return nil
}

func printWelcomeMessage(cfg *config.Config) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   Version  : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   Port     : %s\n", cfg.Server.Port)
	fmt.Printf(" │   Database : %s\n", cfg.Database.Type)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

type routeInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func exportAPI(r *gin.Engine, target string) error {
	routes := r.Routes()

	exportList := make([]routeInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, routeInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(target, file, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	fmt.Printf("routes exported to %s\n", target)
	return nil
}

// checkSecurePath refuses upload directories that would expose the project
// tree: the working directory itself, or a relative path outside the allowed
// top-level folders.
func checkSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve upload path: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	if absPath == cwd {
		return fmt.Errorf("upload path %q must not be the project root", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil
	}

	allowedDirs := []string{"uploads", "public", "static", "tmp"}
	firstComponent := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, allowed := range allowedDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return nil
		}
	}
	return fmt.Errorf("upload path %q (resolved to %q) must live under one of %v", path, rel, allowedDirs)
}
