/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/bioage/bioage"
	"github.com/humaidq/bioage/db"
	"github.com/humaidq/bioage/routes"
	"github.com/humaidq/bioage/static"
	"github.com/humaidq/bioage/templates"
)

const (
	runtimeEnvVar       = "BIOAGE_ENV"
	developmentSecret   = "bioage-development-only"
	draftLifetime       = 2 * time.Hour
	shutdownGracePeriod = 10 * time.Second
)

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Value:   "8080",
			Sources: cli.EnvVars("PORT"),
			Usage:   "the web server port",
		},
		&cli.StringFlag{
			Name:    "database-url",
			Sources: cli.EnvVars("DATABASE_URL"),
			Usage:   "PostgreSQL connection string for feedback and share records (optional)",
		},
		&cli.StringFlag{
			Name:    "csrf-secret",
			Sources: cli.EnvVars("CSRF_SECRET"),
			Usage:   "secret used to sign CSRF tokens (required in production)",
		},
		&cli.StringFlag{
			Name:    "env",
			Value:   "development",
			Sources: cli.EnvVars(runtimeEnvVar),
			Usage:   "runtime environment: development or production",
		},
		&cli.StringFlag{
			Name:    "share-dir",
			Value:   "share-images",
			Sources: cli.EnvVars("SHARE_DIR"),
			Usage:   "directory for uploaded share images",
		},
		&cli.StringFlag{
			Name:    "public-url",
			Sources: cli.EnvVars("PUBLIC_URL"),
			Usage:   "absolute base URL used in share links (defaults to the request host)",
		},
		&cli.IntFlag{
			Name:    "cache-size",
			Value:   bioage.DefaultCacheSize,
			Sources: cli.EnvVars("BIOAGE_CACHE_SIZE"),
			Usage:   "number of panels memoized per estimator",
		},
	},
	Action: start,
}

// isProductionEnv parses the runtime environment name.
func isProductionEnv(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "development", "dev":
		return false, nil
	case "production", "prod":
		return true, nil
	}

	return false, errInvalidRuntimeEnv
}

func resolveCSRFSecret(secret string, production bool) (string, error) {
	secret = strings.TrimSpace(secret)
	if secret != "" {
		return secret, nil
	}

	if production {
		return "", errCSRFSecretRequired
	}

	appLogger.Warn("CSRF_SECRET not set, using development secret")

	return developmentSecret, nil
}

func validatePublicURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errInvalidPublicURL
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func configureEmptyNotFoundHandler(f *flamego.Flame) {
	f.NotFound(func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
	})
}

func start(ctx context.Context, cmd *cli.Command) (err error) {
	production, err := isProductionEnv(cmd.String("env"))
	if err != nil {
		return err
	}

	csrfSecret, err := resolveCSRFSecret(cmd.String("csrf-secret"), production)
	if err != nil {
		return err
	}

	publicURL, err := validatePublicURL(cmd.String("public-url"))
	if err != nil {
		return err
	}

	if databaseURL := cmd.String("database-url"); databaseURL != "" {
		// Set DATABASE_URL for db package
		if err := os.Setenv("DATABASE_URL", databaseURL); err != nil {
			return fmt.Errorf("failed to set DATABASE_URL: %w", err)
		}

		appLogger.Info("Connecting to database")

		if err := db.Init(ctx); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		appLogger.Info("Syncing database schema")

		if err := db.SyncSchema(ctx); err != nil {
			return fmt.Errorf("failed to sync schema: %w", err)
		}
	} else {
		appLogger.Warn("DATABASE_URL not set, feedback and share records will only be logged")
	}

	shareDir := cmd.String("share-dir")
	if err := os.MkdirAll(shareDir, 0o755); err != nil {
		return fmt.Errorf("failed to create share directory: %w", err)
	}

	estimator, err := bioage.NewCachedEstimator(cmd.Int("cache-size"))
	if err != nil {
		return fmt.Errorf("failed to create estimator: %w", err)
	}

	engineLogger.Info("Estimator ready", "cache_size", cmd.Int("cache-size"))

	f, err := newWebApp(&routes.Services{
		Estimator: estimator,
		ShareDir:  shareDir,
		PublicURL: publicURL,
	}, csrfSecret, production)
	if err != nil {
		return err
	}

	port := cmd.String("port")
	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", port),
		Handler:           f,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		ErrorLog:          requestStdLogger,
	}

	serveErr := make(chan error, 1)

	go func() {
		appLogger.Info("Starting web server", "port", port, "production", production)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	appLogger.Info("Shutting down web server")

	return srv.Shutdown(shutdownCtx)
}

func newWebApp(svc *routes.Services, csrfSecret string, production bool) (*flamego.Flame, error) {
	f := flamego.New()
	f.Use(flamego.Recovery())

	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	f.Use(session.Sessioner(session.Options{
		Initer: session.MemoryIniter(),
		Config: session.MemoryConfig{
			Lifetime: draftLifetime,
		},
		Cookie: session.CookieOptions{
			Name:     "bioage_session",
			HTTPOnly: true,
			Secure:   production,
			SameSite: http.SameSiteLaxMode,
		},
	}))
	f.Use(routes.RequestLogger)
	f.Use(csrf.Csrfer(csrf.Options{
		Secret: csrfSecret,
	}))
	f.Use(template.Templater(template.Options{
		FileSystem: fs,
		FuncMaps:   []htmltemplate.FuncMap{routes.TemplateFuncs()},
	}))
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
		Prefix:     "static",
	}))
	f.Use(routes.ServicesInjector(svc))
	f.Use(routes.NoCacheHeaders())
	f.Use(routes.CSRFInjector())
	f.Use(routes.FlashInjector())

	configureEmptyNotFoundHandler(f)

	// Wizard
	f.Get("/", routes.ProfileForm)
	f.Post("/", csrf.Validate, routes.SaveProfile)
	f.Get("/blood", routes.BloodForm)
	f.Post("/blood", csrf.Validate, routes.SaveBlood)
	f.Get("/physical", routes.PhysicalForm)
	f.Post("/physical", csrf.Validate, routes.SavePhysical)
	f.Get("/results", routes.Results)
	f.Post("/reset", csrf.Validate, routes.Reset)
	f.Post("/feedback", csrf.Validate, routes.SubmitFeedback)

	// JSON
	f.Post("/api/evaluate", routes.EvaluateAPI)
	f.Get("/report.json", routes.ReportJSON)

	// Share images
	f.Post("/share/upload", csrf.Validate, routes.UploadShareImage)
	f.Get("/share/upload", routes.MethodNotAllowed)
	f.Put("/share/upload", routes.MethodNotAllowed)
	f.Patch("/share/upload", routes.MethodNotAllowed)
	f.Delete("/share/upload", routes.MethodNotAllowed)
	f.Get("/share-images/{name}", routes.ServeShareImage)

	return f, nil
}
