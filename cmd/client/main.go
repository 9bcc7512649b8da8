package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-boarding-client/apiclient"
	"github.com/jrsteele09/go-boarding-client/internal/config"
	"github.com/jrsteele09/go-boarding-client/server"
	"github.com/jrsteele09/go-boarding-client/session"
	"github.com/jrsteele09/go-boarding-client/token/jwt"
	"github.com/jrsteele09/go-boarding-client/tokenstore"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Err(err).Msg("Error running client")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("Client stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	setupLogging(c)
	displayAppname(c.GetAppName())

	store := newTokenStore(c)
	core, err := newSession(c, store)
	if err != nil {
		return err
	}
	if identity, ok := core.Initialize(context.Background()); ok {
		log.Info().Str("subject", identity.Subject).Str("role", string(identity.Role)).Msg("Restored session")
	}

	api := apiclient.New(c, store, apiclient.WithRequestLogging())
	handler, err := server.New(c, core, api)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: handler}
	serveErr := make(chan error, 1)
	go func() { serveErr <- listenAndServe(httpServer) }()

	if err := waitForStopSignal(serveErr); err != nil {
		return err
	}
	return shutdown(httpServer)
}

// newTokenStore returns the store shared by the session and the API client
func newTokenStore(c config.Config) tokenstore.Store {
	if c.GetEnv() == "TEST" {
		return tokenstore.NewInMemoryStore()
	}

	var opts []tokenstore.FileStoreOption
	if passphrase := c.GetTokenPassphrase(); passphrase != "" {
		opts = append(opts, tokenstore.WithPassphrase(passphrase))
	}
	fileStore := tokenstore.NewFileStore(c.GetDataFolder(), opts...)
	log.Info().Str("path", fileStore.Path()).Msg("Token store")
	return fileStore
}

func newSession(c config.Config, store tokenstore.Store) (*session.Core, error) {
	var opts []session.Option
	if issuer := c.GetOIDCIssuer(); issuer != "" {
		verifier, err := jwt.NewOIDCVerifier(context.Background(), issuer)
		if err != nil {
			return nil, fmt.Errorf("jwt.NewOIDCVerifier: %w", err)
		}
		log.Info().Str("issuer", issuer).Msg("Verifying tokens")
		opts = append(opts, session.WithVerifier(verifier))
	}
	return session.New(store, opts...), nil
}

func setupLogging(c config.Config) {
	level, err := zerolog.ParseLevel(c.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if c.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func listenAndServe(server *http.Server) error {
	log.Info().Msgf("Client listening on http://%s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal(serveErr <-chan error) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-stop:
		return nil
	case err := <-serveErr:
		return err
	}
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
