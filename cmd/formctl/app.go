package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/goliatone/go-formctl/internal/config"
	"github.com/goliatone/go-formctl/pkg/analytics"
	"github.com/goliatone/go-formctl/pkg/controller"
	"github.com/goliatone/go-formctl/pkg/form"
	"github.com/goliatone/go-formctl/pkg/storage"
	"github.com/goliatone/go-formctl/pkg/surface"
)

// app holds the components shared by every subcommand.
type app struct {
	cfg    config.Config
	def    form.Definition
	logger *zap.Logger

	store    storage.Store
	persist  *storage.Sink
	reporter *analytics.Sink
	export   *os.File
}

// loadDefinition returns the configured form, or the embedded one.
func loadDefinition(cfg config.Config) (form.Definition, error) {
	if cfg.Form.Definition == "" {
		return form.Default(), nil
	}
	return form.LoadFile(cfg.Form.Definition)
}

func newApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*app, error) {
	def, err := loadDefinition(cfg)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	key := def.StorageKey
	if cfg.Storage.Key != "" {
		key = cfg.Storage.Key
	}

	a := &app{
		cfg:    cfg,
		def:    def,
		logger: logger,
		store:  store,
		persist: storage.NewSink(store,
			storage.WithKey(key),
			storage.WithLogger(logger.Named("storage")),
		),
	}

	var pusher analytics.Pusher = analytics.DataLayer()
	if cfg.Analytics.Export != "" {
		f, err := os.OpenFile(cfg.Analytics.Export, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("open analytics export: %w", err)
		}
		a.export = f
		pusher = analytics.Tee{pusher, analytics.NewNDJSONWriter(f)}
	}
	a.reporter = analytics.NewSink(def.Name,
		analytics.WithPusher(pusher),
		analytics.WithLogger(logger.Named("analytics")),
	)
	return a, nil
}

func (a *app) newController(s surface.Surface, view controller.View) (*controller.Controller, error) {
	return controller.New(s, view, a.def.Fields, a.persist, a.reporter,
		controller.WithDelay(a.cfg.Submit.Delay),
		controller.WithLogger(a.logger.Named("controller")),
	)
}

func (a *app) Close() error {
	var errs []error
	if a.export != nil {
		errs = append(errs, a.export.Close())
	}
	if a.store != nil {
		errs = append(errs, a.store.Close())
	}
	return errors.Join(errs...)
}
