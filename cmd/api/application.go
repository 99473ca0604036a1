package main

import (
	"log/slog"
	"mediaratings/proj/internal/api/tasks"
	"mediaratings/proj/internal/config"
	"mediaratings/proj/internal/lib/decoder"
	"mediaratings/proj/internal/lib/validator"
	"mediaratings/proj/internal/services"

	govalidator "github.com/go-playground/validator/v10"
)

type Application struct {
	cfg       *config.Config
	log       *slog.Logger
	Http      *Http
	services  *services.Services
	validator *govalidator.Validate
	decoder   *decoder.URLDecoder
	workers   *tasks.Pool
}

func NewApplication(cfg *config.Config, log *slog.Logger, services *services.Services, workers *tasks.Pool) *Application {
	return &Application{
		cfg:       cfg,
		log:       log,
		services:  services,
		validator: validator.New(),
		decoder:   decoder.New(),
		workers:   workers,
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
}
