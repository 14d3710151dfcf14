package internal

import (
	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/infrastructure/controllers"
)

// AppInternal holds the controllers exposed as subcommands.
type AppInternal struct {
	controllers []entities.Controller
	check       *controllers.CheckController
}

// NewAppInternal creates the application context from the registered controllers.
func NewAppInternal(
	all *[]entities.Controller,
	checkController *controllers.CheckController,
) *AppInternal {
	return &AppInternal{controllers: *all, check: checkController}
}

// GetControllers returns every controller in registration order.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetDefaultController returns the controller run when no subcommand is given.
func (it *AppInternal) GetDefaultController() entities.Controller {
	return it.check
}
