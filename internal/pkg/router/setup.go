package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelWeiss/MeetFox/internal/pkg/middleware"
	"github.com/ManuelWeiss/MeetFox/internal/pkg/session"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App) {
	// The session store must exist before the UserContext middleware runs;
	// API routes depend on that middleware.
	session.NewSessionStore()
	app.Use(middleware.UserContextMiddleware)

	setup(app, NewApiRouter())
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
