package handler

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/seap-dev/subscription-api/docs"
	"github.com/seap-dev/subscription-api/internal/middleware"
)

// SetupRouter assembles the route table and wraps it with the middleware
// chain.
func SetupRouter(users *UserHandler, subs *SubscriptionHandler, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /users", users.createUser)
	mux.HandleFunc("GET /users", users.listUsers)
	mux.HandleFunc("GET /users/{id}", users.getUser)
	mux.HandleFunc("PUT /users/{id}", users.updateUser)
	mux.HandleFunc("DELETE /users/{id}", users.deleteUser)
	mux.HandleFunc("DELETE /users", users.deleteUserByEmail)

	mux.HandleFunc("POST /subscriptions", subs.createSubscription)
	mux.HandleFunc("GET /subscriptions", subs.listSubscriptions)
	mux.HandleFunc("GET /subscriptions/{id}", subs.getSubscription)
	mux.HandleFunc("PUT /subscriptions/{id}", subs.updateSubscription)
	mux.HandleFunc("DELETE /subscriptions/{id}", subs.deleteSubscription)

	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	var h http.Handler = mux
	h = middleware.JSONMiddleware(h)
	h = middleware.RecoverMiddleware(log)(h)
	h = middleware.LoggingMiddleware(log)(h)
	h = middleware.RequestIDMiddleware(h)

	return h
}
