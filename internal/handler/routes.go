package handler

import (
	"net/http"

	"github.com/msomdec/taskdeck/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Task routes and
// the profile route are wrapped in RequireAuth; an invalid token gets a 401
// before any service code runs.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, tasks *service.TaskService) {
	authHandler := NewAuthHandler(auth)
	taskHandler := NewTaskHandler(tasks)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /auth/signup", authHandler.HandleSignUp)
	mux.HandleFunc("POST /auth/signin", authHandler.HandleSignIn)
	mux.Handle("GET /auth/profile", RequireAuth(auth, http.HandlerFunc(authHandler.HandleProfile)))

	mux.Handle("GET /tasks", RequireAuth(auth, http.HandlerFunc(taskHandler.HandleList)))
	mux.Handle("POST /tasks", RequireAuth(auth, http.HandlerFunc(taskHandler.HandleCreate)))
	mux.Handle("GET /tasks/{id}", RequireAuth(auth, http.HandlerFunc(taskHandler.HandleGet)))
	mux.Handle("PUT /tasks/{id}", RequireAuth(auth, http.HandlerFunc(taskHandler.HandleUpdate)))
	mux.Handle("DELETE /tasks/{id}", RequireAuth(auth, http.HandlerFunc(taskHandler.HandleDelete)))
}
