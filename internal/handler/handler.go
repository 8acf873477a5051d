package handler

import (
	"net/http"

	"shortlink/internal/auth"
	"shortlink/internal/service"
	"shortlink/internal/view"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// AdminPath is the reserved management path; every other path is treated as a
// short code lookup.
const AdminPath = "/urlshorteneradmin"

type Handler struct {
	Service *service.Service
	Auth    *auth.Checker
	Log     zerolog.Logger
}

func NewHandler(s *service.Service, a *auth.Checker, log zerolog.Logger) *Handler {
	return &Handler{Service: s, Auth: a, Log: log}
}

func (h *Handler) Routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc(AdminPath, h.AdminPage).Methods("GET")
	r.HandleFunc(AdminPath, h.AdminSubmit).Methods("POST")
	r.HandleFunc("/healthz", h.Healthz).Methods("GET")
	r.HandleFunc("/", h.Root).Methods("GET")
	r.HandleFunc("/{code}", h.Redirect).Methods("GET")

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			h.Log.Info().Str("method", req.Method).Str("path", req.URL.Path).Msg("request")
			next.ServeHTTP(w, req)
		})
	})

	return r
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Root is the empty-code case of the redirect flow.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Not Found", http.StatusNotFound)
}

func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	longURL, err := h.Service.Resolve(r.Context(), code)
	if err != nil {
		http.Error(w, "Short URL not found", http.StatusNotFound)
		return
	}
	http.Redirect(w, r, longURL, http.StatusFound)
}

func (h *Handler) AdminPage(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.Service.List(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list mappings")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderAdmin(w, mappings); err != nil {
		// A fallback page was already written; nothing more to send.
		h.Log.Error().Err(err).Msg("render admin page")
	}
}

func (h *Handler) AdminSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if !h.Auth.Check(r.PostFormValue("password")) {
		http.Error(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	switch r.PostFormValue("action") {
	case "add":
		code := r.PostFormValue("short_code")
		longURL := r.PostFormValue("long_url")
		if code != "" && longURL != "" {
			if err := h.Service.Save(r.Context(), code, longURL); err != nil {
				h.Log.Error().Err(err).Str("code", code).Msg("save mapping")
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
		}
	case "delete":
		code := r.PostFormValue("short_code")
		if code != "" {
			if err := h.Service.Remove(r.Context(), code); err != nil {
				h.Log.Error().Err(err).Str("code", code).Msg("delete mapping")
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
		}
	}
	// Unknown or missing action falls through as a no-op.

	http.Redirect(w, r, AdminPath, http.StatusSeeOther)
}
