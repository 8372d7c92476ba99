package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/careatlas/directory-cli/internal/dataset"
	"github.com/careatlas/directory-cli/internal/directory"
	"github.com/careatlas/directory-cli/internal/search"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the directory read API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, err := dataset.Load(cfg.Data.Dir)
		if err != nil {
			return err
		}
		dir := directory.New(store)

		searchStore, err := search.Open(ctx, cfg.Search.Driver, cfg.Search.DatabaseURL)
		if err != nil {
			return err
		}
		defer searchStore.Close() //nolint:errcheck

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(dir, searchStore),
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("server listening", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func newRouter(dir *directory.Directory, searchStore search.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/businesses", handleBusinesses(dir))
		r.Get("/businesses/{slug}", handleBusiness(dir))
		r.Get("/cities", handleCities(dir))
		r.Get("/cities/{slug}", handleCity(dir))
		r.Get("/cities/{citySlug}/categories/{categorySlug}", handleCityCategory(dir))
		r.Get("/categories", handleCategories(dir))
		r.Get("/categories/{slug}", handleCategory(dir))
		r.Get("/specialities", handleSpecialities(dir))
		r.Get("/specialities/{slug}", handleSpeciality(dir))
		r.Get("/facility-types", handleFacilityTypes(dir))
		r.Get("/search", handleSearch(searchStore))
	})

	return r
}

// requestID tags every request with an ID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func handleBusinesses(dir *directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Query().Get("city")
		category := r.URL.Query().Get("category")
		speciality := r.URL.Query().Get("speciality")

		switch {
		case city != "" && category != "":
			writeJSON(w, http.StatusOK, dir.BusinessesByCityAndCategory(city, category))
		case city != "" && speciality != "":
			writeJSON(w, http.StatusOK, dir.BusinessesByCityAndSpeciality(city, speciality))
		case city != "":
			writeJSON(w, http.StatusOK, dir.BusinessesByCity(city))
		case category != "":
			writeJSON(w, http.StatusOK, dir.BusinessesByCategory(category))
		case speciality != "":
			writeJSON(w, http.StatusOK, dir.BusinessesBySpeciality(speciality))
		default:
			writeJSON(w, http.StatusOK, dir.Store().Businesses())
		}
	}
}

func handleBusiness(dir *directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		b, ok := dir.Store().BusinessBySlug(slug)
		if !ok {
			writeError(w, http.StatusNotFound, "business not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"business": b,
			"related":  dir.Related(b, directory.DefaultRelatedLimit),
		})
	}
}

func handleCities(dir *directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dir.Store().Cities())
	}
}

func handleCity(dir *directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		city, ok := dir.Store().CityBySlug(slug)
		if !ok {
			writeError(w, http.StatusNotFound, "city not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"city":       city,
			"businesses": dir.BusinessesByCity(slug),
		})
	}
}

func handleCityCategory(dir *directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		citySlug := chi.URLParam(r, "citySlug")
		categorySlug := chi.URLParam(r, "categorySlug")

		combo, ok := dir.Store().CityCategoryBySlug(citySlug + "/" + categorySlug)
		if !ok {
			writeError(w, http.StatusNotFound, "city/category combination not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"combo":      combo,
			"businesses": dir.BusinessesByCityAndCategory(citySlug, categorySlug),
		})
	}
}

func handleCategories(dir *directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dir.Store().Categories())
	}
}

func handleCategory(dir *directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		cat, ok := dir.Store().CategoryBySlug(slug)
		if !ok {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"category":   cat,
			"businesses": dir.BusinessesByCategory(slug),
		})
	}
}

func handleSpecialities(dir *directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"specialities": dir.Specialities(),
			"combos":       dir.CitySpecialityCombos(),
		})
	}
}

func handleSpeciality(dir *directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		name, ok := dir.SpecialityBySlug(slug)
		if !ok {
			writeError(w, http.StatusNotFound, "speciality not found")
			return
		}

		city := r.URL.Query().Get("city")
		var businesses any
		if city != "" {
			businesses = dir.BusinessesByCityAndSpeciality(city, name)
		} else {
			businesses = dir.BusinessesBySpeciality(name)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"speciality": name,
			"businesses": businesses,
		})
	}
}

func handleFacilityTypes(dir *directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dir.FacilityTypes())
	}
}

func handleSearch(store search.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			writeError(w, http.StatusBadRequest, "q parameter is required")
			return
		}
		results, err := store.Search(r.Context(), q, 20)
		if err != nil {
			zap.L().Error("search failed", zap.String("q", q), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "search failed")
			return
		}
		writeJSON(w, http.StatusOK, results)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
