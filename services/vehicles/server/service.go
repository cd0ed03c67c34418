package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"wtdata-backend/services/vehicles"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/vehicles/server")

// Service exposes one paginated, searchable read endpoint per
// category over the vehicle store.
type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) Service {
	return Service{db: db}
}

// Register mounts GET /aviation, /ground and /helicopters plus a
// JSON 404 fallback.
func (s Service) Register(mux *http.ServeMux) {
	for _, category := range vehicles.Categories {
		category := category
		mux.HandleFunc("GET /"+string(category), func(w http.ResponseWriter, r *http.Request) {
			s.handleList(w, r, category)
		})
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "source not found")
	})
}

func (s Service) handleList(w http.ResponseWriter, r *http.Request, category vehicles.Category) {
	ctx, span := tracer.Start(r.Context(), "List")
	defer span.End()
	span.SetAttributes(attribute.String("category", string(category)))

	spec, err := parseQuerySpec(r, category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	query, err := vehicles.BuildQuery(spec)
	var invalid *vehicles.ErrInvalidQuery
	if errors.As(err, &invalid) {
		writeError(w, http.StatusBadRequest, invalid.Reason)
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		writeError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	total, err := s.countRows(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.ErrorContext(ctx, "count query failed", "category", category, "err", err)
		writeError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	items, err := s.fetchRows(ctx, category, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.ErrorContext(ctx, "data query failed", "category", category, "err", err)
		writeError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": total,
	})
}

func parseQuerySpec(r *http.Request, category vehicles.Category) (vehicles.QuerySpec, error) {
	params := r.URL.Query()

	page := 1
	if raw := params.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return vehicles.QuerySpec{}, errors.New("invalid page parameter")
		}
		page = parsed
	}

	limit := 10
	if raw := params.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return vehicles.QuerySpec{}, errors.New("invalid limit parameter")
		}
		limit = parsed
	}

	return vehicles.QuerySpec{
		Category:  category,
		Page:      page,
		Limit:     limit,
		Search:    params.Get("search"),
		SortBy:    params.Get("sortBy"),
		SortOrder: params.Get("sortOrder"),
	}, nil
}

func (s Service) countRows(ctx context.Context, query vehicles.Query) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx, query.CountSQL, query.CountArgs...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s Service) fetchRows(ctx context.Context, category vehicles.Category, query vehicles.Query) ([]map[string]any, error) {
	rows, err := s.db.QueryContext(ctx, query.DataSQL, query.DataArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []map[string]any{}
	for rows.Next() {
		row, err := vehicles.ScanRowMap(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, vehicles.Shape(category, row))
	}
	return items, rows.Err()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Warn("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// Cors allows the browser frontend to call the API from another
// origin.
func Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
