package filter

import (
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/campcal/campcal/internal/rest"
	"github.com/campcal/campcal/pkg/event"
	log "github.com/sirupsen/logrus"
)

// Handler serves the event collection, optionally narrowed by filter query
// parameters. Without parameters it returns the full catalog, which the
// presentation views filter locally with the same engine semantics.
type Handler struct {
	events event.Service
}

func NewHandler(events event.Service) *Handler {
	return &Handler{events: events}
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	spec, err := SpecFromQuery(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid filter parameters",
			Details: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	events, err := h.events.GetEvents(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch events", http.StatusInternalServerError)
		return
	}
	filtered := Apply(events, spec)
	log.Tracef("Returning %d of %d events", len(filtered), len(events))

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(event.ToDTOs(filtered)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// SpecFromQuery builds a filter spec from request query parameters:
// search, eventType (repeatable), minPrice, maxPrice, ageGroup (repeatable).
func SpecFromQuery(query url.Values) (Spec, error) {
	spec := Spec{
		Search:     query.Get("search"),
		EventTypes: query["eventType"],
		AgeGroups:  query["ageGroup"],
	}

	minStr := query.Get("minPrice")
	maxStr := query.Get("maxPrice")
	if minStr != "" || maxStr != "" {
		priceRange := PriceRange{Min: 0, Max: math.Inf(1)}
		if minStr != "" {
			min, err := strconv.ParseFloat(minStr, 64)
			if err != nil {
				return Spec{}, err
			}
			priceRange.Min = min
		}
		if maxStr != "" {
			max, err := strconv.ParseFloat(maxStr, 64)
			if err != nil {
				return Spec{}, err
			}
			priceRange.Max = max
		}
		spec.PriceRange = &priceRange
	}
	return spec, nil
}
