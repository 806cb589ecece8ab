package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/goran-ethernal/OrderScope/internal/common"
	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/internal/report"
	"github.com/goran-ethernal/OrderScope/pkg/config"
	"github.com/goran-ethernal/OrderScope/pkg/liquidation"
	"github.com/goran-ethernal/OrderScope/pkg/store"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// Handler handles HTTP requests for the API.
type Handler struct {
	results store.Reader
	log     *logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(results store.Reader, log *logger.Logger) *Handler {
	return &Handler{
		results: results,
		log:     log,
	}
}

// ListLiquidators returns every liquidator with stored results.
// @Summary List liquidators
// @Description Get every liquidator and relation with stored results, with counts and available endpoints
// @Tags Liquidators
// @Produce json
// @Success 200 {array} LiquidatorInfo "List of liquidators"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /liquidators [get]
func (h *Handler) ListLiquidators(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.results.ListLiquidators(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list liquidators: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to list liquidators")
		return
	}

	infos := make([]LiquidatorInfo, 0, len(summaries))
	for _, s := range summaries {
		base := fmt.Sprintf("/api/v1/liquidators/%s", s.Liquidator)
		infos = append(infos, LiquidatorInfo{
			LiquidatorSummary: s,
			Endpoints: []string{
				base + "/liquidations?relation=" + s.Relation.String(),
				base + "/stats?relation=" + s.Relation.String(),
				base + "/buckets?relation=" + s.Relation.String(),
			},
		})
	}

	respondJSON(w, http.StatusOK, infos)
}

// GetLiquidations retrieves the stored records of a liquidator.
// @Summary Get liquidations of a liquidator
// @Description Retrieve stored liquidation records, newest first, with optional filtering and pagination
// @Tags Liquidations
// @Produce json
// @Param address path string true "Liquidator address"
// @Param relation query string false "Relation to filter by" Enums(frontrun, backrun)
// @Param from_height query integer false "Only records at or above this height"
// @Param to_height query integer false "Only records at or below this height"
// @Param flagged query boolean false "Only flagged records"
// @Param limit query int false "Maximum number of records to return" default(100)
// @Param offset query int false "Number of records to skip" default(0)
// @Success 200 {object} RecordsResponse "Records with pagination info"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Liquidator not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /liquidators/{address}/liquidations [get]
func (h *Handler) GetLiquidations(w http.ResponseWriter, r *http.Request) {
	address, ok := h.liquidator(w, r)
	if !ok {
		return
	}

	q, err := parseRecordQuery(r, address)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid query parameters: %v", err))
		return
	}

	total, err := h.results.Count(r.Context(), q)
	if err != nil {
		h.log.Errorf("Failed to count records of %s: %v", address, err)
		respondError(w, http.StatusInternalServerError, "failed to query liquidations")
		return
	}

	records, err := h.results.GetRecords(r.Context(), q)
	if err != nil {
		h.log.Errorf("Failed to query records of %s: %v", address, err)
		respondError(w, http.StatusInternalServerError, "failed to query liquidations")
		return
	}
	if records == nil {
		records = []*liquidation.Record{}
	}

	respondJSON(w, http.StatusOK, RecordsResponse{
		Liquidator: address,
		Records:    records,
		Pagination: PaginationResult{
			Total:   total,
			Limit:   q.Limit,
			Offset:  q.Offset,
			HasMore: q.Offset+len(records) < total,
		},
	})
}

// GetStats summarizes the stored records of a liquidator.
// @Summary Get liquidator statistics
// @Description Count flagged records overall and, given a split height, before and after it
// @Tags Stats
// @Produce json
// @Param address path string true "Liquidator address"
// @Param relation query string false "Relation to summarize" Enums(frontrun, backrun) default(frontrun)
// @Param split_height query integer false "Height splitting the before and after periods"
// @Success 200 {object} StatsResponse "Liquidator statistics"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Liquidator not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /liquidators/{address}/stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	address, ok := h.liquidator(w, r)
	if !ok {
		return
	}

	relation, err := parseRelation(r, liquidation.RelationFrontrun)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	split, err := common.ParseOptionalHeight(r.URL.Query().Get("split_height"))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid split_height: %v", err))
		return
	}

	records, err := h.results.GetRecords(r.Context(), store.Query{Liquidator: address, Relation: relation})
	if err != nil {
		h.log.Errorf("Failed to query records of %s: %v", address, err)
		respondError(w, http.StatusInternalServerError, "failed to get stats")
		return
	}

	resp := StatsResponse{
		Liquidator: address,
		Relation:   relation,
	}
	if split != nil {
		resp.SplitHeight = *split
	}
	resp.Stats = report.Summarize(records, resp.SplitHeight)

	respondJSON(w, http.StatusOK, resp)
}

// GetBuckets groups the stored records of a liquidator by height.
// @Summary Get flagged counts per height bucket
// @Description Count flagged and normal records in consecutive fixed-size height buckets
// @Tags Analytics
// @Produce json
// @Param address path string true "Liquidator address"
// @Param relation query string false "Relation to count" Enums(frontrun, backrun) default(frontrun)
// @Param from_height query integer false "First bucket start, defaults to the lowest stored height"
// @Param to_height query integer false "End of the last bucket (exclusive), defaults past the highest stored height"
// @Param size query integer false "Bucket size in heights" default(14400)
// @Success 200 {object} BucketsResponse "Buckets"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Liquidator not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /liquidators/{address}/buckets [get]
func (h *Handler) GetBuckets(w http.ResponseWriter, r *http.Request) {
	address, ok := h.liquidator(w, r)
	if !ok {
		return
	}

	relation, err := parseRelation(r, liquidation.RelationFrontrun)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	query := r.URL.Query()

	size := uint64(config.DefaultBucketSize)
	if s := query.Get("size"); s != "" {
		size, err = strconv.ParseUint(s, 10, 64)
		if err != nil || size == 0 {
			respondError(w, http.StatusBadRequest, "invalid size: must be a positive integer")
			return
		}
	}

	from, err := common.ParseOptionalHeight(query.Get("from_height"))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid from_height: %v", err))
		return
	}
	to, err := common.ParseOptionalHeight(query.Get("to_height"))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid to_height: %v", err))
		return
	}
	if from != nil && to != nil && *from >= *to {
		respondError(w, http.StatusBadRequest, "from_height must be lower than to_height")
		return
	}

	records, err := h.results.GetRecords(r.Context(), store.Query{Liquidator: address, Relation: relation})
	if err != nil {
		h.log.Errorf("Failed to query records of %s: %v", address, err)
		respondError(w, http.StatusInternalServerError, "failed to get buckets")
		return
	}

	resp := BucketsResponse{
		Liquidator: address,
		Relation:   relation,
		Size:       size,
		Buckets:    []report.Bucket{},
	}

	// records are newest first
	switch {
	case from != nil:
		resp.FromHeight = *from
	case len(records) > 0:
		resp.FromHeight = records[len(records)-1].Height
	}
	switch {
	case to != nil:
		resp.ToHeight = *to
	case len(records) > 0:
		resp.ToHeight = records[0].Height + 1
	}

	buckets, err := report.Bucketize(records, resp.FromHeight, resp.ToHeight, size)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if buckets != nil {
		resp.Buckets = buckets
	}

	respondJSON(w, http.StatusOK, resp)
}

// Health returns the health status of the API and its store.
// @Summary Health check
// @Description Check the health status of the API and the result store
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "API is healthy"
// @Failure 503 {object} HealthResponse "Result store unavailable"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		StoreOK:   true,
	}

	summaries, err := h.results.ListLiquidators(r.Context())
	if err != nil {
		h.log.Warnf("Health check: result store unavailable: %v", err)
		resp.Status = "degraded"
		resp.StoreOK = false
		respondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	seen := make(map[string]struct{}, len(summaries))
	for _, s := range summaries {
		seen[s.Liquidator] = struct{}{}
	}
	resp.Liquidators = len(seen)

	respondJSON(w, http.StatusOK, resp)
}

// liquidator reads the address path value and writes a 404 when nothing is
// stored for it.
func (h *Handler) liquidator(w http.ResponseWriter, r *http.Request) (string, bool) {
	address := r.PathValue("address")
	if address == "" {
		respondError(w, http.StatusBadRequest, "liquidator address is required")
		return "", false
	}

	count, err := h.results.Count(r.Context(), store.Query{Liquidator: address})
	if err != nil {
		h.log.Errorf("Failed to look up liquidator %s: %v", address, err)
		respondError(w, http.StatusInternalServerError, "failed to look up liquidator")
		return "", false
	}
	if count == 0 {
		respondError(w, http.StatusNotFound, fmt.Sprintf("liquidator '%s' not found", address))
		return "", false
	}

	return address, true
}

func parseRelation(r *http.Request, fallback liquidation.Relation) (liquidation.Relation, error) {
	val := r.URL.Query().Get("relation")
	if val == "" {
		return fallback, nil
	}

	relation, err := liquidation.ParseRelation(common.ToLowerWithTrim(val))
	if err != nil {
		return "", fmt.Errorf("invalid relation: %w", err)
	}
	return relation, nil
}

// parseRecordQuery parses HTTP query parameters into a store query.
func parseRecordQuery(r *http.Request, address string) (store.Query, error) {
	q := store.Query{
		Liquidator: address,
		Limit:      defaultLimit,
	}
	values := r.URL.Query()

	relation, err := parseRelation(r, "")
	if err != nil {
		return q, err
	}
	q.Relation = relation

	if limitStr := values.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > maxLimit {
			return q, fmt.Errorf("invalid limit: must be between 1 and %d", maxLimit)
		}
		q.Limit = limit
	}

	if offsetStr := values.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return q, fmt.Errorf("invalid offset: must be non-negative")
		}
		q.Offset = offset
	}

	if q.FromHeight, err = common.ParseOptionalHeight(values.Get("from_height")); err != nil {
		return q, fmt.Errorf("invalid from_height")
	}
	if q.ToHeight, err = common.ParseOptionalHeight(values.Get("to_height")); err != nil {
		return q, fmt.Errorf("invalid to_height")
	}
	if q.FromHeight != nil && q.ToHeight != nil && *q.FromHeight > *q.ToHeight {
		return q, fmt.Errorf("from_height cannot be greater than to_height")
	}

	if flagged := values.Get("flagged"); flagged != "" {
		only, err := strconv.ParseBool(flagged)
		if err != nil {
			return q, fmt.Errorf("invalid flagged: must be a boolean")
		}
		q.FlaggedOnly = only
	}

	return q, nil
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// encode first so a failure can still change the status
	encoded, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(encoded)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
