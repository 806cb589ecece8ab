package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"

	"github.com/goran-ethernal/OrderScope/internal/types"
	"github.com/goran-ethernal/OrderScope/pkg/search"
)

// SearchAPIKey is the key the fake search server expects in the path.
const SearchAPIKey = "test-key"

// SearchServer is an in-process transaction search service backed by an
// in-memory chain. It answers height and sender queries the way the real
// service does, including offset pagination and null for empty pages.
type SearchServer struct {
	URL string

	mu       sync.Mutex
	server   *httptest.Server
	blocks   map[uint64][]*types.Transaction
	requests []map[string]any
}

// StartSearchServer starts a fake search server for the duration of the test.
func StartSearchServer(t *testing.T) *SearchServer {
	t.Helper()

	s := &SearchServer{
		blocks: make(map[uint64][]*types.Transaction),
	}
	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	s.URL = s.server.URL

	t.Cleanup(s.server.Close)

	return s
}

// AddBlock appends transactions to the block at height in execution order.
func (s *SearchServer) AddBlock(height uint64, txs ...*types.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blocks[height] = append(s.blocks[height], txs...)
}

// Requests returns the decoded bodies of all requests received so far.
func (s *SearchServer) Requests() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.requests)
}

// HeightRequests counts block queries for height.
func (s *SearchServer) HeightRequests(height uint64) int {
	count := 0
	for _, req := range s.Requests() {
		if h, ok := req["height"].(float64); ok && uint64(h) == height {
			count++
		}
	}
	return count
}

func (s *SearchServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/apikey/"+SearchAPIKey+"/transactions_search" {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	var req map[string]any
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	page := s.page(req)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if len(page) == 0 {
		_, _ = w.Write([]byte("null"))
		return
	}
	_ = json.NewEncoder(w).Encode(page)
}

// page must be called with mu held.
func (s *SearchServer) page(req map[string]any) []*types.Transaction {
	offset := number(req["offset"])

	var matched []*types.Transaction
	if _, ok := req["height"]; ok {
		matched = s.blocks[number(req["height"])]
	} else {
		matched = s.bySender(req)
	}

	if offset >= uint64(len(matched)) {
		return nil
	}

	end := min(offset+search.PageSize, uint64(len(matched)))
	return matched[offset:end]
}

func (s *SearchServer) bySender(req map[string]any) []*types.Transaction {
	senders, _ := req["sender"].([]any)
	after := number(req["after_height"])
	before := number(req["before_height"])

	heights := make([]uint64, 0, len(s.blocks))
	for h := range s.blocks {
		if h > after && h < before {
			heights = append(heights, h)
		}
	}
	// the service lists newest first
	slices.Sort(heights)
	slices.Reverse(heights)

	var out []*types.Transaction
	for _, h := range heights {
		for _, tx := range s.blocks[h] {
			for _, sender := range senders {
				if id, ok := sender.(string); ok && id == tx.Sender() {
					out = append(out, tx)
					break
				}
			}
		}
	}
	return out
}

func number(v any) uint64 {
	f, _ := v.(float64)
	return uint64(f)
}
