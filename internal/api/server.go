package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"rod-cutting-optimizer/internal/printqueue"
	"rod-cutting-optimizer/internal/rodcut"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// DefaultMaxLength bounds the rod length a single request may ask for.
	// Solving is quadratic in the length, so requests are capped up front.
	DefaultMaxLength = 10_000

	defaultListLimit = 20
	maxListLimit     = 100

	// bytesPerPrice covers the widest int64 in decimal plus a separator
	// and some whitespace.
	bytesPerPrice = 24
	// rodCutBodyOverhead covers the length, strategy and JSON framing.
	rodCutBodyOverhead = 1 << 10

	maxPrintQueueBody = 1 << 20
)

var _ ServerInterface = (*Server)(nil)

// Server serves the rod-cutting and print queue endpoints
type Server struct {
	db        *sql.DB
	maxLength int
}

// NewServer creates a server backed by db
func NewServer(db *sql.DB, maxLength int) *Server {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Server{db: db, maxLength: maxLength}
}

// Routes builds the HTTP router for the server
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	return HandlerWithOptions(s, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, http.StatusBadRequest, err.Error())
		},
	})
}

// maxRodCutBody is the largest request body accepted for a rod-cutting
// request. Prices past the rod length are ignored by the solvers, so
// anything much bigger than maxLength prices is rejected before decoding.
func (s *Server) maxRodCutBody() int64 {
	return rodCutBodyOverhead + int64(s.maxLength)*bytesPerPrice
}

// GetHealth reports that the server is up
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// SolveRodCut solves a rod-cutting problem and stores the result
func (s *Server) SolveRodCut(w http.ResponseWriter, r *http.Request) {
	length, prices, strategyName, ok := s.decodeRodCut(w, r)
	if !ok {
		return
	}

	strategy, err := rodcut.ParseStrategy(strategyName)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown strategy")
		return
	}
	solver, err := rodcut.NewSolver(strategy)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown strategy")
		return
	}

	res, err := solver.Solve(length, prices)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	id, err := SaveSolve(s.db, length, strategy, prices, res)
	if err != nil {
		log.Printf("Failed to store solve: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to store solve")
		return
	}

	resp := toRodCut(strategy, length, res)
	resp.Id = &id
	writeJSON(w, http.StatusOK, resp)
}

// CompareRodCut solves a problem with both strategies without storing it
func (s *Server) CompareRodCut(w http.ResponseWriter, r *http.Request) {
	length, prices, _, ok := s.decodeRodCut(w, r)
	if !ok {
		return
	}

	c, err := rodcut.Compare(length, prices)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if !c.Consistent {
		log.Printf("Strategies disagree on profit for length %d: memo=%d table=%d",
			length, c.Memo.MaxProfit, c.Table.MaxProfit)
	}

	writeJSON(w, http.StatusOK, RodCutComparison{
		Memo:       toRodCut(rodcut.StrategyMemo, length, c.Memo),
		Table:      toRodCut(rodcut.StrategyTable, length, c.Table),
		Consistent: c.Consistent,
		SameCuts:   c.SameCuts,
	})
}

// GetRodCut returns a stored solve by ID
func (s *Server) GetRodCut(w http.ResponseWriter, r *http.Request, id string) {
	rec, err := GetSolve(s.db, id)
	if err != nil {
		log.Printf("Failed to fetch solve %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch solve")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "Solve not found")
		return
	}

	writeJSON(w, http.StatusOK, fromRecord(*rec))
}

// ListRodCuts returns the most recent stored solves
func (s *Server) ListRodCuts(w http.ResponseWriter, r *http.Request, params ListRodCutsParams) {
	limit := defaultListLimit
	if params.Limit != nil {
		if *params.Limit <= 0 || *params.Limit > maxListLimit {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxListLimit))
			return
		}
		limit = *params.Limit
	}

	records, err := ListSolves(s.db, limit)
	if err != nil {
		log.Printf("Failed to list solves: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list solves")
		return
	}

	resp := make([]RodCut, 0, len(records))
	for _, rec := range records {
		resp = append(resp, fromRecord(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

// OptimizePrintQueue groups print jobs into batches
func (s *Server) OptimizePrintQueue(w http.ResponseWriter, r *http.Request) {
	var req OptimizePrintQueueJSONRequestBody
	if !decodeBody(w, r, maxPrintQueueBody, &req) {
		return
	}

	jobs := make([]printqueue.Job, 0, len(req.Jobs))
	for _, j := range req.Jobs {
		jobs = append(jobs, printqueue.Job{
			ID:        j.Id,
			Volume:    j.Volume,
			Priority:  j.Priority,
			PrintTime: j.PrintTime,
		})
	}
	constraints := printqueue.Constraints{
		MaxVolume: req.Constraints.MaxVolume,
		MaxItems:  req.Constraints.MaxItems,
	}

	res, err := printqueue.Optimize(jobs, constraints)
	if err != nil {
		if errors.Is(err, printqueue.ErrInvalidConstraints) || errors.Is(err, printqueue.ErrInvalidJob) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to optimize print queue")
		return
	}

	order := res.PrintOrder
	if order == nil {
		order = []string{}
	}
	writeJSON(w, http.StatusOK, PrintQueue{PrintOrder: order, TotalTime: res.TotalTime})
}

// decodeRodCut reads and checks a rod-cutting request, writing the error response itself
func (s *Server) decodeRodCut(w http.ResponseWriter, r *http.Request) (int, []int, string, bool) {
	var req SolveRodCutJSONRequestBody
	if !decodeBody(w, r, s.maxRodCutBody(), &req) {
		return 0, nil, "", false
	}
	if req.Length == nil {
		writeError(w, http.StatusBadRequest, "Length is required")
		return 0, nil, "", false
	}
	if *req.Length > s.maxLength {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Length exceeds maximum of %d", s.maxLength))
		return 0, nil, "", false
	}

	var prices []int
	if req.Prices != nil {
		prices = *req.Prices
	}
	var strategy string
	if req.Strategy != nil {
		strategy = string(*req.Strategy)
	}
	return *req.Length, prices, strategy, true
}

// decodeBody decodes a JSON body of at most limit bytes into v
func decodeBody(w http.ResponseWriter, r *http.Request, limit int64, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func toRodCut(strategy rodcut.Strategy, length int, res rodcut.Result) RodCut {
	return RodCut{
		Strategy:     Strategy(strategy),
		Length:       length,
		MaxProfit:    res.MaxProfit,
		Cuts:         res.Cuts,
		NumberOfCuts: res.NumberOfCuts,
	}
}

func fromRecord(rec SolveRecord) RodCut {
	rc := toRodCut(rec.Strategy, rec.Length, rec.Result)
	id := rec.ID
	rc.Id = &id
	created := rec.CreatedAt
	rc.CreatedAt = &created
	if rc.Cuts == nil {
		rc.Cuts = []int{}
	}
	return rc
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Error{Error: msg})
}
