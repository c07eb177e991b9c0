// cmd/mathsteps-server — HTTP demo service for the mathsteps rewrite
// engine.
//
// Usage:
//
//	mathsteps-server -port 8080
//
// Endpoints:
//
//	POST /simplify     — simplify an expression, return the final tree
//	POST /step-through  — simplify an expression, return every step
//	POST /solve         — isolate a variable in an equation
//	GET  /health        — liveness check
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/njchilds90/mathsteps"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20 // 1 MiB

type server struct {
	log *zap.Logger
}

type simplifyRequest struct {
	Expression json.RawMessage `json:"expression"`
	MaxSteps   int             `json:"max_steps,omitempty"`
}

type stepView struct {
	Kind string `json:"kind"`
	Tree string `json:"tree"`
}

func (s *server) handleSimplify(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSimplify(w, r)
	if !ok {
		return
	}
	n, err := mathsteps.ParseJSON(string(req.Expression))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	result, err := mathsteps.Simplify(n, mathsteps.Options{MaxSteps: req.MaxSteps})
	if err != nil {
		s.log.Warn("simplify failed", zap.Error(err))
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"result": mathsteps.Print(result, mathsteps.PrintOptions{}),
	})
}

func (s *server) handleStepThrough(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSimplify(w, r)
	if !ok {
		return
	}
	n, err := mathsteps.ParseJSON(string(req.Expression))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	trace, err := mathsteps.StepThrough(n, mathsteps.Options{MaxSteps: req.MaxSteps})
	views := make([]stepView, len(trace))
	for i, rec := range trace {
		views[i] = stepView{Kind: string(rec.Kind), Tree: mathsteps.Print(rec.Tree, mathsteps.PrintOptions{})}
	}
	if err != nil {
		s.log.Warn("step-through incomplete", zap.Error(err))
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"steps": views,
			"error": err.Error(),
		})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"steps": views})
}

type solveRequest struct {
	LHS        json.RawMessage `json:"lhs"`
	RHS        json.RawMessage `json:"rhs"`
	Comparator string          `json:"comparator"`
}

func (s *server) handleSolve(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	var req solveRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	lhs, err := mathsteps.ParseJSON(string(req.LHS))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("lhs: %w", err))
		return
	}
	rhs, err := mathsteps.ParseJSON(string(req.RHS))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("rhs: %w", err))
		return
	}
	eq := mathsteps.Equation{LHS: lhs, RHS: rhs, Comparator: mathsteps.Comparator(req.Comparator)}
	result, err := mathsteps.Solve(eq, mathsteps.Options{})
	if err != nil {
		s.log.Info("unsolvable", zap.Error(err))
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if result.Verdict != "" {
		s.writeJSON(w, http.StatusOK, map[string]string{"verdict": result.Verdict})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"result": result.Text})
}

func (s *server) decodeSimplify(w http.ResponseWriter, r *http.Request) (simplifyRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	var req simplifyRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return simplifyRequest{}, false
	}
	return req, true
}

func (s *server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	s := &server{log: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Post("/simplify", s.handleSimplify)
	r.Post("/step-through", s.handleStepThrough)
	r.Post("/solve", s.handleSolve)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
	})

	addr := fmt.Sprintf(":%d", *port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("mathsteps-server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
