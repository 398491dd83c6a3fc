package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"auction-front/internal/clock"

	"github.com/gin-gonic/gin"
)

// CheckTimeout bounds the readiness checks of one request
const CheckTimeout = 5 * time.Second

// Status is the body of a health response
type Status struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// Checker is a named readiness check
type Checker struct {
	Name  string
	Check func(ctx context.Context) error
}

// Handler serves liveness and readiness endpoints
type Handler struct {
	mu       sync.RWMutex
	ready    bool
	checkers []Checker
	clock    clock.Clock
}

// NewHandler creates a health handler that starts out not ready
func NewHandler(clk clock.Clock, checkers ...Checker) *Handler {
	return &Handler{checkers: checkers, clock: clk}
}

// SetReady marks whether the service accepts traffic
func (h *Handler) SetReady(ready bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ready = ready
}

// Liveness answers 200 while the process runs
func (h *Handler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, Status{Status: "ok", Timestamp: h.timestamp()})
}

// Readiness answers 200 once SetReady(true) was called and every check passes
func (h *Handler) Readiness(c *gin.Context) {
	h.mu.RLock()
	ready := h.ready
	h.mu.RUnlock()

	if !ready {
		c.JSON(http.StatusServiceUnavailable, Status{Status: "not_ready", Timestamp: h.timestamp()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), CheckTimeout)
	defer cancel()

	checks := make(map[string]string, len(h.checkers))
	code, status := http.StatusOK, "ready"
	for _, chk := range h.checkers {
		if err := chk.Check(ctx); err != nil {
			checks[chk.Name] = err.Error()
			code, status = http.StatusServiceUnavailable, "not_ready"
			continue
		}
		checks[chk.Name] = "ok"
	}

	c.JSON(code, Status{Status: status, Checks: checks, Timestamp: h.timestamp()})
}

func (h *Handler) timestamp() string {
	return h.clock.Now().UTC().Format(time.RFC3339)
}
