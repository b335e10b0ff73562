package service

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type entry struct {
	svc      Service
	required bool
}

// Hub starts services in registration order and stops them in reverse
type Hub struct {
	mu      sync.Mutex
	entries []entry
	names   map[string]struct{}
	started []Service
	logger  *zap.Logger
}

// NewHub creates an empty service hub
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		names:  make(map[string]struct{}),
		logger: logger.Named("service"),
	}
}

// Register adds a service. A failing optional service is logged and skipped;
// a failing required one aborts StartAll
func (h *Hub) Register(svc Service, required bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.names[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}
	h.names[name] = struct{}{}
	h.entries = append(h.entries, entry{svc: svc, required: required})
	return nil
}

// StartAll starts every registered service.
// On a required failure, already-started services are stopped in reverse order
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = h.started[:0]
	for _, e := range h.entries {
		if err := e.svc.Start(); err != nil {
			if !e.required {
				h.logger.Warn("optional service unavailable",
					zap.String("service", e.svc.Name()),
					zap.Error(err),
				)
				continue
			}
			h.stopLocked()
			return fmt.Errorf("service %s start failed: %w", e.svc.Name(), err)
		}
		h.started = append(h.started, e.svc)
		h.logger.Debug("service started", zap.String("service", e.svc.Name()))
	}
	return nil
}

// StopAll stops started services in reverse order and joins their errors
func (h *Hub) StopAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopLocked()
}

func (h *Hub) stopLocked() error {
	var errs []error
	for i := len(h.started) - 1; i >= 0; i-- {
		svc := h.started[i]
		if err := svc.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("service %s stop: %w", svc.Name(), err))
		}
	}
	h.started = h.started[:0]
	return errors.Join(errs...)
}
