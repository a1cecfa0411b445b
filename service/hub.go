package service

import (
	"errors"
	"fmt"
	"sort"
)

// Hub owns a set of services and runs their lifecycle in dependency order
type Hub struct {
	services map[string]Service
	order    []string
	started  []string
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

// Register adds a service; names must be unique
func (h *Hub) Register(s Service) error {
	name := s.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service %q already registered", name)
	}
	h.services[name] = s
	h.order = nil
	return nil
}

// Get returns a registered service by name
func (h *Hub) Get(name string) (Service, bool) {
	s, ok := h.services[name]
	return s, ok
}

// Order returns service names in dependency order
func (h *Hub) Order() ([]string, error) {
	if h.order != nil {
		return h.order, nil
	}

	indegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string)
	for name, s := range h.services {
		if _, ok := indegree[name]; !ok {
			indegree[name] = 0
		}
		for _, dep := range s.Dependencies() {
			if _, ok := h.services[dep]; !ok {
				return nil, fmt.Errorf("service %q depends on unregistered %q", name, dep)
			}
			indegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	// Kahn's algorithm, ready set kept sorted for a stable order
	var ready []string
	for name, d := range indegree {
		if d == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(h.services))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)

		next := dependents[name]
		sort.Strings(next)
		for _, d := range next {
			indegree[d]--
			if indegree[d] == 0 {
				ready = append(ready, d)
				sort.Strings(ready)
			}
		}
	}

	if len(order) != len(h.services) {
		return nil, errors.New("service dependency cycle")
	}
	h.order = order
	return order, nil
}

// InitAll initializes every service in dependency order
// args maps a service name to the arguments passed to its Init
func (h *Hub) InitAll(args map[string][]any) error {
	order, err := h.Order()
	if err != nil {
		return err
	}
	for _, name := range order {
		if err := h.services[name].Init(args[name]...); err != nil {
			return fmt.Errorf("init %s: %w", name, err)
		}
	}
	return nil
}

// StartAll starts every service in dependency order
// On failure the services already started are stopped in reverse order
func (h *Hub) StartAll() error {
	order, err := h.Order()
	if err != nil {
		return err
	}
	for _, name := range order {
		if err := h.services[name].Start(); err != nil {
			startErr := fmt.Errorf("start %s: %w", name, err)
			if stopErr := h.StopAll(); stopErr != nil {
				return errors.Join(startErr, stopErr)
			}
			return startErr
		}
		h.started = append(h.started, name)
	}
	return nil
}

// StopAll stops started services in reverse start order, collecting every error
func (h *Hub) StopAll() error {
	var errs []error
	for i := len(h.started) - 1; i >= 0; i-- {
		name := h.started[i]
		if err := h.services[name].Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", name, err))
		}
	}
	h.started = nil
	return errors.Join(errs...)
}
