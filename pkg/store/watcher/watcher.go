// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package watcher fans store events out to registered watcher channels.
package watcher

import (
	"sync"

	"github.com/google/uuid"
	"github.com/onosproject/onos-lib-go/pkg/errors"

	"github.com/onosproject/e2-agent/pkg/store/event"
)

// Watchers fans events out to registered channels.
type Watchers struct {
	mu       sync.RWMutex
	watchers map[uuid.UUID]chan<- event.Event
}

// NewWatchers creates an empty watcher set.
func NewWatchers() *Watchers {
	return &Watchers{
		watchers: make(map[uuid.UUID]chan<- event.Event),
	}
}

// AddWatcher registers a watcher channel under the given id.
func (w *Watchers) AddWatcher(id uuid.UUID, ch chan<- event.Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.watchers[id]; ok {
		return errors.New(errors.AlreadyExists, "watcher already exists")
	}
	w.watchers[id] = ch
	return nil
}

// RemoveWatcher unregisters the watcher with the given id.
func (w *Watchers) RemoveWatcher(id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.watchers[id]; !ok {
		return errors.New(errors.NotFound, "watcher not found")
	}
	delete(w.watchers, id)
	return nil
}

// Send delivers an event to every registered watcher.
func (w *Watchers) Send(e event.Event) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, ch := range w.watchers {
		ch <- e
	}
}
