// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package subscriptions tracks the RIC subscriptions admitted by the agent's
// service models.
package subscriptions

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/onosproject/onos-lib-go/pkg/errors"
	liblog "github.com/onosproject/onos-lib-go/pkg/logging"

	"github.com/onosproject/e2-agent/api/e2ap"
	e2chan "github.com/onosproject/e2-agent/pkg/northbound/e2"
	"github.com/onosproject/e2-agent/pkg/store/event"
	"github.com/onosproject/e2-agent/pkg/store/watcher"
)

var log = liblog.GetLogger("store", "subscriptions")

// ID identifies a subscription by its RIC instance, requester and RAN
// function ids.
type ID string

// NewID creates a subscription identifier.
func NewID(ricInstanceID int32, reqID int32, ranFuncID int32) ID {
	return ID(fmt.Sprintf("%d-%d-%d", ricInstanceID, reqID, ranFuncID))
}

// Subscription is one admitted RIC subscription.
type Subscription struct {
	ID             ID
	ReqID          int32
	RanFuncID      int32
	RicInstanceID  int32
	ReportInterval time.Duration
	Ticker         *time.Ticker
	E2Channel      e2chan.Channel
	Actions        []*e2ap.RicactionToBeSetupItem
}

// Event types of the subscription store.
const (
	None int = iota
	Added
	Removed
)

// Store tracks the inventory of admitted subscriptions.
type Store interface {
	// Add adds a subscription
	Add(subscription *Subscription) error

	// Remove removes a subscription
	Remove(id ID) error

	// Get retrieves the subscription with the given ID
	Get(id ID) (*Subscription, error)

	// List returns all current subscriptions
	List() []*Subscription

	// Len returns the number of subscriptions
	Len() int

	// Watch watches subscription events using the supplied channel
	Watch(ch chan<- event.Event) error
}

type store struct {
	mu            sync.RWMutex
	subscriptions map[ID]*Subscription
	watchers      *watcher.Watchers
}

// NewStore creates an empty subscription store.
func NewStore() Store {
	return &store{
		subscriptions: make(map[ID]*Subscription),
		watchers:      watcher.NewWatchers(),
	}
}

func (s *store) Add(subscription *Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscriptions[subscription.ID]; ok {
		return errors.New(errors.AlreadyExists, "subscription already exists")
	}
	s.subscriptions[subscription.ID] = subscription
	s.watchers.Send(event.Event{
		Key:   subscription.ID,
		Value: subscription,
		Type:  Added,
	})
	return nil
}

func (s *store) Remove(id ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if subscription, ok := s.subscriptions[id]; ok {
		delete(s.subscriptions, id)
		s.watchers.Send(event.Event{
			Key:   id,
			Value: subscription,
			Type:  Removed,
		})
		return nil
	}
	return errors.New(errors.NotFound, "subscription not found")
}

func (s *store) Get(id ID) (*Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if subscription, ok := s.subscriptions[id]; ok {
		return subscription, nil
	}
	return nil, errors.New(errors.NotFound, "subscription not found")
}

func (s *store) List() []*Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*Subscription, 0, len(s.subscriptions))
	for _, subscription := range s.subscriptions {
		list = append(list, subscription)
	}
	return list
}

func (s *store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscriptions)
}

func (s *store) Watch(ch chan<- event.Event) error {
	log.Debug("Watching subscription changes")
	id := uuid.New()
	return s.watchers.AddWatcher(id, ch)
}
