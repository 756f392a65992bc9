// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package subscriptions

import (
	"testing"

	"gotest.tools/assert"

	"github.com/onosproject/e2-agent/pkg/store/event"
)

func TestAddGetRemove(t *testing.T) {
	store := NewStore()
	sub := &Subscription{
		ID:            NewID(2, 1, 1),
		ReqID:         1,
		RanFuncID:     1,
		RicInstanceID: 2,
	}
	assert.NilError(t, store.Add(sub))
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(NewID(2, 1, 1))
	assert.NilError(t, err)
	assert.Equal(t, sub, got)

	err = store.Add(sub)
	assert.Assert(t, err != nil)

	assert.NilError(t, store.Remove(sub.ID))
	assert.Equal(t, 0, store.Len())
	_, err = store.Get(sub.ID)
	assert.Assert(t, err != nil)
	assert.Assert(t, store.Remove(sub.ID) != nil)
}

func TestWatch(t *testing.T) {
	store := NewStore()
	ch := make(chan event.Event, 2)
	assert.NilError(t, store.Watch(ch))

	sub := &Subscription{ID: NewID(3, 2, 1)}
	assert.NilError(t, store.Add(sub))
	added := <-ch
	assert.Equal(t, Added, added.Type)
	assert.Equal(t, sub.ID, added.Key)

	assert.NilError(t, store.Remove(sub.ID))
	removed := <-ch
	assert.Equal(t, Removed, removed.Type)
}
