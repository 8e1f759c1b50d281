package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"sync"
)

type RoomEvent struct {
	Type      string    `json:"type"`
	Number    uint64    `json:"number"`
	State     RoomState `json:"state"`
	Occupants []string  `json:"occupants"`
}

func NewRoomEvent(eventType string, room *Room) RoomEvent {
	view := room.View()
	return RoomEvent{Type: eventType, Number: view.Number, State: view.State, Occupants: view.Occupants}
}

// Feed fans registry events out to SSE and websocket subscribers. Sends are
// non-blocking because Broadcast runs while the service lock is held; a slow
// subscriber loses events instead of stalling bookings.
type Feed struct {
	subscribers []chan []byte
	lock        sync.RWMutex
}

func NewFeed() *Feed {
	return &Feed{subscribers: make([]chan []byte, 0)}
}

func (f *Feed) Join() chan []byte {
	newChan := make(chan []byte, 16)
	f.lock.Lock()
	defer f.lock.Unlock()
	f.subscribers = append(f.subscribers, newChan)
	return newChan
}

func (f *Feed) Leave(channel chan []byte) {
	f.lock.Lock()
	defer f.lock.Unlock()
	for i, subscriber := range f.subscribers {
		if subscriber == channel {
			f.subscribers = slices.Delete(f.subscribers, i, i+1)
			break
		}
	}
}

func (f *Feed) Broadcast(event RoomEvent) {
	encoded, _ := json.Marshal(event)
	f.lock.RLock()
	defer f.lock.RUnlock()
	for _, subscriber := range f.subscribers {
		select {
		case subscriber <- encoded:
		default:
		}
	}
}

type EventStream struct {
	w http.ResponseWriter
	f http.Flusher
}

func NewEventStream(w http.ResponseWriter, f http.Flusher) *EventStream {
	return &EventStream{w, f}
}

func (s EventStream) SendByteSlice(msg []byte) {
	fmt.Fprintf(s.w, "data: %v\n\n", string(msg))
	s.f.Flush()
}
