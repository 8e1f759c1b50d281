package main

import (
	"sync"

	"github.com/google/uuid"
)

type Confirmation struct {
	Reference string `json:"reference"`
	Action    string `json:"action"`
	Number    uint64 `json:"number"`
}

// BookingService runs every operation inside a single critical section over
// the registry, so each call is atomic with respect to every other call.
type BookingService struct {
	registry *Registry
	store    RoomStore
	feed     *Feed
	lock     sync.RWMutex
}

func NewBookingService(registry *Registry, store RoomStore, feed *Feed) *BookingService {
	return &BookingService{registry: registry, store: store, feed: feed}
}

func (s *BookingService) ListRooms() []RoomView {
	s.lock.RLock()
	defer s.lock.RUnlock()
	rooms := s.registry.List()
	views := make([]RoomView, len(rooms))
	for i, room := range rooms {
		views[i] = room.View()
	}
	return views
}

func (s *BookingService) GetRoomByNumber(number uint64) (RoomView, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	room, exists := s.registry.Get(number)
	if !exists {
		return RoomView{}, ErrRoomNotFound
	}
	return room.View(), nil
}

func (s *BookingService) CreateRoom(number uint64, capacity int64, pricePerOccupant uint64, caller Occupant) (Confirmation, error) {
	if capacity <= 0 {
		return Confirmation{}, ErrInvalidCapacity
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	room := NewRoom(number, uint64(capacity), pricePerOccupant, caller)
	if err := s.registry.Insert(room); err != nil {
		return Confirmation{}, err
	}
	s.persist(room)
	s.publish("created", room)
	return confirm("created", number), nil
}

func (s *BookingService) BookRoom(number uint64, price uint64, caller Occupant) (Confirmation, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	room, exists := s.registry.Get(number)
	if !exists {
		return Confirmation{}, ErrRoomNotFound
	}
	if room.IsFull() {
		return Confirmation{}, ErrRoomFull
	}
	if !room.CheckPrice(price) {
		return Confirmation{}, ErrInvalidPrice
	}
	if err := room.AddOccupant(caller); err != nil {
		return Confirmation{}, err
	}
	s.persist(room)
	s.publish("booked", room)
	return confirm("booked", number), nil
}

func (s *BookingService) UnbookRoom(number uint64, caller Occupant) (Confirmation, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	room, exists := s.registry.Get(number)
	if !exists {
		return Confirmation{}, ErrRoomNotFound
	}
	if _, present := room.HasOccupant(caller); !present {
		return Confirmation{}, ErrNotInRoom
	}
	if err := room.RemoveOccupant(caller); err != nil {
		return Confirmation{}, err
	}
	s.persist(room)
	s.publish("unbooked", room)
	return confirm("unbooked", number), nil
}

func (s *BookingService) DeleteRoom(number uint64, caller Occupant) (Confirmation, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	room, exists := s.registry.Get(number)
	if !exists {
		return Confirmation{}, ErrRoomNotFound
	}
	if !room.IsOwner(caller) {
		return Confirmation{}, ErrNotOwner
	}
	if err := s.registry.Remove(number); err != nil {
		return Confirmation{}, err
	}
	s.unpersist(number)
	s.publish("deleted", room)
	return confirm("deleted", number), nil
}

// Persistence is best effort: the in-memory registry is the source of truth
// and a failed write-through must not fail the operation.
func (s *BookingService) persist(room *Room) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveRoom(room); err != nil {
		LogStoreError(err)
	}
}

func (s *BookingService) unpersist(number uint64) {
	if s.store == nil {
		return
	}
	if err := s.store.DeleteRoom(number); err != nil {
		LogStoreError(err)
	}
}

func (s *BookingService) publish(eventType string, room *Room) {
	if s.feed == nil {
		return
	}
	s.feed.Broadcast(NewRoomEvent(eventType, room))
}

func confirm(action string, number uint64) Confirmation {
	return Confirmation{Reference: uuid.NewString(), Action: action, Number: number}
}
