package main

import (
	"cmp"
	"slices"
)

// Registry keys every room by its creator-assigned number. It is not safe for
// concurrent use on its own; BookingService serializes access to it.
type Registry struct {
	rooms map[uint64]*Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[uint64]*Room)}
}

// List returns the rooms sorted by number so a given snapshot always
// enumerates in the same order.
func (reg *Registry) List() []*Room {
	rooms := make([]*Room, 0, len(reg.rooms))
	for _, room := range reg.rooms {
		rooms = append(rooms, room)
	}
	slices.SortFunc(rooms, func(a, b *Room) int {
		return cmp.Compare(a.Number, b.Number)
	})
	return rooms
}

func (reg *Registry) Get(number uint64) (*Room, bool) {
	room, exists := reg.rooms[number]
	return room, exists
}

func (reg *Registry) Insert(room *Room) error {
	if _, exists := reg.rooms[room.Number]; exists {
		return ErrRoomAlreadyExists
	}
	reg.rooms[room.Number] = room
	return nil
}

func (reg *Registry) Remove(number uint64) error {
	if _, exists := reg.rooms[number]; !exists {
		return ErrRoomNotFound
	}
	delete(reg.rooms, number)
	return nil
}
