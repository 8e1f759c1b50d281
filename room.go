package main

import "slices"

// Occupant is the opaque identity of a caller as supplied by the identity
// token. Two occupants are the same party iff their strings are equal.
type Occupant string

type RoomState string

const (
	TotallyVacant     RoomState = "TotallyVacant"
	PartiallyOccupied RoomState = "PartiallyOccupied"
	Full              RoomState = "Full"
)

type Room struct {
	Number           uint64
	Capacity         uint64
	PricePerOccupant uint64
	State            RoomState
	Occupants        []Occupant
	Owner            Occupant
}

func NewRoom(number, capacity, pricePerOccupant uint64, owner Occupant) *Room {
	return &Room{
		Number:           number,
		Capacity:         capacity,
		PricePerOccupant: pricePerOccupant,
		State:            TotallyVacant,
		Occupants:        make([]Occupant, 0),
		Owner:            owner,
	}
}

func (r *Room) IsFull() bool {
	return r.State == Full
}

func (r *Room) IsOwner(occupant Occupant) bool {
	return r.Owner == occupant
}

func (r *Room) HasOccupant(occupant Occupant) (int, bool) {
	i := slices.Index(r.Occupants, occupant)
	return i, i >= 0
}

// CheckPrice requires an exact match, not a minimum.
func (r *Room) CheckPrice(offered uint64) bool {
	return offered == r.PricePerOccupant
}

// AddOccupant appends the occupant and recomputes State. State is only ever
// written here and in RemoveOccupant so it cannot drift from the occupant list.
func (r *Room) AddOccupant(occupant Occupant) error {
	if r.IsFull() {
		return ErrRoomFull
	}
	if _, present := r.HasOccupant(occupant); present {
		return ErrRoomAlreadyBooked
	}
	r.Occupants = append(r.Occupants, occupant)
	if uint64(len(r.Occupants)) == r.Capacity {
		r.State = Full
	} else {
		r.State = PartiallyOccupied
	}
	return nil
}

func (r *Room) RemoveOccupant(occupant Occupant) error {
	i, present := r.HasOccupant(occupant)
	if !present {
		return ErrNotInRoom
	}
	r.Occupants = slices.Delete(r.Occupants, i, i+1)
	if len(r.Occupants) == 0 {
		r.State = TotallyVacant
	} else {
		r.State = PartiallyOccupied
	}
	return nil
}

// RoomView is the externally visible shape of a room.
type RoomView struct {
	Number           uint64    `json:"number"`
	Capacity         uint64    `json:"capacity"`
	PricePerOccupant uint64    `json:"pricePerOccupant"`
	State            RoomState `json:"state"`
	Occupants        []string  `json:"occupants"`
	Owner            string    `json:"owner"`
}

func (r *Room) View() RoomView {
	occupants := make([]string, len(r.Occupants))
	for i, occupant := range r.Occupants {
		occupants[i] = string(occupant)
	}
	return RoomView{
		Number:           r.Number,
		Capacity:         r.Capacity,
		PricePerOccupant: r.PricePerOccupant,
		State:            r.State,
		Occupants:        occupants,
		Owner:            string(r.Owner),
	}
}
