package main

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestService() *BookingService {
	return NewBookingService(NewRegistry(), nil, NewFeed())
}

func TestCreateRoomRejectsNonPositiveCapacity(t *testing.T) {
	service := newTestService()
	_, err := service.CreateRoom(1, 0, 100, "alice")
	require.ErrorIs(t, err, ErrInvalidCapacity)
	_, err = service.CreateRoom(1, -3, 100, "alice")
	require.ErrorIs(t, err, ErrInvalidCapacity)
	require.Empty(t, service.ListRooms())
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	service := newTestService()
	_, err := service.CreateRoom(1, 2, 100, "alice")
	require.NoError(t, err)
	_, err = service.CreateRoom(1, 4, 50, "bob")
	require.ErrorIs(t, err, ErrRoomAlreadyExists)
	room, err := service.GetRoomByNumber(1)
	require.NoError(t, err)
	require.Equal(t, "alice", room.Owner)
	require.Equal(t, uint64(2), room.Capacity)
}

func TestBookRoomWrongPrice(t *testing.T) {
	service := newTestService()
	_, err := service.CreateRoom(1, 2, 100, "alice")
	require.NoError(t, err)
	_, err = service.BookRoom(1, 99, "bob")
	require.ErrorIs(t, err, ErrInvalidPrice)
	_, err = service.BookRoom(1, 150, "bob")
	require.ErrorIs(t, err, ErrInvalidPrice)
	room, _ := service.GetRoomByNumber(1)
	require.Empty(t, room.Occupants)
}

func TestBookRoomTwiceSameCaller(t *testing.T) {
	service := newTestService()
	_, err := service.CreateRoom(1, 3, 100, "alice")
	require.NoError(t, err)
	_, err = service.BookRoom(1, 100, "bob")
	require.NoError(t, err)
	_, err = service.BookRoom(1, 100, "bob")
	require.ErrorIs(t, err, ErrRoomAlreadyBooked)
	room, _ := service.GetRoomByNumber(1)
	require.Len(t, room.Occupants, 1)
}

func TestUnbookRoomNotInRoom(t *testing.T) {
	service := newTestService()
	_, err := service.CreateRoom(1, 2, 100, "alice")
	require.NoError(t, err)
	_, err = service.BookRoom(1, 100, "bob")
	require.NoError(t, err)
	_, err = service.UnbookRoom(1, "carol")
	require.ErrorIs(t, err, ErrNotInRoom)
	room, _ := service.GetRoomByNumber(1)
	require.Len(t, room.Occupants, 1)
}

func TestBookMissingRoom(t *testing.T) {
	service := newTestService()
	_, err := service.BookRoom(42, 100, "bob")
	require.ErrorIs(t, err, ErrRoomNotFound)
	_, err = service.UnbookRoom(42, "bob")
	require.ErrorIs(t, err, ErrRoomNotFound)
	_, err = service.DeleteRoom(42, "bob")
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestBookingLifecycle(t *testing.T) {
	service := newTestService()

	_, err := service.CreateRoom(1, 2, 100, "A")
	require.NoError(t, err)

	_, err = service.BookRoom(1, 100, "B")
	require.NoError(t, err)
	room, _ := service.GetRoomByNumber(1)
	require.Equal(t, PartiallyOccupied, room.State)

	_, err = service.BookRoom(1, 100, "C")
	require.NoError(t, err)
	room, _ = service.GetRoomByNumber(1)
	require.Equal(t, Full, room.State)

	_, err = service.BookRoom(1, 100, "D")
	require.ErrorIs(t, err, ErrRoomFull)

	_, err = service.UnbookRoom(1, "B")
	require.NoError(t, err)
	room, _ = service.GetRoomByNumber(1)
	require.Equal(t, PartiallyOccupied, room.State)
	require.Equal(t, []string{"C"}, room.Occupants)

	_, err = service.DeleteRoom(1, "B")
	require.ErrorIs(t, err, ErrNotOwner)
	_, err = service.DeleteRoom(1, "A")
	require.NoError(t, err)
	_, err = service.GetRoomByNumber(1)
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestConfirmationReferenceIsUUID(t *testing.T) {
	service := newTestService()
	confirmation, err := service.CreateRoom(1, 2, 100, "alice")
	require.NoError(t, err)
	require.Equal(t, "created", confirmation.Action)
	require.Equal(t, uint64(1), confirmation.Number)
	_, err = uuid.Parse(confirmation.Reference)
	require.NoError(t, err)
}

func TestFeedReceivesEvents(t *testing.T) {
	feed := NewFeed()
	service := NewBookingService(NewRegistry(), nil, feed)
	sendChannel := feed.Join()
	defer feed.Leave(sendChannel)

	_, err := service.CreateRoom(1, 2, 100, "alice")
	require.NoError(t, err)
	_, err = service.BookRoom(1, 100, "bob")
	require.NoError(t, err)

	var created, booked RoomEvent
	require.NoError(t, json.Unmarshal(<-sendChannel, &created))
	require.Equal(t, "created", created.Type)
	require.Equal(t, TotallyVacant, created.State)
	require.NoError(t, json.Unmarshal(<-sendChannel, &booked))
	require.Equal(t, "booked", booked.Type)
	require.Equal(t, []string{"bob"}, booked.Occupants)
}
