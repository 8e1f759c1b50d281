package main

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"
)

// RoomStore is the persistence collaborator. The registry stays authoritative
// in memory; the store only has to bring rooms back after a restart.
type RoomStore interface {
	SaveRoom(room *Room) error
	DeleteRoom(number uint64) error
	LoadRooms() ([]*Room, error)
}

func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS rooms (
		number INTEGER PRIMARY KEY,
		capacity INTEGER NOT NULL,
		price_per_occupant INTEGER NOT NULL,
		owner TEXT NOT NULL,
		occupants_json TEXT NOT NULL DEFAULT '[]',
		created_at INTEGER NOT NULL
	);`)
	return err
}

type SQLiteStore struct {
	DB *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{DB: db}
}

func (s *SQLiteStore) SaveRoom(room *Room) error {
	occupantsJSON, _ := json.Marshal(room.Occupants)
	_, err := s.DB.Exec(
		`INSERT INTO rooms (number, capacity, price_per_occupant, owner, occupants_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(number) DO UPDATE SET occupants_json=excluded.occupants_json`,
		room.Number, room.Capacity, room.PricePerOccupant, string(room.Owner), string(occupantsJSON), time.Now().Unix(),
	)
	return err
}

func (s *SQLiteStore) DeleteRoom(number uint64) error {
	_, err := s.DB.Exec(`DELETE FROM rooms WHERE number = ?`, number)
	return err
}

// LoadRooms rebuilds each room through the state machine so State is derived
// from the stored occupant list, never trusted from disk.
func (s *SQLiteStore) LoadRooms() ([]*Room, error) {
	rows, err := s.DB.Query(
		`SELECT number, capacity, price_per_occupant, owner, occupants_json
		 FROM rooms ORDER BY number`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*Room
	for rows.Next() {
		var (
			number, capacity, price uint64
			owner, occupantsJSON    string
		)
		if err := rows.Scan(&number, &capacity, &price, &owner, &occupantsJSON); err != nil {
			return nil, err
		}
		room := NewRoom(number, capacity, price, Occupant(owner))
		var occupants []Occupant
		_ = json.Unmarshal([]byte(occupantsJSON), &occupants)
		for _, occupant := range occupants {
			_ = room.AddOccupant(occupant)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}
