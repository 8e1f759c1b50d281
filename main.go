package main

import (
	"net/http"
	"os"
)

func main() {
	config := MustLoadConfig()

	registry := NewRegistry()
	feed := NewFeed()

	var store RoomStore
	if config.DBPath != "" {
		db, err := OpenDB(config.DBPath)
		if err != nil {
			LogFailedToOpenStore(err)
			os.Exit(1)
		}
		sqliteStore := NewSQLiteStore(db)
		rooms, err := sqliteStore.LoadRooms()
		if err != nil {
			LogFailedToOpenStore(err)
			os.Exit(1)
		}
		for _, room := range rooms {
			_ = registry.Insert(room)
		}
		LogLoadedRooms(len(rooms))
		store = sqliteStore
	}

	service := NewBookingService(registry, store, feed)
	identity := NewIdentityJWT(config.JwtSecret)

	LogStartedServer(config.Port)
	http.ListenAndServe(":"+config.Port, NewHTTPServer(service, feed, identity))
}
