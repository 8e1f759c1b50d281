package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

type FeedLogger struct {
	zerolog zerolog.Logger
}

func GetFeedLogger(ip string) FeedLogger {
	return FeedLogger{log.With().Str("ip", ip).Logger()}
}

func (l FeedLogger) JoinedFeed() {
	l.zerolog.Info().Msg("Joined event feed")
}

func (l FeedLogger) LeftFeed() {
	l.zerolog.Info().Msg("Left event feed")
}

func LogCreatedRoom(number uint64) {
	log.Info().Uint64("room-number", number).Msg("Created room")
}

func LogBookedRoom(number uint64, caller Occupant) {
	log.Info().Uint64("room-number", number).Str("caller", string(caller)).Msg("Booked room")
}

func LogUnbookedRoom(number uint64, caller Occupant) {
	log.Info().Uint64("room-number", number).Str("caller", string(caller)).Msg("Unbooked room")
}

func LogDeletedRoom(number uint64) {
	log.Info().Uint64("room-number", number).Msg("Deleted room")
}

func LogStartedServer(port string) {
	log.Info().Msgf("Starting server on port %v", port)
}

func LogErrorWhileUpgradingHTTP(err error) {
	log.Error().Err(err).Msg("Error while upgrading HTTP")
}

func LogStoreError(err error) {
	log.Error().Err(err).Msg("Room store write failed")
}

func LogFailedToOpenStore(err error) {
	log.Error().Err(err).Msg("Failed to open room store")
}

func LogLoadedRooms(count int) {
	log.Info().Int("room-count", count).Msg("Loaded rooms from store")
}
