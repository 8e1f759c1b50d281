package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

type HTTPHandler struct {
	Service *BookingService
	Feed    *Feed
}

func NewHTTPServer(service *BookingService, feed *Feed, identity *IdentityJWT) http.Handler {
	httpHandler := HTTPHandler{service, feed}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	r.Use(middleware.RealIP)
	r.Use(httprate.Limit(60, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint)))
	r.Use(middleware.Heartbeat("/"))

	r.Get("/rooms", httpHandler.listRooms())
	r.Get("/rooms/events", httpHandler.getRoomEventStream())
	r.Get("/rooms/{roomNumber}", httpHandler.getRoomByNumber())
	r.Get("/ws", httpHandler.websocket())
	r.Post("/identity", httpHandler.mintIdentity(identity))

	r.Group(func(r chi.Router) {
		r.Use(identity.Middleware)
		r.Post("/rooms", httpHandler.createRoom())
		r.Post("/rooms/{roomNumber}/book", httpHandler.bookRoom())
		r.Post("/rooms/{roomNumber}/unbook", httpHandler.unbookRoom())
		r.Delete("/rooms/{roomNumber}", httpHandler.deleteRoom())
	})
	return r
}

type CreateRoomPayload struct {
	Number           uint64 `json:"number"`
	Capacity         int64  `json:"capacity"`
	PricePerOccupant uint64 `json:"pricePerOccupant"`
}

type BookRoomPayload struct {
	Price uint64 `json:"price"`
}

type IdentityPayload struct {
	Name string `json:"name"`
}

func roomNumberParam(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "roomNumber"), 10, 64)
}

func (h HTTPHandler) listRooms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, h.Service.ListRooms())
	}
}

func (h HTTPHandler) getRoomByNumber() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := roomNumberParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "BadRequest")
			return
		}
		room, err := h.Service.GetRoomByNumber(number)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, room)
	}
}

func (h HTTPHandler) createRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := readJSON[CreateRoomPayload](r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "BadRequest")
			return
		}
		confirmation, err := h.Service.CreateRoom(payload.Number, payload.Capacity, payload.PricePerOccupant, CallerFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		LogCreatedRoom(payload.Number)
		writeJSON(w, http.StatusCreated, confirmation)
	}
}

func (h HTTPHandler) bookRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := roomNumberParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "BadRequest")
			return
		}
		payload, err := readJSON[BookRoomPayload](r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "BadRequest")
			return
		}
		caller := CallerFromContext(r.Context())
		confirmation, err := h.Service.BookRoom(number, payload.Price, caller)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		LogBookedRoom(number, caller)
		writeJSON(w, http.StatusOK, confirmation)
	}
}

func (h HTTPHandler) unbookRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := roomNumberParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "BadRequest")
			return
		}
		caller := CallerFromContext(r.Context())
		confirmation, err := h.Service.UnbookRoom(number, caller)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		LogUnbookedRoom(number, caller)
		writeJSON(w, http.StatusOK, confirmation)
	}
}

func (h HTTPHandler) deleteRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := roomNumberParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "BadRequest")
			return
		}
		confirmation, err := h.Service.DeleteRoom(number, CallerFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		LogDeletedRoom(number)
		writeJSON(w, http.StatusOK, confirmation)
	}
}

func (h HTTPHandler) mintIdentity(identity *IdentityJWT) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := readJSON[IdentityPayload](r)
		if err != nil || payload.Name == "" {
			writeError(w, http.StatusBadRequest, "BadRequest")
			return
		}
		token, err := identity.GenerateIdentityJWT(payload.Name)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "TokenError")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

func (h HTTPHandler) getRoomEventStream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "HTTP Streaming not supported!", http.StatusBadRequest)
			return
		}
		stream := NewEventStream(w, flusher)
		logger := GetFeedLogger(r.RemoteAddr)
		logger.JoinedFeed()
		sendChannel := h.Feed.Join()
	messageLoop:
		for {
			select {
			case msg := <-sendChannel:
				stream.SendByteSlice(msg)
			case <-r.Context().Done():
				h.Feed.Leave(sendChannel)
				logger.LeftFeed()
				break messageLoop
			}
		}
	}
}

func (h HTTPHandler) websocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			LogErrorWhileUpgradingHTTP(err)
			return
		}
		defer conn.Close()
		logger := GetFeedLogger(r.RemoteAddr)
		logger.JoinedFeed()
		sendChannel := h.Feed.Join()
		defer h.Feed.Leave(sendChannel)
		for {
			select {
			case msg := <-sendChannel:
				if err := wsutil.WriteServerText(conn, msg); err != nil {
					logger.LeftFeed()
					return
				}
			case <-r.Context().Done():
				logger.LeftFeed()
				return
			}
		}
	}
}
