// Package stream hosts particle simulations for browser canvases over
// WebSocket. Each connection mounts its own simulation; the browser asks for
// a frame from its requestAnimationFrame callback, so the loop runs at the
// display's refresh rate and stops when the page goes away.
package stream

import (
	"context"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/cosmic-code/internal/canvas"
	"github.com/ziadkadry99/cosmic-code/internal/particles"
)

// Route is where the page client connects.
const Route = "/ws/particles"

// maxDimension caps the canvas size a client may mount.
const maxDimension = 16384

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Config controls the simulations the handler mounts.
type Config struct {
	Count int
	Seed  uint64 // 0 seeds each view from the clock
	Wrap  particles.WrapPolicy
}

// clientMessage is the incoming WebSocket message format.
type clientMessage struct {
	Type   string  `json:"type"` // "mount" or "frame"
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// serverMessage is the outgoing WebSocket message format.
type serverMessage struct {
	Type    string      `json:"type"` // "mounted", "frame" or "error"
	Seq     int         `json:"seq,omitempty"`
	Count   int         `json:"count,omitempty"`
	Ops     []canvas.Op `json:"ops,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Handler serves the particle stream.
type Handler struct {
	cfg Config
}

// NewHandler creates a Handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{cfg: cfg}
}

// RegisterRoutes mounts the stream endpoint on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get(Route, h.ServeHTTP)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sim, ok := h.mount(conn)
	if !ok {
		return
	}

	rec := canvas.NewRecorder()
	loop := particles.NewLoop(sim, rec, func(frame int) error {
		return conn.WriteJSON(serverMessage{Type: "frame", Seq: frame, Ops: rec.Ops()})
	})

	ctx, unmount := context.WithCancel(context.Background())
	defer unmount()

	ticks := make(chan struct{})
	go h.readTicks(ctx, unmount, conn, ticks)

	if err := loop.Run(ctx, ticks); err != nil {
		log.Printf("stream: websocket write: %v", err)
	}
}

// mount waits for the client's mount message and builds its simulation.
func (h *Handler) mount(conn *websocket.Conn) (*particles.Simulation, bool) {
	var msg clientMessage
	if err := conn.ReadJSON(&msg); err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
			log.Printf("stream: websocket read: %v", err)
		}
		return nil, false
	}
	if msg.Type != "mount" {
		sendError(conn, "first message must be mount, got "+msg.Type)
		return nil, false
	}

	bounds := particles.Bounds{
		Width:  math.Min(msg.Width, maxDimension),
		Height: math.Min(msg.Height, maxDimension),
	}
	sim, err := particles.NewSeeded(h.cfg.Count, bounds, h.seed(), particles.WithWrap(h.cfg.Wrap))
	if err != nil {
		sendError(conn, err.Error())
		return nil, false
	}

	if err := conn.WriteJSON(serverMessage{Type: "mounted", Count: sim.Len()}); err != nil {
		log.Printf("stream: websocket write: %v", err)
		return nil, false
	}
	return sim, true
}

// readTicks forwards frame requests to the loop. It is the only reader of
// conn; the loop goroutine is the only writer.
func (h *Handler) readTicks(ctx context.Context, unmount context.CancelFunc, conn *websocket.Conn, ticks chan<- struct{}) {
	defer unmount()
	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("stream: websocket read: %v", err)
			}
			return
		}
		if msg.Type != "frame" {
			log.Printf("stream: ignoring %q message", msg.Type)
			continue
		}
		select {
		case ticks <- struct{}{}:
		case <-ctx.Done():
			return
		}
	}
}

func (h *Handler) seed() uint64 {
	if h.cfg.Seed != 0 {
		return h.cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

func sendError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(serverMessage{Type: "error", Message: message}); err != nil {
		log.Printf("stream: websocket write error: %v", err)
	}
}
