package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
	"github.com/gorilla/mux"

	"github.com/Ko-stant/spider-field/internal/geometry"
	"github.com/Ko-stant/spider-field/internal/protocol"
	"github.com/Ko-stant/spider-field/internal/render"
	"github.com/Ko-stant/spider-field/internal/web/views"
	"github.com/Ko-stant/spider-field/internal/ws"
)

// Handlers turns intents from browsers into engine calls and broadcasts
// what changed.
type Handlers struct {
	engine      GameEngine
	broadcaster Broadcaster
	hub         *ws.Hub
	logger      Logger
}

func NewHandlers(engine GameEngine, broadcaster Broadcaster, hub *ws.Hub, logger Logger) *Handlers {
	return &Handlers{
		engine:      engine,
		broadcaster: broadcaster,
		hub:         hub,
		logger:      logger,
	}
}

func (h *Handlers) HandleRequestDirection(req protocol.RequestDirection) error {
	dir, ok := geometry.ParseDirection(req.Direction)
	if !ok {
		return NewGameError(CodeUnknownDirection, "unknown direction %q", req.Direction)
	}
	if err := h.engine.HandleDirection(dir); err != nil {
		h.logger.Printf("Direction %s rejected: %v", dir, err)
		return toGameError(err)
	}
	return nil
}

func (h *Handlers) HandleRequestPause() error {
	status, err := h.engine.TogglePause()
	if err != nil {
		return toGameError(err)
	}
	snap := h.engine.Snapshot()
	h.broadcaster.BroadcastEvent(protocol.PatchStatusChanged, snap.Tick, protocol.StatusChanged{Status: string(status)})
	return nil
}

func (h *Handlers) HandleRequestRestart() error {
	snap, err := h.engine.Restart()
	if err != nil {
		h.logger.Printf("Restart failed: %v", err)
		return toGameError(err)
	}
	h.broadcaster.BroadcastEvent(protocol.PatchSnapshot, snap.Tick, snap)
	return nil
}

func (h *Handlers) HandleWebSocketMessage(data []byte) error {
	var env protocol.IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return NewGameError(CodeBadIntent, "malformed envelope: %v", err)
	}

	switch env.Type {
	case protocol.IntentRequestDirection:
		var req protocol.RequestDirection
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return NewGameError(CodeBadIntent, "malformed %s: %v", env.Type, err)
		}
		return h.HandleRequestDirection(req)

	case protocol.IntentRequestPause:
		return h.HandleRequestPause()

	case protocol.IntentRequestRestart:
		return h.HandleRequestRestart()

	default:
		h.logger.Printf("Unknown message type: %s", env.Type)
		return NewGameError(CodeUnknownIntent, "unknown intent %q", env.Type)
	}
}

// Routes registers every endpoint on a new router.
func (h *Handlers) Routes() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", h.serveIndex).Methods("GET")
	router.HandleFunc("/stream", h.serveStream).Methods("GET")
	router.HandleFunc("/api/snapshot", h.serveSnapshot).Methods("GET")
	router.HandleFunc("/field.png", h.serveFieldPNG).Methods("GET")
	router.HandleFunc("/api/direction/{dir}", h.serveDirection).Methods("POST")
	router.HandleFunc("/api/pause", h.servePause).Methods("POST")
	router.HandleFunc("/api/restart", h.serveRestart).Methods("POST")
	return router
}

func jsonResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *Handlers) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	ge := toGameError(err)
	h.logger.Printf("%d %s %s: %v", ge.HTTPStatus(), r.Method, r.URL.Path, ge)
	jsonResponse(w, r, ge.HTTPStatus(), map[string]any{"error": ge})
}

func (h *Handlers) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.IndexPage(h.engine.Snapshot()).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handlers) serveSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := h.engine.Snapshot()
	if r.URL.Query().Get("format") == "svg" {
		jsonResponse(w, r, http.StatusOK, map[string]string{
			"svg":    views.FieldSVG(snap),
			"status": views.StatusLine(snap),
			"state":  snap.Status,
		})
		return
	}
	jsonResponse(w, r, http.StatusOK, snap)
}

func (h *Handlers) serveFieldPNG(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, h.engine.Snapshot(), render.DefaultOptions()); err != nil {
		h.errorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func (h *Handlers) serveDirection(w http.ResponseWriter, r *http.Request) {
	req := protocol.RequestDirection{Direction: mux.Vars(r)["dir"]}
	if err := h.HandleRequestDirection(req); err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, r, http.StatusOK, h.engine.Snapshot().Spider)
}

func (h *Handlers) servePause(w http.ResponseWriter, r *http.Request) {
	if err := h.HandleRequestPause(); err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, r, http.StatusOK, map[string]string{"status": h.engine.Snapshot().Status})
}

func (h *Handlers) serveRestart(w http.ResponseWriter, r *http.Request) {
	if err := h.HandleRequestRestart(); err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, r, http.StatusOK, h.engine.Snapshot())
}

// serveStream upgrades to a websocket, sends the current snapshot and
// then feeds incoming intents to the engine until the client leaves.
func (h *Handlers) serveStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		h.logger.Printf("websocket accept failed: %v", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	// Registered before the snapshot so no patch after it is missed.
	h.hub.Add(conn)
	defer h.hub.Remove(conn)

	snap := h.engine.Snapshot()
	hello, err := encodePatch(0, snap.Tick, protocol.PatchSnapshot, snap)
	if err != nil {
		h.logger.Printf("failed to marshal snapshot: %v", err)
		return
	}
	if err := conn.Write(r.Context(), websocket.MessageText, hello); err != nil {
		return
	}

	h.logger.Printf("viewer connected from %s (%d connected)", r.RemoteAddr, h.hub.Len())

	ctx := r.Context()
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if err := h.HandleWebSocketMessage(data); err != nil {
			h.replyError(ctx, conn, err)
		}
	}
}

func (h *Handlers) replyError(ctx context.Context, conn *websocket.Conn, err error) {
	data, merr := encodePatch(0, 0, "Error", toGameError(err))
	if merr != nil {
		return
	}
	_ = conn.Write(ctx, websocket.MessageText, data)
}
