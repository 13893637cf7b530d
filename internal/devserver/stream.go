package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/jaykit/jay/render"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // dev server only
	},
}

// streamMessage is a client request on the websocket stream.
type streamMessage struct {
	Type     string `json:"type"`
	Fragment string `json:"fragment,omitempty"`
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Value    any    `json:"value,omitempty"`
	Chord    string `json:"chord,omitempty"`
}

// streamReply is the server's answer. HTML carries the full document
// after tree-changing operations.
type streamReply struct {
	Type    string `json:"type"`
	Session string `json:"session,omitempty"`
	HTML    string `json:"html,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleStream upgrades the connection and binds it to a dedicated
// app context for the lifetime of the session.
func (s *Server) handleStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	app := s.newApp()
	if app == nil {
		_ = conn.WriteJSON(streamReply{Type: "error", Error: "no app configured"})
		return
	}

	sessionID := uuid.New().String()
	s.metrics.StreamSessions.Inc()
	defer s.metrics.StreamSessions.Dec()
	s.log.Info("stream session opened", zap.String("session", sessionID))

	app.OnReady()
	if err := conn.WriteJSON(streamReply{
		Type:    "ready",
		Session: sessionID,
		HTML:    app.Document().HTML(),
	}); err != nil {
		return
	}

	for {
		var msg streamMessage
		if err := conn.ReadJSON(&msg); err != nil {
			s.log.Info("stream session closed", zap.String("session", sessionID))
			return
		}
		s.metrics.StreamMessages.WithLabelValues(msg.Type).Inc()

		reply := s.handleStreamMessage(app, msg)
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

func (s *Server) handleStreamMessage(app *render.App, msg streamMessage) streamReply {
	switch msg.Type {
	case "navigate":
		// The navigator re-renders through its subscription.
		app.Navigator().Navigate(msg.Fragment)
		s.metrics.Renders.WithLabelValues("/" + msg.Fragment).Inc()
		return streamReply{Type: "dom", HTML: app.Document().HTML()}

	case "rerender":
		app.Rerender(msg.ID)
		s.metrics.Rerenders.Inc()
		return streamReply{Type: "dom", HTML: app.Document().HTML()}

	case "expose":
		if err := app.Expose(msg.Name, msg.Value); err != nil {
			return streamReply{Type: "error", Error: err.Error()}
		}
		return streamReply{Type: "ack"}

	case "key":
		if app.Navigator().HandleKey(msg.Chord) {
			return streamReply{Type: "dom", HTML: app.Document().HTML()}
		}
		return streamReply{Type: "ack"}

	case "render":
		if err := app.RenderApp(); err != nil {
			return streamReply{Type: "error", Error: err.Error()}
		}
		return streamReply{Type: "dom", HTML: app.Document().HTML()}

	case "ping":
		return streamReply{Type: "pong"}

	default:
		return streamReply{Type: "error", Error: "unknown message type"}
	}
}
