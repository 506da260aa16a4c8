// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package preview

import (
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 5 * time.Second
	idleTimeout  = 60 * time.Second
	// Must be shorter than idleTimeout so a healthy peer never times out.
	pingInterval = idleTimeout * 8 / 10

	// Frames carry a whole PNG, so a client that falls this far behind
	// is dropped.
	frameBacklog = 4

	maxRequestSize = 512
)

var upgrader = websocket.Upgrader{
	CheckOrigin:      func(*http.Request) bool { return true },
	HandshakeTimeout: time.Second,
	ReadBufferSize:   maxRequestSize,
	WriteBufferSize:  1 << 14,
}

// Socket streams a Frame back for every Request a websocket peer sends.
type Socket struct {
	server *Server
	conn   *websocket.Conn
	frames chan Frame
	closer sync.Once
}

func NewSocket(conn *websocket.Conn, server *Server) *Socket {
	return &Socket{
		server: server,
		conn:   conn,
		frames: make(chan Frame, frameBacklog),
	}
}

// Start runs the socket until either side hangs up.
func (socket *Socket) Start() {
	go socket.writeLoop()
	go socket.readLoop()
}

func (socket *Socket) Close() {
	socket.closer.Do(func() {
		_ = socket.conn.Close()
	})
}

func (socket *Socket) extendDeadline() error {
	return socket.conn.SetReadDeadline(time.Now().Add(idleTimeout))
}

// readLoop owns frames and closes it on exit, which stops writeLoop.
func (socket *Socket) readLoop() {
	defer func() {
		close(socket.frames)
		socket.Close()
	}()

	socket.conn.SetReadLimit(maxRequestSize)
	_ = socket.extendDeadline()
	socket.conn.SetPongHandler(func(string) error {
		return socket.extendDeadline()
	})

	for {
		request, err := socket.readRequest()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Println("socket closed:", err)
			}
			return
		}

		select {
		case socket.frames <- socket.server.Frame(request):
		default:
			log.Println("dropping slow socket")
			return
		}
	}
}

func (socket *Socket) readRequest() (*Request, error) {
	_, r, err := socket.conn.NextReader()
	if err != nil {
		return nil, err
	}
	var request Request
	if err = json.NewDecoder(r).Decode(&request); err != nil {
		log.Println("bad request:", err)
		return nil, err
	}
	return &request, nil
}

func (socket *Socket) writeLoop() {
	ping := time.NewTicker(pingInterval)
	defer func() {
		ping.Stop()
		socket.Close()
	}()

	for {
		select {
		case frame, ok := <-socket.frames:
			_ = socket.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = socket.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := socket.writeFrame(frame); err != nil {
				log.Println("write frame:", err)
				return
			}
		case <-ping.C:
			_ = socket.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := socket.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (socket *Socket) writeFrame(frame Frame) (err error) {
	var w io.WriteCloser
	if w, err = socket.conn.NextWriter(websocket.TextMessage); err != nil {
		return
	}
	defer func() {
		if closeErr := w.Close(); err == nil {
			err = closeErr
		}
	}()
	return json.NewEncoder(w).Encode(frame)
}
