// Copyright © 2021 Kaleido, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wsserver

import (
	"context"
	"net/http"
	"sync"

	"github.com/cosmicdapp/cw20wallet/internal/log"
	"github.com/gorilla/websocket"
)

const defaultSendBufferSize = 100

// WebSocketBroadcaster pushes a payload to every connection currently listening on a topic.
// It never blocks on a slow connection.
type WebSocketBroadcaster interface {
	Broadcast(ctx context.Context, topic string, payload interface{})
}

// WebSocketServer is the full server interface
type WebSocketServer interface {
	WebSocketBroadcaster
	Handler() http.HandlerFunc
	Close()
}

type webSocketServer struct {
	ctx            context.Context
	mux            sync.Mutex
	upgrader       *websocket.Upgrader
	connections    map[string]*webSocketConnection
	sendBufferSize int
}

// NewWebSocketServer create a new server with a simplified interface
func NewWebSocketServer(ctx context.Context) WebSocketServer {
	return &webSocketServer{
		ctx:            ctx,
		connections:    make(map[string]*webSocketConnection),
		sendBufferSize: defaultSendBufferSize,
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (s *webSocketServer) handler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.L(s.ctx).Errorf("WebSocket upgrade failed: %s", err)
		return
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	c := newConnection(s, conn)
	s.connections[c.id] = c
}

func (s *webSocketServer) connectionClosed(c *webSocketConnection) {
	s.mux.Lock()
	defer s.mux.Unlock()
	delete(s.connections, c.id)
}

func (s *webSocketServer) Handler() http.HandlerFunc {
	return s.handler
}

func (s *webSocketServer) Close() {
	s.mux.Lock()
	connections := make([]*webSocketConnection, 0, len(s.connections))
	for _, c := range s.connections {
		connections = append(connections, c)
	}
	s.mux.Unlock()
	for _, c := range connections {
		c.close()
	}
}

func (s *webSocketServer) Broadcast(ctx context.Context, topic string, payload interface{}) {
	s.mux.Lock()
	listeners := make([]*webSocketConnection, 0, len(s.connections))
	for _, c := range s.connections {
		if c.isListening(topic) {
			listeners = append(listeners, c)
		}
	}
	s.mux.Unlock()

	msg := &webSocketEventMessage{
		Type:  "event",
		Topic: topic,
		Data:  payload,
	}
	for _, c := range listeners {
		if !c.trySend(msg) {
			log.L(ctx).Warnf("WS/%s: Dropped event on topic '%s' as the connection is not keeping up", c.id, topic)
		}
	}
	log.L(ctx).Debugf("Broadcast on topic '%s' to %d listeners", topic, len(listeners))
}
