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
	"sync"

	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/internal/log"
	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"
)

type webSocketConnection struct {
	id      string
	ctx     context.Context
	server  *webSocketServer
	conn    *ws.Conn
	mux     sync.Mutex
	closed  bool
	topics  map[string]bool
	send    chan interface{}
	closing chan struct{}
}

type webSocketCommandMessage struct {
	Type    string `json:"type,omitempty"`
	Topic   string `json:"topic,omitempty"`
	Message string `json:"message,omitempty"`
}

type webSocketEventMessage struct {
	Type    string      `json:"type"`
	Topic   string      `json:"topic,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func newConnection(server *webSocketServer, conn *ws.Conn) *webSocketConnection {
	id := uuid.NewString()
	wsc := &webSocketConnection{
		id:      id,
		server:  server,
		conn:    conn,
		topics:  make(map[string]bool),
		send:    make(chan interface{}, server.sendBufferSize),
		closing: make(chan struct{}),
		ctx:     log.WithLogField(server.ctx, "ws", id),
	}
	go wsc.listen()
	go wsc.sender()
	return wsc
}

func (c *webSocketConnection) close() {
	c.mux.Lock()
	if !c.closed {
		c.closed = true
		c.conn.Close()
		close(c.closing)
	}
	c.mux.Unlock()

	c.server.connectionClosed(c)
	log.L(c.ctx).Infof("WS/%s: Disconnected", c.id)
}

func (c *webSocketConnection) isListening(topic string) bool {
	c.mux.Lock()
	defer c.mux.Unlock()
	return !c.closed && c.topics[topic]
}

func (c *webSocketConnection) trySend(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	case <-c.closing:
		return false
	default:
		return false
	}
}

func (c *webSocketConnection) sender() {
	defer c.close()
	for {
		select {
		case msg := <-c.send:
			if err := c.conn.WriteJSON(msg); err != nil {
				log.L(c.ctx).Errorf("Websocket write failed: %s", err)
				return
			}
		case <-c.closing:
			log.L(c.ctx).Infof("Websocket closing")
			return
		}
	}
}

func (c *webSocketConnection) listenTopic(topic string) {
	c.mux.Lock()
	c.topics[topic] = true
	c.mux.Unlock()
	c.trySend(&webSocketEventMessage{Type: "listening", Topic: topic})
}

func (c *webSocketConnection) unlistenTopic(topic string) {
	c.mux.Lock()
	delete(c.topics, topic)
	c.mux.Unlock()
}

func (c *webSocketConnection) listen() {
	defer c.close()
	log.L(c.ctx).Infof("Websocket connected")
	for {
		var msg webSocketCommandMessage
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			log.L(c.ctx).Infof("Websocket error: %s", err)
			return
		}
		log.L(c.ctx).Debugf("Websocket received: %+v", msg)

		switch msg.Type {
		case "listen":
			if msg.Topic == "" {
				c.trySend(&webSocketEventMessage{Type: "error", Message: i18n.Expand(c.ctx, i18n.MsgWebsocketTopicRequired)})
				continue
			}
			c.listenTopic(msg.Topic)
		case "unlisten":
			c.unlistenTopic(msg.Topic)
		case "error":
			log.L(c.ctx).Errorf("%s", i18n.NewError(c.ctx, i18n.MsgWebsocketClientError, msg.Message))
		default:
			log.L(c.ctx).Errorf("Unexpected message type: %+v", msg)
		}
	}
}
