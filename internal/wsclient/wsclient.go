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

package wsclient

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/internal/log"
	"github.com/cosmicdapp/cw20wallet/internal/retry"
	"github.com/gorilla/websocket"
)

type WSConfig struct {
	URL                    string
	Headers                map[string]string
	Auth                   *WSAuthConfig
	WriteBufferSize        int64
	ReadBufferSize         int64
	InitialConnectAttempts int
	RetryInitialDelay      time.Duration
	RetryMaxDelay          time.Duration
}

type WSAuthConfig struct {
	Username string
	Password string
}

// WSClient is a reconnecting websocket client. Messages in sendOnConnect, such as a listen
// command, are re-sent on every reconnect.
type WSClient struct {
	ctx                  context.Context
	headers              http.Header
	url                  string
	initialRetryAttempts int
	wsdialer             *websocket.Dialer
	wsconn               *websocket.Conn
	retry                *retry.Retry
	closeMux             sync.Mutex
	closed               bool
	receive              chan []byte
	send                 chan []byte
	sendDone             chan []byte
	closing              chan struct{}
	sendOnConnect        [][]byte
}

func NewWSClient(ctx context.Context, conf *WSConfig, sendOnConnect ...[]byte) (*WSClient, error) {

	w := &WSClient{
		ctx: ctx,
		url: conf.URL,
		wsdialer: &websocket.Dialer{
			ReadBufferSize:  int(conf.ReadBufferSize),
			WriteBufferSize: int(conf.WriteBufferSize),
		},
		retry: &retry.Retry{
			InitialDelay: conf.RetryInitialDelay,
			MaximumDelay: conf.RetryMaxDelay,
		},
		initialRetryAttempts: conf.InitialConnectAttempts,
		headers:              make(http.Header),
		receive:              make(chan []byte),
		send:                 make(chan []byte),
		closing:              make(chan struct{}),
		sendOnConnect:        sendOnConnect,
	}
	for k, v := range conf.Headers {
		w.headers.Set(k, v)
	}
	if conf.Auth != nil && conf.Auth.Username != "" && conf.Auth.Password != "" {
		w.headers.Set("Authorization", fmt.Sprintf("Basic %s", base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", conf.Auth.Username, conf.Auth.Password)))))
	}

	if err := w.connect(true); err != nil {
		return nil, err
	}

	go w.receiveReconnectLoop()

	return w, nil
}

func (w *WSClient) isClosed() bool {
	w.closeMux.Lock()
	defer w.closeMux.Unlock()
	return w.closed
}

func (w *WSClient) Close() {
	w.closeMux.Lock()
	defer w.closeMux.Unlock()
	if !w.closed {
		w.closed = true
		close(w.closing)
		c := w.wsconn
		if c != nil {
			_ = c.Close()
		}
	}
}

// Receive returns the channel of inbound messages, which is closed when the client stops
func (w *WSClient) Receive() <-chan []byte {
	return w.receive
}

func (w *WSClient) Send(ctx context.Context, message []byte) error {
	select {
	case w.send <- message:
		return nil
	case <-ctx.Done():
		return i18n.NewError(ctx, i18n.MsgWSSendTimedOut)
	case <-w.closing:
		return i18n.NewError(ctx, i18n.MsgWSClosing)
	}
}

func (w *WSClient) connect(initial bool) error {
	return w.retry.Do(w.ctx, fmt.Sprintf("connect %s", w.url), func(attempt int) (retry bool, err error) {
		l := log.L(w.ctx)
		if w.isClosed() {
			return false, i18n.NewError(w.ctx, i18n.MsgWSClosing)
		}
		conn, res, err := w.wsdialer.Dial(w.url, w.headers)
		for i := 0; err == nil && i < len(w.sendOnConnect); i++ {
			err = conn.WriteMessage(websocket.TextMessage, w.sendOnConnect[i])
		}
		if err != nil {
			var b []byte
			var status = -1
			if res != nil {
				b, _ = io.ReadAll(res.Body)
				status = res.StatusCode
			}
			l.Warnf("WS %s connect attempt %d failed [%d]: %s", w.url, attempt, status, string(b))
			return !initial || attempt < w.initialRetryAttempts, i18n.WrapError(w.ctx, err, i18n.MsgWSConnectFailed)
		}
		w.closeMux.Lock()
		w.wsconn = conn
		w.closeMux.Unlock()
		l.Infof("WS %s connected", w.url)
		return false, nil
	})
}

func (w *WSClient) readLoop() []byte {
	l := log.L(w.ctx)
	for {
		mt, message, err := w.wsconn.ReadMessage()

		// Check there's not a pending send message we need to return
		// before returning any error (do not block)
		select {
		case pendingMsg := <-w.sendDone:
			l.Debugf("WS %s closing reader after send error", w.url)
			return pendingMsg
		default:
		}

		if err != nil {
			l.Errorf("WS %s closed: %s", w.url, err)
			return nil
		}

		l.Tracef("WS %s read (mt=%d): %s", w.url, mt, message)
		select {
		case w.receive <- message:
		case <-w.closing:
			return nil
		}
	}
}

func (w *WSClient) sendLoop(conn *websocket.Conn, sendDone chan []byte, readerDone chan struct{}, message []byte) {
	l := log.L(w.ctx)
	defer close(sendDone)
	for {
		if message != nil {
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				l.Errorf("WS %s send failed: %s", w.url, err)
				// Keep the message for when we reconnect
				sendDone <- message
				return
			}
		}

		select {
		case message = <-w.send:
		case <-readerDone:
			return
		case <-w.closing:
			l.Debugf("WS %s send loop exiting", w.url)
			return
		}
	}
}

func (w *WSClient) receiveReconnectLoop() {
	l := log.L(w.ctx)
	defer close(w.receive)
	var pendingSend []byte
	for !w.isClosed() {
		// Start the sender, letting it close without blocking sending a notification on sendDone
		w.sendDone = make(chan []byte, 1)
		readerDone := make(chan struct{})
		go w.sendLoop(w.wsconn, w.sendDone, readerDone, pendingSend)

		// Synchronously invoke the reader, as it's important we react immediately to any error there
		pendingSend = w.readLoop()
		close(readerDone)

		// Ensure the connection is closed after the reader exits
		if err := w.wsconn.Close(); err != nil {
			l.Debugf("WS %s close: %s", w.url, err)
		}
		if msg := <-w.sendDone; msg != nil {
			pendingSend = msg
		}

		// Go into reconnect
		if !w.isClosed() {
			if err := w.connect(false); err != nil {
				l.Debugf("WS %s exiting: %s", w.url, err)
				return
			}
		}
	}
}
