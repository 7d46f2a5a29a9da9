// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package auth

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/menupick/internal/models"
)

// ErrCallbackAlreadyDelivered is returned by Deliver after the first message.
var ErrCallbackAlreadyDelivered = errors.New("callback already delivered")

// CallbackMessage is what the provider redirect carries back: either a
// code or an error.
type CallbackMessage struct {
	Code             string
	State            string
	Error            string
	ErrorDescription string
}

// CallbackChannel passes one callback message from the redirect handler to
// the waiting login flow. Only the first message is accepted.
type CallbackChannel struct {
	delivered atomic.Bool
	ch        chan CallbackMessage
}

// NewCallbackChannel creates an empty channel.
func NewCallbackChannel() *CallbackChannel {
	return &CallbackChannel{ch: make(chan CallbackMessage, 1)}
}

// Deliver hands msg to the waiter. Any message after the first is
// rejected with ErrCallbackAlreadyDelivered.
func (c *CallbackChannel) Deliver(msg CallbackMessage) error {
	if !c.delivered.CompareAndSwap(false, true) {
		return ErrCallbackAlreadyDelivered
	}
	c.ch <- msg
	return nil
}

// Await returns the delivered message, or ctx's error if none arrives in
// time. The message is handed out once.
func (c *CallbackChannel) Await(ctx context.Context) (CallbackMessage, error) {
	select {
	case msg := <-c.ch:
		return msg, nil
	case <-ctx.Done():
		return CallbackMessage{}, ctx.Err()
	}
}

// AwaitLogin waits for the callback and completes the login. wantState is
// compared against the callback state when non-empty.
func (m *Manager) AwaitLogin(ctx context.Context, ch *CallbackChannel, wantState string) (*models.LoginResult, error) {
	msg, err := ch.Await(ctx)
	if err != nil {
		return nil, fmt.Errorf("wait for login callback: %w", err)
	}
	if msg.Error != "" {
		return nil, loginError(fmt.Errorf("%w: %s %s", ErrCallbackDenied, msg.Error, msg.ErrorDescription))
	}
	if wantState != "" && msg.State != wantState {
		return nil, loginError(ErrStateMismatch)
	}
	return m.CompleteLogin(ctx, msg.Code)
}

// CallbackRouter serves the provider redirect at path and delivers it to ch.
// Middlewares wrap every route in the order given.
func CallbackRouter(path string, ch *CallbackChannel, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		msg := CallbackMessage{
			Code:             q.Get("code"),
			State:            q.Get("state"),
			Error:            q.Get("error"),
			ErrorDescription: q.Get("error_description"),
		}
		if msg.Code == "" && msg.Error == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}
		if err := ch.Deliver(msg); err != nil {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		status := "로그인이 완료되었습니다. 이 창을 닫아주세요."
		if msg.Error != "" {
			status = "로그인이 취소되었습니다: " + html.EscapeString(msg.Error)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = fmt.Fprintf(w, "<!doctype html><meta charset=\"utf-8\"><p>%s</p><script>window.close()</script>", status)
	})
	return r
}
