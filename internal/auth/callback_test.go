// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCallbackChannel_OneShot(t *testing.T) {
	t.Parallel()

	ch := NewCallbackChannel()
	if err := ch.Deliver(CallbackMessage{Code: "first"}); err != nil {
		t.Fatalf("first Deliver: %v", err)
	}
	if err := ch.Deliver(CallbackMessage{Code: "second"}); !errors.Is(err, ErrCallbackAlreadyDelivered) {
		t.Errorf("second Deliver = %v", err)
	}

	msg, err := ch.Await(context.Background())
	if err != nil || msg.Code != "first" {
		t.Errorf("Await = %+v, %v", msg, err)
	}
	if err := ch.Deliver(CallbackMessage{Code: "third"}); !errors.Is(err, ErrCallbackAlreadyDelivered) {
		t.Errorf("Deliver after Await = %v", err)
	}
}

func TestCallbackChannel_AwaitHonorsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := NewCallbackChannel().Await(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Await = %v, want DeadlineExceeded", err)
	}
}

func TestCallbackRouter(t *testing.T) {
	t.Parallel()

	const path = "/auth/kakao/callback"
	ch := NewCallbackChannel()
	router := CallbackRouter(path, ch)

	serve := func(target string) int {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, http.NoBody))
		return rec.Code
	}

	if code := serve(path); code != http.StatusBadRequest {
		t.Errorf("missing code: status %d", code)
	}
	if code := serve(path + "?code=abc&state=s1"); code != http.StatusOK {
		t.Errorf("first callback: status %d", code)
	}
	if code := serve(path + "?code=def&state=s1"); code != http.StatusConflict {
		t.Errorf("second callback: status %d", code)
	}
	if code := serve("/elsewhere?code=abc"); code != http.StatusNotFound {
		t.Errorf("other path: status %d", code)
	}

	msg, err := ch.Await(context.Background())
	if err != nil || msg.Code != "abc" || msg.State != "s1" {
		t.Errorf("delivered %+v, %v", msg, err)
	}
}

func TestAwaitLogin_Rejections(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t, &fakeBackend{}, "")

	denied := NewCallbackChannel()
	_ = denied.Deliver(CallbackMessage{Error: "access_denied", ErrorDescription: "User denied access"})
	if _, err := m.AwaitLogin(context.Background(), denied, ""); !errors.Is(err, ErrCallbackDenied) {
		t.Errorf("denied: %v", err)
	}

	forged := NewCallbackChannel()
	_ = forged.Deliver(CallbackMessage{Code: "abc", State: "other"})
	if _, err := m.AwaitLogin(context.Background(), forged, "expected"); !errors.Is(err, ErrStateMismatch) {
		t.Errorf("state mismatch: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.AwaitLogin(ctx, NewCallbackChannel(), ""); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled: %v", err)
	}
}
