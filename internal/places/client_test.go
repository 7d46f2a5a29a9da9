// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/menupick/internal/config"
	"github.com/tomtom215/menupick/internal/logging"
	"github.com/tomtom215/menupick/internal/metrics"
	"github.com/tomtom215/menupick/internal/validation"
)

const categoryBody = `{
	"meta": {"total_count": 2, "pageable_count": 2, "is_end": true},
	"documents": [
		{"id": "1", "place_name": "을지로 냉면", "category_name": "음식점 > 한식 > 냉면",
		 "category_group_code": "FD6", "phone": "02-000-0000", "address_name": "서울 중구 을지로동",
		 "road_address_name": "서울 중구 을지로 1", "place_url": "http://place.map.kakao.com/1",
		 "x": "126.9780", "y": "37.5665", "distance": "120"},
		{"id": "2", "place_name": "명동 칼국수", "x": "126.9850", "y": "37.5636", "distance": ""}
	]
}`

// kakaoServer counts hits and answers every request with status and body.
type kakaoServer struct {
	*httptest.Server
	hits atomic.Int32
	auth atomic.Value
}

func newKakaoServer(t *testing.T, status int, body string) *kakaoServer {
	t.Helper()
	ks := &kakaoServer{}
	ks.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ks.hits.Add(1)
		ks.auth.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ks.Close)
	return ks
}

func testConfig(baseURL, proxyURL string) config.PlacesConfig {
	return config.PlacesConfig{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		AuthScheme: "KakaoAK",
		ProxyURL:   proxyURL,
		CacheTTL:   time.Minute,
		Timeout:    2 * time.Second,
	}
}

func newTestClient(t *testing.T, cfg config.PlacesConfig) *Client {
	t.Helper()
	c := New(cfg, logging.Nop())
	t.Cleanup(c.Close)
	return c
}

var seoulCityHall = CategoryQuery{Code: CategoryRestaurant, Lat: 37.5665, Lng: 126.978, Radius: 500}

func TestSearchCategory_Direct(t *testing.T) {
	t.Parallel()

	direct := newKakaoServer(t, http.StatusOK, categoryBody)
	proxy := newKakaoServer(t, http.StatusOK, `{}`)
	c := newTestClient(t, testConfig(direct.URL, proxy.URL+"/?"))

	res, err := c.SearchCategory(context.Background(), seoulCityHall)
	if err != nil {
		t.Fatalf("SearchCategory: %v", err)
	}
	if proxy.hits.Load() != 0 {
		t.Error("relay must not be used when the direct call succeeds")
	}
	if got := direct.auth.Load(); got != "KakaoAK test-key" {
		t.Errorf("Authorization = %v", got)
	}

	if res.TotalCount != 2 || len(res.Places) != 2 || !res.IsEnd {
		t.Fatalf("result = %+v", res)
	}
	first, second := res.Places[0], res.Places[1]
	if first.Name != "을지로 냉면" || first.Lat != 37.5665 || first.Lng != 126.978 {
		t.Errorf("first = %+v", first)
	}
	if first.Distance == nil || *first.Distance != 120 {
		t.Errorf("first.Distance = %v", first.Distance)
	}
	if second.Distance != nil {
		t.Errorf("empty distance should be nil, got %d", *second.Distance)
	}
}

func TestSearchCategory_FallsBackToRelayOnce(t *testing.T) {
	t.Parallel()

	direct := newKakaoServer(t, http.StatusInternalServerError, `{"message":"boom"}`)

	targets := make(chan string, 4)
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target, _ := url.QueryUnescape(r.URL.RawQuery)
		targets <- target
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(categoryBody))
	}))
	defer proxy.Close()

	c := newTestClient(t, testConfig(direct.URL, proxy.URL+"/?"))
	res, err := c.SearchCategory(context.Background(), seoulCityHall)
	if err != nil {
		t.Fatalf("SearchCategory: %v", err)
	}
	if len(res.Places) != 2 {
		t.Errorf("relay data not returned: %+v", res)
	}
	if direct.hits.Load() != 1 {
		t.Errorf("direct hits = %d, want 1", direct.hits.Load())
	}
	if len(targets) != 1 {
		t.Fatalf("relay hits = %d, want 1", len(targets))
	}

	target := <-targets
	if !strings.HasPrefix(target, direct.URL+pathCategory+"?") {
		t.Errorf("relay target = %q", target)
	}
	u, _ := url.Parse(target)
	if q := u.Query(); q.Get("category_group_code") != "FD6" || q.Get("x") != "126.978" || q.Get("y") != "37.5665" || q.Get("radius") != "500" {
		t.Errorf("relay target query = %v", q)
	}
}

func TestSearchKeyword_BothRoutesFail(t *testing.T) {
	t.Parallel()

	direct := newKakaoServer(t, http.StatusUnauthorized, `{"errorType":"AccessDeniedError"}`)
	proxy := newKakaoServer(t, http.StatusBadGateway, ``)
	c := newTestClient(t, testConfig(direct.URL, proxy.URL+"/?"))

	_, err := c.SearchKeyword(context.Background(), KeywordQuery{Query: "냉면"})
	if err == nil {
		t.Fatal("expected error")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want StatusError", err)
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "502") {
		t.Errorf("error should mention both attempts: %v", err)
	}
	if direct.hits.Load() != 1 || proxy.hits.Load() != 1 {
		t.Errorf("hits direct=%d proxy=%d, want 1 each", direct.hits.Load(), proxy.hits.Load())
	}
}

func TestGet_NoRelayConfigured(t *testing.T) {
	t.Parallel()

	direct := newKakaoServer(t, http.StatusServiceUnavailable, ``)
	c := newTestClient(t, testConfig(direct.URL, ""))

	_, err := c.SearchCategory(context.Background(), seoulCityHall)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("err = %v", err)
	}
	if direct.hits.Load() != 1 {
		t.Errorf("direct hits = %d", direct.hits.Load())
	}
}

func TestGet_NoAPIKey(t *testing.T) {
	t.Parallel()

	direct := newKakaoServer(t, http.StatusOK, categoryBody)
	cfg := testConfig(direct.URL, "")
	cfg.APIKey = ""
	c := newTestClient(t, cfg)

	if _, err := c.SearchCategory(context.Background(), seoulCityHall); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("err = %v, want ErrNoAPIKey", err)
	}
	if direct.hits.Load() != 0 {
		t.Error("no request should be made without a key")
	}
}

func TestGet_RateLimitHonorsContext(t *testing.T) {
	t.Parallel()

	direct := newKakaoServer(t, http.StatusOK, categoryBody)
	cfg := testConfig(direct.URL, "")
	cfg.RateLimit = 0.001
	cfg.Burst = 1
	c := newTestClient(t, cfg)

	if _, err := c.SearchCategory(context.Background(), seoulCityHall); err != nil {
		t.Fatalf("first call: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := c.SearchCategory(ctx, seoulCityHall); err == nil {
		t.Error("second call should be rate limited")
	}
	if direct.hits.Load() != 1 {
		t.Errorf("direct hits = %d, want 1", direct.hits.Load())
	}
}

func TestSearch_Validation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, testConfig("http://127.0.0.1:1", ""))
	tests := []struct {
		name string
		call func() error
	}{
		{"unknown category", func() error {
			_, err := c.SearchCategory(context.Background(), CategoryQuery{Code: "XX1", Lat: 37, Lng: 127})
			return err
		}},
		{"latitude out of range", func() error {
			_, err := c.SearchCategory(context.Background(), CategoryQuery{Code: CategoryCafe, Lat: 137, Lng: 127})
			return err
		}},
		{"empty keyword", func() error {
			_, err := c.SearchKeyword(context.Background(), KeywordQuery{})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var verr *validation.RequestValidationError
			if err := tt.call(); !errors.As(err, &verr) {
				t.Errorf("err = %v, want RequestValidationError", err)
			}
		})
	}
}

func TestAddressToCoord_Cached(t *testing.T) {
	direct := newKakaoServer(t, http.StatusOK,
		`{"meta":{"total_count":1},"documents":[{"address_name":"서울 중구 세종대로 110","x":"126.9779692","y":"37.566535"}]}`)
	c := newTestClient(t, testConfig(direct.URL, ""))

	hits := testutil.ToFloat64(metrics.PlacesCacheHits)
	misses := testutil.ToFloat64(metrics.PlacesCacheMisses)

	for i := 0; i < 2; i++ {
		coords, err := c.AddressToCoord(context.Background(), "서울 중구 세종대로 110")
		if err != nil {
			t.Fatalf("AddressToCoord: %v", err)
		}
		if coords.Lat != 37.566535 || coords.Lng != 126.9779692 {
			t.Errorf("coords = %+v", coords)
		}
	}
	if direct.hits.Load() != 1 {
		t.Errorf("direct hits = %d, want 1", direct.hits.Load())
	}
	if got := testutil.ToFloat64(metrics.PlacesCacheHits) - hits; got != 1 {
		t.Errorf("cache hits delta = %v", got)
	}
	if got := testutil.ToFloat64(metrics.PlacesCacheMisses) - misses; got != 1 {
		t.Errorf("cache misses delta = %v", got)
	}
}

func TestAddressToCoord_NoResult(t *testing.T) {
	t.Parallel()

	direct := newKakaoServer(t, http.StatusOK, `{"meta":{"total_count":0},"documents":[]}`)
	c := newTestClient(t, testConfig(direct.URL, ""))

	if _, err := c.AddressToCoord(context.Background(), "없는 주소"); !errors.Is(err, ErrNoResult) {
		t.Errorf("err = %v, want ErrNoResult", err)
	}
}

func TestCoordToAddress(t *testing.T) {
	t.Parallel()

	direct := newKakaoServer(t, http.StatusOK, `{"meta":{"total_count":1},"documents":[{
		"address":{"address_name":"서울 중구 태평로1가 31","region_1depth_name":"서울","region_2depth_name":"중구","region_3depth_name":"태평로1가"},
		"road_address":{"address_name":"서울 중구 세종대로 110"}}]}`)
	c := newTestClient(t, testConfig(direct.URL, ""))

	addr, err := c.CoordToAddress(context.Background(), 37.566535, 126.9779692)
	if err != nil {
		t.Fatalf("CoordToAddress: %v", err)
	}
	want := Address{
		AddressName:     "서울 중구 태평로1가 31",
		RoadAddressName: "서울 중구 세종대로 110",
		Region1:         "서울",
		Region2:         "중구",
		Region3:         "태평로1가",
	}
	if addr != want {
		t.Errorf("addr = %+v, want %+v", addr, want)
	}

	if _, err := c.CoordToAddress(context.Background(), 91, 0); err == nil {
		t.Error("out-of-range latitude should fail")
	}
}

func TestRelayMetrics(t *testing.T) {
	direct := newKakaoServer(t, http.StatusInternalServerError, ``)
	proxy := newKakaoServer(t, http.StatusOK, `{"meta":{},"documents":[{"address":{"address_name":"부산 해운대구"}}]}`)
	c := newTestClient(t, testConfig(direct.URL, proxy.URL+"/?"))

	directFail := metrics.PlacesRequests.WithLabelValues("coord2address", RouteDirect, "failure")
	proxyOK := metrics.PlacesRequests.WithLabelValues("coord2address", RouteProxy, "success")
	beforeDirect, beforeProxy := testutil.ToFloat64(directFail), testutil.ToFloat64(proxyOK)

	if _, err := c.CoordToAddress(context.Background(), 35.1631, 129.1636); err != nil {
		t.Fatalf("CoordToAddress: %v", err)
	}
	if got := testutil.ToFloat64(directFail) - beforeDirect; got != 1 {
		t.Errorf("direct failure delta = %v", got)
	}
	if got := testutil.ToFloat64(proxyOK) - beforeProxy; got != 1 {
		t.Errorf("proxy success delta = %v", got)
	}
}
