package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pkgerrors "github.com/HasanBocek/KTUTennisCRM/pkg/errors"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	client, err := NewClient("http://backend.test", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{},
	}
}

func TestRequestSuccess(t *testing.T) {
	var captured *http.Request
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{"code":200,"message":"ok","data":{"_id":"u1","firstName":"Ayşe"}}`), nil
	})

	client := newTestClient(t, rt)

	type user struct {
		ID        string `json:"_id"`
		FirstName string `json:"firstName"`
	}

	resp := Get[user](context.Background(), client, "/user/u1", Config{AccessToken: "tok-123"})
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
	if resp.Data.ID != "u1" || resp.Data.FirstName != "Ayşe" {
		t.Fatalf("unexpected data %+v", resp.Data)
	}
	if resp.Message != "ok" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if captured.URL.String() != "http://backend.test/user/u1" {
		t.Fatalf("unexpected url %q", captured.URL)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer tok-123" {
		t.Fatalf("unexpected auth header %q", got)
	}
	if got := captured.Header.Get("Content-Type"); got != "" {
		t.Fatalf("GET must not carry a content type, got %q", got)
	}
}

func TestRequestNetworkError(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	})

	resp := Get[struct{}](context.Background(), newTestClient(t, rt), "/user/", Config{})
	if resp.Success {
		t.Fatal("expected failure")
	}
	if resp.Kind != pkgerrors.CodeNetwork {
		t.Fatalf("unexpected kind %s", resp.Kind)
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "Network Error: Unable to connect to the server" {
		t.Fatalf("unexpected errors %v", resp.Errors)
	}
}

func TestRequestTimeout(t *testing.T) {
	released := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
		close(released)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	start := time.Now()
	resp := Get[struct{}](context.Background(), client, "/slow", Config{Timeout: 50 * time.Millisecond})
	elapsed := time.Since(start)

	if resp.Success {
		t.Fatal("expected failure")
	}
	if resp.Kind != pkgerrors.CodeTimeout {
		t.Fatalf("unexpected kind %s", resp.Kind)
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "Request Timeout: The server took too long to respond" {
		t.Fatalf("unexpected errors %v", resp.Errors)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("request not aborted at the deadline, took %v", elapsed)
	}

	// The handler observes the abort: the in-flight request was
	// canceled, not left to complete.
	select {
	case <-released:
	case <-time.After(2 * time.Second):
		t.Fatal("server handler never observed cancellation")
	}
}

func TestRequestFastResponseBeatsTimer(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"code":200,"message":"ok"}`), nil
	})
	client := newTestClient(t, rt)

	resp := Get[struct{}](context.Background(), client, "/fast", Config{Timeout: time.Hour})
	if !resp.Success {
		t.Fatalf("fast response must win the race: %+v", resp)
	}
}

func TestRequestHTTPErrorWithBodyErrors(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnprocessableEntity, `{"code":422,"errors":["İsim gereklidir","Telefon gereklidir"]}`), nil
	})

	resp := Get[struct{}](context.Background(), newTestClient(t, rt), "/user/", Config{})
	if resp.Success {
		t.Fatal("expected failure")
	}
	if resp.Kind != pkgerrors.CodeHTTP {
		t.Fatalf("unexpected kind %s", resp.Kind)
	}
	if len(resp.Errors) != 2 || resp.Errors[0] != "İsim gereklidir" {
		t.Fatalf("expected body errors to pass through, got %v", resp.Errors)
	}
	if resp.Message != "HTTP Error: 422 Unprocessable Entity" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestRequestHTTPErrorSynthesized(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, `not even json`), nil
	})

	resp := Get[struct{}](context.Background(), newTestClient(t, rt), "/user/", Config{})
	if resp.Success {
		t.Fatal("expected failure")
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "HTTP Error: 500" {
		t.Fatalf("unexpected errors %v", resp.Errors)
	}
}

func TestRequestEnvelopeFailure(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"code":400,"message":"Geçersiz istek","errors":["Alan eksik"]}`), nil
	})

	resp := Get[struct{}](context.Background(), newTestClient(t, rt), "/group/", Config{})
	if resp.Success {
		t.Fatal("expected failure on envelope code != 200")
	}
	if resp.Kind != pkgerrors.CodeAPI {
		t.Fatalf("unexpected kind %s", resp.Kind)
	}
	if resp.Message != "Geçersiz istek" {
		t.Fatalf("message must mirror the envelope, got %q", resp.Message)
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "Alan eksik" {
		t.Fatalf("unexpected errors %v", resp.Errors)
	}
}

func TestRequestEnvelopeFailureSynthesizesErrors(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"code":500,"message":"Sunucu hatası"}`), nil
	})

	resp := Get[struct{}](context.Background(), newTestClient(t, rt), "/group/", Config{})
	if resp.Success {
		t.Fatal("expected failure")
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "API Error: Sunucu hatası" {
		t.Fatalf("unexpected errors %v", resp.Errors)
	}
}

func TestWrappersArePartialApplications(t *testing.T) {
	var methods []string
	var bodies []string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		methods = append(methods, req.Method)
		if req.Body != nil {
			raw, _ := io.ReadAll(req.Body)
			bodies = append(bodies, strings.TrimSpace(string(raw)))
		} else {
			bodies = append(bodies, "")
		}
		return jsonResponse(http.StatusOK, `{"code":200}`), nil
	})
	client := newTestClient(t, rt)
	ctx := context.Background()

	Get[struct{}](ctx, client, "/x", Config{})
	Post[struct{}](ctx, client, "/x", map[string]string{"a": "1"}, Config{})
	Patch[struct{}](ctx, client, "/x", map[string]string{"b": "2"}, Config{})
	Put[struct{}](ctx, client, "/x", map[string]string{"c": "3"}, Config{})
	Delete[struct{}](ctx, client, "/x", Config{})

	want := []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete}
	for i, method := range want {
		if methods[i] != method {
			t.Fatalf("wrapper %d used method %s, want %s", i, methods[i], method)
		}
	}
	if bodies[1] != `{"a":"1"}` || bodies[3] != `{"c":"3"}` {
		t.Fatalf("unexpected bodies %v", bodies)
	}
}

func TestRequestRelaysCookies(t *testing.T) {
	var captured *http.Request
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{"code":200}`), nil
	})

	client := newTestClient(t, rt)
	Get[struct{}](context.Background(), client, "/user/me", Config{
		Cookies: []*http.Cookie{{Name: "accessToken", Value: "abc"}},
	})

	cookie, err := captured.Cookie("accessToken")
	if err != nil || cookie.Value != "abc" {
		t.Fatalf("cookie not relayed: %v", err)
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient("   "); err == nil {
		t.Fatal("expected error for blank base url")
	}
}
