package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(server.URL, 0)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNew_InvalidBaseURL(t *testing.T) {
	if _, err := New("localhost:5000", 0); err == nil {
		t.Error("expected error for URL without scheme")
	}
	if _, err := New("://bad", 0); err == nil {
		t.Error("expected parse error")
	}
}

func TestClient_CountComputers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/computers/count" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"url": "x", "success": true, "result": {"count": 42}}`))
	})

	count, err := client.CountComputers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 42 {
		t.Errorf("expected 42, got %d", count)
	}
}

func TestClient_SearchComputers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/computers/generic" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("search") != "ab:cd" {
			t.Errorf("unexpected search %q", r.URL.Query().Get("search"))
		}
		w.Write([]byte(`{"result": {"count": 1, "computers": [{"uuid_label": 3, "host_name": "PC-3", "mac_address": "ab:cd:ef:12:34:56"}]}}`))
	})

	query := url.Values{"search": {"ab:cd"}, "offset": {"0"}, "limit": {"10"}}
	list, err := client.SearchComputers(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Count != 1 || len(list.Computers) != 1 {
		t.Fatalf("unexpected list: %+v", list)
	}
	if list.Computers[0].UUIDLabel.String() != "3" {
		t.Errorf("unexpected uuid_label %q", list.Computers[0].UUIDLabel.String())
	}
}

func TestClient_ListTicketsRepeatsStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got := r.URL.Query()["status"]
		if len(got) != 2 || got[0] != "open" || got[1] != "closed" {
			t.Errorf("expected two status params, got %v", got)
		}
		w.Write([]byte(`{"result": {"count": 0, "tickets": []}}`))
	})

	query := url.Values{"offset": {"0"}, "limit": {"10"}, "status": {"open", "closed"}}
	if _, err := client.ListTickets(context.Background(), query); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_CountTickets(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "0" {
			t.Errorf("expected limit=0, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"result": {"count": 23, "tickets": []}}`))
	})

	query := url.Values{"offset": {"0"}, "limit": {"0"}, "status": {"open"}}
	count, err := client.CountTickets(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 23 {
		t.Errorf("expected 23, got %d", count)
	}
}

func TestClient_CountTicketsTooLarge(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": {"count": 2, "tickets": [{"id": 1, "title": "Dead mouse"}, {"id": 2, "title": "No network"}]}}`))
	})
	client.maxBodySize = 32

	query := url.Values{"offset": {"0"}, "limit": {"0"}}
	_, err := client.CountTickets(context.Background(), query)
	if !errors.Is(err, ErrResponseTooLarge) {
		t.Fatalf("expected ErrResponseTooLarge, got %v", err)
	}
}

func TestClient_BodyAtSizeLimit(t *testing.T) {
	payload := `{"result": {"count": 7}}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})
	client.maxBodySize = int64(len(payload))

	count, err := client.CountComputers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 7 {
		t.Errorf("expected 7, got %d", count)
	}
}

func TestClient_ForwardsCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Cookie") != "session=abc" {
			t.Errorf("expected forwarded cookie, got %q", r.Header.Get("Cookie"))
		}
		if r.Header.Get("Authorization") != "Bearer token" {
			t.Errorf("expected forwarded authorization, got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("X-Request-ID") != "req-1" {
			t.Errorf("expected request id, got %q", r.Header.Get("X-Request-ID"))
		}
		w.Write([]byte(`{"result": {"count": 1}}`))
	})

	ctx := WithCredentials(context.Background(), Credentials{
		Cookie:        "session=abc",
		Authorization: "Bearer token",
		RequestID:     "req-1",
	})
	if _, err := client.CountComputers(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_GeneratesRequestID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected a generated request id")
		}
		w.Write([]byte(`{"result": {"count": 1}}`))
	})
	if _, err := client.CountComputers(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Forbidden(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"name": "forbidden"}}`))
	})

	_, err := client.ListComputers(context.Background(), url.Values{})
	forbidden, ok := AsForbidden(err)
	if !ok {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}
	if forbidden.Name != "forbidden" {
		t.Errorf("expected name 'forbidden', got %q", forbidden.Name)
	}
}

func TestClient_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "403 without body", status: http.StatusForbidden, body: `not json`},
		{name: "500 with body", status: http.StatusInternalServerError, body: `{"error": {"name": "boom"}}`},
		{name: "404", status: http.StatusNotFound, body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.ListComputers(context.Background(), url.Values{})
			if _, ok := AsForbidden(err); ok {
				t.Fatalf("did not expect ForbiddenError, got %v", err)
			}
			var httpErr *HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if httpErr.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, httpErr.StatusCode)
			}
		})
	}
}

func TestClient_Redirect(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})
	_, err := client.CountComputers(context.Background())
	if !errors.Is(err, ErrUnexpectedRedirect) {
		t.Errorf("expected ErrUnexpectedRedirect, got %v", err)
	}
}

func TestClient_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": `))
	})
	if _, err := client.CountComputers(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}

func TestClient_GetComputerByLabel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/computers/label/17" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "3" || r.URL.Query().Get("offset") != "0" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"result": {"computer": {"uuid_label": 17, "host_name": "PC-17"}, "entries": {"count": 0, "history": []}}}`))
	})

	detail, err := client.GetComputerByLabel(context.Background(), "17")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Computer.HostName.String() != "PC-17" {
		t.Errorf("unexpected host name %q", detail.Computer.HostName.String())
	}
}

func TestClient_Logout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/logout" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "", MaxAge: -1})
		http.Redirect(w, r, "/login", http.StatusFound)
	})

	result, err := client.Logout(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Location != "/login" {
		t.Errorf("expected /login, got %q", result.Location)
	}
	if len(result.Cookies) != 1 || result.Cookies[0].Name != "session" {
		t.Errorf("expected session cookie to be relayed, got %v", result.Cookies)
	}
}

func TestClient_GetTicket(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/tickets/8" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"result": {"ticket": {"id": 8, "title": "No network", "priority": 2, "status": "awaiting"}}}`))
	})

	ticket, err := client.GetTicket(context.Background(), "8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket.Title.String() != "No network" || ticket.Priority.Raw() != "2" {
		t.Errorf("unexpected ticket %+v", ticket)
	}
}
