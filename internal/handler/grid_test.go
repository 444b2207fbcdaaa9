package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sapuran-Berperan/inventory-console/internal/grid"
	"github.com/Sapuran-Berperan/inventory-console/internal/model"
)

func computersJSON(count, from, n int) string {
	rows := make([]string, n)
	for i := range rows {
		label := from + i + 1
		rows[i] = fmt.Sprintf(`{"uuid_label": %d, "host_name": "PC-%d", "ipv4_address": "10.0.0.%d"}`, label, label, label)
	}
	return fmt.Sprintf(`{"success": true, "result": {"count": %d, "computers": [%s]}}`, count, strings.Join(rows, ","))
}

func TestParseGridRequest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantType   grid.ActionType
		wantOffset int
		wantTotal  int
		wantSearch string
		wantStatus []model.TicketStatus
	}{
		{name: "empty", query: "", wantType: grid.ActionLoad},
		{name: "next", query: "action=next&offset=10&total=25", wantType: grid.ActionNext, wantOffset: 10, wantTotal: 25},
		{name: "prev", query: "action=prev&offset=20&total=25", wantType: grid.ActionPrev, wantOffset: 20, wantTotal: 25},
		{name: "offset clamped to page", query: "offset=17&total=40", wantType: grid.ActionLoad, wantOffset: 10, wantTotal: 40},
		{name: "negative offset", query: "offset=-5&total=-1", wantType: grid.ActionLoad},
		{name: "garbage numbers", query: "offset=abc&total=x", wantType: grid.ActionLoad},
		{name: "search trimmed", query: "action=search&search=++lab++", wantType: grid.ActionSearch, wantSearch: "lab"},
		{
			name:       "filter orders statuses and drops unknown",
			query:      "action=filter&status=closed&status=bogus&status=open&status=open",
			wantType:   grid.ActionSetStatuses,
			wantStatus: []model.TicketStatus{model.StatusOpen, model.StatusClosed},
		},
		{name: "unknown action", query: "action=delete", wantType: grid.ActionLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/tickets?"+tt.query, nil)
			state, action := ParseGridRequest(req, grid.Tickets, 10)

			if action.Type != tt.wantType {
				t.Errorf("expected action %d, got %d", tt.wantType, action.Type)
			}
			if state.Page.Offset != tt.wantOffset {
				t.Errorf("expected offset %d, got %d", tt.wantOffset, state.Page.Offset)
			}
			if state.Page.Total != tt.wantTotal {
				t.Errorf("expected total %d, got %d", tt.wantTotal, state.Page.Total)
			}
			if state.Filter.Search != tt.wantSearch {
				t.Errorf("expected search %q, got %q", tt.wantSearch, state.Filter.Search)
			}
			if fmt.Sprint(state.Filter.Statuses) != fmt.Sprint(tt.wantStatus) {
				t.Errorf("expected statuses %v, got %v", tt.wantStatus, state.Filter.Statuses)
			}
		})
	}
}

func TestGridHandler_Computers_InitialLoad(t *testing.T) {
	b := newBackend()
	b.handle("/api/v1/computers/count", `{"result": {"count": 25}}`)
	b.handle("/api/v1/computers/{$}", computersJSON(10, 0, 10))
	r := newTestRouter(t, b)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/computers", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	paths := b.paths()
	if len(paths) != 2 || paths[0] != "/api/v1/computers/count" || paths[1] != "/api/v1/computers/" {
		t.Errorf("expected count then page, got %v", paths)
	}

	body := rr.Body.String()
	if !strings.Contains(body, "Showing 1 to 10 of 25 computers") {
		t.Error("expected showing label")
	}
	if !strings.Contains(body, `id="next" href="/computers?action=next&amp;offset=0&amp;total=25"`) {
		t.Errorf("expected next link carrying the state, got %s", body)
	}
	if !strings.Contains(body, `class="page-item disabled"><a class="page-link" id="prev"`) {
		t.Error("expected prev to be disabled on the first page")
	}
}

func TestGridHandler_Computers_NextFetchesPageOnly(t *testing.T) {
	b := newBackend()
	b.handle("/api/v1/computers/count", `{"result": {"count": 25}}`)
	b.handle("/api/v1/computers/{$}", computersJSON(10, 10, 10))
	r := newTestRouter(t, b)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/computers?action=next&offset=0&total=25", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	paths := b.paths()
	if len(paths) != 1 || paths[0] != "/api/v1/computers/" {
		t.Fatalf("expected a single page fetch, got %v", paths)
	}
	if got := b.request(0).URL.Query().Get("offset"); got != "10" {
		t.Errorf("expected offset 10, got %q", got)
	}
	if !strings.Contains(rr.Body.String(), "Showing 11 to 20 of 25 computers") {
		t.Error("expected second page label")
	}
}

func TestGridHandler_Computers_NextPastEndStays(t *testing.T) {
	b := newBackend()
	b.handle("/api/v1/computers/{$}", computersJSON(5, 20, 5))
	r := newTestRouter(t, b)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/computers?action=next&offset=20&total=25", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if got := b.request(0).URL.Query().Get("offset"); got != "20" {
		t.Errorf("expected to stay on offset 20, got %q", got)
	}
	if !strings.Contains(rr.Body.String(), "Showing 21 to 25 of 25 computers") {
		t.Error("expected last page label")
	}
}

func TestGridHandler_Computers_Search(t *testing.T) {
	b := newBackend()
	b.handle("/api/v1/computers/generic/count", `{"result": {"count": 1}}`)
	b.handle("/api/v1/computers/generic", computersJSON(1, 0, 1))
	r := newTestRouter(t, b)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/computers?action=search&search=10.0&offset=30&total=99", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	paths := b.paths()
	if len(paths) != 2 || paths[0] != "/api/v1/computers/generic/count" || paths[1] != "/api/v1/computers/generic" {
		t.Fatalf("expected search count then search page, got %v", paths)
	}
	page := b.request(1).URL.Query()
	if page.Get("search") != "10.0" || page.Get("offset") != "0" {
		t.Errorf("expected search from offset 0, got %s", page.Encode())
	}

	body := rr.Body.String()
	if !strings.Contains(body, `<td><span style="background-color: #f59f00;">10.0</span>.0.1</td>`) {
		t.Errorf("expected highlighted address, got %s", body)
	}
	if !strings.Contains(body, "Showing 1 to 1 of 1 search results") {
		t.Error("expected search results label")
	}
}

func TestGridHandler_Computers_SearchInvalidUTF8(t *testing.T) {
	b := newBackend()
	b.handle("/api/v1/computers/generic/count", `{"result": {"count": 1}}`)
	b.handle("/api/v1/computers/generic", computersJSON(1, 0, 1))
	r := newTestRouter(t, b)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/computers?action=search&search=%ff", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if got := b.request(1).URL.Query().Get("search"); got != "\xff" {
		t.Errorf("expected the query passed through unchanged, got %q", got)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "PC-1") || strings.Contains(body, "background-color") {
		t.Errorf("expected the row without highlights, got %s", body)
	}
}

func TestGridHandler_Computers_HugeOffset(t *testing.T) {
	b := newBackend()
	b.handle("/api/v1/computers/{$}", computersJSON(5, 0, 5))
	r := newTestRouter(t, b)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/computers?action=next&offset=9223372036854775800&total=5", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if got := b.request(0).URL.Query().Get("offset"); got != "0" {
		t.Errorf("expected offset clamped to 0, got %q", got)
	}
	if !strings.Contains(rr.Body.String(), "Showing 1 to 5 of 5 computers") {
		t.Error("expected the only page")
	}
}

func TestGridHandler_Computers_Empty(t *testing.T) {
	b := newBackend()
	b.handle("/api/v1/computers/count", `{"result": {"count": 0}}`)
	b.handle("/api/v1/computers/{$}", `{"result": {"count": 0, "computers": []}}`)
	r := newTestRouter(t, b)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/computers", nil))

	body := rr.Body.String()
	if !strings.Contains(body, `<td colspan="7" class="text-center">No computers found</td>`) {
		t.Error("expected empty row")
	}
	if !strings.Contains(body, "Showing 0 to 0 of 0 computers") {
		t.Error("expected zero label")
	}
}

func TestGridHandler_ForbiddenRedirects(t *testing.T) {
	b := newBackend()
	b.handleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"name": "forbidden"}}`))
	})
	r := newTestRouter(t, b)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/computers", nil))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rr.Code)
	}
	if got := rr.Header().Get("Location"); got != "/403?message=forbidden" {
		t.Errorf("expected redirect to /403?message=forbidden, got %q", got)
	}
}

func TestGridHandler_BackendError(t *testing.T) {
	b := newBackend()
	b.handleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r := newTestRouter(t, b)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/tickets", nil))

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "HTTP error! Status: 500") {
		t.Error("expected error panel with backend status")
	}
}

func TestGridHandler_Tickets_Filter(t *testing.T) {
	b := newBackend()
	b.handleFunc("/api/v1/tickets/{$}", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") == "0" {
			w.Write([]byte(`{"result": {"count": 12, "tickets": []}}`))
			return
		}
		w.Write([]byte(`{"result": {"count": 1, "tickets": [{"id": 3, "title": "Broken screen", "priority": 2, "status": "open"}]}}`))
	})
	r := newTestRouter(t, b)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/tickets?action=filter&status=open&offset=20", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if len(b.paths()) != 2 {
		t.Fatalf("expected count then page, got %v", b.paths())
	}

	count := b.request(0).URL.Query()
	if count.Get("limit") != "0" || count.Get("offset") != "0" {
		t.Errorf("expected unbounded count query, got %s", count.Encode())
	}

	page := b.request(1).URL.Query()
	if got := page["status"]; len(got) != 1 || got[0] != "open" {
		t.Errorf("expected exactly one status=open, got %v", got)
	}
	if page.Get("offset") != "0" || page.Get("limit") != "10" {
		t.Errorf("expected offset=0 limit=10, got %s", page.Encode())
	}

	body := rr.Body.String()
	if !strings.Contains(body, "Showing 1 to 1 of 12 tickets") {
		t.Error("expected count-based label")
	}
	if !strings.Contains(body, `id="next" href="/tickets?action=next&amp;offset=0&amp;status=open&amp;total=12"`) {
		t.Errorf("expected next link carrying the filter, got %s", body)
	}
	if !strings.Contains(body, `<span class="bg-transparent text-orange fw-bold">High</span>`) {
		t.Error("expected priority badge")
	}
}

func TestGridHandler_Tickets_NoFilter(t *testing.T) {
	b := newBackend()
	b.handle("/api/v1/tickets/{$}", `{"result": {"count": 0, "tickets": []}}`)
	r := newTestRouter(t, b)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/tickets", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	for i := range b.paths() {
		if _, ok := b.request(i).URL.Query()["status"]; ok {
			t.Error("did not expect a status parameter without a filter")
		}
	}
	if !strings.Contains(rr.Body.String(), "No tickets found") {
		t.Error("expected empty row")
	}
}

func TestGridHandler_ForwardsCredentials(t *testing.T) {
	b := newBackend()
	b.handle("/api/v1/computers/count", `{"result": {"count": 0}}`)
	b.handle("/api/v1/computers/{$}", `{"result": {"count": 0, "computers": []}}`)
	r := newTestRouter(t, b)

	req := httptest.NewRequest(http.MethodGet, "/computers", nil)
	req.Header.Set("Cookie", "session=abc")
	serve(r, req)

	for i := range b.paths() {
		if got := b.request(i).Header.Get("Cookie"); got != "session=abc" {
			t.Errorf("expected session cookie upstream, got %q", got)
		}
	}
}
