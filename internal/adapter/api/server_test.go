package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/doucuty-cmd/ThaiGovDocs/internal/adapter/renderer"
	memoservice "github.com/doucuty-cmd/ThaiGovDocs/internal/app/memo"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/app/messagebus"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/app/preview"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain/memo"
)

func newTestServer(t *testing.T, rendererURL string) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	bus := messagebus.New(logger)
	service := memoservice.NewService(bus, logger)
	previews := preview.NewSynchronizer(logger)

	refresh := func(event domain.Event) error {
		me, ok := event.(memo.Event)
		if !ok {
			return nil
		}
		snap, err := service.Snapshot(me.Memo())
		if err != nil {
			return err
		}
		previews.Refresh(me.Memo(), snap)
		return nil
	}
	for _, eventType := range memo.ChangeEvents() {
		bus.Register(eventType, refresh)
	}
	bus.Register(memo.EventClosed, func(event domain.Event) error {
		if me, ok := event.(memo.Event); ok {
			previews.Drop(me.Memo())
		}
		return nil
	})

	server := NewServer(
		Logger(logger),
		MemoService(service),
		Previews(previews),
		Renderer(renderer.NewClient(rendererURL, time.Second, logger)),
	)

	srv := httptest.NewServer(server)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func createMemo(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/memos", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create memo: status %d", resp.StatusCode)
	}
	id, _ := body["memo_id"].(string)
	if id == "" {
		t.Fatalf("create memo: no memo_id in %v", body)
	}
	return id
}

func TestServer_EditingFlow(t *testing.T) {
	srv := newTestServer(t, "http://unused")
	id := createMemo(t, srv)

	resp, body := doJSON(t, http.MethodPut, srv.URL+"/memos/"+id+"/fields", map[string]any{
		"fields": map[string]string{
			"department":    "โรงเรียนทดสอบ",
			"activity_name": "ทัศนศึกษา",
			"location":      "พิพิธภัณฑ์",
			"start_date":    "2024-06-01",
			"end_date":      "2024-06-01",
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update fields: status %d, body %v", resp.StatusCode, body)
	}
	content, _ := body["content"].(string)
	if !strings.Contains(content, "ในวันที่ 1 มิถุนายน พ.ศ. 2567") {
		t.Errorf("preview content after field update: %q", content)
	}

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/memos/"+id+"/students", map[string]string{
		"title": "นาย", "firstname": "สมชาย", "lastname": "ใจดี", "grade": "5", "room": "1",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add student: status %d, body %v", resp.StatusCode, body)
	}
	p, _ := body["preview"].(map[string]any)
	content, _ = p["content"].(string)
	if !strings.Contains(content, "1. นายสมชาย ใจดี นักเรียนชั้นมัธยมศึกษาปีที่ 5/1") {
		t.Errorf("preview content after add student: %q", content)
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/memos/"+id+"/preview", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get preview: status %d", resp.StatusCode)
	}
	if body["department"] != "โรงเรียนทดสอบ" {
		t.Errorf("preview department = %v", body["department"])
	}
}

func TestServer_AddStudentBlankNameRejected(t *testing.T) {
	srv := newTestServer(t, "http://unused")
	id := createMemo(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/memos/"+id+"/students", map[string]string{
		"title": "นาย", "firstname": "  ", "lastname": "ใจดี",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body["message"] != MsgIncompleteName {
		t.Errorf("message = %v, want %q", body["message"], MsgIncompleteName)
	}

	// no mutation happened
	resp, snap := doJSON(t, http.MethodGet, srv.URL+"/memos/"+id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get memo: status %d", resp.StatusCode)
	}
	if students, _ := snap["students"].([]any); len(students) != 0 {
		t.Errorf("roster mutated by rejected add: %v", students)
	}
}

func TestServer_TeacherDerivesIssuer(t *testing.T) {
	srv := newTestServer(t, "http://unused")
	id := createMemo(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/memos/"+id+"/teachers", map[string]string{
		"title": "นาย", "firstname": "ประยุทธ", "lastname": "สอนดี", "department": "กลุ่มสาระการเรียนรู้คณิตศาสตร์",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add teacher: status %d, body %v", resp.StatusCode, body)
	}
	issuer, _ := body["issuer"].(map[string]any)
	if issuer["name"] != "นายประยุทธ สอนดี" {
		t.Errorf("issuer = %v", issuer)
	}
	p, _ := body["preview"].(map[string]any)
	if p["issuer_name"] != "(นายประยุทธ สอนดี)" {
		t.Errorf("preview issuer_name = %v", p["issuer_name"])
	}
}

func TestServer_RemoveAbsentStudentIsNoop(t *testing.T) {
	srv := newTestServer(t, "http://unused")
	id := createMemo(t, srv)

	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/memos/"+id+"/students/42", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("remove absent student: status %d, want 200", resp.StatusCode)
	}
}

func TestServer_UnknownMemoIs404(t *testing.T) {
	srv := newTestServer(t, "http://unused")

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/memos/no-such-memo", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestServer_Generate(t *testing.T) {
	rendererSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"docx_path": "Exported/Output.docx"})
	}))
	defer rendererSrv.Close()

	srv := newTestServer(t, rendererSrv.URL)
	id := createMemo(t, srv)

	_, _ = doJSON(t, http.MethodPut, srv.URL+"/memos/"+id+"/fields", map[string]any{
		"fields": map[string]string{
			"date":       "2024-06-01",
			"start_date": "2024-06-01",
			"end_date":   "2024-06-01",
		},
	})

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/memos/"+id+"/generate", map[string]string{"format": "docx"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("generate: status %d, body %v", resp.StatusCode, body)
	}
	if body["download_url"] != "/download/docx" {
		t.Errorf("download_url = %v", body["download_url"])
	}
}

func TestServer_GenerateFailureSurfacesThaiMessage(t *testing.T) {
	rendererSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"template missing"}`, http.StatusInternalServerError)
	}))
	defer rendererSrv.Close()

	srv := newTestServer(t, rendererSrv.URL)
	id := createMemo(t, srv)

	_, _ = doJSON(t, http.MethodPut, srv.URL+"/memos/"+id+"/fields", map[string]any{
		"fields": map[string]string{
			"date":       "2024-06-01",
			"start_date": "2024-06-01",
			"end_date":   "2024-06-01",
		},
	})

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/memos/"+id+"/generate", map[string]string{"format": "pdf"})
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
	if body["message"] != MsgGenerationFailed {
		t.Errorf("message = %v, want %q", body["message"], MsgGenerationFailed)
	}
}

func TestServer_GenerateInvalidDate(t *testing.T) {
	srv := newTestServer(t, "http://unused")
	id := createMemo(t, srv)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/memos/"+id+"/generate", map[string]string{"format": "docx"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unparseable dates", resp.StatusCode)
	}
}

func TestServer_Departments(t *testing.T) {
	srv := newTestServer(t, "http://unused")

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/departments", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	list, _ := body["departments"].([]any)
	if len(list) != 7 {
		t.Errorf("departments = %d entries, want 7", len(list))
	}
}

func TestServer_CloseMemo(t *testing.T) {
	srv := newTestServer(t, "http://unused")
	id := createMemo(t, srv)

	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/memos/"+id, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("close: status %d, want 204", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/memos/"+id+"/preview", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("preview after close: status %d, want 404", resp.StatusCode)
	}
}
