package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func doExport(t *testing.T, r http.Handler, origin string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"origin": origin})
	req := httptest.NewRequest(http.MethodPost, "/api/export", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExportAndDownload(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doExport(t, r, "Kenya")
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d body=%s", w.Code, w.Body.String())
	}

	var res exportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Token == "" || res.Total != 4 {
		t.Fatalf("unexpected export response: %+v", res)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/export/download/"+res.Token, nil)
	dw := httptest.NewRecorder()
	r.ServeHTTP(dw, req)

	if dw.Code != http.StatusOK {
		t.Fatalf("download status = %d", dw.Code)
	}
	if dw.Body.Len() == 0 {
		t.Fatalf("empty download body")
	}

	// 令牌一次性使用
	dw2 := httptest.NewRecorder()
	r.ServeHTTP(dw2, httptest.NewRequest(http.MethodGet, "/api/export/download/"+res.Token, nil))
	if dw2.Code != http.StatusNotFound {
		t.Fatalf("reused token status = %d, want 404", dw2.Code)
	}
}

func TestExport_UnknownOrigin(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doExport(t, r, "Nowhereland")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDownload_BadToken(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/export/download/not-a-token", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
