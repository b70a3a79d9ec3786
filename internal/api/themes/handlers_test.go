package themes

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand/v2"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/codr1/ThemeStudio/internal/palette"
	"github.com/codr1/ThemeStudio/internal/ptt"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	presets, err := palette.LoadPresets()
	if err != nil {
		t.Fatalf("LoadPresets() error = %v", err)
	}
	return NewHandler(Options{
		AppName:        "Theme Studio",
		Defaults:       palette.Defaults(),
		Presets:        presets,
		MaxUploadBytes: 4096,
		Rand:           rand.New(rand.NewPCG(1, 1)),
	})
}

func uploadRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if field != "" {
		part, err := writer.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	} else if err := writer.WriteField("other", "value"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandleImport(t *testing.T) {
	h := newTestHandler(t)
	doc := `<THEME><Color name="BACKGROUND" value="#123456"/><Color name="BOGUS" value="#FFFFFF"/></THEME>`

	rec := httptest.NewRecorder()
	h.HandleImport(rec, uploadRequest(t, "file", "theme.ptt", []byte(doc)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got["BACKGROUND"] != "#123456" {
		t.Fatalf("response = %v, want only BACKGROUND", got)
	}
	if _, ok := got["BOGUS"]; ok {
		t.Fatalf("response contains BOGUS")
	}
}

func TestHandleImportRoundTripsDownload(t *testing.T) {
	h := newTestHandler(t)
	set := palette.Randomize(rand.New(rand.NewPCG(5, 5)))

	rec := httptest.NewRecorder()
	h.HandleImport(rec, uploadRequest(t, "file", "theme.ptt", ptt.Marshal(set)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for name, value := range set.Map() {
		if got[name] != value {
			t.Fatalf("%s = %q, want %q", name, got[name], value)
		}
	}
}

func TestHandleImportErrors(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name       string
		req        func(t *testing.T) *http.Request
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing_file_field",
			req:        func(t *testing.T) *http.Request { return uploadRequest(t, "", "", nil) },
			wantStatus: http.StatusBadRequest,
			wantBody:   "No file",
		},
		{
			name: "not_multipart",
			req: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader("x=1"))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "No file",
		},
		{
			name:       "malformed_xml",
			req:        func(t *testing.T) *http.Request { return uploadRequest(t, "file", "bad.ptt", []byte("<THEME><Color>")) },
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Invalid file",
		},
		{
			name: "external_entity",
			req: func(t *testing.T) *http.Request {
				doc := `<!DOCTYPE THEME [<!ENTITY xxe SYSTEM "file:///etc/passwd">]><THEME><Color name="BACKGROUND" value="&xxe;"/></THEME>`
				return uploadRequest(t, "file", "xxe.ptt", []byte(doc))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Invalid file",
		},
		{
			name: "too_large",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "file", "big.ptt", bytes.Repeat([]byte(" "), 64<<10))
			},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   "File too large",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleImport(rec, test.req(t))
			if rec.Code != test.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, test.wantStatus, rec.Body.String())
			}
			if rec.Body.String() != test.wantBody {
				t.Fatalf("body = %q, want %q", rec.Body.String(), test.wantBody)
			}
		})
	}
}

func TestHandleRandomize(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleRandomize(rec, httptest.NewRequest(http.MethodGet, "/randomize", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != palette.SlotCount {
		t.Fatalf("response has %d slots, want %d", len(got), palette.SlotCount)
	}
	for _, slot := range palette.Slots() {
		if !palette.IsHexColor(got[string(slot)]) {
			t.Fatalf("%s = %q, not a hex color", slot, got[string(slot)])
		}
	}
	fg := got["FOREGROUND"]
	if fg != got["EMPHASISCOLOR"] || (fg != palette.White && fg != palette.Black) {
		t.Fatalf("FOREGROUND %q / EMPHASISCOLOR %q violate contrast rule", fg, got["EMPHASISCOLOR"])
	}
}

func downloadRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/download", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func attachmentName(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	disposition, params, err := mime.ParseMediaType(rec.Header().Get("Content-Disposition"))
	if err != nil {
		t.Fatalf("parse Content-Disposition %q: %v", rec.Header().Get("Content-Disposition"), err)
	}
	if disposition != "attachment" {
		t.Fatalf("disposition = %q, want attachment", disposition)
	}
	return params["filename"]
}

func TestHandleDownloadDefaults(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleDownload(rec, downloadRequest(url.Values{"theme_name": {"My Theme"}}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/octet-stream" {
		t.Fatalf("content type = %q", ct)
	}
	if name := attachmentName(t, rec); name != "My Theme.ptt" {
		t.Fatalf("filename = %q, want My Theme.ptt", name)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<Color name="BACKGROUND" value="#000000" />`) {
		t.Fatalf("body missing default BACKGROUND:\n%s", body)
	}
	if body != string(ptt.Marshal(palette.Defaults())) {
		t.Fatalf("body differs from default document:\n%s", body)
	}
}

func TestHandleDownloadSubmittedValues(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleDownload(rec, downloadRequest(url.Values{
		"theme_name": {"  Night  "},
		"BACKGROUND": {"#0a0b0c"},
		"ERRORCOLOR": {"#ff0000"},
		"BOGUS":      {"#FFFFFF"},
		"HICOLOR2":   {"red"},
	}))

	if name := attachmentName(t, rec); name != "Night.ptt" {
		t.Fatalf("filename = %q, want Night.ptt", name)
	}
	colors, err := ptt.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Decode(download) error = %v", err)
	}
	if len(colors) != palette.SlotCount {
		t.Fatalf("download has %d colors, want %d", len(colors), palette.SlotCount)
	}
	if colors[palette.Background] != "#0A0B0C" || colors[palette.ErrorColor] != "#FF0000" {
		t.Fatalf("submitted values not uppercased/applied: %v", colors)
	}
	if colors[palette.HiColor1] != palette.Defaults().Get(palette.HiColor1) {
		t.Fatalf("missing field should use default, got %s", colors[palette.HiColor1])
	}
	if colors[palette.HiColor2] != palette.Defaults().Get(palette.HiColor2) {
		t.Fatalf("non-hex field should use default, got %s", colors[palette.HiColor2])
	}
}

func TestHandleDownloadFallbackName(t *testing.T) {
	h := newTestHandler(t)

	for _, raw := range []string{"", "   ", "\t"} {
		rec := httptest.NewRecorder()
		h.HandleDownload(rec, downloadRequest(url.Values{"theme_name": {raw}}))
		if name := attachmentName(t, rec); name != "custom.ptt" {
			t.Fatalf("theme_name %q gave filename %q, want custom.ptt", raw, name)
		}
	}

	rec := httptest.NewRecorder()
	h.HandleDownload(rec, downloadRequest(url.Values{}))
	if name := attachmentName(t, rec); name != "custom.ptt" {
		t.Fatalf("missing theme_name gave filename %q, want custom.ptt", name)
	}
}

func TestHandleDownloadMultipart(t *testing.T) {
	h := newTestHandler(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	_ = writer.WriteField("theme_name", "Multi")
	_ = writer.WriteField("CURSORCOLOR", "#abcabc")
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/download", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	h.HandleDownload(rec, req)

	if name := attachmentName(t, rec); name != "Multi.ptt" {
		t.Fatalf("filename = %q, want Multi.ptt", name)
	}
	if !strings.Contains(rec.Body.String(), `<Color name="CURSORCOLOR" value="#ABCABC" />`) {
		t.Fatalf("multipart value not applied:\n%s", rec.Body.String())
	}
}

func TestHandleDownloadSanitizesName(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleDownload(rec, downloadRequest(url.Values{"theme_name": {"../etc/passwd"}}))
	if name := attachmentName(t, rec); name != ptt.FileName("../etc/passwd") || name != ".._etc_passwd.ptt" {
		t.Fatalf("filename = %q, want .._etc_passwd.ptt", name)
	}
}

func TestHandleIndex(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
	html := rec.Body.String()
	for _, slot := range palette.Slots() {
		if !strings.Contains(html, `id="in_`+string(slot)+`"`) {
			t.Fatalf("page missing input for %s", slot)
		}
	}
	if !strings.Contains(html, "Amber Terminal") {
		t.Fatalf("page missing presets")
	}
}

func TestHandlePresets(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandlePresets(rec, httptest.NewRequest(http.MethodGet, "/presets", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload struct {
		Presets []struct {
			Name      string            `json:"name"`
			IsDefault bool              `json:"isDefault"`
			Colors    map[string]string `json:"colors"`
		} `json:"presets"`
	}
	body, _ := io.ReadAll(rec.Body)
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Presets) == 0 {
		t.Fatalf("no presets returned")
	}
	if !payload.Presets[0].IsDefault || payload.Presets[0].Colors["ERRORCOLOR"] != "#CC3333" {
		t.Fatalf("first preset = %+v, want default palette", payload.Presets[0])
	}
}
