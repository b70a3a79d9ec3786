// internal/api/themes/handlers.go
package themes

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/codr1/ThemeStudio/internal/api/apiutil"
	"github.com/codr1/ThemeStudio/internal/palette"
	"github.com/codr1/ThemeStudio/internal/ptt"
	"github.com/codr1/ThemeStudio/internal/templates/components/editor"
	"github.com/codr1/ThemeStudio/internal/templates/layouts"
)

const (
	uploadField    = "file"
	themeNameField = "theme_name"

	// multipartOverhead leaves room for boundaries and part headers around
	// the uploaded file itself.
	multipartOverhead = 16 << 10
)

// Options configures a Handler.
type Options struct {
	AppName        string
	Defaults       palette.ColorSet
	Presets        []palette.Preset
	MaxUploadBytes int64
	// Rand seeds randomization. Nil uses the global generator.
	Rand *rand.Rand
}

// Handler serves the theme editor. Its state is fixed at construction and
// shared read-only by all requests.
type Handler struct {
	appName   string
	defaults  palette.ColorSet
	presets   []palette.Preset
	maxUpload int64

	randMu sync.Mutex
	rand   *rand.Rand
}

func NewHandler(opts Options) *Handler {
	maxUpload := opts.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = ptt.MaxDocumentSize
	}
	presets := make([]palette.Preset, len(opts.Presets))
	copy(presets, opts.Presets)

	return &Handler{
		appName:   opts.AppName,
		defaults:  opts.Defaults,
		presets:   presets,
		maxUpload: maxUpload,
		rand:      opts.Rand,
	}
}

// GET /
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	data := editor.NewEditorData(h.appName, h.defaults, h.presets, h.maxUpload)
	page := layouts.Base(h.appName, h.defaults, editor.Editor(data))
	apiutil.RenderHTMLComponent(r.Context(), w, page, "Failed to render editor page", "Failed to render page")
}

// POST /import
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		if isTooLarge(err) {
			apiutil.WriteText(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		logger.Debug().Err(err).Msg("Import without multipart body")
		apiutil.WriteText(w, http.StatusBadRequest, "No file")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		apiutil.WriteText(w, http.StatusBadRequest, "No file")
		return
	}
	defer file.Close()

	if header.Size > h.maxUpload {
		apiutil.WriteText(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	colors, err := ptt.Decode(file)
	if err != nil {
		var parseErr *ptt.ParseError
		if errors.As(err, &parseErr) {
			logger.Warn().Err(err).Str("filename", header.Filename).Msg("Rejected theme upload")
			apiutil.WriteText(w, http.StatusInternalServerError, "Invalid file")
			return
		}
		apiutil.WriteError(w, r, err)
		return
	}

	logger.Info().Int("colors", len(colors)).Str("filename", header.Filename).Msg("Theme imported")
	if err := apiutil.WriteJSON(w, http.StatusOK, colors); err != nil {
		logger.Error().Err(err).Msg("Failed to write import response")
	}
}

// GET /randomize
func (h *Handler) HandleRandomize(w http.ResponseWriter, r *http.Request) {
	if err := apiutil.WriteJSON(w, http.StatusOK, h.randomize()); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write randomize response")
	}
}

// POST /download
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)
	var err error
	if apiutil.IsMultipart(r) {
		err = r.ParseMultipartForm(h.maxUpload)
		if r.MultipartForm != nil {
			defer r.MultipartForm.RemoveAll()
		}
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		if isTooLarge(err) {
			apiutil.WriteText(w, http.StatusRequestEntityTooLarge, "Form too large")
			return
		}
		apiutil.WriteError(w, r, apiutil.HandlerError{Status: http.StatusBadRequest, Message: "Invalid form", Err: err})
		return
	}

	name := ptt.ThemeName(r.Form.Get(themeNameField))
	set := palette.BuildExport(apiutil.FormValues(r), h.defaults)

	if err := apiutil.WriteAttachment(w, ptt.FileName(name), ptt.Marshal(set)); err != nil {
		logger.Error().Err(err).Str("theme_name", name).Msg("Failed to write theme download")
		return
	}
	logger.Info().Str("theme_name", name).Msg("Theme downloaded")
}

// GET /presets
func (h *Handler) HandlePresets(w http.ResponseWriter, r *http.Request) {
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"presets": h.presets}); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write presets response")
	}
}

func (h *Handler) randomize() palette.ColorSet {
	if h.rand == nil {
		return palette.Randomize(nil)
	}
	// rand.Rand is not safe for concurrent use.
	h.randMu.Lock()
	defer h.randMu.Unlock()
	return palette.Randomize(h.rand)
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
