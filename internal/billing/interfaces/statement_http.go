package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"theater-billing/internal/auth"
	statementapp "theater-billing/internal/billing/application"
	billing "theater-billing/internal/billing/domain"
	"theater-billing/internal/billing/infrastructure/file"
)

const maxInvoiceBytes = 1 << 20

// StatementHandler handles statement APIs.
type StatementHandler struct {
	service *statementapp.StatementService
	formats map[string]struct{}
	logger  *log.Logger
}

// NewStatementHandler constructs a handler. An empty formats list enables every format.
func NewStatementHandler(service *statementapp.StatementService, formats []string, logger *log.Logger) (*StatementHandler, error) {
	if service == nil {
		return nil, errors.New("statement handler: nil service")
	}
	if logger == nil {
		logger = log.Default()
	}
	if len(formats) == 0 {
		formats = statementapp.DefaultFormats
	}
	enabled := make(map[string]struct{}, len(formats))
	for _, format := range formats {
		if _, ok := contentTypes[format]; !ok {
			return nil, errors.New("statement handler: unknown format " + format)
		}
		enabled[format] = struct{}{}
	}
	return &StatementHandler{service: service, formats: enabled, logger: logger}, nil
}

// ServeHTTP handles routes under /api/v1/plays and /api/v1/statements.
func (h *StatementHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == "/api/v1/plays" && r.Method == http.MethodGet:
		h.handleListPlays(w, r)
		return
	case path == "/api/v1/statements" && r.Method == http.MethodPost:
		format := r.URL.Query().Get("format")
		if format == "" {
			format = FormatText
		}
		if format == FormatPDF || format == FormatXLSX {
			http.Error(w, "use /api/v1/statements/export."+format, http.StatusBadRequest)
			return
		}
		h.handleStatement(w, r, format)
		return
	case strings.HasPrefix(path, "/api/v1/statements/export.") && r.Method == http.MethodPost:
		format := strings.TrimPrefix(path, "/api/v1/statements/export.")
		if format != FormatPDF && format != FormatXLSX {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.handleStatement(w, r, format)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

type playView struct {
	ID   string           `json:"id"`
	Name string           `json:"name"`
	Type billing.PlayType `json:"type"`
}

func (h *StatementHandler) handleListPlays(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.Catalog(r.Context())
	if err != nil {
		h.logger.Printf("catalog load error: %v", err)
		http.Error(w, "catalog unavailable", http.StatusInternalServerError)
		return
	}
	plays := make([]playView, 0, len(catalog))
	for _, id := range catalog.IDs() {
		play := catalog[id]
		plays = append(plays, playView{ID: id, Name: play.Name, Type: play.Type})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(plays)
}

func (h *StatementHandler) handleStatement(w http.ResponseWriter, r *http.Request, format string) {
	contentType, ok := ContentType(format)
	if !ok {
		http.Error(w, "unsupported format", http.StatusBadRequest)
		return
	}
	if _, enabled := h.formats[format]; !enabled {
		http.Error(w, "format disabled", http.StatusNotFound)
		return
	}

	invoice, err := file.ReadInvoice(http.MaxBytesReader(w, r.Body, maxInvoiceBytes))
	if err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	requestID := uuid.New().String()
	data, err := h.service.Generate(r.Context(), invoice)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	body, err := Render(format, data)
	if err != nil {
		h.logger.Printf("statement render error: request=%s format=%s err=%v", requestID, format, err)
		http.Error(w, "render "+format+" error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Request-ID", requestID)
	if format == FormatPDF || format == FormatXLSX {
		w.Header().Set("Content-Disposition", `attachment; filename="statement-`+requestID+`.`+format+`"`)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
	h.logger.Printf("statement served: request=%s subject=%s customer=%s format=%s",
		requestID, auth.SubjectFromContext(r.Context()), invoice.Customer, format)
}

func respondServiceError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, billing.ErrUnknownPlay) || errors.Is(err, billing.ErrUnknownPlayType) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	http.Error(w, "statement generation failed", http.StatusInternalServerError)
}
