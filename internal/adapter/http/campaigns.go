package httpadapter

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"campaign-lens/internal/core/domain"
	"campaign-lens/internal/core/parser"
	"campaign-lens/internal/core/port"
)

const uploadField = "files"

// campaignInfo is the list view of a campaign.
type campaignInfo struct {
	SourceID   string              `json:"source_id"`
	Name       string              `json:"name"`
	Group      string              `json:"group,omitempty"`
	StartDate  string              `json:"start_date,omitempty"`
	EndDate    string              `json:"end_date,omitempty"`
	Offers     int                 `json:"offers"`
	DailyRows  int                 `json:"daily_rows"`
	HasSummary bool                `json:"has_summary"`
	Segments   domain.SegmentFlags `json:"segments"`
	UploadedAt time.Time           `json:"uploaded_at"`
}

func newCampaignInfo(c domain.Campaign) campaignInfo {
	info := campaignInfo{
		SourceID:   c.SourceID,
		Name:       c.Name,
		Group:      c.Group,
		Offers:     len(c.Offers),
		DailyRows:  len(c.Daily),
		HasSummary: c.Summary != nil,
		Segments:   c.Segments(),
		UploadedAt: c.UploadedAt,
	}
	if c.Summary != nil {
		info.StartDate = formatDate(c.Summary.StartDate)
		info.EndDate = formatDate(c.Summary.EndDate)
	}
	return info
}

// uploadResult is the per-file outcome of an upload.
type uploadResult struct {
	File     string        `json:"file"`
	Stored   bool          `json:"stored"`
	Campaign *campaignInfo `json:"campaign,omitempty"`
	Stats    *parser.Stats `json:"stats,omitempty"`
	Error    string        `json:"error,omitempty"`
}

type uploadResponse struct {
	Stored  int            `json:"stored"`
	Failed  int            `json:"failed"`
	Results []uploadResult `json:"results"`
}

// handleUpload ingests every file of the multipart field "files". A file
// that cannot be read or parsed is reported in its own result; the others
// are still stored.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.renderError(w, r, newAPIError(http.StatusBadRequest, "INVALID_REQUEST", "invalid multipart body", err.Error()))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[uploadField]
	if len(headers) == 0 {
		h.renderError(w, r, newAPIError(http.StatusBadRequest, "MISSING_PARAMETER",
			fmt.Sprintf("no files in field %q", uploadField), nil))
		return
	}

	results := make([]uploadResult, len(headers))
	uploads := make([]port.Upload, 0, len(headers))
	slots := make([]int, 0, len(headers))
	for i, fh := range headers {
		results[i].File = fh.Filename
		content, err := readPart(fh)
		if err != nil {
			results[i].Error = fmt.Sprintf("read: %v", err)
			continue
		}
		uploads = append(uploads, port.Upload{FileName: fh.Filename, Content: content})
		slots = append(slots, i)
	}

	for j, res := range h.svc.Ingest(r.Context(), uploads) {
		out := &results[slots[j]]
		if res.Err != nil {
			out.Error = res.Err.Error()
			continue
		}
		info := newCampaignInfo(*res.Campaign)
		stats := res.Stats
		out.Stored, out.Campaign, out.Stats = true, &info, &stats
	}

	var resp uploadResponse
	resp.Results = results
	for _, res := range results {
		if res.Stored {
			resp.Stored++
		} else {
			resp.Failed++
		}
	}
	if resp.Stored > 0 {
		render.Status(r, http.StatusCreated)
	} else {
		render.Status(r, http.StatusUnprocessableEntity)
	}
	render.JSON(w, r, resp)
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	out := make([]campaignInfo, 0, len(list))
	for _, c := range list {
		out = append(out, newCampaignInfo(c))
	}
	render.JSON(w, r, out)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, c)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.renderError(w, r, err)
		return
	}
	render.NoContent(w, r)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
