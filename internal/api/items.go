package api

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/founddesk/founddesk/internal/imaging"
	"github.com/founddesk/founddesk/internal/model"
	"github.com/founddesk/founddesk/internal/store"
)

// ItemsHandler handles item intake and lookup endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type itemRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Color       string `json:"color"`
	FoundAt     string `json:"found_at"`
}

// List handles GET /api/items: unclaimed items, optionally filtered.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.ItemFilter{
		Category: q.Get("category"),
		Color:    q.Get("color"),
		Location: q.Get("location"),
		Search:   q.Get("q"),
	}
	if v := q.Get("found_after"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid found_after date (want YYYY-MM-DD)")
			return
		}
		filter.FoundAfter = t
	}
	if v := q.Get("found_before"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid found_before date (want YYYY-MM-DD)")
			return
		}
		filter.FoundBefore = t
	}

	items, err := store.ListUnclaimedItems(r.Context(), h.DB, filter)
	if err != nil {
		storeError(w, err, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items: item intake.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, req.Name, req.Category, req.Description, req.Color, req.FoundAt)
	if err != nil {
		storeError(w, err, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := store.UpdateItem(r.Context(), h.DB, id, req.Name, req.Category, req.Description, req.Color, req.FoundAt); err != nil {
		storeError(w, err, "failed to update item")
		return
	}

	item, _ := store.GetItem(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}. Claimed items are refused.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := store.DeleteItem(r.Context(), h.DB, id); err != nil {
		storeError(w, err, "failed to delete item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// GetHistory handles GET /api/items/{id}/history.
func (h *ItemsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	history, err := store.GetItemHistory(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "failed to get item history")
		return
	}
	if history == nil {
		history = []model.StatusEvent{}
	}
	jsonResponse(w, http.StatusOK, history)
}

// UploadPhoto handles PUT /api/items/{id}/photo.
func (h *ItemsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	processed, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetItemPhoto(r.Context(), h.DB, id, processed.Data, processed.MIME); err != nil {
		storeError(w, err, "failed to save photo")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo uploaded"})
}

// GetPhoto handles GET /api/items/{id}/photo.
func (h *ItemsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, err := store.GetItemPhoto(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "failed to get photo")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
