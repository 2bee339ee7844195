package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/founddesk/founddesk/internal/imaging"
	"github.com/founddesk/founddesk/internal/model"
	"github.com/founddesk/founddesk/internal/store"
)

// ItemsPage handles GET /items.
func (s *Server) ItemsPage(w http.ResponseWriter, r *http.Request) {
	filter := model.ItemFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}
	items, err := store.ListUnclaimedItems(r.Context(), s.DB, filter)
	if err != nil {
		slog.Error("failed to list items", "error", err)
	}

	s.Templates.Render(w, "items.html", &struct {
		PageData
		Items    []model.Item
		Category string
		Search   string
	}{
		PageData: PageData{Title: "Unclaimed items", Error: r.URL.Query().Get("error")},
		Items:    items,
		Category: filter.Category,
		Search:   filter.Search,
	})
}

// ItemCreateSubmit handles POST /items (intake form).
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	item, err := store.CreateItem(r.Context(), s.DB,
		r.FormValue("name"),
		r.FormValue("category"),
		r.FormValue("description"),
		r.FormValue("color"),
		r.FormValue("found_at"),
	)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			http.Redirect(w, r, "/items?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		slog.Error("failed to create item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/items/"+strconv.FormatInt(item.ID, 10), http.StatusSeeOther)
}

// ItemDetailPage handles GET /items/{id}.
func (s *Server) ItemDetailPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := store.GetItem(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	history, err := store.GetItemHistory(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item history", "error", err)
	}

	s.Templates.Render(w, "item_detail.html", &struct {
		PageData
		Item    *model.Item
		History []model.StatusEvent
	}{
		PageData: PageData{Title: item.Name, Error: r.URL.Query().Get("error")},
		Item:     item,
		History:  history,
	})
}

// ClaimFileSubmit handles POST /items/{id}/claim (claim form on the
// item detail page).
func (s *Server) ClaimFileSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	_, err = store.FileClaim(r.Context(), s.DB, id,
		r.FormValue("owner_first_name"),
		r.FormValue("owner_last_name"),
		r.FormValue("verification_code"),
	)
	if err != nil {
		if errors.Is(err, model.ErrValidation) || errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrNotFound) {
			http.Redirect(w, r, "/items/"+r.PathValue("id")+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		slog.Error("failed to file claim", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/claims", http.StatusSeeOther)
}

// ItemPhotoSubmit handles POST /items/{id}/photo.
func (s *Server) ItemPhotoSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		http.Redirect(w, r, "/items/"+r.PathValue("id")+"?error=photo+too+large", http.StatusSeeOther)
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		http.Redirect(w, r, "/items/"+r.PathValue("id")+"?error=photo+file+required", http.StatusSeeOther)
		return
	}
	defer file.Close()

	processed, err := imaging.Process(file)
	if err != nil {
		http.Redirect(w, r, "/items/"+r.PathValue("id")+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	if err := store.SetItemPhoto(r.Context(), s.DB, id, processed.Data, processed.MIME); err != nil {
		slog.Error("failed to save photo", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/items/"+r.PathValue("id"), http.StatusSeeOther)
}

// ItemPhotoGet handles GET /items/{id}/photo.
func (s *Server) ItemPhotoGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	data, mime, err := store.GetItemPhoto(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get photo", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write photo response", "error", err)
	}
}
