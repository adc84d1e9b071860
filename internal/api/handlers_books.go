package api

import (
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/knowledgehub/chapterize/internal/writer"
)

// Book names are slugs produced by pipeline.BookName; anything else in a
// URL is rejected before it can touch the filesystem.
var bookNameRe = regexp.MustCompile(`^[a-z0-9_]+$`)

// handleListBooks lists all books with a manifest under the output dir.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.cfg.OutputDir)
	if err != nil {
		if os.IsNotExist(err) {
			writeJSON(w, http.StatusOK, map[string]any{"books": []any{}})
			return
		}
		jsonError(w, "failed to list books: "+err.Error(), http.StatusInternalServerError)
		return
	}

	books := []map[string]any{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		m, err := writer.ReadManifest(filepath.Join(s.cfg.OutputDir, e.Name(), writer.ManifestFile))
		if err != nil {
			continue
		}
		books = append(books, map[string]any{
			"book":          m.Book,
			"generated_at":  m.GeneratedAt,
			"section_count": m.SectionCount,
			"total_pages":   m.TotalPages,
			"files":         len(m.Files),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"books": books})
}

// handleBookManifest serves the full manifest for one book.
func (s *Server) handleBookManifest(w http.ResponseWriter, r *http.Request) {
	book := chi.URLParam(r, "book")
	if !bookNameRe.MatchString(book) {
		jsonError(w, "invalid book name", http.StatusBadRequest)
		return
	}

	m, err := writer.ReadManifest(filepath.Join(s.cfg.OutputDir, book, writer.ManifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			jsonError(w, "book not found", http.StatusNotFound)
			return
		}
		jsonError(w, "failed to read manifest: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// handleDeleteBook removes a book's split output.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	book := chi.URLParam(r, "book")
	if !bookNameRe.MatchString(book) {
		jsonError(w, "invalid book name", http.StatusBadRequest)
		return
	}

	dir := filepath.Join(s.cfg.OutputDir, book)
	if _, err := os.Stat(filepath.Join(dir, writer.ManifestFile)); err != nil {
		jsonError(w, "book not found", http.StatusNotFound)
		return
	}

	if err := os.RemoveAll(dir); err != nil {
		jsonError(w, "failed to delete book: "+err.Error(), http.StatusInternalServerError)
		return
	}

	s.log.Info("deleted book output", "book", book)
	writeJSON(w, http.StatusOK, map[string]any{"deleted": book})
}
