package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/attendly/attendance-gateway-go/internal/domain/note"
	"github.com/attendly/attendance-gateway-go/internal/handler/http/response"
)

type NoteHandler interface {
	Put(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type NoteHandlerImpl struct {
	noteService note.NoteService
}

func NewNoteHandler(noteService note.NoteService) NoteHandler {
	return &NoteHandlerImpl{noteService: noteService}
}

// Put implements NoteHandler.
func (n *NoteHandlerImpl) Put(w http.ResponseWriter, r *http.Request) {
	var putReq note.PutNoteRequest

	if err := json.NewDecoder(r.Body).Decode(&putReq); err != nil {
		slog.Error("Put note decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := n.noteService.Put(r.Context(), putReq)
	if err != nil {
		slog.Error("Put note service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, saved)
}

// Get implements NoteHandler.
func (n *NoteHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	found, err := n.noteService.Get(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Delete implements NoteHandler.
func (n *NoteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	if err := n.noteService.Delete(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Note deleted", nil)
}

// List implements NoteHandler.
func (n *NoteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	notes, err := n.noteService.List(r.Context())
	if err != nil {
		slog.Error("List notes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, notes)
}

// GetStats implements NoteHandler.
func (n *NoteHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := n.noteService.GetStats(r.Context())
	if err != nil {
		slog.Error("GetStats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
