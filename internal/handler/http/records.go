package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/internal/store"
	"github.com/dokanlabs/dokan-hisab/internal/utils"
	"github.com/dokanlabs/dokan-hisab/models"
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	recordType, ok := recordTypeFromRequest(w, r)
	if !ok {
		return
	}
	ownerScope, _ := utils.GetOwnerScopeFromContext(r.Context())

	records, err := h.repos.RecordRepository.GetRecords(r.Context(), ownerScope, recordType)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Str("record_type", string(recordType)).Msg("error listing records")
		http.Error(w, "error listing records", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error encoding response")
	}
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	h.upsertRecord(w, r, "", http.StatusCreated)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	h.upsertRecord(w, r, chi.URLParam(r, "id"), http.StatusOK)
}

// upsertRecord is the shared body of POST and PUT. Client-generated record
// ids are stored verbatim; creating a record that already exists, or updating
// one the server has never seen, both land on the same upsert. That keeps
// queued-mutation replay idempotent.
func (h *Handler) upsertRecord(w http.ResponseWriter, r *http.Request, recordID string, successStatus int) {
	log := logger.FromRequest(r)

	recordType, ok := recordTypeFromRequest(w, r)
	if !ok {
		return
	}
	ownerScope, _ := utils.GetOwnerScopeFromContext(r.Context())

	var record models.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.upsertRecord").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record.Type = recordType
	record.OwnerScope = ownerScope
	if recordID != "" {
		record.ID = recordID
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now()
	}

	if err := h.validator.Validate(r.Context(), record); err != nil {
		log.Err(err).Str("func", "*Handler.upsertRecord").Str("record_id", record.ID).Msg("record failed validation")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if err := h.repos.RecordRepository.UpsertRecord(r.Context(), record); err != nil {
		log.Err(err).Str("func", "*Handler.upsertRecord").Str("record_id", record.ID).Msg("error saving record")
		http.Error(w, "error saving record", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(successStatus)
	if err := json.NewEncoder(w).Encode(record); err != nil {
		log.Err(err).Str("func", "*Handler.upsertRecord").Msg("error encoding response")
	}
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	recordType, ok := recordTypeFromRequest(w, r)
	if !ok {
		return
	}
	ownerScope, _ := utils.GetOwnerScopeFromContext(r.Context())
	recordID := chi.URLParam(r, "id")

	err := h.repos.RecordRepository.DeleteRecord(r.Context(), ownerScope, recordType, recordID)
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		log.Err(err).Str("func", "*Handler.deleteRecord").Str("record_id", recordID).Msg("error deleting record")
		http.Error(w, "error deleting record", statusFromError(err))
		return
	}

	// Deleting a record the server never saw is still a satisfied delete, so
	// a replayed queue entry cannot get stuck on it.
	w.WriteHeader(http.StatusNoContent)
}

// recordTypeFromRequest resolves and checks the {type} url param. On an
// unknown type it writes the 400 response itself and reports false.
func recordTypeFromRequest(w http.ResponseWriter, r *http.Request) (models.RecordType, bool) {
	recordType := models.RecordType(chi.URLParam(r, "type"))
	if !recordType.Valid() {
		http.Error(w, "unknown record type", http.StatusBadRequest)
		return "", false
	}
	return recordType, true
}
