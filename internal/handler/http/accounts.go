package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/utils"
	"github.com/MKhiriev/account-service/models"
)

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	log.Info().Msg("request to create an account")

	var account models.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.AccountService.Create(ctx, account)
	if err != nil {
		log.Err(err).Msg("error creating account")
		writeError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/accounts/%d", created.ID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.AccountFilter{
		Name:  r.URL.Query().Get("name"),
		Email: r.URL.Query().Get("email"),
	}

	accounts, err := h.services.AccountService.List(ctx, filter)
	if err != nil {
		log.Err(err).Msg("error listing accounts")
		writeError(w, err)
		return
	}

	log.Info().Int("count", len(accounts)).Msg("returning accounts")
	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := h.accountIDFromRequest(w, r)
	if !ok {
		return
	}

	found, err := h.services.AccountService.Get(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error reading account")
		writeAccountError(w, err, id)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := h.accountIDFromRequest(w, r)
	if !ok {
		return
	}

	// confirm existence before touching the body or the store
	if _, err := h.services.AccountService.Get(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("error updating account")
		writeAccountError(w, err, id)
		return
	}

	var account models.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// the path id wins; the record's id is immutable
	account.ID = id

	updated, err := h.services.AccountService.Update(ctx, account)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error updating account")
		writeAccountError(w, err, id)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := h.accountIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.AccountService.Delete(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("error deleting account")
		writeAccountError(w, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// accountIDFromRequest parses the {id} URL parameter. A value that is
// not a valid integer cannot name an existing account, so it is
// reported as not-found rather than a bad request. On failure the
// response has already been written and ok is false.
func (h *Handler) accountIDFromRequest(w http.ResponseWriter, r *http.Request) (id int64, ok bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromRequest(r).Error().Str("id", raw).Msg("non-numeric account id requested")
		http.Error(w, fmt.Sprintf("Account with id: %s could not be found.", raw), http.StatusNotFound)
		return 0, false
	}

	return id, true
}

// writeError translates err into a status code and a caller-facing
// message. Validation failures surface their own text; everything else
// gets the generic status text so store internals never leak.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusBadRequest {
		http.Error(w, err.Error(), status)
		return
	}
	http.Error(w, http.StatusText(status), status)
}

// writeAccountError is writeError for single-record operations;
// not-found responses must name the requested id.
func writeAccountError(w http.ResponseWriter, err error, id int64) {
	if statusFromError(err) == http.StatusNotFound {
		http.Error(w, fmt.Sprintf("Account with id: %d could not be found.", id), http.StatusNotFound)
		return
	}
	writeError(w, err)
}
