package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/vx-block-audit/internal/domain"
	"github.com/vfg2006/vx-block-audit/internal/usecases/auditing"
	"github.com/vfg2006/vx-block-audit/pkg/apiErrors"
	"github.com/vfg2006/vx-block-audit/pkg/log"
	"github.com/vfg2006/vx-block-audit/pkg/utils"
)

const maxAuditBodySize = 1 << 20

type createAuditRequest struct {
	TargetAppIDs        []string `json:"target_app_ids"`
	ExcludedBlockValues []string `json:"excluded_block_values"`
	RecipientEmail      string   `json:"recipient_email"`
	SenderEmail         string   `json:"sender_email"`
	GmailAppPassword    string   `json:"gmail_app_password"`
}

type listAuditRunsResponse struct {
	Runs  []*domain.AuditRun `json:"runs"`
	Count int                `json:"count"`
}

// CreateAudit runs the audit for a JSON body. List entries arrive already
// separated, so they are only trimmed, never split on commas.
func CreateAudit(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createAuditRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAuditBodySize)).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		request := &domain.AuditRequest{
			TargetAppIDs:        auditing.CleanList(body.TargetAppIDs),
			ExcludedBlockValues: auditing.CleanList(body.ExcludedBlockValues),
			RecipientEmail:      strings.TrimSpace(body.RecipientEmail),
			SenderEmail:         strings.TrimSpace(body.SenderEmail),
			GmailAppPassword:    body.GmailAppPassword,
		}

		result, err := service.Run(r.Context(), request)
		if err != nil {
			apiErrors.WriteError(w, auditing.Code(err), auditing.UserMessage(err), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func ListAuditRuns(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filters := &domain.AuditRunFilters{}

		if limit := query.Get("limit"); limit != "" {
			value, err := strconv.Atoi(limit)
			if err != nil || value < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be a positive integer", nil)
				return
			}
			filters.Limit = value
		}

		since, err := utils.ParseDate(query.Get("since"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "since must use the YYYY-MM-DD format", nil)
			return
		}
		filters.Since = since

		runs, err := service.ListRuns(r.Context(), filters)
		if err != nil {
			apiErrors.WriteError(w, auditing.Code(err), err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, listAuditRunsResponse{Runs: runs, Count: len(runs)})
	}
}

func GetAuditRun(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "run id is required", nil)
			return
		}

		run, err := service.GetRun(r.Context(), id)
		if err != nil {
			apiErrors.WriteError(w, auditing.Code(err), err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, run)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("api: failed to encode response")
	}
}
