package handler

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/vfg2006/vx-block-audit/internal/config"
	"github.com/vfg2006/vx-block-audit/internal/domain"
	"github.com/vfg2006/vx-block-audit/internal/usecases/auditing"
	"github.com/vfg2006/vx-block-audit/internal/web"
	"github.com/vfg2006/vx-block-audit/pkg/log"
)

const maxFormSize = 1 << 20

// Dashboard renders the empty form with the configured defaults.
func Dashboard(settings config.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := web.NewPage(settings.Title, defaultFormValues(settings)).WithInfo()
		renderPage(w, r, http.StatusOK, page)
	}
}

// RunAudit handles the sidebar submit and re-renders the page with either
// an error banner or the full result.
func RunAudit(service auditing.Auditor, settings config.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
		if err := r.ParseForm(); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("audit: could not parse dashboard form")
			page := web.NewPage(settings.Title, defaultFormValues(settings)).
				WithError("Something went wrong: invalid form submission")
			renderPage(w, r, http.StatusBadRequest, page)
			return
		}

		form := &domain.AuditForm{
			AppIDs:           r.PostForm.Get("app_ids"),
			Exclusions:       r.PostForm.Get("exclusions"),
			RecipientEmail:   r.PostForm.Get("recipient_email"),
			SenderEmail:      r.PostForm.Get("sender_email"),
			GmailAppPassword: r.PostForm.Get("gmail_app_password"),
		}

		page := web.NewPage(settings.Title, web.FormValues{
			AppIDs:         form.AppIDs,
			Exclusions:     form.Exclusions,
			RecipientEmail: form.RecipientEmail,
			SenderEmail:    form.SenderEmail,
		})

		request := auditing.BuildRequest(form)
		result, err := service.Run(r.Context(), request)
		if err != nil {
			status := http.StatusBadGateway
			if auditing.IsValidation(err) {
				status = http.StatusBadRequest
			}
			renderPage(w, r, status, page.WithError(auditing.UserMessage(err)))
			return
		}

		renderPage(w, r, http.StatusOK, page.WithSuccess(request.RecipientEmail, result))
	}
}

func defaultFormValues(settings config.Dashboard) web.FormValues {
	return web.FormValues{
		AppIDs:         strings.Join(settings.DefaultAppIDs, "\n"),
		RecipientEmail: settings.DefaultRecipientEmail,
		SenderEmail:    settings.DefaultSenderEmail,
	}
}

func renderPage(w http.ResponseWriter, r *http.Request, status int, page *web.Page) {
	var body bytes.Buffer
	if err := web.Render(&body, page); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("web: failed to render dashboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = body.WriteTo(w)
}
