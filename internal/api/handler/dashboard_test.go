package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/vx-block-audit/internal/api/handler/router"
	"github.com/vfg2006/vx-block-audit/internal/config"
	"github.com/vfg2006/vx-block-audit/internal/domain"
	"github.com/vfg2006/vx-block-audit/internal/usecases/auditing"
	"github.com/vfg2006/vx-block-audit/internal/usecases/auditing/mocks"
	"github.com/vfg2006/vx-block-audit/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const testPassword = "abcd efgh ijkl mnop"

func dashboardSettings() config.Dashboard {
	return config.Dashboard{
		Title:                 "Liftoff VX – Block / Unblock AI Audit",
		DefaultAppIDs:         []string{"632cc7810ca02c6344d51822", "632cc70d35cc2d93ebf3b2d5"},
		DefaultRecipientEmail: "ssai@liftoff.io",
		DefaultSenderEmail:    "ssai@liftoff.io",
	}
}

func dashboardRouter(service auditing.Auditor) http.Handler {
	return router.New(router.WithRoutes(DashboardPages(service, dashboardSettings())...))
}

func submitForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/run", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func fullForm() url.Values {
	return url.Values{
		"app_ids":            {"632cc7810ca02c6344d51822\n5b2abc08c4867b46785c2206, 650363ddd38855ef54aae568"},
		"exclusions":         {"dreamgames.com, king.com"},
		"recipient_email":    {"ops@example.com"},
		"sender_email":       {"sender@gmail.com"},
		"gmail_app_password": {testPassword},
		"schedule":           {"Run now (no schedule)"},
	}
}

func TestDashboard_InitialPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := httptest.NewRecorder()
	dashboardRouter(mocks.NewMockAuditor(ctrl)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "Fill in the sidebar and click Run analysis to start.")
	assert.Contains(t, body, "632cc7810ca02c6344d51822\n632cc70d35cc2d93ebf3b2d5")
	assert.Contains(t, body, `value="ssai@liftoff.io"`)
	assert.NotContains(t, body, "Detailed outputs")
}

func TestRunAudit(t *testing.T) {
	tests := []struct {
		name         string
		form         url.Values
		setup        func(m *mocks.MockAuditor)
		wantStatus   int
		wantContains []string
		wantMissing  []string
	}{
		{
			name: "success renders summary and all tabs",
			form: fullForm(),
			setup: func(m *mocks.MockAuditor) {
				m.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, request *domain.AuditRequest) (*domain.AuditResult, error) {
					assert.Equal(t, []string{"632cc7810ca02c6344d51822", "5b2abc08c4867b46785c2206", "650363ddd38855ef54aae568"}, request.TargetAppIDs)
					assert.Equal(t, []string{"dreamgames.com", "king.com"}, request.ExcludedBlockValues)
					assert.Equal(t, testPassword, request.GmailAppPassword)
					return &domain.AuditResult{
						HTMLSummary:    "<p>Blocks cost $12k last week</p>",
						SummaryMetrics: &domain.Table{Columns: []string{"metric", "value"}, Data: [][]any{{"missed_spend", 12000.0}}},
					}, nil
				})
			},
			wantStatus: http.StatusOK,
			wantContains: []string{
				"Done! AI summary emailed to ops@example.com.",
				"AI Summary (preview)",
				"L7D DSP spend (blocks)",
				"L30D network spend (blocks)",
				"Block summary per app",
				"Competitor revenue matrix",
				"Summary metrics",
				"<td>12000</td>",
			},
		},
		{
			name: "validation error never reaches the pipeline",
			form: func() url.Values {
				v := fullForm()
				v.Set("app_ids", " \n , ")
				return v
			}(),
			setup: func(m *mocks.MockAuditor) {
				m.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, auditing.Validate(&domain.AuditRequest{}))
			},
			wantStatus:   http.StatusBadRequest,
			wantContains: []string{"Please enter at least one publisher app ID.", "banner-error"},
			wantMissing:  []string{"Detailed outputs"},
		},
		{
			name: "pipeline error surfaces its message",
			form: fullForm(),
			setup: func(m *mocks.MockAuditor) {
				m.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil,
					auditing.NewAuditError(auditing.ErrPipelineFailed, apiErrors.ErrExternalService, "SMTP authentication failed"))
			},
			wantStatus:   http.StatusBadGateway,
			wantContains: []string{"Something went wrong: SMTP authentication failed"},
			wantMissing:  []string{"Detailed outputs", "<iframe", "Done!"},
		},
		{
			name: "unexpected error is still shown",
			form: fullForm(),
			setup: func(m *mocks.MockAuditor) {
				m.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantStatus:   http.StatusBadGateway,
			wantContains: []string{"Something went wrong: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auditor := mocks.NewMockAuditor(ctrl)
			tt.setup(auditor)

			rec := httptest.NewRecorder()
			dashboardRouter(auditor).ServeHTTP(rec, submitForm(tt.form))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := rec.Body.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, body, want)
			}
			for _, missing := range tt.wantMissing {
				assert.NotContains(t, body, missing)
			}
			assert.NotContains(t, body, testPassword)
		})
	}
}

func TestRunAudit_EchoesInputsWithoutPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auditor := mocks.NewMockAuditor(ctrl)
	auditor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, auditing.Validate(&domain.AuditRequest{TargetAppIDs: []string{"a"}}))

	form := fullForm()
	form.Set("recipient_email", "")

	rec := httptest.NewRecorder()
	dashboardRouter(auditor).ServeHTTP(rec, submitForm(form))

	body := rec.Body.String()
	assert.Contains(t, body, "Please enter a recipient email.")
	assert.Contains(t, body, "dreamgames.com, king.com")
	assert.Contains(t, body, `value="sender@gmail.com"`)
	assert.NotContains(t, body, testPassword)
}

func TestDashboardPages_BasicAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := dashboardSettings()
	settings.User = "analyst"
	settings.PasswordHash = "$2a$10$placeholderplaceholderplaceholderplaceholderplacehol"

	rt := router.New(router.WithRoutes(DashboardPages(mocks.NewMockAuditor(ctrl), settings)...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
}
