package web

import (
	"io"

	"github.com/vfg2006/vx-block-audit/internal/domain"
	"github.com/vfg2006/vx-block-audit/pkg/utils"
)

const dashboardTemplate = "dashboard.html"

const (
	PageTitle   = "Liftoff VX Block Audit – AI Assistant"
	InfoMessage = "Fill in the sidebar and click Run analysis to start."
)

// ScheduleOptions are shown in the sidebar. Only the first one is supported.
var ScheduleOptions = []string{
	"Run now (no schedule)",
	"Daily (coming soon)",
	"Weekly (coming soon)",
}

type BannerKind string

const (
	BannerInfo    BannerKind = "info"
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

type Banner struct {
	Kind    BannerKind
	Message string
}

// FormValues are echoed back into the sidebar after a submit. The app
// password is deliberately absent.
type FormValues struct {
	AppIDs         string
	Exclusions     string
	RecipientEmail string
	SenderEmail    string
}

type Page struct {
	PageTitle       string
	Title           string
	Form            FormValues
	ScheduleOptions []string
	Banner          *Banner
	Result          *ResultView
}

type ResultView struct {
	SummaryHTML string
	Tabs        []TableView
}

type TableView struct {
	Key      string
	Title    string
	Heading  string
	Caption  string
	Columns  []string
	Rows     []RowView
	HasIndex bool
}

type RowView struct {
	Index string
	Cells []string
}

type tabDefinition struct {
	key     string
	title   string
	heading string
	caption string
}

var resultTabs = []tabDefinition{
	{
		key:     domain.DatasetBlocksWithSpend,
		title:   "L7D DSP spend (blocks)",
		heading: "Blocks enriched with L7D DSP spend (app + domain)",
		caption: "Non-VX spend shows what other DSPs are spending where VX is blocked.",
	},
	{
		key:     domain.DatasetBlocksWithGlobal,
		title:   "L30D network spend (blocks)",
		heading: "Global advertiser network spend (L30D) for blocked advertisers",
		caption: "Helps size missed opportunity from global scale.",
	},
	{
		key:     domain.DatasetSummaryOur,
		title:   "Block summary per app",
		heading: "Block summary per app (our apps only)",
		caption: "Block aggressiveness vs similar apps, including z-scores and missed spend.",
	},
	{
		key:     domain.DatasetRevMatrix,
		title:   "Competitor revenue matrix",
		heading: "Competitor revenue matrix (L7D)",
		caption: "Revenue similar apps earn from advertisers the target apps block.",
	},
	{
		key:     domain.DatasetSummaryMetrics,
		title:   "Summary metrics",
		heading: "High-level summary metrics",
		caption: "Key roll-up metrics used by the AI summary.",
	},
}

func NewPage(title string, form FormValues) *Page {
	return &Page{
		PageTitle:       PageTitle,
		Title:           title,
		Form:            form,
		ScheduleOptions: ScheduleOptions,
	}
}

// WithInfo shows the banner displayed before any run.
func (p *Page) WithInfo() *Page {
	p.Banner = &Banner{Kind: BannerInfo, Message: InfoMessage}
	return p
}

// WithError drops any result views.
func (p *Page) WithError(message string) *Page {
	p.Banner = &Banner{Kind: BannerError, Message: message}
	p.Result = nil
	return p
}

func (p *Page) WithSuccess(recipient string, result *domain.AuditResult) *Page {
	p.Banner = &Banner{Kind: BannerSuccess, Message: "Done! AI summary emailed to " + recipient + "."}
	p.Result = NewResultView(result)
	return p
}

// NewResultView builds the summary preview and all five tabs. A missing
// dataset still gets its tab, rendered empty.
func NewResultView(result *domain.AuditResult) *ResultView {
	view := &ResultView{
		Tabs: make([]TableView, 0, len(resultTabs)),
	}
	if result != nil {
		view.SummaryHTML = result.HTMLSummary
	}

	for _, tab := range resultTabs {
		view.Tabs = append(view.Tabs, newTableView(tab, result.Dataset(tab.key)))
	}

	return view
}

func newTableView(tab tabDefinition, table *domain.Table) TableView {
	view := TableView{
		Key:     tab.key,
		Title:   tab.title,
		Heading: tab.heading,
		Caption: tab.caption,
	}
	if table == nil {
		return view
	}

	view.Columns = table.Columns
	view.HasIndex = table.HasIndex()
	view.Rows = make([]RowView, 0, len(table.Data))
	for i, data := range table.Data {
		row := RowView{Cells: make([]string, len(data))}
		if view.HasIndex {
			row.Index = utils.FormatCell(table.Index[i])
		}
		for j, cell := range data {
			row.Cells[j] = utils.FormatCell(cell)
		}
		view.Rows = append(view.Rows, row)
	}

	return view
}

func Render(w io.Writer, page *Page) error {
	return Templates.ExecuteTemplate(w, dashboardTemplate, page)
}
