package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/simaogato/lifeplan-backend/internal/usecase/planner"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight

	chartHeight = 70.0
	rowHeight   = 5.5
)

// Core PDF fonts have no Hangul glyphs, so the report uses English labels only
// and refers to holdings by count rather than by name.

// PDFReport renders a projection plan as a PDF document
type PDFReport struct {
	pdf       *fpdf.Fpdf
	plan      *planner.Plan
	generated time.Time
}

// RenderPDF writes the plan's report to w
func RenderPDF(w io.Writer, plan *planner.Plan, generated time.Time) error {
	r := &PDFReport{
		pdf:       fpdf.New("P", "mm", "A4", ""),
		plan:      plan,
		generated: generated,
	}

	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetTitle("Retirement Projection", false)

	r.addSummaryPage()
	r.addYearTable()

	if err := r.pdf.Error(); err != nil {
		return fmt.Errorf("failed to build pdf: %w", err)
	}
	return r.pdf.Output(w)
}

func (r *PDFReport) addSummaryPage() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "Retirement Projection", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", r.generated.Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)

	in := r.plan.Input
	r.drawSectionHeader("Inputs")
	r.keyValue("Ages", fmt.Sprintf("now %d, retire %d, plan to %d", in.CurrentAge, in.RetirementAge, in.DeathAge))
	r.keyValue("Liquid assets", fmt.Sprintf("%s eok KRW", in.LiquidAsset.String()))
	r.keyValue("Monthly savings", fmt.Sprintf("%s man KRW", in.MonthlySavings.String()))
	r.keyValue("Monthly spend", fmt.Sprintf("%s man KRW (with lifestyle add-ons)", r.plan.TotalMonthlySpend.String()))
	r.keyValue("Expected return", fmt.Sprintf("%d%%", in.ReturnRatePct))
	r.keyValue("Inflation", fmt.Sprintf("%s%%", r.plan.Parameters.AnnualInflationRate.Shift(2).String()))
	r.keyValue("Properties", fmt.Sprintf("%d", len(r.plan.Holdings)))
	r.pdf.Ln(4)

	r.drawSectionHeader("Readiness")
	score := r.plan.Score
	r.keyValue("Score", fmt.Sprintf("%d / 100 (grade %s)", score.Score, score.Grade))
	depletion := "Assets last through the plan"
	if score.DepletionAge != nil {
		depletion = fmt.Sprintf("Liquid assets run out at age %d", *score.DepletionAge)
	}
	r.keyValue("Depletion", depletion)
	c := r.plan.Commentary
	r.keyValue("Outlook", fmt.Sprintf("depletion %s, concentration %s", c.Depletion, c.Concentration))
	r.keyValue("Profile", fmt.Sprintf("spending %s, investment %s", c.Spending, c.Investment))
	for _, sale := range r.plan.Sales {
		r.keyValue("Property sale", fmt.Sprintf("age %d, proceeds %s KRW", sale.Age, sale.Proceeds.StringFixed(0)))
	}
	r.pdf.Ln(4)

	r.drawSectionHeader("Asset trajectory (eok KRW)")
	r.drawChart()
}

func (r *PDFReport) addYearTable() {
	r.pdf.AddPage()
	r.drawSectionHeader("Year by year (eok KRW)")

	widths := []float64{30, 50, 50, 50}
	headers := []string{"Age", "Liquid", "Real estate", "Total"}

	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		r.pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	chart := r.plan.Chart
	r.pdf.SetFont("Arial", "", 9)
	for i, age := range chart.Ages {
		liquid := chart.LiquidEok[i]
		realEstate := chart.RealEstateEok[i]

		fill := i%2 == 1
		r.pdf.SetFillColor(245, 247, 250)
		r.pdf.SetTextColor(50, 50, 50)
		if liquid < 0 {
			r.pdf.SetTextColor(192, 0, 0)
		}
		r.pdf.CellFormat(widths[0], rowHeight, fmt.Sprintf("%d", age), "LR", 0, "C", fill, 0, "")
		r.pdf.CellFormat(widths[1], rowHeight, fmt.Sprintf("%d", liquid), "LR", 0, "R", fill, 0, "")
		r.pdf.CellFormat(widths[2], rowHeight, fmt.Sprintf("%d", realEstate), "LR", 0, "R", fill, 0, "")
		r.pdf.CellFormat(widths[3], rowHeight, fmt.Sprintf("%d", liquid+realEstate), "LR", 0, "R", fill, 0, "")
		r.pdf.Ln(-1)
	}
	r.pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 0, "", "T", 1, "", false, 0, "")
}

// drawChart plots liquid and real-estate series as two polylines with a zero line
func (r *PDFReport) drawChart() {
	chart := r.plan.Chart
	if len(chart.Ages) < 2 {
		return
	}

	lo, hi := int64(0), int64(1)
	for i := range chart.Ages {
		lo = min(lo, chart.LiquidEok[i], chart.RealEstateEok[i])
		hi = max(hi, chart.LiquidEok[i], chart.RealEstateEok[i])
	}

	x0, y0 := marginLeft+10, r.pdf.GetY()+2
	width := contentWidth - 10
	xAt := func(i int) float64 {
		return x0 + width*float64(i)/float64(len(chart.Ages)-1)
	}
	yAt := func(v int64) float64 {
		return y0 + chartHeight*float64(hi-v)/float64(hi-lo)
	}

	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetLineWidth(0.2)
	r.pdf.Rect(x0, y0, width, chartHeight, "D")
	r.pdf.Line(x0, yAt(0), x0+width, yAt(0))

	r.pdf.SetFont("Arial", "", 7)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.Text(marginLeft, yAt(hi)+2, fmt.Sprintf("%d", hi))
	r.pdf.Text(marginLeft, yAt(lo), fmt.Sprintf("%d", lo))
	r.pdf.Text(x0, y0+chartHeight+4, fmt.Sprintf("%d", chart.Ages[0]))
	r.pdf.Text(x0+width-4, y0+chartHeight+4, fmt.Sprintf("%d", chart.Ages[len(chart.Ages)-1]))

	series := []struct {
		values  []int64
		r, g, b int
		label   string
	}{
		{chart.LiquidEok, 0, 102, 204, "Liquid"},
		{chart.RealEstateEok, 230, 126, 34, "Real estate net"},
	}
	r.pdf.SetLineWidth(0.6)
	for _, s := range series {
		r.pdf.SetDrawColor(s.r, s.g, s.b)
		for i := 1; i < len(s.values); i++ {
			r.pdf.Line(xAt(i-1), yAt(s.values[i-1]), xAt(i), yAt(s.values[i]))
		}
	}

	if chart.DepletionAge != nil {
		i := *chart.DepletionAge - chart.Ages[0]
		r.pdf.SetDrawColor(192, 0, 0)
		r.pdf.SetDashPattern([]float64{1.5, 1}, 0)
		r.pdf.Line(xAt(i), y0, xAt(i), y0+chartHeight)
		r.pdf.SetDashPattern([]float64{}, 0)
	}

	r.pdf.SetY(y0 + chartHeight + 7)
	r.pdf.SetFont("Arial", "", 8)
	for _, s := range series {
		r.pdf.SetTextColor(s.r, s.g, s.b)
		r.pdf.CellFormat(40, 5, s.label, "", 0, "L", false, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *PDFReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(2)
}

func (r *PDFReport) keyValue(key, value string) {
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(45, 6, key, "", 0, "L", false, 0, "")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(contentWidth-45, 6, value, "", 1, "L", false, 0, "")
}
