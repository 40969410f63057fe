package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/RNSsanjay/agentium/internal/extract"
)

// SalesAnalysis aggregates the sales dataset.
type SalesAnalysis struct {
	TotalRevenue   int            `json:"total_revenue"`
	TotalUnits     int            `json:"total_units"`
	AveragePrice   float64        `json:"average_price"`
	ProductRevenue map[string]int `json:"product_performance"`
	BestProduct    string         `json:"best_performing_product"`
}

// FeedbackAnalysis aggregates the customer feedback dataset.
type FeedbackAnalysis struct {
	AverageRating   float64            `json:"average_rating"`
	Sentiments      map[string]int     `json:"sentiment_distribution"`
	CategoryRatings map[string]float64 `json:"category_ratings"`
	TotalFeedback   int                `json:"total_feedback"`
	WeakestCategory string             `json:"weakest_category"`
}

// FinancialAnalysis aggregates the financial dataset.
type FinancialAnalysis struct {
	QuarterlyProfits []int   `json:"quarterly_profits"`
	AnnualRevenue    int     `json:"total_annual_revenue"`
	AnnualExpenses   int     `json:"total_annual_expenses"`
	AnnualProfit     int     `json:"annual_profit"`
	ProfitMargin     float64 `json:"profit_margin"`
}

// SourceInsights is the per-source analysis result. At most one of the
// typed analysis fields is set, matching the source type.
type SourceInsights struct {
	Source string     `json:"source"`
	Type   SourceType `json:"type"`

	Sales     *SalesAnalysis          `json:"sales_analysis,omitempty"`
	Feedback  *FeedbackAnalysis       `json:"feedback_analysis,omitempty"`
	Financial *FinancialAnalysis      `json:"financial_analysis,omitempty"`
	Entities  *extract.StructuredData `json:"extracted_entities,omitempty"`

	KeyInsights     []string `json:"key_insights"`
	Recommendations []string `json:"recommendations,omitempty"`
}

func (d *Dashboard) analyzeSource(ctx context.Context, src Source) (*SourceInsights, error) {
	insights := &SourceInsights{Source: src.Name, Type: src.Type}

	switch {
	case src.Sales != nil:
		insights.Sales = analyzeSales(src.Sales)
		insights.KeyInsights = []string{
			fmt.Sprintf("Total revenue generated: $%d", insights.Sales.TotalRevenue),
			fmt.Sprintf("Best performing product: %s", insights.Sales.BestProduct),
			fmt.Sprintf("Average unit price: $%.2f", insights.Sales.AveragePrice),
			fmt.Sprintf("Total units sold: %d", insights.Sales.TotalUnits),
		}
	case src.Feedback != nil:
		insights.Feedback = analyzeFeedback(src.Feedback)
		insights.KeyInsights = []string{
			fmt.Sprintf("Average customer rating: %.1f/5.0", insights.Feedback.AverageRating),
			fmt.Sprintf("Positive feedback: %d responses", insights.Feedback.Sentiments["positive"]),
			fmt.Sprintf("Areas needing attention: %s", insights.Feedback.WeakestCategory),
			fmt.Sprintf("Total feedback collected: %d", insights.Feedback.TotalFeedback),
		}
	case src.Financial != nil:
		insights.Financial = analyzeFinancial(src.Financial)
		trend := "Negative"
		if rev := src.Financial.QuarterlyRevenue; len(rev) > 1 && rev[len(rev)-1] > rev[0] {
			trend = "Positive"
		}
		insights.KeyInsights = []string{
			fmt.Sprintf("Annual profit margin: %.2f%%", insights.Financial.ProfitMargin),
			fmt.Sprintf("Total annual profit: $%d", insights.Financial.AnnualProfit),
			fmt.Sprintf("Revenue growth trend: %s", trend),
		}
	case src.Text != "":
		entities := extract.All(src.Text)
		insights.Entities = &entities

		result, err := d.enhancer.Insights(ctx, src.Text, "business")
		if err != nil {
			return nil, fmt.Errorf("insight generation for %s: %w", src.Name, err)
		}
		insights.KeyInsights = result.Insights
	default:
		return nil, fmt.Errorf("source %s carries no payload", src.Name)
	}

	insights.Recommendations = d.recommend(ctx, src.Name, insights)
	return insights, nil
}

func analyzeSales(rows []SaleRow) *SalesAnalysis {
	a := &SalesAnalysis{ProductRevenue: make(map[string]int)}
	for _, r := range rows {
		a.TotalRevenue += r.Revenue
		a.TotalUnits += r.Units
		a.ProductRevenue[r.Product] += r.Revenue
	}
	if a.TotalUnits > 0 {
		a.AveragePrice = float64(a.TotalRevenue) / float64(a.TotalUnits)
	}

	best, bestRevenue := "", -1
	products := make([]string, 0, len(a.ProductRevenue))
	for p := range a.ProductRevenue {
		products = append(products, p)
	}
	sort.Strings(products)
	for _, p := range products {
		if a.ProductRevenue[p] > bestRevenue {
			best, bestRevenue = p, a.ProductRevenue[p]
		}
	}
	a.BestProduct = best
	return a
}

func analyzeFeedback(entries []FeedbackEntry) *FeedbackAnalysis {
	a := &FeedbackAnalysis{
		Sentiments:      make(map[string]int),
		CategoryRatings: make(map[string]float64),
		TotalFeedback:   len(entries),
	}
	if len(entries) == 0 {
		return a
	}

	categoryTotals := make(map[string]float64)
	categoryCounts := make(map[string]int)
	total := 0.0
	for _, e := range entries {
		total += e.Rating
		a.Sentiments[e.Sentiment]++
		categoryTotals[e.Category] += e.Rating
		categoryCounts[e.Category]++
	}
	a.AverageRating = total / float64(len(entries))

	categories := make([]string, 0, len(categoryTotals))
	for c := range categoryTotals {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	weakest, weakestAvg := "", 6.0
	for _, c := range categories {
		avg := categoryTotals[c] / float64(categoryCounts[c])
		a.CategoryRatings[c] = avg
		if avg < weakestAvg {
			weakest, weakestAvg = c, avg
		}
	}
	a.WeakestCategory = weakest
	return a
}

func analyzeFinancial(data *FinancialData) *FinancialAnalysis {
	a := &FinancialAnalysis{}
	for i, rev := range data.QuarterlyRevenue {
		a.AnnualRevenue += rev
		if i < len(data.Expenses) {
			exp := data.Expenses[i]
			a.AnnualExpenses += exp
			a.QuarterlyProfits = append(a.QuarterlyProfits, rev-exp)
			a.AnnualProfit += rev - exp
		}
	}
	if a.AnnualRevenue > 0 {
		a.ProfitMargin = float64(a.AnnualProfit) / float64(a.AnnualRevenue) * 100
	}
	return a
}

// recommend asks the generative backend for actionable recommendations.
// Without one (local path) there are none, matching the demo's behavior.
func (d *Dashboard) recommend(ctx context.Context, source string, insights *SourceInsights) []string {
	detail, _ := json.MarshalIndent(insights, "", "  ")
	prompt := fmt.Sprintf(`Based on this data analysis for %s:
%s

Provide 3-5 actionable business recommendations, one per line.`, source, detail)

	out, err := d.enhancer.Generate(ctx, prompt)
	if err != nil {
		return nil
	}
	recs := parseLines(out)
	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}

// parseLines keeps lines that look like list items, stripping bullet and
// number prefixes.
func parseLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "-") && !unicode.IsDigit(rune(line[0])) {
			continue
		}
		line = strings.TrimLeft(line, "-*0123456789.) ")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// crossSourceInsights combines every source's key insights into a small
// set of strategic observations. Generative backends draft them; the
// local path reuses the heuristic insight pass over the combined text.
func (d *Dashboard) crossSourceInsights(ctx context.Context, analyses []*SourceInsights) []string {
	var combined []string
	for _, a := range analyses {
		combined = append(combined, a.KeyInsights...)
	}
	if len(combined) == 0 {
		return nil
	}

	prompt := fmt.Sprintf(`Analyze these business insights from multiple data sources and identify
patterns, correlations, and high-level strategic insights:

%s

Provide 5 cross-source strategic insights, one per line.`, strings.Join(combined, "\n"))

	if out, err := d.enhancer.Generate(ctx, prompt); err == nil {
		if parsed := parseLines(out); len(parsed) > 0 {
			if len(parsed) > 5 {
				parsed = parsed[:5]
			}
			return parsed
		}
	}

	result, err := d.enhancer.Insights(ctx, strings.Join(combined, ". "), "strategy")
	if err != nil {
		return nil
	}
	return result.Insights
}
