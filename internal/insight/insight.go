// ABOUTME: Rule-driven insight generation from cross-domain correlations.
// ABOUTME: Rules pair date-aligned series, threshold a Pearson r, and render text.
package insight

import (
	"fmt"
	"math"
	"sort"

	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/stats"
)

// Polarity classifies an insight as good or bad news.
type Polarity string

const (
	Positive Polarity = "positive"
	Negative Polarity = "negative"
)

// Insight is a human-readable observation derived from a correlation.
type Insight struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Polarity Polarity `json:"polarity"`
}

// Window holds the log windows the rules draw series from.
type Window struct {
	Body       []*models.BodyLog
	Mind       []*models.MindLog
	Finance    []*models.FinanceLog
	Discipline []*models.DisciplineDay
}

// Rule describes one cross-domain correlation check. Extract returns a
// pair of equal-length series, one value per date present in both
// domains. Adding a rule here is all it takes to add an insight; the
// evaluation loop never changes.
type Rule struct {
	Name      string
	MinPoints int     // rule stays silent unless both series exceed this
	Threshold float64 // minimum correlation strength to fire
	OneSided  bool    // fire only on r > Threshold, ignoring negative r
	Extract   func(Window) (xs, ys []float64)
	Render    func(r float64) Insight
}

// Rules is the built-in rule table.
var Rules = []Rule{
	{
		Name:      "sleep-focus",
		MinPoints: 5,
		Threshold: 0.4,
		Extract: func(w Window) ([]float64, []float64) {
			return alignByDate(
				bodyDates(w.Body, func(l *models.BodyLog) float64 { return l.SleepHours }),
				mindDates(w.Mind, func(l *models.MindLog) float64 { return float64(l.Focus) }),
			)
		},
		Render: func(r float64) Insight {
			pct := int(math.Round(math.Abs(r) * 100))
			if r > 0 {
				return Insight{
					Title:    "Sleep and focus move together",
					Body:     fmt.Sprintf("On days you sleep more, your focus is higher (%d%% correlation). Protecting your sleep is protecting your attention.", pct),
					Polarity: Positive,
				}
			}
			return Insight{
				Title:    "Sleep and focus are out of step",
				Body:     fmt.Sprintf("More sleep has coincided with lower focus lately (%d%% inverse correlation). Worth watching what else changes on long-sleep days.", pct),
				Polarity: Negative,
			}
		},
	},
	{
		Name:      "debt-anxiety",
		MinPoints: 5,
		Threshold: 0.3,
		OneSided:  true, // falling anxiety alongside rising debt is not an insight
		Extract: func(w Window) ([]float64, []float64) {
			return alignByDate(
				financeDates(w.Finance, func(l *models.FinanceLog) float64 { return l.Debts }),
				mindDates(w.Mind, func(l *models.MindLog) float64 { return float64(l.Anxiety) }),
			)
		},
		Render: func(r float64) Insight {
			pct := int(math.Round(r * 100))
			return Insight{
				Title:    "Debt is weighing on your mind",
				Body:     fmt.Sprintf("Your anxiety rises with your debt level (%d%% correlation). Reducing the balance may pay off twice.", pct),
				Polarity: Negative,
			}
		},
	},
}

// Generate evaluates every rule against the window and returns the
// insights that fire, in table order. Sparse data produces an empty
// slice, never an error.
func Generate(w Window) []Insight {
	insights := []Insight{}
	for _, rule := range Rules {
		xs, ys := rule.Extract(w)
		if len(xs) <= rule.MinPoints {
			continue
		}
		r, ok := stats.Pearson(xs, ys)
		if !ok {
			continue
		}
		if rule.OneSided {
			if r <= rule.Threshold {
				continue
			}
		} else if math.Abs(r) <= rule.Threshold {
			continue
		}
		insights = append(insights, rule.Render(r))
	}
	return insights
}

// alignByDate zips two date-keyed series over their shared dates, in
// date order. Dates logged in only one domain are skipped rather than
// mispairing values positionally.
func alignByDate(a, b map[string]float64) ([]float64, []float64) {
	dates := make([]string, 0, len(a))
	for d := range a {
		if _, ok := b[d]; ok {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates) // lexical order is date order for ISO dates

	xs := make([]float64, 0, len(dates))
	ys := make([]float64, 0, len(dates))
	for _, d := range dates {
		xs = append(xs, a[d])
		ys = append(ys, b[d])
	}
	return xs, ys
}

func bodyDates(logs []*models.BodyLog, f func(*models.BodyLog) float64) map[string]float64 {
	m := make(map[string]float64, len(logs))
	for _, l := range logs {
		m[l.Date] = f(l)
	}
	return m
}

func mindDates(logs []*models.MindLog, f func(*models.MindLog) float64) map[string]float64 {
	m := make(map[string]float64, len(logs))
	for _, l := range logs {
		m[l.Date] = f(l)
	}
	return m
}

func financeDates(logs []*models.FinanceLog, f func(*models.FinanceLog) float64) map[string]float64 {
	m := make(map[string]float64, len(logs))
	for _, l := range logs {
		m[l.Date] = f(l)
	}
	return m
}
