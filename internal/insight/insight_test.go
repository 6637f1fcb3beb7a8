// ABOUTME: Tests for the insight rule table and evaluation loop.
// ABOUTME: Covers firing thresholds, one-sided rules, and date alignment.
package insight

import (
	"fmt"
	"strings"
	"testing"

	"github.com/harperreed/lifedash/internal/models"
)

// risingWindow builds n days where sleep and focus rise together and
// debts and anxiety rise together.
func risingWindow(n int) Window {
	w := Window{}
	for i := 0; i < n; i++ {
		date := fmt.Sprintf("2026-02-%02d", i+1)
		w.Body = append(w.Body, &models.BodyLog{
			Date: date, SleepHours: 5 + float64(i)*0.5, SleepQuality: 3, EnergyLevel: 3, ActivityLevel: 3,
		})
		w.Mind = append(w.Mind, &models.MindLog{
			Date: date, Mood: 3, Anxiety: 1 + i%5, Stress: 3, Focus: 1 + i%5,
		})
		w.Finance = append(w.Finance, &models.FinanceLog{
			Date: date, Income: 3000, Debts: 100 * float64(i+1),
		})
	}
	return w
}

func TestSleepFocusInsightFiresPositive(t *testing.T) {
	w := Window{}
	for i := 0; i < 6; i++ {
		date := fmt.Sprintf("2026-02-%02d", i+1)
		w.Body = append(w.Body, &models.BodyLog{Date: date, SleepHours: 5 + float64(i)})
		// Focus 1,1,2,3,4,5 rises with sleep
		w.Mind = append(w.Mind, &models.MindLog{Date: date, Focus: 1 + i*4/5, Anxiety: 3, Stress: 3, Mood: 3})
	}

	insights := Generate(w)
	var found *Insight
	for i := range insights {
		if strings.Contains(insights[i].Title, "Sleep") {
			found = &insights[i]
		}
	}
	if found == nil {
		t.Fatalf("sleep-focus insight did not fire: %+v", insights)
	}
	if found.Polarity != Positive {
		t.Errorf("polarity = %s, want positive", found.Polarity)
	}
	if !strings.Contains(found.Body, "%") {
		t.Errorf("body does not embed a percentage: %s", found.Body)
	}
}

func TestSleepFocusInsightFiresNegative(t *testing.T) {
	w := Window{}
	for i := 0; i < 6; i++ {
		date := fmt.Sprintf("2026-02-%02d", i+1)
		w.Body = append(w.Body, &models.BodyLog{Date: date, SleepHours: 5 + float64(i)})
		w.Mind = append(w.Mind, &models.MindLog{Date: date, Focus: 5 - i*4/5, Anxiety: 3, Stress: 3, Mood: 3})
	}

	insights := Generate(w)
	var found *Insight
	for i := range insights {
		if strings.Contains(insights[i].Title, "Sleep") || strings.Contains(insights[i].Title, "sleep") {
			found = &insights[i]
		}
	}
	if found == nil {
		t.Fatalf("inverse sleep-focus insight did not fire: %+v", insights)
	}
	if found.Polarity != Negative {
		t.Errorf("polarity = %s, want negative", found.Polarity)
	}
}

func TestDebtAnxietyOneSided(t *testing.T) {
	// Debts rise while anxiety falls: strong negative correlation,
	// which the one-sided rule must ignore.
	w := Window{}
	for i := 0; i < 6; i++ {
		date := fmt.Sprintf("2026-02-%02d", i+1)
		w.Finance = append(w.Finance, &models.FinanceLog{Date: date, Income: 3000, Debts: 100 * float64(i+1)})
		w.Mind = append(w.Mind, &models.MindLog{Date: date, Anxiety: 5 - i*4/5, Focus: 3, Stress: 3, Mood: 3})
	}

	for _, in := range Generate(w) {
		if strings.Contains(in.Title, "Debt") {
			t.Errorf("one-sided debt-anxiety rule fired on negative correlation: %+v", in)
		}
	}
}

func TestDebtAnxietyFires(t *testing.T) {
	w := Window{}
	for i := 0; i < 6; i++ {
		date := fmt.Sprintf("2026-02-%02d", i+1)
		w.Finance = append(w.Finance, &models.FinanceLog{Date: date, Income: 3000, Debts: 100 * float64(i+1)})
		w.Mind = append(w.Mind, &models.MindLog{Date: date, Anxiety: 1 + i*4/5, Focus: 3, Stress: 3, Mood: 3})
	}

	insights := Generate(w)
	found := false
	for _, in := range insights {
		if strings.Contains(in.Title, "Debt") {
			found = true
			if in.Polarity != Negative {
				t.Errorf("debt-anxiety polarity = %s, want negative", in.Polarity)
			}
		}
	}
	if !found {
		t.Errorf("debt-anxiety insight did not fire: %+v", insights)
	}
}

func TestInsufficientDataStaysSilent(t *testing.T) {
	// Five aligned days is not enough; rules need more than MinPoints.
	if got := Generate(risingWindow(5)); len(got) != 0 {
		t.Errorf("expected no insights with 5 days, got %+v", got)
	}

	if got := Generate(Window{}); len(got) != 0 {
		t.Errorf("expected no insights on empty window, got %+v", got)
	}
}

func TestZeroVarianceStaysSilent(t *testing.T) {
	w := Window{}
	for i := 0; i < 8; i++ {
		date := fmt.Sprintf("2026-02-%02d", i+1)
		w.Body = append(w.Body, &models.BodyLog{Date: date, SleepHours: 7})
		w.Mind = append(w.Mind, &models.MindLog{Date: date, Focus: 1 + i%5, Anxiety: 3, Stress: 3, Mood: 3})
	}

	for _, in := range Generate(w) {
		if strings.Contains(strings.ToLower(in.Title), "sleep") {
			t.Errorf("rule fired on zero-variance sleep series: %+v", in)
		}
	}
}

func TestAlignByDateSkipsUnsharedDates(t *testing.T) {
	a := map[string]float64{"2026-02-01": 1, "2026-02-02": 2, "2026-02-04": 4}
	b := map[string]float64{"2026-02-02": 20, "2026-02-03": 30, "2026-02-04": 40}

	xs, ys := alignByDate(a, b)
	if len(xs) != 2 || len(ys) != 2 {
		t.Fatalf("expected 2 aligned points, got %d/%d", len(xs), len(ys))
	}
	if xs[0] != 2 || ys[0] != 20 || xs[1] != 4 || ys[1] != 40 {
		t.Errorf("misaligned pairs: xs=%v ys=%v", xs, ys)
	}
}
