// ABOUTME: Pure scoring functions mapping latest logs to 0-100 domain scores.
// ABOUTME: Absent domains score 0; every result is clamped to [0,100].
package score

import (
	"math"

	"github.com/harperreed/lifedash/internal/models"
)

// Normalize5to100 maps a value on the 0-5 scale to 0-100, rounded and
// clamped. This is the shared primitive behind the body and mind scores.
func Normalize5to100(x float64) int {
	return clamp(int(math.Round(x / 5 * 100)))
}

// Body scores the most recent body log. A completed training session
// counts as a full 5 on the third component.
func Body(l *models.BodyLog) int {
	if l == nil {
		return 0
	}
	training := 0.0
	if l.TrainingDone {
		training = 5
	}
	return Normalize5to100((float64(l.SleepQuality) + float64(l.EnergyLevel) + training) / 3)
}

// Mind scores the most recent mind log. Anxiety and stress are
// inverted so that lower raw values contribute higher wellness.
func Mind(l *models.MindLog) int {
	if l == nil {
		return 0
	}
	sum := float64(l.Mood) + float64(6-l.Anxiety) + float64(6-l.Stress) + float64(l.Focus)
	return Normalize5to100(sum / 4)
}

// FinancialPressure is debts as a percentage of income, capped at 100.
// A zero income substitutes denominator 1 so pressure stays finite.
func FinancialPressure(l *models.FinanceLog) int {
	if l == nil {
		return 0
	}
	income := math.Max(l.Income, 1)
	pressure := int(math.Round(l.Debts / income * 100))
	if pressure > 100 {
		return 100
	}
	return pressure
}

// Finance scores the most recent finance log as the inverse of
// financial pressure.
func Finance(l *models.FinanceLog) int {
	if l == nil {
		return 0
	}
	return 100 - FinancialPressure(l)
}

// Discipline scores the most recent day's aggregate. Calibrated so
// 240 minutes of focused work yields a perfect 100.
func Discipline(day *models.DisciplineDay) int {
	if day == nil {
		return 0
	}
	s := int(math.Round(float64(day.TotalMinutes) / 2.4))
	if s > 100 {
		return 100
	}
	return s
}

// Overall averages the four domain scores. Domains with no data have
// already contributed 0 -- no data earns no credit.
func Overall(body, mind, finance, discipline int) int {
	return clamp(int(math.Round(float64(body+mind+finance+discipline) / 4)))
}

func clamp(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
