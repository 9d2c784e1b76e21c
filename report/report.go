// Package report computes dashboard figures from collection snapshots.
// Everything here is re-derived from scratch on each call; the collections
// are small enough that incremental maintenance would buy nothing.
package report

import (
	"math"
	"sort"
	"time"

	"financetrackerapi/models"
)

var dateFormat = "2006-01-02"

func TotalExpenses(expenses []models.Expense) (total float64) {
	for _, e := range expenses {
		total += e.Amount
	}
	return
}

func TotalIncome(incomes []models.Income) (total float64) {
	for _, in := range incomes {
		total += in.Amount
	}
	return
}

// NetWorth is the one signed figure in the app.
func NetWorth(expenses []models.Expense, incomes []models.Income) float64 {
	return TotalIncome(incomes) - TotalExpenses(expenses)
}

// MonthlyExpenses sums records whose date carries the current year-month
// prefix.
func MonthlyExpenses(expenses []models.Expense, now time.Time) (total float64) {
	prefix := now.Format("2006-01")
	for _, e := range expenses {
		if len(e.Date) >= len(prefix) && e.Date[:len(prefix)] == prefix {
			total += e.Amount
		}
	}
	return
}

func MonthlyIncome(incomes []models.Income, now time.Time) (total float64) {
	prefix := now.Format("2006-01")
	for _, in := range incomes {
		if len(in.Date) >= len(prefix) && in.Date[:len(prefix)] == prefix {
			total += in.Amount
		}
	}
	return
}

// ExpensesSince sums records dated on or after cutoff. Unparseable dates are
// treated as outside every window.
func ExpensesSince(expenses []models.Expense, cutoff time.Time) (total float64) {
	for _, e := range expenses {
		date, err := time.Parse(dateFormat, e.Date)
		if err != nil {
			continue
		}
		if !date.Before(cutoff) {
			total += e.Amount
		}
	}
	return
}

// LastWeekCutoff is now minus seven days; LastMonthCutoff is the same
// day-of-month one calendar month back.
func LastWeekCutoff(now time.Time) time.Time {
	return midnight(now).AddDate(0, 0, -7)
}

func LastMonthCutoff(now time.Time) time.Time {
	return midnight(now).AddDate(0, -1, 0)
}

// CategoryBreakdown maps expense categories to summed amounts, keeping the
// first-encounter order of labels. Labels that never appear are absent, not
// zero-valued.
func CategoryBreakdown(expenses []models.Expense) []models.CategoryTotal {
	index := map[string]int{}
	var out []models.CategoryTotal
	for _, e := range expenses {
		if i, ok := index[e.Category]; ok {
			out[i].Total += e.Amount
			continue
		}
		index[e.Category] = len(out)
		out = append(out, models.CategoryTotal{Name: e.Category, Total: e.Amount})
	}
	return out
}

func SourceBreakdown(incomes []models.Income) []models.CategoryTotal {
	index := map[string]int{}
	var out []models.CategoryTotal
	for _, in := range incomes {
		if i, ok := index[in.Source]; ok {
			out[i].Total += in.Amount
			continue
		}
		index[in.Source] = len(out)
		out = append(out, models.CategoryTotal{Name: in.Source, Total: in.Amount})
	}
	return out
}

// TopCategories ranks breakdown entries by amount descending, ties broken by
// first-encounter order. Percentages are of the breakdown total, rounded to
// one decimal.
func TopCategories(breakdown []models.CategoryTotal, n int) []models.CategoryRank {
	var total float64
	for _, b := range breakdown {
		total += b.Total
	}

	sorted := make([]models.CategoryTotal, len(breakdown))
	copy(sorted, breakdown)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Total > sorted[j].Total })

	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}

	out := make([]models.CategoryRank, 0, len(sorted))
	for _, b := range sorted {
		var pct float64
		if total > 0 {
			pct = math.Round(b.Total/total*1000) / 10
		}
		out = append(out, models.CategoryRank{Name: b.Name, Total: b.Total, Percentage: pct})
	}
	return out
}

// GoalProgress is percent of target reached.
func GoalProgress(g models.Goal) float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

// DaysUntil counts calendar days from now to the given date with time-of-day
// zeroed; negative when the date has passed. An unparseable date counts as
// long past.
func DaysUntil(dateStr string, now time.Time) int {
	date, err := time.Parse(dateFormat, dateStr)
	if err != nil {
		return math.MinInt32
	}
	return int(math.Ceil(date.Sub(midnight(now)).Hours() / 24))
}

// GoalStatus classifies a goal; first match wins.
func GoalStatus(g models.Goal, now time.Time) string {
	progress := GoalProgress(g)
	daysLeft := DaysUntil(g.Deadline, now)

	switch {
	case progress >= 100:
		return "completed"
	case daysLeft < 0:
		return "overdue"
	case daysLeft <= 7:
		return "urgent"
	case progress >= 75:
		return "on-track"
	case progress >= 50:
		return "making-progress"
	default:
		return "behind"
	}
}

// ReminderStatus classifies a reminder; completed overrides the date.
func ReminderStatus(r models.Reminder, now time.Time) string {
	if r.Completed {
		return "completed"
	}

	days := DaysUntil(r.Date, now)
	switch {
	case days < 0:
		return "overdue"
	case days == 0:
		return "today"
	case days <= 7:
		return "upcoming"
	default:
		return "future"
	}
}

// BuildChatContext assembles the full snapshot handed to the advice
// collaborator.
func BuildChatContext(expenses []models.Expense, incomes []models.Income, goals []models.Goal, reminders []models.Reminder, now time.Time) models.ChatContext {
	ctx := models.ChatContext{
		TotalIncome:     TotalIncome(incomes),
		TotalExpenses:   TotalExpenses(expenses),
		MonthlyIncome:   MonthlyIncome(incomes, now),
		MonthlyExpenses: MonthlyExpenses(expenses, now),
		ByCategory:      map[string]float64{},
	}
	ctx.NetWorth = ctx.TotalIncome - ctx.TotalExpenses

	for _, b := range CategoryBreakdown(expenses) {
		ctx.ByCategory[b.Name] = b.Total
	}

	for _, g := range goals {
		if g.CurrentAmount >= g.TargetAmount {
			continue
		}
		ctx.ActiveGoals++
		if days := DaysUntil(g.Deadline, now); days > 0 && days <= 30 {
			ctx.UpcomingGoals = append(ctx.UpcomingGoals, g)
		}
	}

	for _, r := range reminders {
		if !r.Completed {
			ctx.ActiveReminders++
		}
	}

	recent := expenses
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	ctx.RecentExpenses = append([]models.Expense{}, recent...)

	return ctx
}

// midnight maps t to its calendar date at 00:00 UTC, matching the zone that
// record dates parse into.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
