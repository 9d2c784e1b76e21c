package models

type Dashboard struct {
	TotalExpenses   float64 `json:"total_expenses"`
	TotalIncome     float64 `json:"total_income"`
	WeeklySpending  float64 `json:"weekly_spending"`
	MonthlySpending float64 `json:"monthly_spending"`
	MonthlyIncome   float64 `json:"monthly_income"`
	NetWorth        float64 `json:"net_worth"`
	ActiveGoals     int     `json:"active_goals"`
	ActiveReminders int     `json:"active_reminders"`
}
