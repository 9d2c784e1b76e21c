package controllers

import (
	"net/http"

	"financetrackerapi/models"
	"financetrackerapi/report"

	"github.com/gin-gonic/gin"
)

func (api *API) GetDashboard(c *gin.Context) {
	now := api.Now()
	expenses := api.State.Expenses.Get()
	incomes := api.State.Incomes.Get()

	activeGoals := 0
	for _, g := range api.State.Goals.Get() {
		if g.CurrentAmount < g.TargetAmount {
			activeGoals++
		}
	}

	activeReminders := 0
	for _, r := range api.State.Reminders.Get() {
		if !r.Completed {
			activeReminders++
		}
	}

	c.JSON(http.StatusOK, models.Dashboard{
		TotalExpenses:   report.TotalExpenses(expenses),
		TotalIncome:     report.TotalIncome(incomes),
		WeeklySpending:  report.ExpensesSince(expenses, report.LastWeekCutoff(now)),
		MonthlySpending: report.ExpensesSince(expenses, report.LastMonthCutoff(now)),
		MonthlyIncome:   report.MonthlyIncome(incomes, now),
		NetWorth:        report.NetWorth(expenses, incomes),
		ActiveGoals:     activeGoals,
		ActiveReminders: activeReminders,
	})
}
