package models

type ChatMessage struct {
	Id        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatList struct {
	Messages []ChatMessage `json:"messages"`
}

// ChatContext is the full snapshot handed to the advice collaborator.
type ChatContext struct {
	TotalIncome     float64            `json:"totalIncome"`
	TotalExpenses   float64            `json:"totalExpenses"`
	MonthlyIncome   float64            `json:"monthlyIncome"`
	MonthlyExpenses float64            `json:"monthlyExpenses"`
	NetWorth        float64            `json:"netWorth"`
	ActiveGoals     int                `json:"activeGoals"`
	ActiveReminders int                `json:"activeReminders"`
	ByCategory      map[string]float64 `json:"expensesByCategory"`
	RecentExpenses  []Expense          `json:"recentExpenses"`
	UpcomingGoals   []Goal             `json:"upcomingGoalDeadlines"`
}

type AdviceRequest struct {
	Message string      `json:"message"`
	Context ChatContext `json:"context"`
}

type AdviceResponse struct {
	Response string `json:"response"`
}
