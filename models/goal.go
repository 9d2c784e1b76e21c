package models

type Goal struct {
	Id            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      string  `json:"deadline"`
}

// GoalView is a goal with its derived progress fields attached for display.
type GoalView struct {
	Goal
	Progress float64 `json:"progress"`
	DaysLeft int     `json:"days_left"`
	Status   string  `json:"status"`
}

type GoalList struct {
	Goals     []GoalView `json:"goals"`
	Total     int        `json:"total"`
	Completed int        `json:"completed"`
}

type ContributeRequest struct {
	Amount float64 `json:"amount"`
}
