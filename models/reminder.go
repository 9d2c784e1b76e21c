package models

type Reminder struct {
	Id        string `json:"id"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type ReminderView struct {
	Reminder
	Status string `json:"status"`
}

type ReminderList struct {
	Reminders []ReminderView `json:"reminders"`
	Pending   int            `json:"pending"`
	Overdue   int            `json:"overdue"`
}

// ReminderUpdate carries a partial update; nil fields are left untouched.
type ReminderUpdate struct {
	Text      *string `json:"text"`
	Date      *string `json:"date"`
	Completed *bool   `json:"completed"`
}
