package models

type Settings struct {
	Notifications bool `json:"notifications"`
	AutoBackup    bool `json:"auto_backup"`
}

// ExportDocument is the single JSON file offered by the data export. There is
// no matching import path; the export is one-way.
type ExportDocument struct {
	Expenses   []Expense  `json:"expenses"`
	Incomes    []Income   `json:"incomes"`
	Goals      []Goal     `json:"goals"`
	Reminders  []Reminder `json:"reminders"`
	Settings   Settings   `json:"settings"`
	ExportedAt string     `json:"exported_at"`
}
