package models

type IncomeList struct {
	Incomes []Income `json:"incomes"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	Total   int      `json:"total"`
}

type IncomeFilter struct {
	Source    string
	Date      string
	MinDate   string
	MaxDate   string
	Amount    float64
	MinAmount float64
	MaxAmount float64
}

type Income struct {
	Id          string  `json:"id"`
	Source      string  `json:"source"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
	IsRecurring bool    `json:"is_recurring"`
	Frequency   string  `json:"frequency,omitempty"`
}

var IncomeSources = []string{"Salary", "Freelance", "Business", "Investment", "Other"}

var IncomeFrequencies = []string{"Weekly", "Monthly", "Quarterly", "Yearly"}

type IncomeReport struct {
	Total     float64         `json:"total"`
	ThisMonth float64         `json:"this_month"`
	Breakdown []CategoryTotal `json:"breakdown"`
}
