package models

type ExpenseList struct {
	Expenses []Expense `json:"expenses"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Total    int       `json:"total"`
}

type ExpenseFilter struct {
	Category  string
	Date      string
	MinDate   string
	MaxDate   string
	Amount    float64
	MinAmount float64
	MaxAmount float64
}

type Expense struct {
	Id          string  `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
	ReceiptName string  `json:"receipt_name,omitempty"`
	ReceiptUrl  string  `json:"receipt_url,omitempty"`
}

var ExpenseCategories = []string{"Food", "Groceries", "Medicines", "Bills", "Other"}

type ExpenseReport struct {
	Total         float64         `json:"total"`
	ThisMonth     float64         `json:"this_month"`
	LastWeek      float64         `json:"last_week"`
	LastMonth     float64         `json:"last_month"`
	Breakdown     []CategoryTotal `json:"breakdown"`
	TopCategories []CategoryRank  `json:"top_categories"`
}

type CategoryTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

type CategoryRank struct {
	Name       string  `json:"name"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}
