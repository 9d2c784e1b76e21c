package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"financetrackerapi/models"
	"financetrackerapi/report"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

func (api *API) GetExpenses(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	order := c.Query("order")
	orderBy := c.Query("order_by")

	amount, _ := strconv.ParseFloat(c.Query("amount"), 64)
	minAmount, _ := strconv.ParseFloat(c.Query("min_amount"), 64)
	maxAmount, _ := strconv.ParseFloat(c.Query("max_amount"), 64)

	asExcel, _ := strconv.ParseBool(c.Query("export_as_excel"))

	filter := models.ExpenseFilter{
		Category:  c.Query("category"),
		Date:      c.Query("date"),
		MinDate:   c.Query("min_date"),
		MaxDate:   c.Query("max_date"),
		Amount:    amount,
		MinAmount: minAmount,
		MaxAmount: maxAmount,
	}

	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = 20
	}

	if strings.ToUpper(order) != "ASC" {
		order = "DESC"
	}

	expenses := filterExpenses(api.State.Expenses.Get(), filter)
	sortExpenses(expenses, orderBy, order)

	if asExcel {
		handleExcelExpenses(c, expenses)
		return
	}

	total := len(expenses)
	expenses = paginate(expenses, page, limit)

	c.JSON(http.StatusOK, models.ExpenseList{
		Expenses: expenses,
		Page:     page,
		Limit:    limit,
		Total:    total,
	})
}

func (api *API) CreateExpense(c *gin.Context) {
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	expense.Id = uuid.Must(uuid.NewV4()).String()

	if err := validateExpense(&expense); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	api.State.AppendExpense(expense)

	c.JSON(http.StatusOK, expense)
}

func (api *API) DeleteExpense(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-id")
		return
	}

	api.State.RemoveExpense(id)

	c.JSON(http.StatusOK, genericOK)
}

func (api *API) GetExpensesReport(c *gin.Context) {
	now := api.Now()
	expenses := api.State.Expenses.Get()

	breakdown := report.CategoryBreakdown(expenses)

	topN, _ := strconv.Atoi(c.Query("top"))

	c.JSON(http.StatusOK, models.ExpenseReport{
		Total:         report.TotalExpenses(expenses),
		ThisMonth:     report.MonthlyExpenses(expenses, now),
		LastWeek:      report.ExpensesSince(expenses, report.LastWeekCutoff(now)),
		LastMonth:     report.ExpensesSince(expenses, report.LastMonthCutoff(now)),
		Breakdown:     breakdown,
		TopCategories: report.TopCategories(breakdown, topN),
	})
}

func filterExpenses(expenses []models.Expense, filter models.ExpenseFilter) []models.Expense {
	out := []models.Expense{}
	for _, e := range expenses {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.Date != "" && e.Date != filter.Date {
			continue
		}
		if filter.MinDate != "" && e.Date < filter.MinDate {
			continue
		}
		if filter.MaxDate != "" && e.Date > filter.MaxDate {
			continue
		}
		if filter.Amount != 0 && e.Amount != filter.Amount {
			continue
		}
		if filter.MinAmount != 0 && e.Amount < filter.MinAmount {
			continue
		}
		if filter.MaxAmount != 0 && e.Amount > filter.MaxAmount {
			continue
		}
		out = append(out, e)
	}
	return out
}

func sortExpenses(expenses []models.Expense, orderBy, order string) {
	less := func(a, b models.Expense) bool { return a.Date < b.Date }

	switch orderBy {
	case "amount":
		less = func(a, b models.Expense) bool { return a.Amount < b.Amount }
	case "category":
		less = func(a, b models.Expense) bool { return a.Category < b.Category }
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		if order == "ASC" {
			return less(expenses[i], expenses[j])
		}
		return less(expenses[j], expenses[i])
	})
}

func paginate[T any](items []T, page, limit int) []T {
	offset := (page - 1) * limit
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func validateExpense(expense *models.Expense) error {

	if expense.Category == "" {
		return errors.New("missing-category")
	}

	if expense.Date == "" {
		return errors.New("missing-date")
	}

	if expense.Amount <= 0 {
		return errors.New("missing-amount")
	}

	valid := false
	for _, cat := range models.ExpenseCategories {
		if expense.Category == cat {
			valid = true
			break
		}
	}
	if !valid {
		return errors.New("invalid-category")
	}

	date, err := time.Parse(dateFormat, expense.Date)
	if err != nil {
		return errors.New("invalid-date(yyyy-mm-dd)")
	}

	if date.After(time.Now()) {
		return errors.New("date-shall-be-a-past-date")
	}

	return nil
}

func handleExcelExpenses(c *gin.Context, expenses []models.Expense) {
	if len(expenses) == 0 {
		sendError(c, http.StatusNotFound, "expenses-not-found")
		return
	}

	f := excelize.NewFile()

	sheet := "List Expenses"
	f.NewSheet(sheet)
	// delete default sheet
	f.DeleteSheet("Sheet1")

	err := f.SetColWidth(sheet, "A", "D", 50)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	headerStyle, err := f.NewStyle(s1)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	dataStyle, err := f.NewStyle(s2)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	streamWriter, err := f.NewStreamWriter(sheet)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err = streamWriter.SetRow("A1", []interface{}{
		excelize.Cell{StyleID: headerStyle, Value: "Category"},
		excelize.Cell{StyleID: headerStyle, Value: "Description"},
		excelize.Cell{StyleID: headerStyle, Value: "Amount"},
		excelize.Cell{StyleID: headerStyle, Value: "Date"}}); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	for n, expense := range expenses {
		amountFormatted := fmt.Sprintf("₹%s", humanize.Commaf(expense.Amount))

		row := make([]interface{}, 4)
		row[0] = excelize.Cell{StyleID: dataStyle, Value: expense.Category}
		row[1] = excelize.Cell{StyleID: dataStyle, Value: expense.Description}
		row[2] = excelize.Cell{StyleID: dataStyle, Value: amountFormatted}
		row[3] = excelize.Cell{StyleID: dataStyle, Value: expense.Date}

		cell, _ := excelize.CoordinatesToCellName(1, n+2)
		if err = streamWriter.SetRow(cell, row); err != nil {
			sendError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	if err := streamWriter.Flush(); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	fileName := fmt.Sprintf("report_expenses_%s.xlsx", time.Now().Format("20060102_150405"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment;filename=\""+fileName+"\"")

	if _, err := f.WriteTo(c.Writer); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

}
