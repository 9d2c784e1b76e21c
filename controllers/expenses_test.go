package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"financetrackerapi/models"

	"github.com/gin-gonic/gin"
	"gotest.tools/assert"
)

func TestCreateExpense(t *testing.T) {
	api := newTestAPI(t)

	var genericResp GenericResponse

	// nil request (400)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("POST", "", nil)
	c.Request = req
	api.CreateExpense(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing amount (400)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("POST", "", parsePayload(models.Expense{Category: "Food", Date: "2024-01-05"}))
	c.Request = req
	api.CreateExpense(c)

	err := json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing-amount", genericResp.Message)
	assert.Equal(t, 0, len(api.State.Expenses.Get()))

	// invalid category (400)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("POST", "", parsePayload(models.Expense{Category: "Gadgets", Amount: 10, Date: "2024-01-05"}))
	c.Request = req
	api.CreateExpense(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid-category", genericResp.Message)

	// future date (400)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("POST", "", parsePayload(models.Expense{Category: "Food", Amount: 10, Date: "2999-01-05"}))
	c.Request = req
	api.CreateExpense(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "date-shall-be-a-past-date", genericResp.Message)

	// (200)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("POST", "", parsePayload(models.Expense{Category: "Food", Amount: 200, Date: "2024-01-05", Description: "lunch"}))
	c.Request = req
	api.CreateExpense(c)

	var created models.Expense
	err = json.NewDecoder(w.Body).Decode(&created)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Assert(t, created.Id != "")
	assert.Equal(t, "Food", created.Category)

	stored := api.State.Expenses.Get()
	assert.Equal(t, 1, len(stored))
	assert.Equal(t, created.Id, stored[0].Id)
}

func TestGetExpenses(t *testing.T) {
	api := newTestAPI(t)

	api.State.AppendExpense(models.Expense{Id: "00000000-0000-0000-0000-000000000001", Category: "Food", Amount: 200, Date: "2024-01-05"})
	api.State.AppendExpense(models.Expense{Id: "00000000-0000-0000-0000-000000000002", Category: "Bills", Amount: 800, Date: "2024-01-10"})
	api.State.AppendExpense(models.Expense{Id: "00000000-0000-0000-0000-000000000003", Category: "Food", Amount: 50, Date: "2024-02-01"})

	// default order: most recent first
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "", nil)
	c.Request = req
	api.GetExpenses(c)

	var list models.ExpenseList
	err := json.NewDecoder(w.Body).Decode(&list)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, "2024-02-01", list.Expenses[0].Date)

	// category filter
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("GET", "?category=Food", nil)
	c.Request = req
	api.GetExpenses(c)

	err = json.NewDecoder(w.Body).Decode(&list)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, list.Total)

	// date window + amount bounds
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("GET", "?min_date=2024-01-01&max_date=2024-01-31&min_amount=300", nil)
	c.Request = req
	api.GetExpenses(c)

	err = json.NewDecoder(w.Body).Decode(&list)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "Bills", list.Expenses[0].Category)

	// pagination
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("GET", "?page=2&limit=2&order=ASC", nil)
	c.Request = req
	api.GetExpenses(c)

	err = json.NewDecoder(w.Body).Decode(&list)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, 1, len(list.Expenses))
	assert.Equal(t, 2, list.Page)
}

func TestDeleteExpense(t *testing.T) {
	api := newTestAPI(t)

	id := "00000000-0000-0000-0000-000000000001"
	api.State.AppendExpense(models.Expense{Id: id, Category: "Food", Amount: 10, Date: "2024-01-05"})

	// invalid id (400)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("DELETE", "", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	api.DeleteExpense(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, len(api.State.Expenses.Get()))

	// (200)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("DELETE", "", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id}}
	api.DeleteExpense(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, len(api.State.Expenses.Get()))

	// absent id is a no-op (200)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("DELETE", "", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id}}
	api.DeleteExpense(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetExpensesReport(t *testing.T) {
	api := newTestAPI(t)

	api.State.AppendExpense(models.Expense{Id: "e1", Category: "Food", Amount: 200, Date: "2024-01-05"})
	api.State.AppendExpense(models.Expense{Id: "e2", Category: "Bills", Amount: 800, Date: "2024-01-10"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "?top=1", nil)
	c.Request = req
	api.GetExpensesReport(c)

	var rep models.ExpenseReport
	err := json.NewDecoder(w.Body).Decode(&rep)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1000), rep.Total)
	assert.Equal(t, 2, len(rep.Breakdown))
	assert.Equal(t, 1, len(rep.TopCategories))
	assert.Equal(t, "Bills", rep.TopCategories[0].Name)
	assert.Equal(t, 80.0, rep.TopCategories[0].Percentage)
}

func TestGetExpensesAsExcel(t *testing.T) {
	api := newTestAPI(t)

	// no rows (404)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "?export_as_excel=true", nil)
	c.Request = req
	api.GetExpenses(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	// (200)
	api.State.AppendExpense(models.Expense{Id: "e1", Category: "Food", Amount: 200, Date: "2024-01-05"})

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("GET", "?export_as_excel=true", nil)
	c.Request = req
	api.GetExpenses(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Assert(t, w.Body.Len() > 0)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
}
