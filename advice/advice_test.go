package advice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"financetrackerapi/models"

	"gotest.tools/assert"
)

func sampleContext() models.ChatContext {
	return models.ChatContext{
		TotalIncome:     5000,
		TotalExpenses:   3000,
		MonthlyIncome:   1000,
		MonthlyExpenses: 1200,
		NetWorth:        2000,
		ActiveGoals:     2,
		ActiveReminders: 1,
		ByCategory:      map[string]float64{"Food": 200, "Bills": 800},
		RecentExpenses: []models.Expense{
			{Category: "Bills", Amount: 800, Description: "electricity"},
		},
	}
}

func TestAdviseSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.AdviceRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, nil, err)
		assert.Equal(t, "how is my budget?", req.Message)
		assert.Equal(t, float64(5000), req.Context.TotalIncome)

		json.NewEncoder(w).Encode(models.AdviceResponse{Response: "looking good"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.Advise(context.Background(), "how is my budget?", sampleContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, "looking good", got)
}

func TestAdviseNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Advise(context.Background(), "hi", sampleContext())
	assert.Equal(t, "advice-endpoint-status-502", err.Error())
}

func TestAdviseNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL)
	_, err := c.Advise(context.Background(), "hi", sampleContext())
	assert.Assert(t, err != nil)
}

func TestAdviseMissingEndpoint(t *testing.T) {
	c := NewClient("")
	_, err := c.Advise(context.Background(), "hi", sampleContext())
	assert.Equal(t, "missing-advice-endpoint", err.Error())
}

func TestFallbackNeverEmpty(t *testing.T) {
	messages := []string{
		"How is my budget this month?",
		"What is my spending like?",
		"Am I on track with my goals?",
		"How can I save more?",
		"What are my biggest expenses?",
		"What does this cost me?",
		"How much do I earn?",
		"Tell me about my income",
		"hello there",
		"",
	}

	for _, msg := range messages {
		got := Fallback(msg, sampleContext())
		assert.Assert(t, got != "", "empty fallback for %q", msg)
	}

	// empty snapshot still answers
	got := Fallback("anything at all", models.ChatContext{})
	assert.Assert(t, got != "")
}

func TestFallbackBudgetOverspend(t *testing.T) {
	got := Fallback("how is my budget?", sampleContext())
	assert.Assert(t, strings.Contains(got, "overspending"))
	assert.Assert(t, strings.Contains(got, "Bills"))
}

func TestFallbackBudgetSurplus(t *testing.T) {
	ctx := sampleContext()
	ctx.MonthlyExpenses = 400
	got := Fallback("my spending", ctx)
	assert.Assert(t, strings.Contains(got, "surplus"))
}

func TestFallbackGoalsWithoutGoals(t *testing.T) {
	ctx := sampleContext()
	ctx.ActiveGoals = 0
	got := Fallback("help me save", ctx)
	assert.Assert(t, strings.Contains(got, "don't see any active savings goals"))
}

func TestFallbackGenericOverview(t *testing.T) {
	got := Fallback("what can you do?", sampleContext())
	assert.Assert(t, strings.Contains(got, "Active Goals: 2"))
	assert.Assert(t, strings.Contains(got, "Pending Reminders: 1"))
}

func TestFallbackDeterministic(t *testing.T) {
	ctx := sampleContext()
	assert.Equal(t, Fallback("budget", ctx), Fallback("budget", ctx))
}
