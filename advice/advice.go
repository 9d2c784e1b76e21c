// Package advice talks to the hosted advice endpoint and carries the
// scripted fallback used whenever that call is absent or fails. The fallback
// is the guaranteed terminal case: it never fails and never returns an empty
// string.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"financetrackerapi/models"

	"github.com/dustin/go-humanize"
)

type Client struct {
	Endpoint   string
	HTTPClient *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		Endpoint: endpoint,
		// the core flow has no deadline of its own; the client timeout is a
		// defensive bound on the external call
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Advise sends {message, context} to the hosted endpoint and returns its
// response text. Callers fall back to Fallback on any returned error.
func (c *Client) Advise(ctx context.Context, message string, snapshot models.ChatContext) (string, error) {
	if c.Endpoint == "" {
		return "", errors.New("missing-advice-endpoint")
	}

	body, err := json.Marshal(models.AdviceRequest{Message: message, Context: snapshot})
	if err != nil {
		log.Println(err)
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		log.Println(err)
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Println(err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("advice-endpoint-status-%d", resp.StatusCode)
	}

	var out models.AdviceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Println(err)
		return "", err
	}

	if out.Response == "" {
		return "", errors.New("empty-advice-response")
	}

	return out.Response, nil
}

// Fallback pattern-matches keywords in the message against the snapshot and
// returns a templated multi-line answer; unmatched messages get the generic
// overview.
func Fallback(message string, ctx models.ChatContext) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "budget") || strings.Contains(lower, "spending"):
		return budgetAdvice(ctx)
	case strings.Contains(lower, "goal") || strings.Contains(lower, "save"):
		return goalAdvice(ctx)
	case strings.Contains(lower, "expense") || strings.Contains(lower, "cost"):
		return expenseAdvice(ctx)
	case strings.Contains(lower, "income") || strings.Contains(lower, "earn"):
		return incomeAdvice(ctx)
	default:
		return overview(ctx)
	}
}

func budgetAdvice(ctx models.ChatContext) string {
	if ctx.MonthlyExpenses > ctx.MonthlyIncome {
		over := ctx.MonthlyExpenses - ctx.MonthlyIncome
		msg := fmt.Sprintf("I notice you're spending %s this month but only earned %s. You're overspending by %s.\n\nHere are some suggestions:",
			money(ctx.MonthlyExpenses), money(ctx.MonthlyIncome), money(over))
		if name, amount, ok := topCategory(ctx.ByCategory); ok {
			msg += fmt.Sprintf("\n- Review your %s expenses (%s), your highest category", name, money(amount))
		}
		msg += "\n- Set a monthly budget limit for each category" +
			"\n- Consider the 50/30/20 rule: 50% needs, 30% wants, 20% savings"
		return msg
	}

	surplus := ctx.MonthlyIncome - ctx.MonthlyExpenses
	return fmt.Sprintf("Great job! You're managing your budget well this month. You've spent %s and earned %s, leaving you with a %s surplus.\n\nConsider:\n- Investing the surplus in your goals\n- Building an emergency fund (3-6 months of expenses)\n- Reviewing if you can optimize any expense categories",
		money(ctx.MonthlyExpenses), money(ctx.MonthlyIncome), money(surplus))
}

func goalAdvice(ctx models.ChatContext) string {
	if ctx.ActiveGoals > 0 {
		msg := fmt.Sprintf("You have %d active savings goals.", ctx.ActiveGoals)
		if n := len(ctx.UpcomingGoals); n > 0 {
			msg += fmt.Sprintf(" %d goals have deadlines within 30 days.", n)
		}
		surplus := ctx.MonthlyIncome - ctx.MonthlyExpenses
		if surplus < 0 {
			surplus = 0
		}
		msg += fmt.Sprintf("\n\nTips for achieving your goals:\n- Automate savings with scheduled transfers\n- Put your budget surplus (%s) toward goals\n- Pay yourself first\n- Break large goals into smaller milestones", money(surplus))
		return msg
	}

	return fmt.Sprintf("I don't see any active savings goals. Setting financial goals is crucial for building wealth!\n\nConsider setting goals for:\n- Emergency fund (3-6 months of expenses: %s - %s)\n- Vacation or major purchase\n- Retirement savings\n- Investment portfolio",
		money(ctx.MonthlyExpenses*3), money(ctx.MonthlyExpenses*6))
}

func expenseAdvice(ctx models.ChatContext) string {
	msg := fmt.Sprintf("Your expense analysis:\n\nTotal expenses: %s\nThis month: %s",
		money(ctx.TotalExpenses), money(ctx.MonthlyExpenses))

	if name, amount, ok := topCategory(ctx.ByCategory); ok {
		msg += fmt.Sprintf("\nTop category: %s (%s)", name, money(amount))
	}

	if len(ctx.RecentExpenses) > 0 {
		msg += "\n\nRecent expenses:"
		for _, e := range ctx.RecentExpenses {
			desc := e.Description
			if desc == "" {
				desc = "No description"
			}
			msg += fmt.Sprintf("\n- %s: %s - %s", e.Category, money(e.Amount), desc)
		}
	}

	msg += "\n\nConsider tracking patterns and setting category-wise budgets to optimize spending."
	return msg
}

func incomeAdvice(ctx models.ChatContext) string {
	msg := fmt.Sprintf("Your income overview:\n\nTotal income: %s\nThis month: %s\nNet worth: %s\n\n",
		money(ctx.TotalIncome), money(ctx.MonthlyIncome), money(ctx.NetWorth))

	if ctx.NetWorth > 0 {
		msg += "Positive net worth - great job!"
	} else {
		msg += "Consider increasing income or reducing expenses to improve your financial position."
	}

	msg += "\n\nWays to boost income:\n- Freelancing or side hustles\n- Skill development for promotions\n- Passive income streams\n- Investment returns"
	return msg
}

func overview(ctx models.ChatContext) string {
	return fmt.Sprintf("I'm your financial assistant! I can help you with budget analysis, income optimization, goal planning and expense management.\n\nYour current snapshot:\n- Total Income: %s\n- Total Expenses: %s\n- Net Position: %s\n- Active Goals: %d\n- Pending Reminders: %d\n\nWhat would you like to discuss about your finances?",
		money(ctx.TotalIncome), money(ctx.TotalExpenses), money(ctx.NetWorth), ctx.ActiveGoals, ctx.ActiveReminders)
}

// topCategory picks the highest-amount category; ties go to whichever label
// sorts first so the answer stays deterministic.
func topCategory(byCategory map[string]float64) (string, float64, bool) {
	var name string
	var amount float64
	for cat, amt := range byCategory {
		if amt > amount || (amt == amount && (name == "" || cat < name)) {
			name = cat
			amount = amt
		}
	}
	return name, amount, name != ""
}

func money(v float64) string {
	return "₹" + humanize.Commaf(v)
}
