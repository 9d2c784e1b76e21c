package controllers

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"financetrackerapi/models"
	"financetrackerapi/report"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

func (api *API) GetIncomes(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	order := c.Query("order")
	orderBy := c.Query("order_by")

	amount, _ := strconv.ParseFloat(c.Query("amount"), 64)
	minAmount, _ := strconv.ParseFloat(c.Query("min_amount"), 64)
	maxAmount, _ := strconv.ParseFloat(c.Query("max_amount"), 64)

	filter := models.IncomeFilter{
		Source:    c.Query("source"),
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

	incomes := filterIncomes(api.State.Incomes.Get(), filter)
	sortIncomes(incomes, orderBy, order)

	total := len(incomes)
	incomes = paginate(incomes, page, limit)

	c.JSON(http.StatusOK, models.IncomeList{
		Incomes: incomes,
		Page:    page,
		Limit:   limit,
		Total:   total,
	})
}

func (api *API) CreateIncome(c *gin.Context) {
	var income models.Income
	if err := c.ShouldBindJSON(&income); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	income.Id = uuid.Must(uuid.NewV4()).String()

	if err := validateIncome(&income); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	api.State.AppendIncome(income)

	c.JSON(http.StatusOK, income)
}

func (api *API) DeleteIncome(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-id")
		return
	}

	api.State.RemoveIncome(id)

	c.JSON(http.StatusOK, genericOK)
}

func (api *API) GetIncomesReport(c *gin.Context) {
	now := api.Now()
	incomes := api.State.Incomes.Get()

	c.JSON(http.StatusOK, models.IncomeReport{
		Total:     report.TotalIncome(incomes),
		ThisMonth: report.MonthlyIncome(incomes, now),
		Breakdown: report.SourceBreakdown(incomes),
	})
}

func filterIncomes(incomes []models.Income, filter models.IncomeFilter) []models.Income {
	out := []models.Income{}
	for _, in := range incomes {
		if filter.Source != "" && in.Source != filter.Source {
			continue
		}
		if filter.Date != "" && in.Date != filter.Date {
			continue
		}
		if filter.MinDate != "" && in.Date < filter.MinDate {
			continue
		}
		if filter.MaxDate != "" && in.Date > filter.MaxDate {
			continue
		}
		if filter.Amount != 0 && in.Amount != filter.Amount {
			continue
		}
		if filter.MinAmount != 0 && in.Amount < filter.MinAmount {
			continue
		}
		if filter.MaxAmount != 0 && in.Amount > filter.MaxAmount {
			continue
		}
		out = append(out, in)
	}
	return out
}

func sortIncomes(incomes []models.Income, orderBy, order string) {
	less := func(a, b models.Income) bool { return a.Date < b.Date }

	switch orderBy {
	case "amount":
		less = func(a, b models.Income) bool { return a.Amount < b.Amount }
	case "source":
		less = func(a, b models.Income) bool { return a.Source < b.Source }
	}

	sort.SliceStable(incomes, func(i, j int) bool {
		if order == "ASC" {
			return less(incomes[i], incomes[j])
		}
		return less(incomes[j], incomes[i])
	})
}

func validateIncome(income *models.Income) error {

	if income.Source == "" {
		return errors.New("missing-source")
	}

	if income.Date == "" {
		return errors.New("missing-date")
	}

	if income.Amount <= 0 {
		return errors.New("missing-amount")
	}

	valid := false
	for _, src := range models.IncomeSources {
		if income.Source == src {
			valid = true
			break
		}
	}
	if !valid {
		return errors.New("invalid-source")
	}

	if _, err := time.Parse(dateFormat, income.Date); err != nil {
		return errors.New("invalid-date(yyyy-mm-dd)")
	}

	// frequency travels with is_recurring, never alone
	if income.IsRecurring {
		if income.Frequency == "" {
			return errors.New("missing-frequency")
		}
		valid = false
		for _, freq := range models.IncomeFrequencies {
			if income.Frequency == freq {
				valid = true
				break
			}
		}
		if !valid {
			return errors.New("invalid-frequency")
		}
	} else if income.Frequency != "" {
		return errors.New("frequency-requires-recurring")
	}

	return nil
}
