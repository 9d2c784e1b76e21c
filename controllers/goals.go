package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"financetrackerapi/models"
	"financetrackerapi/report"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

func (api *API) GetGoals(c *gin.Context) {
	now := api.Now()
	goals := api.State.Goals.Get()

	views := make([]models.GoalView, 0, len(goals))
	completed := 0
	for _, g := range goals {
		status := report.GoalStatus(g, now)
		if status == "completed" {
			completed++
		}
		views = append(views, models.GoalView{
			Goal:     g,
			Progress: report.GoalProgress(g),
			DaysLeft: report.DaysUntil(g.Deadline, now),
			Status:   status,
		})
	}

	c.JSON(http.StatusOK, models.GoalList{
		Goals:     views,
		Total:     len(goals),
		Completed: completed,
	})
}

func (api *API) CreateGoal(c *gin.Context) {
	var goal models.Goal
	if err := c.ShouldBindJSON(&goal); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	goal.Id = uuid.Must(uuid.NewV4()).String()
	// progress only ever grows through contributions
	goal.CurrentAmount = 0

	if err := validateGoal(&goal); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	api.State.AppendGoal(goal)

	c.JSON(http.StatusOK, goal)
}

func (api *API) DeleteGoal(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-id")
		return
	}

	api.State.RemoveGoal(id)

	c.JSON(http.StatusOK, genericOK)
}

// ContributeGoal adds progress toward a goal. Contributions beyond the
// remaining gap are clamped to the target, not rejected.
func (api *API) ContributeGoal(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-id")
		return
	}

	var req models.ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Amount <= 0 {
		sendError(c, http.StatusBadRequest, "missing-amount")
		return
	}

	goal, found := api.State.ContributeGoal(id, req.Amount)
	if !found {
		sendError(c, http.StatusNotFound, "goal-not-found")
		return
	}

	now := api.Now()
	c.JSON(http.StatusOK, models.GoalView{
		Goal:     goal,
		Progress: report.GoalProgress(goal),
		DaysLeft: report.DaysUntil(goal.Deadline, now),
		Status:   report.GoalStatus(goal, now),
	})
}

func validateGoal(goal *models.Goal) error {

	if goal.Name == "" {
		return errors.New("missing-name")
	}

	if goal.TargetAmount <= 0 {
		return errors.New("missing-target-amount")
	}

	if goal.Deadline == "" {
		return errors.New("missing-deadline")
	}

	if _, err := time.Parse(dateFormat, goal.Deadline); err != nil {
		return errors.New("invalid-deadline(yyyy-mm-dd)")
	}

	return nil
}
