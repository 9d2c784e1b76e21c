package controllers

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"time"

	"financetrackerapi/models"
	"financetrackerapi/report"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

func (api *API) GetReminders(c *gin.Context) {
	now := api.Now()
	reminders := api.State.Reminders.Get()

	// incomplete first, then by date
	sorted := make([]models.Reminder, len(reminders))
	copy(sorted, reminders)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Completed != sorted[j].Completed {
			return !sorted[i].Completed
		}
		return sorted[i].Date < sorted[j].Date
	})

	views := make([]models.ReminderView, 0, len(sorted))
	pending, overdue := 0, 0
	for _, r := range sorted {
		status := report.ReminderStatus(r, now)
		if !r.Completed {
			pending++
		}
		if status == "overdue" {
			overdue++
		}
		views = append(views, models.ReminderView{Reminder: r, Status: status})
	}

	c.JSON(http.StatusOK, models.ReminderList{
		Reminders: views,
		Pending:   pending,
		Overdue:   overdue,
	})
}

func (api *API) CreateReminder(c *gin.Context) {
	var reminder models.Reminder
	if err := c.ShouldBindJSON(&reminder); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	reminder.Id = uuid.Must(uuid.NewV4()).String()
	reminder.Completed = false

	if err := validateReminder(&reminder); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	api.State.AppendReminder(reminder)

	c.JSON(http.StatusOK, reminder)
}

// UpdateReminder merges the provided fields, most commonly toggling the
// completed flag.
func (api *API) UpdateReminder(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-id")
		return
	}

	var upd models.ReminderUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if upd.Text != nil && *upd.Text == "" {
		sendError(c, http.StatusBadRequest, "missing-text")
		return
	}

	if upd.Date != nil {
		if _, err := time.Parse(dateFormat, *upd.Date); err != nil {
			sendError(c, http.StatusBadRequest, "invalid-date(yyyy-mm-dd)")
			return
		}
	}

	reminder, found := api.State.UpdateReminder(id, upd)
	if !found {
		sendError(c, http.StatusNotFound, "reminder-not-found")
		return
	}

	c.JSON(http.StatusOK, models.ReminderView{
		Reminder: reminder,
		Status:   report.ReminderStatus(reminder, api.Now()),
	})
}

func (api *API) DeleteReminder(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.FromString(id); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-id")
		return
	}

	api.State.RemoveReminder(id)

	c.JSON(http.StatusOK, genericOK)
}

func validateReminder(reminder *models.Reminder) error {

	if reminder.Text == "" {
		return errors.New("missing-text")
	}

	if reminder.Date == "" {
		return errors.New("missing-date")
	}

	if _, err := time.Parse(dateFormat, reminder.Date); err != nil {
		return errors.New("invalid-date(yyyy-mm-dd)")
	}

	return nil
}
