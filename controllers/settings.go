package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"financetrackerapi/models"
	"financetrackerapi/report"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"gopkg.in/gomail.v2"
)

func (api *API) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, api.State.Settings.Get())
}

func (api *API) UpdateSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	api.State.Settings.Set(settings)

	c.JSON(http.StatusOK, settings)
}

// ExportData serializes the four collections plus preferences into one JSON
// document and offers it as a download. Export only; there is no import path.
func (api *API) ExportData(c *gin.Context) {
	doc := api.State.Export(api.Now())

	fileName := fmt.Sprintf("finance-data-%s.json", api.Now().Format(dateFormat))
	c.Header("Content-Disposition", "attachment;filename=\""+fileName+"\"")

	c.IndentedJSON(http.StatusOK, doc)
}

func (api *API) ClearData(c *gin.Context) {
	api.State.ClearData()
	c.JSON(http.StatusOK, genericOK)
}

// SendReminderDigest emails the pending reminders to the profile address.
// Gated on the notifications preference.
func (api *API) SendReminderDigest(c *gin.Context) {
	if !api.State.Settings.Get().Notifications {
		sendError(c, http.StatusBadRequest, "notifications-disabled")
		return
	}

	user := api.State.User.Get()
	if user.Email == "" {
		sendError(c, http.StatusBadRequest, "missing-profile-email")
		return
	}

	now := api.Now()
	var pending []models.Reminder
	for _, r := range api.State.Reminders.Get() {
		if !r.Completed {
			pending = append(pending, r)
		}
	}

	if len(pending) == 0 {
		sendError(c, http.StatusNotFound, "no-pending-reminders")
		return
	}

	if err := sendEmailDigest(user.Email, pending, now); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok", "total": len(pending)})
}

func sendEmailDigest(email string, reminders []models.Reminder, now time.Time) error {
	subject := os.Getenv("EMAIL_DIGEST_SUBJECT")
	if subject == "" {
		subject = "Your pending reminders"
	}
	emailSMTPPort := os.Getenv("EMAIL_SMTP_PORT")
	emailSMTPServer := os.Getenv("EMAIL_SMTP_SERVER")
	emailSMTPUsername := os.Getenv("EMAIL_SMTP_USERNAME")
	emailSMTPPassword := os.Getenv("EMAIL_SMTP_PASSWORD")
	emailFrom := os.Getenv("EMAIL_MESSAGE_FROM")

	body, err := os.ReadFile("./templates/reminder_digest.html")
	if err != nil {
		log.Println(err)
		return err
	}

	var items strings.Builder
	for _, r := range reminders {
		items.WriteString(fmt.Sprintf("<li>%s — %s (%s)</li>", r.Text, r.Date, report.ReminderStatus(r, now)))
	}

	content := strings.ReplaceAll(string(body), "%ITEMS%", items.String())
	content = strings.ReplaceAll(content, "%COUNT%", humanize.Comma(int64(len(reminders))))

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailFrom)
	mailer.SetHeader("To", email)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", content)

	smtpPort, err := strconv.Atoi(emailSMTPPort)
	if err != nil {
		log.Println(err)
		return err
	}

	dialer := gomail.NewDialer(
		emailSMTPServer,
		smtpPort,
		emailSMTPUsername,
		emailSMTPPassword,
	)

	t := time.Now()
	err = dialer.DialAndSend(mailer)
	if err != nil {
		log.Println(err)
	}

	log.Println(time.Since(t))

	return err
}
