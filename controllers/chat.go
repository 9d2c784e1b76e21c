package controllers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"financetrackerapi/advice"
	"financetrackerapi/models"
	"financetrackerapi/report"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

// one outstanding advice request per conversation
var chatBusy sync.Mutex

func (api *API) GetChatMessages(c *gin.Context) {
	c.JSON(http.StatusOK, models.ChatList{Messages: api.State.Chat.Get()})
}

func (api *API) SendChatMessage(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Message == "" {
		sendError(c, http.StatusBadRequest, "missing-message")
		return
	}

	if !chatBusy.TryLock() {
		sendError(c, http.StatusTooManyRequests, "chat-request-pending")
		return
	}
	defer chatBusy.Unlock()

	now := api.Now()
	snapshot := report.BuildChatContext(
		api.State.Expenses.Get(),
		api.State.Incomes.Get(),
		api.State.Goals.Get(),
		api.State.Reminders.Get(),
		now,
	)

	api.State.AppendChatMessage(models.ChatMessage{
		Id:        uuid.Must(uuid.NewV4()).String(),
		Role:      "user",
		Content:   req.Message,
		Timestamp: now.UTC().Format(time.RFC3339),
	})

	// the scripted fallback masks every failure of the hosted endpoint; this
	// path never surfaces an error to the user
	answer, err := api.Advice.Advise(c.Request.Context(), req.Message, snapshot)
	if err != nil {
		log.Println(err)
		answer = advice.Fallback(req.Message, snapshot)
	}

	reply := models.ChatMessage{
		Id:        uuid.Must(uuid.NewV4()).String(),
		Role:      "assistant",
		Content:   answer,
		Timestamp: api.Now().UTC().Format(time.RFC3339),
	}
	api.State.AppendChatMessage(reply)

	c.JSON(http.StatusOK, reply)
}

func (api *API) ClearChat(c *gin.Context) {
	api.State.ClearChat()
	c.JSON(http.StatusOK, genericOK)
}
