package controllers

import (
	"encoding/json"
	"log"
	"time"

	"financetrackerapi/advice"
	"financetrackerapi/models"
	"financetrackerapi/state"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

var (
	dateFormat = "2006-01-02"
	s1         = `
	{
		"border": [
			{
			"type": "left",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "top",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "right",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "bottom",
			"color": "#000000",
			"style": 1
			}
		],
		"fill": {
			"type": "pattern",
			"pattern": 1,
			"color": ["#96b753"]
		},
		"font": {
			"bold": true
		},
		"alignment": {
			"shrink_to_fit": true,
			"horizontal": "center"
		}
	}
	`
	s2 = `
	{
		"border": [
			{
			"type": "left",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "top",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "right",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "bottom",
			"color": "#000000",
			"style": 1
			}
		],
		"fill": {
			"type": "pattern",
			"pattern": 1
		},
		"alignment": {
			"shrink_to_fit": true
		}
	}
	`
)

var genericOK = map[string]string{"message": "ok"}

type GenericResponse struct {
	Message string `json:"message"`
}

type API struct {
	State  *state.State
	Redis  *redis.Client
	Advice *advice.Client

	// Now is swappable in tests so date-window assertions stay stable.
	Now func() time.Time
}

func NewAPI() *API {
	return &API{Now: time.Now}
}

func sendError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"message": msg,
	})
}

// ParsePayload decodes the session payload the auth middleware stashed in
// the request header.
func ParsePayload(c *gin.Context) (session models.SessionPayload) {
	payload := c.Request.Header.Get("payload")

	err := json.Unmarshal([]byte(payload), &session)
	if err != nil {
		log.Println(err)
	}

	return
}
