package controllers

import (
	"errors"
	"log"
	"net/http"
	"net/mail"

	"financetrackerapi/models"

	"github.com/gin-gonic/gin"
)

func (api *API) GetUser(c *gin.Context) {
	if !api.State.Auth.Get() {
		sendError(c, http.StatusNotFound, "user-not-found")
		return
	}

	c.JSON(http.StatusOK, api.State.User.Get())
}

// UpdateUser merges the provided fields into the stored profile; absent
// fields are left untouched.
func (api *API) UpdateUser(c *gin.Context) {
	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateUserUpdate(upd); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	var merged models.User
	api.State.User.Update(func(prev models.User) models.User {
		if upd.Name != nil {
			prev.Name = *upd.Name
		}
		if upd.Email != nil {
			prev.Email = *upd.Email
		}
		merged = prev
		return prev
	})

	c.JSON(http.StatusOK, merged)
}

func validateUserUpdate(upd models.UserUpdate) error {
	if upd.Name != nil && *upd.Name == "" {
		return errors.New("missing-name")
	}

	if upd.Email != nil && *upd.Email != "" {
		if _, err := mail.ParseAddress(*upd.Email); err != nil {
			log.Println(err)
			return errors.New("invalid-email")
		}
	}

	return nil
}
