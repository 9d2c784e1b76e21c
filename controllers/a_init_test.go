package controllers

import (
	"bytes"
	"encoding/json"
	"log"
	"testing"
	"time"

	"financetrackerapi/advice"
	"financetrackerapi/state"
	"financetrackerapi/store"
)

func init() {
	log.SetFlags(log.LstdFlags | log.LUTC | log.Lshortfile)
}

func parsePayload(p interface{}) *bytes.Buffer {
	data, _ := json.Marshal(p)
	return bytes.NewBuffer(data)
}

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestAPI(t *testing.T) *API {
	t.Helper()
	api := NewAPI()
	api.State = state.New(store.Open(t.TempDir()))
	api.Advice = advice.NewClient("")
	api.Now = func() time.Time { return testNow }
	return api
}
