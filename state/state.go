// Package state owns the persisted record collections. Each collection lives
// in one reactive cell keyed by a fixed slot name; every operation is a pure
// transformation of the previous slice fed through the cell's Update.
package state

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"financetrackerapi/models"
	"financetrackerapi/store"
)

const (
	KeyExpenses  = "expenses"
	KeyIncomes   = "incomes"
	KeyGoals     = "goals"
	KeyReminders = "reminders"
	KeyChat      = "chat_messages"
	KeySettings  = "settings"
	KeyUser      = "user"
	KeyAuth      = "auth"
)

type State struct {
	store *store.Store

	Expenses  *store.Cell[[]models.Expense]
	Incomes   *store.Cell[[]models.Income]
	Goals     *store.Cell[[]models.Goal]
	Reminders *store.Cell[[]models.Reminder]
	Chat      *store.Cell[[]models.ChatMessage]
	Settings  *store.Cell[models.Settings]
	User      *store.Cell[models.User]
	Auth      *store.Cell[bool]
}

func New(s *store.Store) *State {
	st := &State{
		store:     s,
		Expenses:  store.NewCell(s, KeyExpenses, []models.Expense{}),
		Incomes:   store.NewCell(s, KeyIncomes, []models.Income{}),
		Goals:     store.NewCell(s, KeyGoals, []models.Goal{}),
		Reminders: store.NewCell(s, KeyReminders, []models.Reminder{}),
		Chat:      store.NewCell(s, KeyChat, []models.ChatMessage{}),
		Settings:  store.NewCell(s, KeySettings, models.Settings{}),
		User:      store.NewCell(s, KeyUser, models.User{}),
		Auth:      store.NewCell(s, KeyAuth, false),
	}
	st.watchForBackup()
	return st
}

func (st *State) AppendExpense(e models.Expense) {
	st.Expenses.Update(func(prev []models.Expense) []models.Expense {
		return append(prev, e)
	})
}

func (st *State) RemoveExpense(id string) {
	st.Expenses.Update(func(prev []models.Expense) []models.Expense {
		out := prev[:0:0]
		for _, e := range prev {
			if e.Id != id {
				out = append(out, e)
			}
		}
		return out
	})
}

func (st *State) AppendIncome(in models.Income) {
	st.Incomes.Update(func(prev []models.Income) []models.Income {
		return append(prev, in)
	})
}

func (st *State) RemoveIncome(id string) {
	st.Incomes.Update(func(prev []models.Income) []models.Income {
		out := prev[:0:0]
		for _, in := range prev {
			if in.Id != id {
				out = append(out, in)
			}
		}
		return out
	})
}

func (st *State) AppendGoal(g models.Goal) {
	st.Goals.Update(func(prev []models.Goal) []models.Goal {
		return append(prev, g)
	})
}

func (st *State) RemoveGoal(id string) {
	st.Goals.Update(func(prev []models.Goal) []models.Goal {
		out := prev[:0:0]
		for _, g := range prev {
			if g.Id != id {
				out = append(out, g)
			}
		}
		return out
	})
}

// ContributeGoal adds amount to the matching goal's progress, clamped to the
// remaining gap; excess is silently discarded, not rejected. A no-op on an
// absent id. Returns the updated goal and whether it was found.
func (st *State) ContributeGoal(id string, amount float64) (models.Goal, bool) {
	var updated models.Goal
	var found bool
	st.Goals.Update(func(prev []models.Goal) []models.Goal {
		out := make([]models.Goal, len(prev))
		copy(out, prev)
		for i, g := range out {
			if g.Id != id {
				continue
			}
			g.CurrentAmount = g.CurrentAmount + amount
			if g.CurrentAmount > g.TargetAmount {
				g.CurrentAmount = g.TargetAmount
			}
			out[i] = g
			updated = g
			found = true
			break
		}
		return out
	})
	return updated, found
}

func (st *State) AppendReminder(r models.Reminder) {
	st.Reminders.Update(func(prev []models.Reminder) []models.Reminder {
		return append(prev, r)
	})
}

// UpdateReminder merges the non-nil fields of upd into the matching
// reminder; a no-op on an absent id.
func (st *State) UpdateReminder(id string, upd models.ReminderUpdate) (models.Reminder, bool) {
	var updated models.Reminder
	var found bool
	st.Reminders.Update(func(prev []models.Reminder) []models.Reminder {
		out := make([]models.Reminder, len(prev))
		copy(out, prev)
		for i, r := range out {
			if r.Id != id {
				continue
			}
			if upd.Text != nil {
				r.Text = *upd.Text
			}
			if upd.Date != nil {
				r.Date = *upd.Date
			}
			if upd.Completed != nil {
				r.Completed = *upd.Completed
			}
			out[i] = r
			updated = r
			found = true
			break
		}
		return out
	})
	return updated, found
}

func (st *State) RemoveReminder(id string) {
	st.Reminders.Update(func(prev []models.Reminder) []models.Reminder {
		out := prev[:0:0]
		for _, r := range prev {
			if r.Id != id {
				out = append(out, r)
			}
		}
		return out
	})
}

func (st *State) AppendChatMessage(m models.ChatMessage) {
	st.Chat.Update(func(prev []models.ChatMessage) []models.ChatMessage {
		return append(prev, m)
	})
}

func (st *State) ClearChat() {
	st.Chat.Set([]models.ChatMessage{})
}

// ClearData wipes the four record collections, keeping profile, session and
// preferences.
func (st *State) ClearData() {
	st.Expenses.Reset([]models.Expense{})
	st.Incomes.Reset([]models.Income{})
	st.Goals.Reset([]models.Goal{})
	st.Reminders.Reset([]models.Reminder{})
}

// Export materializes the one-document JSON export of collections plus
// preferences.
func (st *State) Export(now time.Time) models.ExportDocument {
	return models.ExportDocument{
		Expenses:   st.Expenses.Get(),
		Incomes:    st.Incomes.Get(),
		Goals:      st.Goals.Get(),
		Reminders:  st.Reminders.Get(),
		Settings:   st.Settings.Get(),
		ExportedAt: now.UTC().Format(time.RFC3339),
	}
}

// watchForBackup snapshots the whole dataset to backup.json on every
// collection change while the auto-backup preference is on.
func (st *State) watchForBackup() {
	backup := func() {
		if !st.Settings.Get().AutoBackup {
			return
		}
		doc := st.Export(time.Now())
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			log.Println(err)
			return
		}
		if err := os.WriteFile(filepath.Join(st.store.Dir(), "backup.json"), data, 0o644); err != nil {
			log.Println(err)
		}
	}

	st.Expenses.Subscribe(func([]models.Expense) { backup() })
	st.Incomes.Subscribe(func([]models.Income) { backup() })
	st.Goals.Subscribe(func([]models.Goal) { backup() })
	st.Reminders.Subscribe(func([]models.Reminder) { backup() })
}
