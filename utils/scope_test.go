package utils

import (
	"event_manager/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketScope_Conditions_OwnershipAlwaysFirst(t *testing.T) {
	from := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		scope TicketScope
		want  []string
	}{
		{
			name:  "bare scope",
			scope: TicketScope{OrganizerId: 7},
			want:  []string{"events.organizer_id = ?"},
		},
		{
			name:  "event and status",
			scope: TicketScope{OrganizerId: 7, EventId: 3, Status: model.TicketConfirmed},
			want:  []string{"events.organizer_id = ?", "tickets.event_id = ?", "tickets.status = ?"},
		},
		{
			name:  "all filters",
			scope: TicketScope{OrganizerId: 7, EventId: 3, Status: model.TicketPending, CheckedIn: Ptr(true), From: &from, To: &to},
			want: []string{
				"events.organizer_id = ?",
				"tickets.event_id = ?",
				"tickets.status = ?",
				"tickets.checked_in = ?",
				"tickets.created_at >= ?",
				"tickets.created_at <= ?",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clauses, args := tc.scope.Conditions(DateColumnTicketCreated)
			assert.Equal(t, tc.want, clauses)
			require.Len(t, args, len(clauses))
			assert.Equal(t, tc.scope.OrganizerId, args[0])
		})
	}
}

func TestTicketScope_Conditions_DayNormalization(t *testing.T) {
	from := time.Date(2026, 3, 10, 15, 30, 45, 0, time.UTC)
	to := time.Date(2026, 3, 20, 8, 5, 0, 0, time.UTC)
	scope := TicketScope{OrganizerId: 1, From: &from, To: &to}

	_, args := scope.Conditions(DateColumnTicketCreated)
	require.Len(t, args, 3)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), args[1])
	assert.Equal(t, time.Date(2026, 3, 20, 23, 59, 59, 0, time.UTC), args[2])
}

func TestTicketScope_Conditions_DateColumnSelectsTarget(t *testing.T) {
	from := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	scope := TicketScope{OrganizerId: 1, From: &from}

	clauses, _ := scope.Conditions(DateColumnEventCreated)
	assert.Contains(t, clauses, "events.created_at >= ?")
}

func TestTicketScope_EventConditions_SkipsTicketFilters(t *testing.T) {
	from := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	scope := TicketScope{OrganizerId: 7, EventId: 3, Status: model.TicketPending, CheckedIn: Ptr(true), From: &from}

	clauses, args := scope.EventConditions()
	assert.Equal(t, []string{"events.organizer_id = ?", "events.id = ?", "events.created_at >= ?"}, clauses)
	require.Len(t, args, 3)
}

func TestTicketScope_Apply_IsolatesOrganizers(t *testing.T) {
	db := newTestDB(t)
	orgA := seedOrganizer(t, db, "org-a")
	orgB := seedOrganizer(t, db, "org-b")
	eventA := seedEvent(t, db, orgA.ID, "event-a", time.Now().Add(24*time.Hour), 100)
	eventB := seedEvent(t, db, orgB.ID, "event-b", time.Now().Add(24*time.Hour), 100)
	user := seedUser(t, db, "scope@campus.local", nil)

	seedTicket(t, db, eventA.ID, user.ID, model.TicketConfirmed, model.PaymentCompleted, 10)
	seedTicket(t, db, eventA.ID, user.ID, model.TicketPending, model.PaymentPending, 10)
	seedTicket(t, db, eventB.ID, user.ID, model.TicketConfirmed, model.PaymentCompleted, 10)

	var count int64
	scope := TicketScope{OrganizerId: orgA.ID}
	require.NoError(t, scope.Apply(db.Model(&model.Ticket{}), DateColumnTicketCreated).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	// Even an explicit foreign event id cannot widen the scope.
	scope = TicketScope{OrganizerId: orgA.ID, EventId: eventB.ID}
	require.NoError(t, scope.Apply(db.Model(&model.Ticket{}), DateColumnTicketCreated).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestTicketScope_Apply_FilterCombinations(t *testing.T) {
	db := newTestDB(t)
	org := seedOrganizer(t, db, "org-a")
	event := seedEvent(t, db, org.ID, "filtered", time.Now().Add(24*time.Hour), 100)
	user := seedUser(t, db, "filters@campus.local", nil)

	day := func(d int) time.Time { return time.Date(2026, 4, d, 12, 0, 0, 0, time.UTC) }
	mk := func(status string, checkedIn bool, created time.Time) {
		ticket := model.Ticket{
			TicketCode:    "TKT-F-" + created.Format("02") + status,
			Status:        status,
			PaymentStatus: model.PaymentPending,
			CheckedIn:     checkedIn,
			EventId:       event.ID,
			UserId:        user.ID,
			DTO:           model.DTO{CreatedAt: created},
		}
		require.NoError(t, db.Create(&ticket).Error)
	}

	mk(model.TicketConfirmed, true, day(1))
	mk(model.TicketConfirmed, false, day(2))
	mk(model.TicketPending, false, day(3))
	mk(model.TicketCancelled, false, day(10))

	count := func(scope TicketScope) int64 {
		var n int64
		require.NoError(t, scope.Apply(db.Model(&model.Ticket{}), DateColumnTicketCreated).Count(&n).Error)
		return n
	}

	assert.EqualValues(t, 2, count(TicketScope{OrganizerId: org.ID, Status: model.TicketConfirmed}))
	assert.EqualValues(t, 1, count(TicketScope{OrganizerId: org.ID, CheckedIn: Ptr(true)}))
	assert.EqualValues(t, 3, count(TicketScope{OrganizerId: org.ID, CheckedIn: Ptr(false)}))

	from, to := day(2), day(3)
	assert.EqualValues(t, 2, count(TicketScope{OrganizerId: org.ID, From: &from, To: &to}))
	assert.EqualValues(t, 1, count(TicketScope{OrganizerId: org.ID, Status: model.TicketConfirmed, From: &from, To: &to}))
}
