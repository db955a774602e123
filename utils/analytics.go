package utils

import (
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
)

// The six reporting views. Every view is a pure read over the same
// tickets/events join under a TicketScope; only completed payments count
// toward revenue except where noted. A failing store degrades each view
// to zero values instead of failing the whole dashboard.

type AnalyticsOverview struct {
	TotalEvents            int64   `json:"totalEvents"`
	ApprovedEvents         int64   `json:"approvedEvents"`
	TotalRegistrations     int64   `json:"totalRegistrations"`
	ConfirmedRegistrations int64   `json:"confirmedRegistrations"`
	CheckedInAttendees     int64   `json:"checkedInAttendees"`
	TotalRevenue           float64 `json:"totalRevenue"`
	AvgTicketPrice         float64 `json:"avgTicketPrice"`
}

type EventPerformanceRow struct {
	EventId        uint    `json:"eventId"`
	Title          string  `json:"title"`
	MaxAttendees   int     `json:"maxAttendees"`
	Registrations  int64   `json:"registrations"`
	Confirmed      int64   `json:"confirmed"`
	CheckedIn      int64   `json:"checkedIn"`
	Revenue        float64 `json:"revenue"`
	AvgTicketPrice float64 `json:"avgTicketPrice"`
	CapacityRate   float64 `json:"capacityRate"`
	AttendanceRate float64 `json:"attendanceRate"`
}

type DailyTrendRow struct {
	Date          string  `json:"date"` // "2026-04-17"
	Registrations int64   `json:"registrations"`
	Revenue       float64 `json:"revenue"`
}

type DepartmentRow struct {
	Department    string  `json:"department"`
	Registrations int64   `json:"registrations"`
	Confirmed     int64   `json:"confirmed"`
	Revenue       float64 `json:"revenue"`
}

type PaymentRow struct {
	PaymentStatus string  `json:"paymentStatus"`
	Count         int64   `json:"count"`
	TotalAmount   float64 `json:"totalAmount"`
}

type MonthlyComparisonRow struct {
	Month         string  `json:"month"` // "2026-04"
	Events        int64   `json:"events"`
	Registrations int64   `json:"registrations"`
	Revenue       float64 `json:"revenue"`
	RevenueGrowth float64 `json:"revenueGrowth"` // % vs previous month
}

type AnalyticsReport struct {
	Overview           AnalyticsOverview      `json:"overview"`
	ConversionRate     float64                `json:"conversionRate"`
	AttendanceRate     float64                `json:"attendanceRate"`
	EventPerformance   []EventPerformanceRow  `json:"eventPerformance"`
	DailyTrends        []DailyTrendRow        `json:"dailyTrends"`
	DepartmentAnalysis []DepartmentRow        `json:"departmentAnalysis"`
	PaymentAnalysis    []PaymentRow           `json:"paymentAnalysis"`
	MonthlyComparison  []MonthlyComparisonRow `json:"monthlyComparison"`
}

// The test suite runs on sqlite, production on Postgres; date formatting
// is the one place their SQL differs. Column names here are package
// constants, never caller input.
func sqlDay(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "sqlite" {
		return "strftime('%Y-%m-%d', " + column + ")"
	}
	return "to_char(" + column + ", 'YYYY-MM-DD')"
}

func sqlMonth(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "sqlite" {
		return "strftime('%Y-%m', " + column + ")"
	}
	return "to_char(" + column + ", 'YYYY-MM')"
}

func GetAnalyticsOverview(db *gorm.DB, scope TicketScope) AnalyticsOverview {
	var overview AnalyticsOverview

	eventClauses, eventArgs := scope.EventConditions()
	err := db.Raw(`
        SELECT
            COUNT(*) AS total_events,
            COUNT(CASE WHEN events.status = 'APPROVED' THEN 1 END) AS approved_events
        FROM events
        WHERE `+strings.Join(eventClauses, " AND "), eventArgs...).Scan(&overview).Error
	if err != nil {
		log.Printf("analytics overview (events) failed: %v", err)
		return AnalyticsOverview{}
	}

	clauses, args := scope.Conditions(DateColumnEventCreated)
	var tickets struct {
		TotalRegistrations     int64
		ConfirmedRegistrations int64
		CheckedInAttendees     int64
		TotalRevenue           float64
		AvgTicketPrice         float64
	}
	err = db.Raw(`
        SELECT
            COUNT(tickets.id) AS total_registrations,
            COUNT(CASE WHEN tickets.status = 'CONFIRMED' THEN 1 END) AS confirmed_registrations,
            COUNT(CASE WHEN tickets.checked_in THEN 1 END) AS checked_in_attendees,
            COALESCE(SUM(CASE WHEN tickets.payment_status = 'COMPLETED' THEN tickets.price ELSE 0 END), 0) AS total_revenue,
            COALESCE(AVG(CASE WHEN tickets.payment_status = 'COMPLETED' THEN tickets.price END), 0) AS avg_ticket_price
        FROM tickets
        JOIN events ON events.id = tickets.event_id
        WHERE `+strings.Join(clauses, " AND "), args...).Scan(&tickets).Error
	if err != nil {
		log.Printf("analytics overview (tickets) failed: %v", err)
		return AnalyticsOverview{}
	}

	overview.TotalRegistrations = tickets.TotalRegistrations
	overview.ConfirmedRegistrations = tickets.ConfirmedRegistrations
	overview.CheckedInAttendees = tickets.CheckedInAttendees
	overview.TotalRevenue = tickets.TotalRevenue
	overview.AvgTicketPrice = RoundFloat(tickets.AvgTicketPrice, 2)

	return overview
}

func GetEventPerformance(db *gorm.DB, scope TicketScope) []EventPerformanceRow {
	clauses, args := scope.Conditions(DateColumnEventCreated)

	rows := []EventPerformanceRow{}
	err := db.Raw(`
        SELECT
            events.id AS event_id,
            events.title,
            events.max_attendees,
            COUNT(tickets.id) AS registrations,
            COUNT(CASE WHEN tickets.status = 'CONFIRMED' THEN 1 END) AS confirmed,
            COUNT(CASE WHEN tickets.checked_in THEN 1 END) AS checked_in,
            COALESCE(SUM(CASE WHEN tickets.payment_status = 'COMPLETED' THEN tickets.price ELSE 0 END), 0) AS revenue,
            COALESCE(AVG(CASE WHEN tickets.payment_status = 'COMPLETED' THEN tickets.price END), 0) AS avg_ticket_price
        FROM tickets
        JOIN events ON events.id = tickets.event_id
        WHERE `+strings.Join(clauses, " AND ")+`
        GROUP BY events.id, events.title, events.max_attendees
        ORDER BY registrations DESC
        LIMIT 10`, args...).Scan(&rows).Error
	if err != nil {
		log.Printf("analytics event performance failed: %v", err)
		return []EventPerformanceRow{}
	}

	for i := range rows {
		rows[i].AvgTicketPrice = RoundFloat(rows[i].AvgTicketPrice, 2)
		rows[i].CapacityRate = CapacityRate(rows[i].Confirmed, rows[i].MaxAttendees)
		rows[i].AttendanceRate = AttendanceRate(rows[i].CheckedIn, rows[i].Confirmed)
	}

	return rows
}

// GetDailyTrends groups registrations by the calendar date they were
// created. Dates without registrations produce no row; callers needing a
// dense series backfill themselves.
func GetDailyTrends(db *gorm.DB, scope TicketScope) []DailyTrendRow {
	clauses, args := scope.Conditions(DateColumnEventCreated)
	day := sqlDay(db, "tickets.created_at")

	rows := []DailyTrendRow{}
	err := db.Raw(`
        SELECT
            `+day+` AS date,
            COUNT(tickets.id) AS registrations,
            COALESCE(SUM(CASE WHEN tickets.payment_status = 'COMPLETED' THEN tickets.price ELSE 0 END), 0) AS revenue
        FROM tickets
        JOIN events ON events.id = tickets.event_id
        WHERE `+strings.Join(clauses, " AND ")+`
        GROUP BY `+day+`
        ORDER BY date ASC`, args...).Scan(&rows).Error
	if err != nil {
		log.Printf("analytics daily trends failed: %v", err)
		return []DailyTrendRow{}
	}

	return rows
}

// GetDepartmentAnalysis ranks registrant departments by registration
// count. Registrants without a department are left out entirely.
func GetDepartmentAnalysis(db *gorm.DB, scope TicketScope) []DepartmentRow {
	clauses, args := scope.Conditions(DateColumnEventCreated)

	rows := []DepartmentRow{}
	err := db.Raw(`
        SELECT
            users.department AS department,
            COUNT(tickets.id) AS registrations,
            COUNT(CASE WHEN tickets.status = 'CONFIRMED' THEN 1 END) AS confirmed,
            COALESCE(SUM(CASE WHEN tickets.payment_status = 'COMPLETED' THEN tickets.price ELSE 0 END), 0) AS revenue
        FROM tickets
        JOIN events ON events.id = tickets.event_id
        JOIN users ON users.id = tickets.user_id
        WHERE `+strings.Join(clauses, " AND ")+`
          AND users.department IS NOT NULL
          AND users.department <> ''
        GROUP BY users.department
        ORDER BY registrations DESC
        LIMIT 10`, args...).Scan(&rows).Error
	if err != nil {
		log.Printf("analytics department analysis failed: %v", err)
		return []DepartmentRow{}
	}

	return rows
}

// GetPaymentAnalysis sums price per payment status. Unlike the overview
// this is not restricted to completed payments.
func GetPaymentAnalysis(db *gorm.DB, scope TicketScope) []PaymentRow {
	clauses, args := scope.Conditions(DateColumnEventCreated)

	rows := []PaymentRow{}
	err := db.Raw(`
        SELECT
            tickets.payment_status AS payment_status,
            COUNT(tickets.id) AS count,
            COALESCE(SUM(tickets.price), 0) AS total_amount
        FROM tickets
        JOIN events ON events.id = tickets.event_id
        WHERE `+strings.Join(clauses, " AND ")+`
        GROUP BY tickets.payment_status
        ORDER BY payment_status ASC`, args...).Scan(&rows).Error
	if err != nil {
		log.Printf("analytics payment analysis failed: %v", err)
		return []PaymentRow{}
	}

	return rows
}

// GetMonthlyComparison buckets by the calendar month of the event start,
// over the trailing 12 months only. The scope's own date filter does not
// apply here: this view always answers "how did the last year go" for
// the organizer.
func GetMonthlyComparison(db *gorm.DB, organizerId uint, now time.Time) []MonthlyComparisonRow {
	since := now.AddDate(-1, 0, 0)
	month := sqlMonth(db, "events.start_datetime")

	rows := []MonthlyComparisonRow{}
	err := db.Raw(`
        SELECT
            `+month+` AS month,
            COUNT(DISTINCT events.id) AS events,
            COUNT(tickets.id) AS registrations,
            COALESCE(SUM(CASE WHEN tickets.payment_status = 'COMPLETED' THEN tickets.price ELSE 0 END), 0) AS revenue
        FROM events
        LEFT JOIN tickets ON tickets.event_id = events.id
        WHERE events.organizer_id = ?
          AND events.start_datetime >= ?
        GROUP BY `+month+`
        ORDER BY month ASC`, organizerId, since).Scan(&rows).Error
	if err != nil {
		log.Printf("analytics monthly comparison failed: %v", err)
		return []MonthlyComparisonRow{}
	}

	for i := range rows {
		if i == 0 {
			continue
		}
		rows[i].RevenueGrowth = RoundFloat(CalculateGrowth(rows[i].Revenue, rows[i-1].Revenue), 2)
	}

	return rows
}

// BuildAnalyticsReport assembles all six views plus the derived rates.
// The views run as separate queries; minor skew between them is accepted.
func BuildAnalyticsReport(db *gorm.DB, scope TicketScope) AnalyticsReport {
	overview := GetAnalyticsOverview(db, scope)

	return AnalyticsReport{
		Overview:           overview,
		ConversionRate:     ConversionRate(overview.ConfirmedRegistrations, overview.TotalRegistrations),
		AttendanceRate:     AttendanceRate(overview.CheckedInAttendees, overview.ConfirmedRegistrations),
		EventPerformance:   GetEventPerformance(db, scope),
		DailyTrends:        GetDailyTrends(db, scope),
		DepartmentAnalysis: GetDepartmentAnalysis(db, scope),
		PaymentAnalysis:    GetPaymentAnalysis(db, scope),
		MonthlyComparison:  GetMonthlyComparison(db, scope.OrganizerId, time.Now()),
	}
}
