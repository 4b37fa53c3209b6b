package models

import (
	"fmt"
	"time"
)

// PerformanceRecord holds one district's synthesized MGNREGA statistics for
// one calendar month. (district_code, period) is the natural key, enforced by
// a unique index; a record is never updated after its first insert.
type PerformanceRecord struct {
	DistrictCode                     string    `json:"district_code" bson:"district_code"`
	DistrictName                     string    `json:"district_name" bson:"district_name"`
	Period                           string    `json:"period" bson:"period"` // sortable "YYYY-MM"
	Year                             int       `json:"year" bson:"year"`
	JobCardsIssued                   int       `json:"job_cards_issued" bson:"job_cards_issued"`
	ActiveWorkers                    int       `json:"active_workers" bson:"active_workers"`
	PersonDaysGenerated              int       `json:"person_days_generated" bson:"person_days_generated"`
	AverageDaysPerWorker             float64   `json:"average_days_per_worker" bson:"average_days_per_worker"`
	WorksCompleted                   int       `json:"works_completed" bson:"works_completed"`
	WorksOngoing                     int       `json:"works_ongoing" bson:"works_ongoing"`
	Expenditure                      float64   `json:"expenditure" bson:"expenditure"` // in crores (10 million)
	WomenParticipationPercent        float64   `json:"women_participation_percent" bson:"women_participation_percent"`
	MarginalizedParticipationPercent float64   `json:"marginalized_group_participation_percent" bson:"marginalized_group_participation_percent"`
	PerformanceScore                 float64   `json:"performance_score" bson:"performance_score"`
	PerformanceGrade                 string    `json:"performance_grade" bson:"performance_grade"` // A, B, C or D
	GeneratedAt                      time.Time `json:"generated_at" bson:"generated_at"`
}

// PeriodKey formats a (year, month) pair as the canonical period string.
func PeriodKey(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// TrendPoint is the per-month projection returned by the trends endpoint.
type TrendPoint struct {
	Period              string  `json:"period"`
	Year                int     `json:"year"`
	PersonDaysGenerated int     `json:"person_days_generated"`
	Expenditure         float64 `json:"expenditure"`
	ActiveWorkers       int     `json:"active_workers"`
	PerformanceScore    float64 `json:"performance_score"`
}

// TrendsResponse wraps a trailing window of trend points, oldest first.
type TrendsResponse struct {
	District District     `json:"district"`
	Trends   []TrendPoint `json:"trends"`
}

// ComparisonResponse holds current-period records in request order.
type ComparisonResponse struct {
	Comparisons []PerformanceRecord `json:"comparisons"`
}

// GradeDistribution counts districts per performance grade.
type GradeDistribution struct {
	A int `json:"A"`
	B int `json:"B"`
	C int `json:"C"`
	D int `json:"D"`
}

// StateOverview aggregates the current period across all districts.
type StateOverview struct {
	TotalDistricts          int                 `json:"total_districts"`
	TotalActiveWorkers      int                 `json:"total_active_workers"`
	TotalPersonDays         int                 `json:"total_person_days"`
	TotalExpenditure        float64             `json:"total_expenditure"`
	AveragePerformanceScore float64             `json:"average_performance_score"`
	GradeDistribution       GradeDistribution   `json:"grade_distribution"`
	TopPerformers           []PerformanceRecord `json:"top_performers"`
	Period                  string              `json:"period"`
}
