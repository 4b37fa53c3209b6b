package services

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"mgnregaapi/models"
)

// Synthesizer generates statistically plausible MGNREGA figures for one
// district-month. It stands in for the authoritative data source; the
// resolver persists its output so every (district, period) key is generated
// at most once.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthesizer returns a synthesizer seeded from the wall clock.
func NewSynthesizer() *Synthesizer {
	return NewSeededSynthesizer(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededSynthesizer accepts an explicit random source so tests can supply
// a fixed sequence and assert exact derived values.
func NewSeededSynthesizer(src rand.Source) *Synthesizer {
	return &Synthesizer{rng: rand.New(src)}
}

// Synthesize produces a full performance record for the given district and
// period, including the derived score and grade.
func (s *Synthesizer) Synthesize(districtCode, districtName string, month, year int) models.PerformanceRecord {
	s.mu.Lock()
	jobCards := 50000 + s.rng.Intn(150001)               // [50000, 200000]
	workerFactor := 0.4 + s.rng.Float64()*0.3            // [0.4, 0.7)
	workDays := 30 + s.rng.Intn(61)                      // [30, 90]
	worksCompleted := 100 + s.rng.Intn(401)              // [100, 500]
	worksOngoing := 50 + s.rng.Intn(251)                 // [50, 300]
	dailyWageRate := 200 + s.rng.Float64()*100           // [200, 300)
	womenParticipation := 48 + s.rng.Float64()*14        // [48, 62)
	marginalizedParticipation := 25 + s.rng.Float64()*20 // [25, 45)
	s.mu.Unlock()

	activeWorkers := int(float64(jobCards) * workerFactor)
	personDays := activeWorkers * workDays
	avgDays := averageDaysPerWorker(personDays, activeWorkers)
	expenditure := float64(personDays) * dailyWageRate / 1e7 // crores

	score := performanceScore(avgDays, womenParticipation, personDays, worksCompleted, worksOngoing)

	return models.PerformanceRecord{
		DistrictCode:                     districtCode,
		DistrictName:                     districtName,
		Period:                           models.PeriodKey(year, month),
		Year:                             year,
		JobCardsIssued:                   jobCards,
		ActiveWorkers:                    activeWorkers,
		PersonDaysGenerated:              personDays,
		AverageDaysPerWorker:             round2(avgDays),
		WorksCompleted:                   worksCompleted,
		WorksOngoing:                     worksOngoing,
		Expenditure:                      round2(expenditure),
		WomenParticipationPercent:        round2(womenParticipation),
		MarginalizedParticipationPercent: round2(marginalizedParticipation),
		PerformanceScore:                 score,
		PerformanceGrade:                 gradeForScore(score),
		GeneratedAt:                      time.Now().UTC(),
	}
}

// averageDaysPerWorker guards against districts with no active workers.
func averageDaysPerWorker(personDays, activeWorkers int) float64 {
	if activeWorkers <= 0 {
		return 0
	}
	return float64(personDays) / float64(activeWorkers)
}

// performanceScore combines four additive components: attendance (up to 30),
// women's participation (up to 20), person-day volume (up to 25) and works
// completion rate (up to 25). The total is bounded by 100 by construction.
func performanceScore(avgDays, womenParticipation float64, personDays, worksCompleted, worksOngoing int) float64 {
	var score float64

	switch {
	case avgDays >= 50:
		score += 30
	case avgDays >= 30:
		score += 20
	default:
		score += 10
	}

	if womenParticipation >= 50 {
		score += 20
	} else {
		score += 10
	}

	switch {
	case personDays >= 3000000:
		score += 25
	case personDays >= 2000000:
		score += 15
	default:
		score += 5
	}

	completionRate := float64(worksCompleted) / math.Max(float64(worksCompleted+worksOngoing), 1)
	score += completionRate * 25

	return round2(score)
}

// gradeForScore buckets a score into the A-D letter grades.
func gradeForScore(score float64) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 60:
		return "B"
	case score >= 40:
		return "C"
	default:
		return "D"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
