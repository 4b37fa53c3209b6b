package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"mgnregaapi/models"
	repository "mgnregaapi/repositories"

	"github.com/jonboulle/clockwork"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

// ErrDistrictNotFound marks a lookup with an unknown district code.
var ErrDistrictNotFound = errors.New("district not found")

// ErrTooManyDistricts marks a comparison request over the limit.
var ErrTooManyDistricts = errors.New("maximum 5 districts for comparison")

const (
	defaultTrendMonths    = 12
	maxCompareDistricts   = 5
	overviewTopPerformers = 5
)

type RecordService interface {
	GetDistricts(ctx context.Context) ([]models.District, error)
	GetCurrent(ctx context.Context, districtCode string) (*models.PerformanceRecord, error)
	GetTrends(ctx context.Context, districtCode string, months int) (*models.TrendsResponse, error)
	Compare(ctx context.Context, districtCodes []string) (*models.ComparisonResponse, error)
	StateOverview(ctx context.Context) (*models.StateOverview, error)
}

type recordService struct {
	districts repository.DistrictRepository
	records   repository.RecordRepository
	synth     *Synthesizer
	clock     clockwork.Clock
	logger    *zap.Logger
}

func NewRecordService(
	districts repository.DistrictRepository,
	records repository.RecordRepository,
	synth *Synthesizer,
	clock clockwork.Clock,
	logger *zap.Logger,
) RecordService {
	return &recordService{
		districts: districts,
		records:   records,
		synth:     synth,
		clock:     clock,
		logger:    logger,
	}
}

// resolve returns the stored record for (districtCode, year-month) or
// synthesizes and persists one exactly once. If a concurrent request wins the
// first insert, the unique index rejects ours and the stored record is
// returned instead, so callers always converge on a single record per key.
func (s *recordService) resolve(ctx context.Context, districtCode, districtName string, month, year int) (*models.PerformanceRecord, error) {
	period := models.PeriodKey(year, month)

	record, err := s.records.FindByKey(ctx, districtCode, period)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	generated := s.synth.Synthesize(districtCode, districtName, month, year)
	if err := s.records.Insert(ctx, &generated); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			s.logger.Debug("Lost synthesis race, reusing stored record",
				zap.String("district_code", districtCode),
				zap.String("period", period))
			return s.records.FindByKey(ctx, districtCode, period)
		}
		return nil, err
	}

	s.logger.Debug("Synthesized performance record",
		zap.String("district_code", districtCode),
		zap.String("period", period),
		zap.Float64("performance_score", generated.PerformanceScore))
	return &generated, nil
}

func (s *recordService) GetDistricts(ctx context.Context) ([]models.District, error) {
	return s.districts.GetAll(ctx)
}

func (s *recordService) GetCurrent(ctx context.Context, districtCode string) (*models.PerformanceRecord, error) {
	district, err := s.districts.GetByCode(ctx, districtCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", districtCode, ErrDistrictNotFound)
		}
		return nil, err
	}

	now := s.clock.Now()
	return s.resolve(ctx, district.Code, district.Name, int(now.Month()), now.Year())
}

func (s *recordService) GetTrends(ctx context.Context, districtCode string, months int) (*models.TrendsResponse, error) {
	if months <= 0 {
		months = defaultTrendMonths
	}

	district, err := s.districts.GetByCode(ctx, districtCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", districtCode, ErrDistrictNotFound)
		}
		return nil, err
	}

	now := s.clock.Now()
	trends := make([]models.TrendPoint, 0, months)

	// Walk backwards from the current month, rolling the year on underflow,
	// then reverse so the window reads oldest first.
	for i := 0; i < months; i++ {
		month := int(now.Month()) - i
		year := now.Year()
		for month <= 0 {
			month += 12
			year--
		}

		record, err := s.resolve(ctx, district.Code, district.Name, month, year)
		if err != nil {
			return nil, err
		}

		trends = append(trends, models.TrendPoint{
			Period:              record.Period,
			Year:                record.Year,
			PersonDaysGenerated: record.PersonDaysGenerated,
			Expenditure:         record.Expenditure,
			ActiveWorkers:       record.ActiveWorkers,
			PerformanceScore:    record.PerformanceScore,
		})
	}

	for i, j := 0, len(trends)-1; i < j; i, j = i+1, j-1 {
		trends[i], trends[j] = trends[j], trends[i]
	}

	return &models.TrendsResponse{District: *district, Trends: trends}, nil
}

func (s *recordService) Compare(ctx context.Context, districtCodes []string) (*models.ComparisonResponse, error) {
	if len(districtCodes) > maxCompareDistricts {
		return nil, ErrTooManyDistricts
	}

	now := s.clock.Now()
	comparisons := make([]models.PerformanceRecord, 0, len(districtCodes))

	for _, code := range districtCodes {
		district, err := s.districts.GetByCode(ctx, strings.TrimSpace(code))
		if err != nil {
			// Unknown codes are skipped, not surfaced.
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}

		record, err := s.resolve(ctx, district.Code, district.Name, int(now.Month()), now.Year())
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, *record)
	}

	return &models.ComparisonResponse{Comparisons: comparisons}, nil
}

func (s *recordService) StateOverview(ctx context.Context) (*models.StateOverview, error) {
	now := s.clock.Now()
	period := models.PeriodKey(now.Year(), int(now.Month()))

	records, err := s.records.FindByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	totalDistricts, err := s.districts.Count(ctx)
	if err != nil {
		return nil, err
	}

	overview := &models.StateOverview{
		TotalDistricts: int(totalDistricts),
		Period:         period,
	}

	scores := make([]float64, 0, len(records))
	expenditures := make([]float64, 0, len(records))
	for _, r := range records {
		overview.TotalActiveWorkers += r.ActiveWorkers
		overview.TotalPersonDays += r.PersonDaysGenerated
		expenditures = append(expenditures, r.Expenditure)
		scores = append(scores, r.PerformanceScore)

		switch r.PerformanceGrade {
		case "A":
			overview.GradeDistribution.A++
		case "B":
			overview.GradeDistribution.B++
		case "C":
			overview.GradeDistribution.C++
		case "D":
			overview.GradeDistribution.D++
		}
	}

	if len(records) > 0 {
		totalExpenditure, err := stats.Sum(expenditures)
		if err != nil {
			return nil, err
		}
		averageScore, err := stats.Mean(scores)
		if err != nil {
			return nil, err
		}
		overview.TotalExpenditure = round2(totalExpenditure)
		overview.AveragePerformanceScore = round2(averageScore)
	}

	// Stable so equal scores keep scan order.
	top := make([]models.PerformanceRecord, len(records))
	copy(top, records)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].PerformanceScore > top[j].PerformanceScore
	})
	if len(top) > overviewTopPerformers {
		top = top[:overviewTopPerformers]
	}
	overview.TopPerformers = top

	return overview, nil
}
