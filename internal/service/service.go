// Package service puts the result cache in front of the calculation engine.
package service

import (
	"context"
	"encoding/json"

	"github.com/finwise/fincalc/internal/cache"
	"github.com/finwise/fincalc/internal/calculation"
	"github.com/finwise/fincalc/internal/domain"
	"go.uber.org/zap"
)

// CalculatorService serves calculations for the CLI and the API server
type CalculatorService struct {
	engine      *calculation.CalculationEngine
	store       cache.Store
	logger      *zap.Logger
	concurrency int
}

// Option configures a CalculatorService
type Option func(*CalculatorService)

// WithCache sets the result store
func WithCache(store cache.Store) Option {
	return func(s *CalculatorService) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets the logger for the service and its engine
func WithLogger(logger *zap.Logger) Option {
	return func(s *CalculatorService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBatchConcurrency bounds the number of concurrent batch workers
func WithBatchConcurrency(n int) Option {
	return func(s *CalculatorService) { s.concurrency = n }
}

// New creates a service. Without options it uses no cache and no logging.
func New(opts ...Option) *CalculatorService {
	s := &CalculatorService{
		engine: calculation.NewCalculationEngine(),
		store:  cache.NopStore{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine.SetLogger(calculation.NewZapLogger(s.logger.Named("engine")))
	return s
}

// Calculate returns the result for req, from the cache when possible. Cache
// failures are logged and treated as misses.
func (s *CalculatorService) Calculate(ctx context.Context, req domain.CalculationRequest) (*domain.CalculationResult, error) {
	if err := calculation.ValidateRequest(req); err != nil {
		return nil, err
	}

	key, err := cache.Key(req)
	if err != nil {
		s.logger.Warn("cache key", zap.Error(err))
		return s.engine.Calculate(req)
	}

	if cached, ok := s.lookup(ctx, key); ok {
		// the engine warns on a miss; a hit must not swallow the warning
		if req.Calculator == domain.KindPPF && calculation.ExceedsPPFLimit(*req.PPF) {
			s.logger.Warn("ppf yearly investment exceeds the statutory limit",
				zap.String("name", req.DisplayName()),
				zap.Float64("yearly_investment", req.PPF.YearlyInvestment),
				zap.String("limit", calculation.PPFAnnualLimit.String()))
		}
		return cached, nil
	}

	result, err := s.engine.Calculate(req)
	if err != nil {
		return nil, err
	}
	s.save(ctx, key, result)
	return result, nil
}

func (s *CalculatorService) lookup(ctx context.Context, key string) (*domain.CalculationResult, bool) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var result domain.CalculationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.logger.Warn("cache entry unreadable", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	s.logger.Debug("cache hit", zap.String("key", key))
	return &result, true
}

func (s *CalculatorService) save(ctx context.Context, key string, result *domain.CalculationResult) {
	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("cache encode failed", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, key, string(data)); err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Batch evaluates requests in order with the configured concurrency
func (s *CalculatorService) Batch(ctx context.Context, requests []domain.CalculationRequest) (*domain.BatchReport, error) {
	return s.engine.RunBatch(ctx, requests, s.concurrency)
}

// Amortization returns the yearly repayment schedule of a loan
func (s *CalculatorService) Amortization(in domain.EMIInput) ([]domain.AmortizationYear, error) {
	return calculation.AmortizationSchedule(in)
}

// PPFLedger returns the yearly balance of a PPF account
func (s *CalculatorService) PPFLedger(in domain.PPFInput) ([]domain.PPFYear, error) {
	return calculation.PPFLedger(in)
}

// Catalog lists the available calculators
func (s *CalculatorService) Catalog() []domain.Calculator {
	return domain.Catalog()
}
