package main

import (
	"github.com/rs/zerolog"

	"github.com/rpgo/portfolio-projector/internal/calculation"
)

// zerologAdapter routes calculation engine logging through zerolog.
type zerologAdapter struct {
	logger zerolog.Logger
}

var _ calculation.Logger = zerologAdapter{}

func newZerologAdapter(base zerolog.Logger, runID string) zerologAdapter {
	return zerologAdapter{logger: base.With().Str("run_id", runID).Logger()}
}

func (z zerologAdapter) Debugf(format string, args ...any) {
	z.logger.Debug().Msgf(format, args...)
}

func (z zerologAdapter) Infof(format string, args ...any) {
	z.logger.Info().Msgf(format, args...)
}

func (z zerologAdapter) Warnf(format string, args ...any) {
	z.logger.Warn().Msgf(format, args...)
}

func (z zerologAdapter) Errorf(format string, args ...any) {
	z.logger.Error().Msgf(format, args...)
}
