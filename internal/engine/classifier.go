package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/DaniBVN/Tarif/internal/taxonomy"
)

// Classifier assigns every record one category per configured axis.
// Classification is pure per record: no cross-record state, deterministic
// for identical input.
type Classifier struct {
	progress func(done, total int)
	dicts    []taxonomy.Dictionary
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithProgress installs a callback invoked after each classified record.
func WithProgress(fn func(done, total int)) Option {
	return func(c *Classifier) {
		c.progress = fn
	}
}

// NewClassifier creates a classifier over the given dictionaries. Every
// dictionary is validated up front; a malformed dictionary is a
// programming error, not a data error.
func NewClassifier(dicts []taxonomy.Dictionary, opts ...Option) (*Classifier, error) {
	seen := make(map[model.Axis]bool, len(dicts))
	for _, d := range dicts {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid dictionary: %w", err)
		}
		if seen[d.Axis] {
			return nil, fmt.Errorf("duplicate dictionary for axis %s", d.Axis)
		}
		seen[d.Axis] = true
	}

	c := &Classifier{dicts: dicts}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Axes returns the configured axes in dictionary order.
func (c *Classifier) Axes() []model.Axis {
	axes := make([]model.Axis, len(c.dicts))
	for i, d := range c.dicts {
		axes[i] = d.Axis
	}
	return axes
}

// Classify matches one record against every axis independently. A match
// or non-match on one axis never affects another.
func (c *Classifier) Classify(record model.TariffRecord) model.ClassifiedRecord {
	fields := Fields(record)

	results := make(map[model.Axis]model.MatchResult, len(c.dicts))
	for _, dict := range c.dicts {
		results[dict.Axis] = Match(fields, dict)
	}

	return model.ClassifiedRecord{
		Record:  record,
		Results: results,
	}
}

// ClassifyAll classifies the full record set in one synchronous pass.
// An empty input is valid and yields an empty result. The context is
// checked between records so a cancelled run stops promptly.
func (c *Classifier) ClassifyAll(ctx context.Context, records []model.TariffRecord) ([]model.ClassifiedRecord, error) {
	start := time.Now()
	classified := make([]model.ClassifiedRecord, 0, len(records))

	for i, record := range records {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		classified = append(classified, c.Classify(record))

		if c.progress != nil {
			c.progress(i+1, len(records))
		}
	}

	slog.Debug("classification pass complete",
		"records", len(records),
		"axes", len(c.dicts),
		"duration", time.Since(start))

	return classified, nil
}
