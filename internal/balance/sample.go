// Package balance provides Monte Carlo sampling of the generators for
// tuning drop tables and monster curves.
package balance

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lawnchairsociety/lootforge/internal/affix"
	"github.com/lawnchairsociety/lootforge/internal/items"
	"github.com/lawnchairsociety/lootforge/internal/loot"
	"github.com/lawnchairsociety/lootforge/internal/zone"
)

// checkEvery is how many items a worker builds between context checks
const checkEvery = 1024

var wornPrefix = affix.Prefix(affix.Worn).Name

// SampleConfig holds item sampling settings
type SampleConfig struct {
	Seed       int64 // 0 seeds from the clock; worker w uses Seed+w
	Workers    int
	Iterations int
	Tier       int
	Category   items.Category // CategoryNone samples the category roll too
	Zone       zone.Kind
	Bias       loot.Bias // nil uses loot.DefaultBias
}

// Distribution holds aggregated results of an item sample
type Distribution struct {
	Seed       int64
	Iterations int
	Rarity     map[items.Rarity]int
	Category   map[items.Category]int
	Worn       int // Common items carrying the worn prefix
	Suffixed   int // items with a non-empty suffix
	TotalValue int
	MinValue   int
	MaxValue   int
}

// RarityShare returns the fraction of samples with the given rarity
func (d *Distribution) RarityShare(r items.Rarity) float64 {
	if d.Iterations == 0 {
		return 0
	}
	return float64(d.Rarity[r]) / float64(d.Iterations)
}

// CategoryShare returns the fraction of samples in the given category
func (d *Distribution) CategoryShare(c items.Category) float64 {
	if d.Iterations == 0 {
		return 0
	}
	return float64(d.Category[c]) / float64(d.Iterations)
}

// AvgValue returns the mean gold value of the sampled items
func (d *Distribution) AvgValue() float64 {
	if d.Iterations == 0 {
		return 0
	}
	return float64(d.TotalValue) / float64(d.Iterations)
}

func newDistribution() *Distribution {
	return &Distribution{
		Rarity:   make(map[items.Rarity]int),
		Category: make(map[items.Category]int),
	}
}

func (d *Distribution) add(item *items.Item) {
	if d.Iterations == 0 || item.Value < d.MinValue {
		d.MinValue = item.Value
	}
	if item.Value > d.MaxValue {
		d.MaxValue = item.Value
	}
	d.Iterations++
	d.Rarity[item.Rarity]++
	d.Category[item.Category]++
	d.TotalValue += item.Value
	if item.Prefix == wornPrefix {
		d.Worn++
	}
	if item.Suffix != "" {
		d.Suffixed++
	}
}

func (d *Distribution) merge(o *Distribution) {
	if o.Iterations == 0 {
		return
	}
	if d.Iterations == 0 || o.MinValue < d.MinValue {
		d.MinValue = o.MinValue
	}
	if o.MaxValue > d.MaxValue {
		d.MaxValue = o.MaxValue
	}
	d.Iterations += o.Iterations
	for r, n := range o.Rarity {
		d.Rarity[r] += n
	}
	for c, n := range o.Category {
		d.Category[c] += n
	}
	d.Worn += o.Worn
	d.Suffixed += o.Suffixed
	d.TotalValue += o.TotalValue
}

// SampleItems synthesizes cfg.Iterations items across cfg.Workers goroutines,
// each with its own seeded source, and merges their histograms. The result
// depends only on the seed, worker count and request.
func SampleItems(ctx context.Context, cfg SampleConfig) (*Distribution, error) {
	if err := items.CheckTier(cfg.Tier); err != nil {
		return nil, err
	}
	if cfg.Workers < 1 || cfg.Iterations < 1 {
		return nil, fmt.Errorf("%w: workers and iterations must be >= 1", items.ErrInvalidArgument)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	parts := make([]*Distribution, cfg.Workers)
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < cfg.Workers; w++ {
		n := cfg.Iterations / cfg.Workers
		if w < cfg.Iterations%cfg.Workers {
			n++
		}
		w := w
		g.Go(func() error {
			src := rand.New(rand.NewSource(seed + int64(w)))
			synth := loot.NewSynthesizer(src, cfg.Bias)
			part := newDistribution()

			req := loot.Request{Tier: cfg.Tier, Category: cfg.Category, Zone: cfg.Zone}
			for i := 0; i < n; i++ {
				if i%checkEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				item, err := synth.Synthesize(req)
				if err != nil {
					return fmt.Errorf("worker %d: %w", w, err)
				}
				part.add(item)
			}
			parts[w] = part
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := newDistribution()
	total.Seed = seed
	for _, p := range parts {
		total.merge(p)
	}
	return total, nil
}
