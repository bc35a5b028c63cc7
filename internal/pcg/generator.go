// Package pcg is the entry point for procedural content: items, materials,
// monsters, quests and skills drawn from one shared random source.
package pcg

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lawnchairsociety/lootforge/internal/items"
	"github.com/lawnchairsociety/lootforge/internal/logger"
	"github.com/lawnchairsociety/lootforge/internal/loot"
	"github.com/lawnchairsociety/lootforge/internal/monster"
	"github.com/lawnchairsociety/lootforge/internal/quest"
	"github.com/lawnchairsociety/lootforge/internal/rng"
	"github.com/lawnchairsociety/lootforge/internal/skill"
	"github.com/lawnchairsociety/lootforge/internal/telemetry"
	"github.com/lawnchairsociety/lootforge/internal/zone"
)

// ErrInvalidArgument is returned for a tier or level below 1.
var ErrInvalidArgument = items.ErrInvalidArgument

// Options configures a Generator.
type Options struct {
	Seed   int64        // 0 seeds from the clock
	Bias   loot.Bias    // nil uses loot.DefaultBias
	Tracer trace.Tracer // nil uses the global provider
}

// Generator is safe for concurrent use. Calls are serialized, so a seeded
// generator yields the same records for the same call order.
type Generator struct {
	mu       sync.Mutex
	src      *rng.Locked
	items    *loot.Synthesizer
	monsters *monster.Synthesizer
	quests   *quest.Synthesizer
	skills   *skill.Synthesizer
	tracer   trace.Tracer
}

// New creates a generator with every synthesizer sharing one source
func New(opts Options) *Generator {
	src := rng.NewLocked(opts.Seed)
	tracer := opts.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer("pcg")
	}

	return &Generator{
		src:      src,
		items:    loot.NewSynthesizer(src, opts.Bias),
		monsters: monster.NewSynthesizer(src),
		quests:   quest.NewSynthesizer(src),
		skills:   skill.NewSynthesizer(src),
		tracer:   tracer,
	}
}

// Seed returns the seed in use, including one chosen from the clock
func (g *Generator) Seed() int64 {
	return g.src.Seed()
}

// Item synthesizes one item.
func (g *Generator) Item(ctx context.Context, req loot.Request) (*items.Item, error) {
	_, span := g.tracer.Start(ctx, "pcg.item")
	defer span.End()
	span.SetAttributes(
		attribute.Int("item.tier", req.Tier),
		attribute.String("item.forced_category", req.Category.String()),
		attribute.String("zone", req.Zone.String()),
	)

	g.mu.Lock()
	item, err := g.items.Synthesize(req)
	g.mu.Unlock()
	if err != nil {
		fail(span, "item", err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("item.id", item.ID),
		attribute.String("item.category", item.Category.String()),
		attribute.String("item.rarity", item.Rarity.String()),
		attribute.Int("item.value", item.Value),
	)
	logger.Debug("item synthesized", "id", item.ID, "name", item.Name, "rarity", item.Rarity.String(), "tier", item.Tier)
	return item, nil
}

// Material synthesizes one crafting material.
func (g *Generator) Material(ctx context.Context, tier int, kind items.MaterialKind) (*items.Item, error) {
	_, span := g.tracer.Start(ctx, "pcg.material")
	defer span.End()
	span.SetAttributes(
		attribute.Int("item.tier", tier),
		attribute.String("material.kind", kind.String()),
	)

	g.mu.Lock()
	item, err := g.items.SynthesizeMaterial(tier, kind)
	g.mu.Unlock()
	if err != nil {
		fail(span, "material", err)
		return nil, err
	}

	span.SetAttributes(attribute.String("item.id", item.ID))
	logger.Debug("material synthesized", "id", item.ID, "name", item.Name)
	return item, nil
}

// Monster synthesizes one monster.
func (g *Generator) Monster(ctx context.Context, level int, z zone.Kind, isBoss bool) (*monster.Monster, error) {
	_, span := g.tracer.Start(ctx, "pcg.monster")
	defer span.End()
	span.SetAttributes(
		attribute.Int("monster.level", level),
		attribute.String("zone", z.String()),
		attribute.Bool("monster.boss", isBoss),
	)

	g.mu.Lock()
	m, err := g.monsters.Synthesize(level, z, isBoss)
	g.mu.Unlock()
	if err != nil {
		fail(span, "monster", err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("monster.id", m.ID),
		attribute.Int("monster.max_health", m.MaxHealth),
		attribute.Int("monster.attack_power", m.AttackPower),
	)
	logger.Debug("monster synthesized", "id", m.ID, "name", m.Name, "level", m.Level, "boss", m.IsBoss)
	return m, nil
}

// Quest synthesizes one kill quest.
func (g *Generator) Quest(ctx context.Context, level int) (*quest.Quest, error) {
	_, span := g.tracer.Start(ctx, "pcg.quest")
	defer span.End()
	span.SetAttributes(attribute.Int("quest.level", level))

	g.mu.Lock()
	q, err := g.quests.Synthesize(level)
	g.mu.Unlock()
	if err != nil {
		fail(span, "quest", err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("quest.id", q.ID),
		attribute.Int("quest.target_count", q.TargetCount),
	)
	logger.Debug("quest synthesized", "id", q.ID, "targets", q.TargetCount)
	return q, nil
}

// Skill synthesizes one job skill.
func (g *Generator) Skill(ctx context.Context, job skill.Job, tier int) (*skill.Skill, error) {
	_, span := g.tracer.Start(ctx, "pcg.skill")
	defer span.End()
	span.SetAttributes(
		attribute.String("skill.job", string(job)),
		attribute.Int("skill.tier", tier),
	)

	g.mu.Lock()
	sk, err := g.skills.Synthesize(job, tier)
	g.mu.Unlock()
	if err != nil {
		fail(span, "skill", err)
		return nil, err
	}

	span.SetAttributes(attribute.String("skill.id", sk.ID))
	logger.Debug("skill synthesized", "id", sk.ID, "name", sk.Name)
	return sk, nil
}

// fail records a rejected request on the span and in the log
func fail(span trace.Span, kind string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	logger.Warning("synthesis rejected", "kind", kind, "error", err)
}
