package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lawnchairsociety/lootforge/internal/balance"
	"github.com/lawnchairsociety/lootforge/internal/items"
	"github.com/lawnchairsociety/lootforge/internal/logger"
	"github.com/lawnchairsociety/lootforge/internal/loot"
	"github.com/lawnchairsociety/lootforge/internal/monster"
	"github.com/lawnchairsociety/lootforge/internal/quest"
	"github.com/lawnchairsociety/lootforge/internal/skill"
	"github.com/lawnchairsociety/lootforge/internal/zone"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

// parseZone resolves a zone flag. Unknown names are allowed and use the
// fallback tables.
func parseZone(name string) zone.Kind {
	if name == "" {
		return zone.Unknown
	}
	z, ok := zone.Parse(name)
	if !ok {
		logger.Warning("unknown zone, using fallback tables", "zone", name)
	}
	return z
}

// checkCount rejects batch sizes below one
func checkCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: count must be >= 1, got %d", items.ErrInvalidArgument, n)
	}
	return nil
}

func parseCategory(name string) (items.Category, error) {
	if name == "" {
		return items.CategoryNone, nil
	}
	c, ok := items.ParseCategory(name)
	if !ok {
		return items.CategoryNone, fmt.Errorf("unknown category: %s", name)
	}
	return c, nil
}

func runItem(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("item")
	var c common
	c.register(fs)
	tier := fs.Int("tier", 1, "Item tier (>= 1)")
	category := fs.String("category", "", "Force a category (weapon, helm, armor, ...)")
	zoneName := fs.String("zone", "", "Zone the item drops in")
	count := fs.Int("count", 1, "Number of items")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkCount(*count); err != nil {
		return err
	}

	cat, err := parseCategory(*category)
	if err != nil {
		return err
	}
	e, err := c.setup(ctx)
	if err != nil {
		return err
	}
	defer e.shutdown()

	req := loot.Request{Tier: *tier, Category: cat, Zone: parseZone(*zoneName)}
	generated := make([]*items.Item, 0, *count)
	for i := 0; i < *count; i++ {
		item, err := e.gen.Item(ctx, req)
		if err != nil {
			return err
		}
		generated = append(generated, item)
	}

	return emit(out, c.format, generated, func(w io.Writer) {
		for _, item := range generated {
			fmt.Fprintln(w, item)
			fmt.Fprintf(w, "  %s\n", item.Description)
		}
	})
}

func runMaterial(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("material")
	var c common
	c.register(fs)
	tier := fs.Int("tier", 1, "Material tier (>= 1)")
	kindName := fs.String("kind", "mine", "Material kind: mine, wood or fish")
	count := fs.Int("count", 1, "Number of materials")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkCount(*count); err != nil {
		return err
	}

	kind, ok := items.ParseMaterialKind(*kindName)
	if !ok {
		return fmt.Errorf("unknown material kind: %s", *kindName)
	}
	e, err := c.setup(ctx)
	if err != nil {
		return err
	}
	defer e.shutdown()

	generated := make([]*items.Item, 0, *count)
	for i := 0; i < *count; i++ {
		item, err := e.gen.Material(ctx, *tier, kind)
		if err != nil {
			return err
		}
		generated = append(generated, item)
	}

	return emit(out, c.format, generated, func(w io.Writer) {
		for _, item := range generated {
			fmt.Fprintln(w, item)
		}
	})
}

func runMonster(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("monster")
	var c common
	c.register(fs)
	level := fs.Int("level", 1, "Monster level (>= 1)")
	zoneName := fs.String("zone", "", "Zone the monster spawns in")
	boss := fs.Bool("boss", false, "Generate a boss")
	count := fs.Int("count", 1, "Number of monsters")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkCount(*count); err != nil {
		return err
	}

	e, err := c.setup(ctx)
	if err != nil {
		return err
	}
	defer e.shutdown()

	z := parseZone(*zoneName)
	if z.IsSafe() {
		logger.Warning("no hostile monsters spawn in a safe zone, generating anyway", "zone", z)
	}
	generated := make([]*monster.Monster, 0, *count)
	for i := 0; i < *count; i++ {
		m, err := e.gen.Monster(ctx, *level, z, *boss)
		if err != nil {
			return err
		}
		generated = append(generated, m)
	}

	return emit(out, c.format, generated, func(w io.Writer) {
		for _, m := range generated {
			fmt.Fprintln(w, m)
		}
	})
}

func runQuest(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("quest")
	var c common
	c.register(fs)
	level := fs.Int("level", 1, "Quest level (>= 1)")
	count := fs.Int("count", 1, "Number of quests")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkCount(*count); err != nil {
		return err
	}

	e, err := c.setup(ctx)
	if err != nil {
		return err
	}
	defer e.shutdown()

	generated := make([]*quest.Quest, 0, *count)
	for i := 0; i < *count; i++ {
		q, err := e.gen.Quest(ctx, *level)
		if err != nil {
			return err
		}
		generated = append(generated, q)
	}

	return emit(out, c.format, generated, func(w io.Writer) {
		for _, q := range generated {
			fmt.Fprintln(w, q)
			fmt.Fprintf(w, "  %s\n", q.Description)
		}
	})
}

func runSkill(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("skill")
	var c common
	c.register(fs)
	jobName := fs.String("job", "none", "Job: warrior, mage, archer or none")
	tier := fs.Int("tier", 1, "Skill tier (>= 1)")
	count := fs.Int("count", 1, "Number of skills")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkCount(*count); err != nil {
		return err
	}

	job, err := skill.ParseJob(*jobName)
	if err != nil {
		return err
	}
	e, err := c.setup(ctx)
	if err != nil {
		return err
	}
	defer e.shutdown()

	generated := make([]*skill.Skill, 0, *count)
	for i := 0; i < *count; i++ {
		sk, err := e.gen.Skill(ctx, job, *tier)
		if err != nil {
			return err
		}
		generated = append(generated, sk)
	}

	return emit(out, c.format, generated, func(w io.Writer) {
		for _, sk := range generated {
			fmt.Fprintln(w, sk)
			fmt.Fprintf(w, "  %s\n", sk.Description)
		}
	})
}

// shareRow is one histogram line of a sample report
type shareRow struct {
	Name  string  `json:"name" yaml:"name"`
	Count int     `json:"count" yaml:"count"`
	Share float64 `json:"share" yaml:"share"`
}

type sampleReport struct {
	Seed        int64      `json:"seed" yaml:"seed"`
	Iterations  int        `json:"iterations" yaml:"iterations"`
	Workers     int        `json:"workers" yaml:"workers"`
	Tier        int        `json:"tier" yaml:"tier"`
	Zone        string     `json:"zone" yaml:"zone"`
	Rarity      []shareRow `json:"rarity" yaml:"rarity"`
	Category    []shareRow `json:"category" yaml:"category"`
	AvgValue    float64    `json:"avg_value" yaml:"avg_value"`
	MinValue    int        `json:"min_value" yaml:"min_value"`
	MaxValue    int        `json:"max_value" yaml:"max_value"`
	WornShare   float64    `json:"worn_share" yaml:"worn_share"`
	SuffixShare float64    `json:"suffix_share" yaml:"suffix_share"`
}

func newSampleReport(d *balance.Distribution, workers, tier int, z zone.Kind) sampleReport {
	r := sampleReport{
		Seed:       d.Seed,
		Iterations: d.Iterations,
		Workers:    workers,
		Tier:       tier,
		Zone:       z.String(),
		AvgValue:   d.AvgValue(),
		MinValue:   d.MinValue,
		MaxValue:   d.MaxValue,
	}
	for _, rarity := range items.Rarities {
		r.Rarity = append(r.Rarity, shareRow{Name: rarity.String(), Count: d.Rarity[rarity], Share: d.RarityShare(rarity)})
	}
	for _, cat := range items.Categories {
		if d.Category[cat] == 0 {
			continue
		}
		r.Category = append(r.Category, shareRow{Name: cat.String(), Count: d.Category[cat], Share: d.CategoryShare(cat)})
	}
	if commons := d.Rarity[items.Common]; commons > 0 {
		r.WornShare = float64(d.Worn) / float64(commons)
	}
	if d.Iterations > 0 {
		r.SuffixShare = float64(d.Suffixed) / float64(d.Iterations)
	}
	return r
}

func runSample(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("sample")
	var c common
	c.register(fs)
	tier := fs.Int("tier", 1, "Item tier (>= 1)")
	category := fs.String("category", "", "Force a category")
	zoneName := fs.String("zone", "", "Zone to sample")
	iterations := fs.Int("iterations", 0, "Number of items (0 = config value)")
	workers := fs.Int("workers", 0, "Parallel workers (0 = config value)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := parseCategory(*category)
	if err != nil {
		return err
	}
	e, err := c.setup(ctx)
	if err != nil {
		return err
	}
	defer e.shutdown()

	cfg := balance.SampleConfig{
		Seed:       e.cfg.Generator.Seed,
		Workers:    e.cfg.Balance.Workers,
		Iterations: e.cfg.Balance.Iterations,
		Tier:       *tier,
		Category:   cat,
		Zone:       parseZone(*zoneName),
		Bias:       e.cfg.Bias(),
	}
	if *iterations > 0 {
		cfg.Iterations = *iterations
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	d, err := balance.SampleItems(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Always("sample complete", "seed", d.Seed, "iterations", d.Iterations, "workers", cfg.Workers)

	report := newSampleReport(d, cfg.Workers, cfg.Tier, cfg.Zone)
	return emit(out, c.format, report, func(w io.Writer) {
		fmt.Fprintf(w, "=== Item Sample (tier %d, zone %s) ===\n", report.Tier, report.Zone)
		fmt.Fprintf(w, "Seed: %d  Iterations: %d  Workers: %d\n\n", report.Seed, report.Iterations, report.Workers)
		fmt.Fprintln(w, "Rarity:")
		for _, row := range report.Rarity {
			fmt.Fprintf(w, "  %-10s %8d  %6.2f%%\n", row.Name, row.Count, row.Share*100)
		}
		fmt.Fprintln(w, "Category:")
		for _, row := range report.Category {
			fmt.Fprintf(w, "  %-10s %8d  %6.2f%%\n", row.Name, row.Count, row.Share*100)
		}
		fmt.Fprintf(w, "\nValue: avg %.1f, min %d, max %d\n", report.AvgValue, report.MinValue, report.MaxValue)
		fmt.Fprintf(w, "Worn commons: %.2f%%  Suffixed: %.2f%%\n", report.WornShare*100, report.SuffixShare*100)
	})
}

func runCurve(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("curve")
	var c common
	c.registerFormat(fs)
	from := fs.Int("from", 1, "First level")
	to := fs.Int("to", 100, "Last level")
	step := fs.Int("step", 10, "Level step")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := checkFormat(c.format); err != nil {
		return err
	}
	levels, err := balance.Levels(*from, *to, *step)
	if err != nil {
		return err
	}

	points := balance.MonsterCurve(levels)
	return emit(out, c.format, points, func(w io.Writer) {
		fmt.Fprintf(w, "%-6s %-12s %8s %10s %6s %8s %6s %8s\n", "Level", "Prefix", "HP", "Boss HP", "ATK", "Boss ATK", "EXP", "Boss EXP")
		for _, p := range points {
			fmt.Fprintf(w, "%-6d %-12s %8d %10d %6d %8d %6d %8d\n", p.Level, p.Prefix, p.Health, p.BossHealth, p.Attack, p.BossAttack, p.Exp, p.BossExp)
		}
	})
}
