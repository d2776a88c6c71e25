package flight

import (
	"time"

	simcore "seaplane/internal/core"
	"seaplane/pkg/core"
)

// AssetCatalog describes what the frontend has loaded. The sim only needs
// counts to choose skins; the handles stay with the renderer.
type AssetCatalog struct {
	Ready       bool
	Backgrounds int
	Piers       int
}

// Run is the context of one flight: everything generated from the seed at
// start. Only Bonus.Taken changes afterwards.
type Run struct {
	Seed     uint32
	Viewport simcore.Size
	Duration time.Duration

	Path      *Path
	Bonuses   []Bonus
	Decor     []DecorBonus
	FakePiers []FakePier

	EngineWillFail bool
	EngineFailU    float64
	WillOvershoot  bool

	// Skin indices into the frontend's assets, -1 without assets.
	Background int
	PierSkin   int
}

// NewRun generates a complete run context from one seed.
func NewRun(cfg Config, seed uint32, view simcore.Size, assets AssetCatalog) *Run {
	if view.W <= 0 || view.H <= 0 {
		view = simcore.Size{W: cfg.Width, H: cfg.Height}
	}
	p := cfg.Params
	r := &Run{Seed: seed, Viewport: view, Background: -1, PierSkin: -1}

	durRNG := core.NewRNG(core.SubSeed(seed, core.SaltDuration))
	r.Duration = p.DurationMin + time.Duration(durRNG.Float()*float64(p.DurationSpan))
	flightScale := float64(r.Duration) / float64(2*time.Second)

	r.Path = BuildPath(float64(view.W), float64(view.H), seed, flightScale, p.PlaneBottomPx)
	r.Bonuses = BuildBonuses(r.Path, seed)
	r.Decor = BuildDecor(r.Path, seed, p.DecorCount, p.DecorAttempts)
	r.FakePiers = BuildFakePiers(r.Path, seed, p.FakePierCount, p.PierAttempts)

	if assets.Ready && assets.Backgrounds > 0 && assets.Piers > 0 {
		rng := core.NewRNG(core.SubSeed(seed, core.SaltAssets))
		r.Background = rng.Intn(assets.Backgrounds)
		r.PierSkin = rng.Intn(assets.Piers)
	}

	roll := core.NewRNG(core.SubSeed(seed, core.SaltFailure))
	r.EngineWillFail = roll.Chance(p.EngineFailChance)
	r.EngineFailU = -1
	if r.EngineWillFail {
		r.EngineFailU = p.EngineFailUMin + roll.Float()*p.EngineFailUSpan
	}
	r.WillOvershoot = roll.Chance(p.OvershootChance)
	return r
}

// BonusPos returns the world position of a bonus.
func (r *Run) BonusPos(b Bonus) (float64, float64) {
	return r.Path.XAtU(b.U), r.Path.YAtU(b.U)
}
