package phys

import (
	"errors"
	"math"
	"testing"

	"github.com/jksalcedo/physlab/internal/sim"
)

func TestProjectileKnownValues(t *testing.T) {
	// speed=20 m/s, angle=45 deg, g=9.81
	p := &Projectile{Speed: 20, AngleDeg: 45, Gravity: 9.81}

	if got := p.TimeOfFlight(); math.Abs(got-2.883) > 0.01 {
		t.Errorf("expected time of flight ~2.88 s, got %f", got)
	}
	if got := p.MaxHeight(); math.Abs(got-10.19) > 0.01 {
		t.Errorf("expected max height ~10.19 m, got %f", got)
	}
	if got := p.Range(); math.Abs(got-40.77) > 0.01 {
		t.Errorf("expected range ~40.77 m, got %f", got)
	}
}

func TestProjectileRangeMaxAt45(t *testing.T) {
	best := &Projectile{Speed: 50, AngleDeg: 45, Gravity: Gravity}
	bestRange := best.Range()

	for angle := 0.0; angle <= 90; angle += 5 {
		p := &Projectile{Speed: 50, AngleDeg: angle, Gravity: Gravity}
		if p.Range() > bestRange+1e-9 {
			t.Errorf("range at %.0f° exceeds range at 45°", angle)
		}
	}
}

func TestProjectileVertical(t *testing.T) {
	p := &Projectile{Speed: 30, AngleDeg: 90, Gravity: Gravity}

	if got := p.Range(); math.Abs(got) > 1e-9 {
		t.Errorf("expected zero range straight up, got %f", got)
	}
	if got := p.MaxHeight(); got <= 0 {
		t.Errorf("expected positive apex straight up, got %f", got)
	}
	if got := p.TimeOfFlight(); got <= 0 {
		t.Errorf("expected positive flight time straight up, got %f", got)
	}
}

func TestProjectileDegenerateTrajectory(t *testing.T) {
	for _, p := range []*Projectile{
		{Speed: 0, AngleDeg: 45, Gravity: Gravity},
		{Speed: 50, AngleDeg: 0, Gravity: Gravity},
	} {
		traj := p.Trajectory(trajectorySamples)
		if len(traj) != 1 {
			t.Fatalf("expected single-point trajectory, got %d points", len(traj))
		}
		if traj[0].X != 0 || traj[0].Y != 0 {
			t.Errorf("expected origin, got (%f, %f)", traj[0].X, traj[0].Y)
		}
	}
}

func TestProjectileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Projectile)
		wantErr error
	}{
		{"negative speed", func(p *Projectile) { p.Speed = -1 }, sim.ErrNegativeInput},
		{"angle above 90", func(p *Projectile) { p.AngleDeg = 95 }, sim.ErrAngleBounds},
		{"negative angle", func(p *Projectile) { p.AngleDeg = -5 }, sim.ErrAngleBounds},
		{"zero gravity", func(p *Projectile) { p.Gravity = 0 }, sim.ErrNonPositive},
		{"negative gravity", func(p *Projectile) { p.Gravity = -9.81 }, sim.ErrNonPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile()
			tt.mutate(p)
			if err := p.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
