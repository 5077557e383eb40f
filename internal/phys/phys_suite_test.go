package phys

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPhys(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Phys Suite")
}

var _ = Describe("Trajectory", func() {
	var p *Projectile

	BeforeEach(func() {
		p = &Projectile{Speed: 50, AngleDeg: 40, Gravity: Gravity}
	})

	It("starts at the origin", func() {
		traj := p.Trajectory(trajectorySamples)
		Expect(traj[0].X).To(BeZero())
		Expect(traj[0].Y).To(BeZero())
	})

	It("lands at the computed range back at launch height", func() {
		traj := p.Trajectory(trajectorySamples)
		last := traj[len(traj)-1]
		Expect(last.X).To(BeNumerically("~", p.Range(), 1e-6))
		Expect(last.Y).To(BeNumerically("~", 0, 1e-6))
	})

	It("keeps height non-negative for every sample", func() {
		traj := p.Trajectory(trajectorySamples)
		for _, pt := range traj {
			Expect(pt.Y).To(BeNumerically(">=", -1e-9))
		}
	})

	It("peaks at the closed-form maximum height", func() {
		traj := p.Trajectory(trajectorySamples)
		apex := 0.0
		for _, pt := range traj {
			if pt.Y > apex {
				apex = pt.Y
			}
		}
		// Sampling may straddle the true apex, so allow a coarse tolerance.
		Expect(apex).To(BeNumerically("~", p.MaxHeight(), p.MaxHeight()*0.01))
		Expect(apex).To(BeNumerically("<=", p.MaxHeight()+1e-9))
	})

	It("advances monotonically downrange below vertical launch", func() {
		traj := p.Trajectory(trajectorySamples)
		for i := 1; i < len(traj); i++ {
			Expect(traj[i].X).To(BeNumerically(">", traj[i-1].X))
		}
	})

	It("samples at the configured resolution", func() {
		Expect(p.Trajectory(trajectorySamples)).To(HaveLen(trajectorySamples))
	})
})
