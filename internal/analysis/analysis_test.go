package analysis_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/potflow/internal/analysis"
	"github.com/san-kum/potflow/internal/flow"
)

func cylinder(uInf, radius float64) flow.Combined {
	return flow.Combine(
		flow.NewUniform(uInf, 0, 0, 0),
		flow.NewDoublet(2*math.Pi*uInf*radius*radius, 0, 0),
	)
}

var _ = Describe("PressureCoefficient", func() {
	It("is zero everywhere in the free stream", func() {
		f := flow.NewUniform(1, 0, 0, 0)
		for _, p := range []flow.Point{{X: 0, Y: 0}, {X: 3, Y: -2}, {X: -1e3, Y: 7}} {
			Expect(analysis.PressureCoefficient(f, p.X, p.Y, 1)).To(Equal(0.0))
		}

		cps, err := analysis.PressureCoefficients(f, []float64{0, 1, 2, 3}, []float64{5}, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(cps).To(Equal([]float64{0, 0, 0, 0}))
	})

	It("matches the analytic cylinder distribution", func() {
		f := cylinder(2, 1)

		Expect(analysis.PressureCoefficient(f, -1, 0, 2)).To(BeNumerically("~", 1, 1e-12))
		Expect(analysis.PressureCoefficient(f, 0, 1, 2)).To(BeNumerically("~", -3, 1e-12))

		for _, theta := range []float64{0.2, 0.9, 2.4} {
			x, y := math.Cos(theta), math.Sin(theta)
			want := 1 - 4*math.Sin(theta)*math.Sin(theta)
			Expect(analysis.PressureCoefficient(f, x, y, 2)).To(BeNumerically("~", want, 1e-12))
		}
	})

	It("agrees between scalar and batched evaluation", func() {
		f := flow.Combine(cylinder(1, 1), flow.NewVortex(1.5, 0, 0))
		xs := []float64{1.2, -0.4, 0.0, 2.5}
		ys := []float64{0.3, 1.5, -1.1, -0.2}

		cps, err := analysis.PressureCoefficients(f, xs, ys, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(cps).To(HaveLen(len(xs)))
		for i := range xs {
			Expect(cps[i]).To(BeNumerically("~", analysis.PressureCoefficient(f, xs[i], ys[i], 1), 1e-12))
		}
	})

	It("surfaces broadcast failures", func() {
		_, err := analysis.PressureCoefficients(flow.DefaultUniform(), []float64{1, 2}, []float64{1, 2, 3}, 1)
		Expect(err).To(MatchError(flow.ErrShapeMismatch))
	})

	It("does not guard a zero free-stream speed", func() {
		cp := analysis.PressureCoefficient(flow.NewUniform(1, 0, 0, 0), 0, 0, 0)
		Expect(math.IsInf(cp, -1)).To(BeTrue())

		cp = analysis.PressureCoefficient(flow.Combine(), 0, 0, 0)
		Expect(math.IsNaN(cp)).To(BeTrue())
	})
})

var _ = Describe("CalculateForce", func() {
	It("returns exactly zero for an empty body", func() {
		fx, fy := analysis.CalculateForce(cylinder(1, 1), nil, analysis.DefaultDensity)
		Expect(fx).To(Equal(0.0))
		Expect(fy).To(Equal(0.0))

		fx, fy = analysis.CalculateForce(flow.NewVortex(1, 0, 0), analysis.Body{}, 2)
		Expect(fx).To(Equal(0.0))
		Expect(fy).To(Equal(0.0))
	})

	It("is unaffected by duplicated vertices", func() {
		f := flow.Combine(flow.NewUniform(1, 0.3, 0, 0), flow.NewVortex(2, 0, 0))
		body := analysis.Circle(flow.Point{X: 0.1, Y: -0.2}, 1.5, 24)

		fx, fy := analysis.CalculateForce(f, body, 1.2)

		withDup := make(analysis.Body, 0, len(body)+2)
		withDup = append(withDup, body[:5]...)
		withDup = append(withDup, body[5], body[5])
		withDup = append(withDup, body[6:]...)

		dx, dy := analysis.CalculateForce(f, withDup, 1.2)
		Expect(dx).To(Equal(fx))
		Expect(dy).To(Equal(fy))
	})

	It("skips a wrap-around duplicate", func() {
		f := flow.NewSource(1, 0, 0)
		body := analysis.Circle(flow.Origin, 2, 16)

		fx, fy := analysis.CalculateForce(f, body, 1)
		closed := append(append(analysis.Body{}, body...), body[0])
		cx, cy := analysis.CalculateForce(f, closed, 1)

		Expect(cx).To(BeNumerically("~", fx, 1e-12))
		Expect(cy).To(BeNumerically("~", fy, 1e-12))
	})

	It("vanishes for constant pressure on a closed polygon", func() {
		f := flow.NewUniform(3, -1, 0, 0)
		body := analysis.Body{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 1}, {X: 1, Y: 2}, {X: -1, Y: 1}}

		fx, fy := analysis.CalculateForce(f, body, 1.25)
		Expect(fx).To(BeNumerically("~", 0, 1e-12))
		Expect(fy).To(BeNumerically("~", 0, 1e-12))
	})

	It("gives no net force on a non-lifting cylinder", func() {
		body := analysis.Circle(flow.Origin, 1, 360)
		fx, fy := analysis.CalculateForce(cylinder(1, 1), body, analysis.DefaultDensity)

		Expect(fx).To(BeNumerically("~", 0, 1e-9))
		Expect(fy).To(BeNumerically("~", 0, 1e-9))
	})

	It("recovers Kutta-Joukowski lift on a spinning cylinder", func() {
		uInf, gamma, rho := 1.0, 2*math.Pi, 1.2
		f := flow.Combine(cylinder(uInf, 1), flow.NewVortex(gamma, 0, 0))
		body := analysis.Circle(flow.Origin, 1, 3600)

		fx, fy := analysis.CalculateForce(f, body, rho)

		Expect(fy).To(BeNumerically("~", -rho*uInf*gamma, 1e-3))
		Expect(math.Abs(fx)).To(BeNumerically("<", 1e-2))
	})

	It("scales linearly with density", func() {
		f := flow.Combine(cylinder(1, 1), flow.NewVortex(-3, 0, 0))
		body := analysis.Circle(flow.Origin, 1, 90)

		fx1, fy1 := analysis.CalculateForce(f, body, 1)
		fx2, fy2 := analysis.CalculateForce(f, body, 2.5)
		Expect(fx2).To(BeNumerically("~", 2.5*fx1, 1e-9))
		Expect(fy2).To(BeNumerically("~", 2.5*fy1, 1e-9))
	})
})

var _ = Describe("CalculateForceStrict", func() {
	f := flow.Combine(cylinder(1, 1), flow.NewVortex(2, 0, 0))

	It("matches CalculateForce on counter-clockwise bodies", func() {
		body := analysis.Circle(flow.Origin, 1, 120)
		fx, fy, err := analysis.CalculateForceStrict(f, body, 1)
		Expect(err).NotTo(HaveOccurred())

		wx, wy := analysis.CalculateForce(f, body, 1)
		Expect(fx).To(Equal(wx))
		Expect(fy).To(Equal(wy))
	})

	It("rejects clockwise bodies", func() {
		body := analysis.Circle(flow.Origin, 1, 120).Reversed()
		_, _, err := analysis.CalculateForceStrict(f, body, 1)
		Expect(err).To(MatchError(analysis.ErrClockwiseBody))
	})

	It("rejects degenerate bodies", func() {
		for _, body := range []analysis.Body{
			nil,
			{{X: 0, Y: 0}, {X: 1, Y: 1}},
			{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
		} {
			_, _, err := analysis.CalculateForceStrict(f, body, 1)
			Expect(err).To(MatchError(analysis.ErrDegenerateBody))
		}
	})
})

var _ = Describe("Body", func() {
	It("generates counter-clockwise circles", func() {
		center := flow.Point{X: 2, Y: -1}
		body := analysis.Circle(center, 3, 720)

		Expect(body).To(HaveLen(720))
		Expect(body[0].X).To(BeNumerically("~", 5, 1e-12))
		Expect(body[0].Y).To(BeNumerically("~", -1, 1e-12))
		Expect(body.IsCounterClockwise()).To(BeTrue())
		Expect(body.SignedArea()).To(BeNumerically("~", 9*math.Pi, 1e-3))

		for _, p := range body {
			Expect(math.Hypot(p.X-center.X, p.Y-center.Y)).To(BeNumerically("~", 3, 1e-12))
		}
	})

	It("returns an empty body for non-positive counts", func() {
		Expect(analysis.Circle(flow.Origin, 1, 0)).To(BeEmpty())
		Expect(analysis.Circle(flow.Origin, 1, -4)).To(BeEmpty())
	})

	It("flips winding when reversed", func() {
		body := analysis.Body{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
		Expect(body.SignedArea()).To(Equal(1.0))

		rev := body.Reversed()
		Expect(rev.SignedArea()).To(Equal(-1.0))
		Expect(rev.IsCounterClockwise()).To(BeFalse())
		Expect(body[0]).To(Equal(flow.Point{}), "receiver untouched")
	})
})
