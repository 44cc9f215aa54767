package input_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/constraint-foundry/winnow/pkg/winnow"
	"github.com/constraint-foundry/winnow/pkg/winnow/constraint"
	"github.com/constraint-foundry/winnow/pkg/winnow/input"
)

func TestInput(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Input Suite")
}

var _ = Describe("ProblemBuilder", func() {
	It("should build a problem preserving declaration order", func() {
		problem, err := input.NewProblemBuilder().
			Variable("x", winnow.Range(0, 3)).
			Variable("y", winnow.Range(0, 3)).
			Constraint(constraint.NotEqual("x", "y")).
			Problem()
		Expect(err).ToNot(HaveOccurred())
		Expect(problem.Variables()).To(Equal([]winnow.Variable{"x", "y"}))
		Expect(problem.Domains()).To(HaveLen(2))
		Expect(problem.Constraints()).To(HaveLen(1))
	})

	It("should reject duplicate variable declarations", func() {
		_, err := input.NewProblemBuilder().
			Variable("x", winnow.Range(0, 3)).
			Variable("x", winnow.Range(0, 5)).
			Problem()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`duplicate variable "x"`))
	})

	It("should reject constraints over undeclared variables", func() {
		_, err := input.NewProblemBuilder().
			Variable("x", winnow.Range(0, 3)).
			Constraint(constraint.NotEqual("x", "ghost")).
			Problem()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`undeclared variable "ghost"`))
	})

	It("should reject binary constraints whose endpoints coincide", func() {
		_, err := input.NewProblemBuilder().
			Variable("x", winnow.Range(0, 3)).
			Constraint(constraint.NotEqual("x", "x")).
			Problem()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("endpoints coincide"))
	})

	It("should isolate the problem's domains from the builder's", func() {
		builder := input.NewProblemBuilder().Variable("x", winnow.Range(0, 3))
		problem, err := builder.Problem()
		Expect(err).ToNot(HaveOccurred())
		problem.Domains()["x"].Remove(0)
		second, err := builder.Problem()
		Expect(err).ToNot(HaveOccurred())
		Expect(second.Domains()["x"].Len()).To(Equal(3))
	})
})

var _ = Describe("SimpleProblem", func() {
	var problem *input.SimpleProblem

	BeforeEach(func() {
		var err error
		problem, err = input.NewProblemBuilder().
			Variable("x", winnow.Range(1, 4)).
			Variable("y", winnow.Range(1, 4)).
			Constraint(constraint.NotEqual("x", "y")).
			Problem()
		Expect(err).ToNot(HaveOccurred())
	})

	It("should report completeness only when every variable is bound", func() {
		Expect(problem.IsComplete(winnow.Assignment{})).To(BeFalse())
		Expect(problem.IsComplete(winnow.Assignment{"x": 1})).To(BeFalse())
		Expect(problem.IsComplete(winnow.Assignment{"x": 1, "y": 2})).To(BeTrue())
	})

	It("should check every constraint under a complete assignment", func() {
		Expect(problem.SatisfiesConstraints(winnow.Assignment{"x": 1, "y": 2})).To(BeTrue())
		Expect(problem.SatisfiesConstraints(winnow.Assignment{"x": 2, "y": 2})).To(BeFalse())
	})

	It("should evaluate binary conditions in declared order", func() {
		ordered, err := input.NewProblemBuilder().
			Variable("lo", winnow.Range(0, 10)).
			Variable("hi", winnow.Range(0, 10)).
			Constraint(constraint.Binary("lo", "hi", func(a, b winnow.Value) bool { return a < b })).
			Problem()
		Expect(err).ToNot(HaveOccurred())
		Expect(ordered.SatisfiesConstraints(winnow.Assignment{"lo": 1, "hi": 5})).To(BeTrue())
		Expect(ordered.SatisfiesConstraints(winnow.Assignment{"lo": 5, "hi": 1})).To(BeFalse())
	})
})

var _ = Describe("Predicates", func() {
	even := func(v winnow.Value) bool { return v%2 == 0 }
	positive := func(v winnow.Value) bool { return v > 0 }

	It("should and predicates", func() {
		p := input.And(even, positive)
		Expect(p(2)).To(BeTrue())
		Expect(p(-2)).To(BeFalse())
		Expect(p(3)).To(BeFalse())
	})

	It("should or predicates", func() {
		p := input.Or(even, positive)
		Expect(p(-2)).To(BeTrue())
		Expect(p(3)).To(BeTrue())
		Expect(p(-3)).To(BeFalse())
	})

	It("should negate predicates", func() {
		Expect(input.Not(even)(3)).To(BeTrue())
		Expect(input.Not(even)(2)).To(BeFalse())
	})

	It("should admit listed values only", func() {
		p := input.In(1, 3, 5)
		Expect(p(3)).To(BeTrue())
		Expect(p(2)).To(BeFalse())
	})
})
