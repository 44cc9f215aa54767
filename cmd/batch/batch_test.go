package batch_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/constraint-foundry/winnow/cmd/batch"
)

func TestBatch(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Batch Suite")
}

var _ = Describe("Run", func() {
	It("should reject a non-positive worker count", func() {
		_, err := batch.Run(context.Background(), []string{"TWO + TWO = FOUR"}, 0)
		Expect(err).To(HaveOccurred())
	})

	It("should return nothing for an empty batch", func() {
		results, err := batch.Run(context.Background(), nil, 2)
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(BeEmpty())
	})

	It("should solve puzzles concurrently and keep input order", func() {
		results, err := batch.Run(context.Background(), []string{
			"TWO + TWO = FOUR",
			"not a puzzle",
			"A + A = AB",
		}, 2)
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(HaveLen(3))

		Expect(results[0].Index).To(Equal(0))
		Expect(results[0].Err).ToNot(HaveOccurred())
		Expect(results[0].Answer).ToNot(BeEmpty())
		Expect(results[0].Nodes).To(BeNumerically(">", 0))

		Expect(results[1].Index).To(Equal(1))
		Expect(results[1].Err).To(HaveOccurred())

		Expect(results[2].Index).To(Equal(2))
		Expect(results[2].Err).To(HaveOccurred())
		Expect(results[2].Answer).To(BeEmpty())
	})

	It("should serve a repeated puzzle from the cache", func() {
		results, err := batch.Run(context.Background(), []string{
			"TWO + TWO = FOUR",
			"two + two = four",
		}, 1)
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(HaveLen(2))

		Expect(results[0].Cached).To(BeFalse())
		Expect(results[1].Cached).To(BeTrue())
		Expect(results[1].Answer).To(Equal(results[0].Answer))
	})

	It("should stop when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		results, err := batch.Run(ctx, []string{"SEND + MORE = MONEY"}, 1)
		if err == nil {
			// the batch won the race with cancellation; the solve
			// itself must still have been cut short
			Expect(results[0].Err).To(HaveOccurred())
		} else {
			Expect(err).To(MatchError(context.Canceled))
		}
	})
})
