package des

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ConstantReplicationsDetector", func() {
	It("always reports the configured count as detected", func() {
		d := NewConstantReplicationsDetector(5)

		Expect(d.Detect(1, 0, 0)).To(BeTrue())
		Expect(d.Detected()).To(BeTrue())
		Expect(d.Aborted()).To(BeFalse())
		Expect(d.EstimatedNumber()).To(Equal(5))
	})

	It("ignores every observation passed to Detect", func() {
		d := NewConstantReplicationsDetector(2)

		d.Detect(100, 999.0, 42.0)

		Expect(d.EstimatedNumber()).To(Equal(2))
		Expect(d.Detected()).To(BeTrue())
	})

	It("falls back to the default replication count for non-positive n", func() {
		d := NewConstantReplicationsDetector(0)
		Expect(d.EstimatedNumber()).To(Equal(DefaultReplicationCount))

		d = NewConstantReplicationsDetector(-3)
		Expect(d.EstimatedNumber()).To(Equal(DefaultReplicationCount))
	})

	It("is a no-op on Reset", func() {
		d := NewConstantReplicationsDetector(7)
		d.Reset()

		Expect(d.EstimatedNumber()).To(Equal(7))
		Expect(d.Detected()).To(BeTrue())
	})
})
