package asset_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/frahmantamala/asset-inventory/internal"
	"github.com/frahmantamala/asset-inventory/internal/asset"
)

var _ = Describe("PrefixForType", func() {
	It("should take the first three characters upper-cased", func() {
		Expect(asset.PrefixForType("Laptop")).To(Equal("LAP"))
		Expect(asset.PrefixForType("Monitor")).To(Equal("MON"))
		Expect(asset.PrefixForType("desktop")).To(Equal("DES"))
	})

	It("should use the whole type when it is three characters or fewer", func() {
		Expect(asset.PrefixForType("UPS")).To(Equal("UPS"))
		Expect(asset.PrefixForType("tv")).To(Equal("TV"))
	})

	It("should trim surrounding whitespace before slicing", func() {
		Expect(asset.PrefixForType("  Laptop  ")).To(Equal("LAP"))
	})
})

var _ = Describe("NextAssetID", func() {
	Context("when no identifier exists for the prefix", func() {
		It("should start the sequence at 001", func() {
			id, err := asset.NextAssetID("LAP", "")
			Expect(err).To(BeNil())
			Expect(id).To(Equal("LAP001"))
		})
	})

	Context("when the last identifier has a numeric suffix", func() {
		It("should increment the counter", func() {
			id, err := asset.NextAssetID("LAP", "LAP007")
			Expect(err).To(BeNil())
			Expect(id).To(Equal("LAP008"))
		})

		It("should keep zero padding to three digits", func() {
			id, err := asset.NextAssetID("MON", "MON099")
			Expect(err).To(BeNil())
			Expect(id).To(Equal("MON100"))
		})

		It("should widen past 999 instead of truncating", func() {
			id, err := asset.NextAssetID("LAP", "LAP999")
			Expect(err).To(BeNil())
			Expect(id).To(Equal("LAP1000"))

			id, err = asset.NextAssetID("LAP", "LAP1000")
			Expect(err).To(BeNil())
			Expect(id).To(Equal("LAP1001"))
		})
	})

	Context("when the stored identifier is corrupt", func() {
		It("should fail closed on a non-numeric suffix", func() {
			id, err := asset.NextAssetID("LAP", "LAPXYZ")
			Expect(err).ToNot(BeNil())
			Expect(err.Code).To(Equal(errors.ErrCodeCorruptAssetID))
			Expect(id).To(BeEmpty())
		})

		It("should fail closed on a prefix mismatch", func() {
			id, err := asset.NextAssetID("LAP", "MON004")
			Expect(err).ToNot(BeNil())
			Expect(err.Code).To(Equal(errors.ErrCodeCorruptAssetID))
			Expect(id).To(BeEmpty())
		})
	})
})
