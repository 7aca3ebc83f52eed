package asset_test

import (
	stderrors "errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/frahmantamala/asset-inventory/internal"
	"github.com/frahmantamala/asset-inventory/internal/asset"
)

func TestAssetService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Asset Service Suite")
}

// mockAssetRepository implements asset.Repository in memory.
type mockAssetRepository struct {
	byID         map[int64]*asset.Asset
	byAssetID    map[string]*asset.Asset
	nextID       int64
	createError  error
	getError     error
	updateError  error
	deleteError  error
	lastIDError  error
	conflictOnce bool
	createCalls  int
}

func newMockAssetRepository() *mockAssetRepository {
	return &mockAssetRepository{
		byID:      make(map[int64]*asset.Asset),
		byAssetID: make(map[string]*asset.Asset),
		nextID:    1,
	}
}

func (m *mockAssetRepository) Create(a *asset.Asset) error {
	m.createCalls++
	if m.createError != nil {
		return m.createError
	}
	if m.conflictOnce {
		// simulate a concurrent create winning the same identifier, the
		// conflicting row appears in the store so the retry sees it
		m.conflictOnce = false
		winner := &asset.Asset{AssetID: a.AssetID, AssetType: a.AssetType}
		winner.ID = m.nextID
		m.nextID++
		m.byID[winner.ID] = winner
		m.byAssetID[winner.AssetID] = winner
		return errors.ErrDuplicateAssetID
	}
	if _, exists := m.byAssetID[a.AssetID]; exists {
		return errors.ErrDuplicateAssetID
	}
	a.ID = m.nextID
	m.nextID++
	m.byID[a.ID] = a
	m.byAssetID[a.AssetID] = a
	return nil
}

func (m *mockAssetRepository) GetByID(id int64) (*asset.Asset, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	a, exists := m.byID[id]
	if !exists {
		return nil, errors.ErrAssetNotFound
	}
	return a, nil
}

func (m *mockAssetRepository) List(filter asset.ListFilter) ([]*asset.Asset, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	var result []*asset.Asset
	for _, a := range m.byID {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.AssetType != "" && a.AssetType != filter.AssetType {
			continue
		}
		if filter.Location != "" && a.Location != filter.Location {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (m *mockAssetRepository) Update(a *asset.Asset) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.byID[a.ID] = a
	m.byAssetID[a.AssetID] = a
	return nil
}

func (m *mockAssetRepository) DeleteByAssetID(assetID string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	a, exists := m.byAssetID[assetID]
	if !exists {
		return errors.ErrAssetNotFound
	}
	delete(m.byAssetID, assetID)
	delete(m.byID, a.ID)
	return nil
}

func (m *mockAssetRepository) LastAssetIDForPrefix(prefix string) (string, error) {
	if m.lastIDError != nil {
		return "", m.lastIDError
	}
	best := ""
	for id := range m.byAssetID {
		if len(id) < len(prefix) || id[:len(prefix)] != prefix {
			continue
		}
		if len(id) > len(best) || (len(id) == len(best) && id > best) {
			best = id
		}
	}
	return best, nil
}

var _ = Describe("AssetService", func() {
	var (
		service  *asset.Service
		mockRepo *mockAssetRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockAssetRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = asset.NewService(mockRepo, logger)
	})

	Describe("CreateAsset", func() {
		Context("when registering the first asset of a type", func() {
			It("should assign the 001 identifier for the type prefix", func() {
				dto := asset.CreateAssetDTO{
					AssetType: "Laptop",
					Make:      "Dell",
					Model:     "Latitude 5440",
					Status:    "Available",
				}

				result, err := service.CreateAsset(dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.AssetID).To(Equal("LAP001"))
				Expect(result.ID).To(BeNumerically(">", 0))
				Expect(result.RegistrationDate).ToNot(BeZero())
			})
		})

		Context("when assets of the type already exist", func() {
			It("should continue the sequence from the highest identifier", func() {
				for i := 0; i < 2; i++ {
					_, err := service.CreateAsset(asset.CreateAssetDTO{AssetType: "Laptop"})
					Expect(err).ToNot(HaveOccurred())
				}

				result, err := service.CreateAsset(asset.CreateAssetDTO{AssetType: "Laptop"})

				Expect(err).ToNot(HaveOccurred())
				Expect(result.AssetID).To(Equal("LAP003"))
			})

			It("should keep independent sequences per prefix", func() {
				_, err := service.CreateAsset(asset.CreateAssetDTO{AssetType: "Laptop"})
				Expect(err).ToNot(HaveOccurred())

				result, err := service.CreateAsset(asset.CreateAssetDTO{AssetType: "Monitor"})

				Expect(err).ToNot(HaveOccurred())
				Expect(result.AssetID).To(Equal("MON001"))
			})
		})

		Context("when status is omitted", func() {
			It("should default the status to Available", func() {
				result, err := service.CreateAsset(asset.CreateAssetDTO{AssetType: "Laptop"})

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(asset.StatusAvailable))
			})
		})

		Context("when the request is invalid", func() {
			It("should reject a missing asset type", func() {
				_, err := service.CreateAsset(asset.CreateAssetDTO{})

				Expect(err).To(HaveOccurred())
				appErr, ok := errors.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Type).To(Equal(errors.ErrorTypeValidation))
			})

			It("should reject an asset type outside the closed set", func() {
				_, err := service.CreateAsset(asset.CreateAssetDTO{AssetType: "Spaceship"})

				Expect(err).To(HaveOccurred())
			})

			It("should reject a status outside the closed set", func() {
				_, err := service.CreateAsset(asset.CreateAssetDTO{
					AssetType: "Laptop",
					Status:    "Broken",
				})

				Expect(err).To(HaveOccurred())
			})
		})

		Context("when a concurrent create wins the same identifier", func() {
			It("should recompute the identifier and succeed", func() {
				mockRepo.conflictOnce = true

				result, err := service.CreateAsset(asset.CreateAssetDTO{AssetType: "Laptop"})

				Expect(err).ToNot(HaveOccurred())
				Expect(result.AssetID).To(Equal("LAP002"))
				Expect(mockRepo.createCalls).To(Equal(2))
			})
		})

		Context("when a serial number conflicts", func() {
			It("should surface the conflict without retrying", func() {
				mockRepo.createError = errors.ErrDuplicateSerial

				_, err := service.CreateAsset(asset.CreateAssetDTO{AssetType: "Laptop"})

				Expect(err).To(HaveOccurred())
				appErr, ok := errors.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Code).To(Equal(errors.ErrCodeDuplicateSerial))
				Expect(mockRepo.createCalls).To(Equal(1))
			})
		})

		Context("when the stored identifier is corrupt", func() {
			It("should fail instead of guessing a fresh identifier", func() {
				corrupt := &asset.Asset{ID: 99, AssetID: "LAPXYZ", AssetType: "Laptop"}
				mockRepo.byID[corrupt.ID] = corrupt
				mockRepo.byAssetID[corrupt.AssetID] = corrupt

				_, err := service.CreateAsset(asset.CreateAssetDTO{AssetType: "Laptop"})

				Expect(err).To(HaveOccurred())
				appErr, ok := errors.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Code).To(Equal(errors.ErrCodeCorruptAssetID))
			})
		})
	})

	Describe("GetAssetByID", func() {
		It("should return a stored asset", func() {
			created, err := service.CreateAsset(asset.CreateAssetDTO{AssetType: "Laptop"})
			Expect(err).ToNot(HaveOccurred())

			found, err := service.GetAssetByID(created.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(found.AssetID).To(Equal(created.AssetID))
		})

		It("should report not found for an unknown id", func() {
			_, err := service.GetAssetByID(12345)

			Expect(err).To(HaveOccurred())
			Expect(stderrors.Is(err, errors.ErrAssetNotFound)).To(BeTrue())
		})
	})

	Describe("ListAssets", func() {
		It("should reject a filter status outside the closed set", func() {
			_, err := service.ListAssets(asset.ListFilter{Status: "Broken"})

			Expect(err).To(HaveOccurred())
		})

		It("should filter by status", func() {
			_, err := service.CreateAsset(asset.CreateAssetDTO{AssetType: "Laptop", Status: "Assigned"})
			Expect(err).ToNot(HaveOccurred())
			_, err = service.CreateAsset(asset.CreateAssetDTO{AssetType: "Laptop", Status: "Available"})
			Expect(err).ToNot(HaveOccurred())

			assets, err := service.ListAssets(asset.ListFilter{Status: "Assigned"})

			Expect(err).ToNot(HaveOccurred())
			Expect(assets).To(HaveLen(1))
			Expect(assets[0].Status).To(Equal("Assigned"))
		})
	})

	Describe("UpdateAsset", func() {
		var created *asset.Asset

		BeforeEach(func() {
			var err error
			created, err = service.CreateAsset(asset.CreateAssetDTO{
				AssetType: "Laptop",
				Status:    "Available",
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should apply only the provided fields", func() {
			status := "Assigned"
			assignee := "jdoe"

			updated, err := service.UpdateAsset(created.ID, asset.UpdateAssetDTO{
				Status:   &status,
				Assignee: &assignee,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Status).To(Equal("Assigned"))
			Expect(updated.Assignee).To(Equal("jdoe"))
			Expect(updated.AssetType).To(Equal("Laptop"))
		})

		It("should ignore an asset_id in the request body", func() {
			rogue := "HAX999"

			updated, err := service.UpdateAsset(created.ID, asset.UpdateAssetDTO{AssetID: &rogue})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.AssetID).To(Equal(created.AssetID))
		})

		It("should reject an invalid status", func() {
			status := "Broken"

			_, err := service.UpdateAsset(created.ID, asset.UpdateAssetDTO{Status: &status})

			Expect(err).To(HaveOccurred())
		})

		It("should report not found for an unknown id", func() {
			status := "Assigned"

			_, err := service.UpdateAsset(98765, asset.UpdateAssetDTO{Status: &status})

			Expect(err).To(HaveOccurred())
			Expect(stderrors.Is(err, errors.ErrAssetNotFound)).To(BeTrue())
		})
	})

	Describe("DeleteAsset", func() {
		It("should delete by the generated identifier", func() {
			created, err := service.CreateAsset(asset.CreateAssetDTO{AssetType: "Laptop"})
			Expect(err).ToNot(HaveOccurred())

			Expect(service.DeleteAsset(created.AssetID)).To(Succeed())

			_, err = service.GetAssetByID(created.ID)
			Expect(err).To(HaveOccurred())
		})

		It("should report not found for an unknown identifier", func() {
			err := service.DeleteAsset("LAP404")

			Expect(err).To(HaveOccurred())
			Expect(stderrors.Is(err, errors.ErrAssetNotFound)).To(BeTrue())
		})
	})
})
