package asset_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/asset-inventory/internal/asset"
	assetPostgres "github.com/frahmantamala/asset-inventory/internal/asset/postgres"
)

// sqliteAsset mirrors the assets table for the in-memory test database.
type sqliteAsset struct {
	ID               int64     `gorm:"primaryKey"`
	RegistrationDate time.Time `gorm:"column:registration_date;not null"`
	AssetID          string    `gorm:"column:asset_id;uniqueIndex;not null"`
	AssetType        string    `gorm:"column:asset_type;not null"`
	Make             string    `gorm:"column:make"`
	Model            string    `gorm:"column:model"`
	SerialNumber     *string   `gorm:"column:serial_number;uniqueIndex"`
	OperatingSystem  string    `gorm:"column:operating_system"`
	Processor        string    `gorm:"column:processor"`
	RAM              string    `gorm:"column:ram"`
	Storage          string    `gorm:"column:storage"`
	Location         string    `gorm:"column:location"`
	Status           string    `gorm:"column:status;not null"`
	Assignee         string    `gorm:"column:assignee"`
	Condition        string    `gorm:"column:condition"`
	Notes            string    `gorm:"column:notes"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (sqliteAsset) TableName() string {
	return "assets"
}

var _ = Describe("Asset Handler Integration", func() {
	var router *chi.Mux

	doJSON := func(method, target string, body any) *httptest.ResponseRecorder {
		var reader *bytes.Buffer
		if body != nil {
			raw, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewBuffer(raw)
		} else {
			reader = bytes.NewBuffer(nil)
		}
		req := httptest.NewRequest(method, target, reader)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&sqliteAsset{})).To(Succeed())

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo := assetPostgres.NewAssetRepository(db)
		service := asset.NewService(repo, slogger)
		handler := asset.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/assets", handler.ListAssets)
		router.Post("/assets", handler.CreateAsset)
		router.Get("/assets/{id}", handler.GetAsset)
		router.Put("/assets/{id}", handler.UpdateAsset)
		router.Delete("/assets/{id}", handler.DeleteAsset)
	})

	Describe("POST /assets", func() {
		It("should create an asset and return the generated identifier", func() {
			w := doJSON(http.MethodPost, "/assets", map[string]any{
				"asset_type": "Laptop",
				"make":       "Dell",
				"status":     "Available",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))

			var response struct {
				AssetID string      `json:"asset_id"`
				Data    asset.Asset `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.AssetID).To(Equal("LAP001"))
			Expect(response.Data.Make).To(Equal("Dell"))
		})

		It("should reject an invalid payload with 400", func() {
			w := doJSON(http.MethodPost, "/assets", map[string]any{
				"asset_type": "Spaceship",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a duplicate serial number with 409", func() {
			first := doJSON(http.MethodPost, "/assets", map[string]any{
				"asset_type": "Laptop", "serial_number": "SN-1",
			})
			Expect(first.Code).To(Equal(http.StatusCreated))

			second := doJSON(http.MethodPost, "/assets", map[string]any{
				"asset_type": "Laptop", "serial_number": "SN-1",
			})

			Expect(second.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("GET /assets", func() {
		It("should list created assets and honor the status filter", func() {
			Expect(doJSON(http.MethodPost, "/assets", map[string]any{
				"asset_type": "Laptop", "status": "Assigned",
			}).Code).To(Equal(http.StatusCreated))
			Expect(doJSON(http.MethodPost, "/assets", map[string]any{
				"asset_type": "Monitor",
			}).Code).To(Equal(http.StatusCreated))

			w := doJSON(http.MethodGet, "/assets?status=Assigned", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var response struct {
				Data []asset.Asset `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Data).To(HaveLen(1))
			Expect(response.Data[0].AssetID).To(Equal("LAP001"))
		})
	})

	Describe("GET /assets/{id}", func() {
		It("should return 404 for a missing asset", func() {
			w := doJSON(http.MethodGet, "/assets/999", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 400 for a non-numeric id", func() {
			w := doJSON(http.MethodGet, "/assets/LAP001", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /assets/{id}", func() {
		It("should update fields but never the identifier", func() {
			created := doJSON(http.MethodPost, "/assets", map[string]any{
				"asset_type": "Laptop",
			})
			Expect(created.Code).To(Equal(http.StatusCreated))
			var createResp struct {
				Data asset.Asset `json:"data"`
			}
			Expect(json.NewDecoder(created.Body).Decode(&createResp)).To(Succeed())

			w := doJSON(http.MethodPut, "/assets/1", map[string]any{
				"asset_id": "HAX999",
				"status":   "Assigned",
				"assignee": "jdoe",
			})

			Expect(w.Code).To(Equal(http.StatusOK))
			var response struct {
				Data asset.Asset `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Data.Status).To(Equal("Assigned"))
			Expect(response.Data.AssetID).To(Equal(createResp.Data.AssetID))
		})
	})

	Describe("DELETE /assets/{id}", func() {
		It("should delete by the generated identifier", func() {
			Expect(doJSON(http.MethodPost, "/assets", map[string]any{
				"asset_type": "Laptop",
			}).Code).To(Equal(http.StatusCreated))

			Expect(doJSON(http.MethodDelete, "/assets/LAP001", nil).Code).To(Equal(http.StatusOK))
			Expect(doJSON(http.MethodDelete, "/assets/LAP001", nil).Code).To(Equal(http.StatusNotFound))
		})
	})
})
