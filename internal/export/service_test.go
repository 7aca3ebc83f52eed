package export_test

import (
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/frahmantamala/asset-inventory/internal"
	"github.com/frahmantamala/asset-inventory/internal/asset"
	"github.com/frahmantamala/asset-inventory/internal/export"
)

func TestExportService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Export Service Suite")
}

type mockFinder struct {
	listResults   []*asset.Asset
	filterResults []*asset.Asset
	lastColumn    string
	lastValue     string
	listCalled    bool
	err           error
}

func (m *mockFinder) List(filter asset.ListFilter) ([]*asset.Asset, error) {
	m.listCalled = true
	if m.err != nil {
		return nil, m.err
	}
	return m.listResults, nil
}

func (m *mockFinder) FilterExact(column, value string) ([]*asset.Asset, error) {
	m.lastColumn = column
	m.lastValue = value
	if m.err != nil {
		return nil, m.err
	}
	return m.filterResults, nil
}

var _ = Describe("ExportService", func() {
	var (
		service *export.Service
		finder  *mockFinder
	)

	sampleAsset := func() *asset.Asset {
		serial := "SN-042"
		return &asset.Asset{
			RegistrationDate: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
			AssetID:          "LAP001",
			AssetType:        "Laptop",
			Make:             "Dell",
			Model:            "Latitude 5440",
			SerialNumber:     &serial,
			Status:           "Assigned",
			Assignee:         "jdoe",
		}
	}

	parseCSV := func(content []byte) [][]string {
		records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
		Expect(err).ToNot(HaveOccurred())
		return records
	}

	BeforeEach(func() {
		finder = &mockFinder{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = export.NewService(finder, logger)
	})

	Context("without a filter", func() {
		It("should export every asset with the fixed header", func() {
			finder.listResults = []*asset.Asset{sampleAsset()}

			doc, err := service.Export("", "")

			Expect(err).ToNot(HaveOccurred())
			Expect(finder.listCalled).To(BeTrue())
			Expect(doc.ContentType).To(Equal("text/csv"))

			records := parseCSV(doc.Content)
			Expect(records).To(HaveLen(2))
			Expect(records[0]).To(Equal([]string{
				"Registration Date", "Asset ID", "Asset Type", "Make", "Model",
				"Serial Number", "Operating System", "Processor", "RAM", "Storage",
				"Location", "Status", "Assignee", "Condition", "Notes",
			}))
			Expect(records[1][0]).To(Equal("2026-03-15"))
			Expect(records[1][1]).To(Equal("LAP001"))
			Expect(records[1][5]).To(Equal("SN-042"))
		})

		It("should render a header-only file when there are no assets", func() {
			doc, err := service.Export("", "")

			Expect(err).ToNot(HaveOccurred())
			Expect(parseCSV(doc.Content)).To(HaveLen(1))
		})

		It("should date-stamp the filename", func() {
			doc, err := service.Export("", "")

			Expect(err).ToNot(HaveOccurred())
			Expect(doc.Filename).To(MatchRegexp(`^assets_export_\d{4}-\d{2}-\d{2}\.csv$`))
		})
	})

	Context("with a filter", func() {
		It("should resolve the field and filter exactly", func() {
			finder.filterResults = []*asset.Asset{sampleAsset()}

			doc, err := service.Export("Status", "Assigned")

			Expect(err).ToNot(HaveOccurred())
			Expect(finder.lastColumn).To(Equal("status"))
			Expect(finder.lastValue).To(Equal("Assigned"))
			Expect(parseCSV(doc.Content)).To(HaveLen(2))
		})

		It("should reject a field without a value and vice versa", func() {
			_, err := service.Export("Status", "")
			Expect(stderrors.Is(err, errors.ErrMissingSearchParams)).To(BeTrue())

			_, err = service.Export("", "Assigned")
			Expect(stderrors.Is(err, errors.ErrMissingSearchParams)).To(BeTrue())
		})

		It("should reject an unmapped field", func() {
			_, err := service.Export("Shoe Size", "42")

			Expect(stderrors.Is(err, errors.ErrUnknownSearchField)).To(BeTrue())
		})
	})

	Context("with awkward cell values", func() {
		It("should survive commas, quotes and newlines round-trip", func() {
			a := sampleAsset()
			a.Notes = "line one\nwith \"quotes\", commas, and more"
			a.Model = "27\" Monitor"
			finder.listResults = []*asset.Asset{a}

			doc, err := service.Export("", "")

			Expect(err).ToNot(HaveOccurred())
			records := parseCSV(doc.Content)
			Expect(records[1][4]).To(Equal("27\" Monitor"))
			Expect(records[1][14]).To(Equal("line one\nwith \"quotes\", commas, and more"))
		})

		It("should render a missing serial number as an empty cell", func() {
			a := sampleAsset()
			a.SerialNumber = nil
			finder.listResults = []*asset.Asset{a}

			doc, err := service.Export("", "")

			Expect(err).ToNot(HaveOccurred())
			Expect(parseCSV(doc.Content)[1][5]).To(Equal(""))
		})
	})

	Context("when the query fails", func() {
		It("should surface the storage error", func() {
			finder.err = stderrors.New("db gone")

			_, err := service.Export("", "")

			Expect(err).To(MatchError("db gone"))
		})
	})
})
