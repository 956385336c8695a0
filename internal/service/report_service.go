package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/noah-isme/materiality-api/internal/dto"
	"github.com/noah-isme/materiality-api/internal/materiality"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
	"github.com/noah-isme/materiality-api/pkg/export"
)

// Export formats accepted by the report exporter.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// ExportResult is a rendered report document.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ReportService assembles the final report over the material topic set and
// renders it to downloadable documents.
type ReportService struct {
	topics  topicLister
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	enabled bool
}

// NewReportService constructs the report service. Export can be switched off
// via configuration.
func NewReportService(topics topicLister, exportEnabled bool) *ReportService {
	return &ReportService{
		topics:  topics,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		enabled: exportEnabled,
	}
}

// Final collects every material topic with its narrative fields and
// completion counts.
func (s *ReportService) Final(ctx context.Context, organizationID string) (*dto.FinalReportResponse, error) {
	topics, err := s.topics.List(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.ReportEntry, 0, len(topics))
	completed := 0
	for _, topic := range topics {
		if topic.IsMaterial == nil || !*topic.IsMaterial || topic.MaterialityIndex == nil {
			continue
		}
		entry := dto.ReportEntry{
			TopicID:            topic.ID,
			Topic:              topic.Topic,
			Category:           topic.Category,
			Subcategory:        topic.Subcategory,
			MaterialityIndex:   *topic.MaterialityIndex,
			Level:              materiality.Classify(*topic.MaterialityIndex),
			WhyMaterial:        topic.WhyMaterial,
			ManagementResponse: topic.ManagementResponse,
			Complete:           topic.ReportComplete(),
		}
		if entry.Complete {
			completed++
		}
		entries = append(entries, entry)
	}

	return &dto.FinalReportResponse{
		OrganizationID:   organizationID,
		MaterialTopics:   entries,
		CompletedReports: completed,
		TotalMaterial:    len(entries),
	}, nil
}

// Export renders the final report in the requested format.
func (s *ReportService) Export(ctx context.Context, organizationID, format string) (*ExportResult, error) {
	if !s.enabled {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "report export is disabled")
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}

	report, err := s.Final(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	dataset := reportDataset(report)

	switch format {
	case ExportFormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("materiality-report-%s.csv", organizationID),
		}, nil
	case ExportFormatPDF:
		title := fmt.Sprintf("Materiality Report %s", organizationID)
		content, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("materiality-report-%s.pdf", organizationID),
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}

func reportDataset(report *dto.FinalReportResponse) export.Dataset {
	headers := []string{"Topic", "Category", "Subcategory", "Materiality Index", "Level", "Why Material", "Management Response"}
	rows := make([]map[string]string, 0, len(report.MaterialTopics))
	for _, entry := range report.MaterialTopics {
		rows = append(rows, map[string]string{
			"Topic":               entry.Topic,
			"Category":            string(entry.Category),
			"Subcategory":         deref(entry.Subcategory),
			"Materiality Index":   fmt.Sprintf("%.2f", entry.MaterialityIndex),
			"Level":               string(entry.Level),
			"Why Material":        deref(entry.WhyMaterial),
			"Management Response": deref(entry.ManagementResponse),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
