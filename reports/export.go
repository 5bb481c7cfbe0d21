package reports

import (
	"encoding/json"
	"os"

	"github.com/foomo/sitecheck/vo"
	"github.com/gocarina/gocsv"
)

// Exporter writes findings to a file in some machine readable format.
type Exporter interface {
	Export(findings vo.Findings, filename string) error
}

type FindingRow struct {
	Type     string `csv:"Type" json:"type"`
	From     string `csv:"From" json:"from"`
	Target   string `csv:"Target" json:"target"`
	Fragment string `csv:"Fragment,omitempty" json:"fragment,omitempty"`
}

func findingRows(findings vo.Findings) []FindingRow {
	rows := make([]FindingRow, 0, len(findings))
	for _, finding := range findings {
		rows = append(rows, FindingRow{
			Type:     string(finding.Type),
			From:     finding.From,
			Target:   finding.Target,
			Fragment: finding.Fragment,
		})
	}
	return rows
}

type CSVExporter struct{}

func NewCSVExporter() Exporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(findings vo.Findings, filename string) error {
	file, errCreate := os.Create(filename)
	if errCreate != nil {
		return errCreate
	}
	defer file.Close()
	rows := findingRows(findings)
	return gocsv.MarshalFile(&rows, file)
}

type JSONExporter struct{}

func NewJSONExporter() Exporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Export(findings vo.Findings, filename string) error {
	jsonBytes, errMarshal := json.MarshalIndent(findingRows(findings), "", "    ")
	if errMarshal != nil {
		return errMarshal
	}
	return os.WriteFile(filename, jsonBytes, 0o644)
}
