// Package dataset reads training data files. It handles both Excel
// workbooks and plain CSV so datasets can be dropped into the datasets
// folder in whichever format they were exported in.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xls" {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadData reads the file into a Table
func (r *DataReader) ReadData() (*Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

func (r *DataReader) readExcelData() (*Table, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// Always use the first sheet
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("Excel file must have at least a header row and one data row")
	}
	return buildTable(rows)
}

func (r *DataReader) readCSVData() (*Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV file must have at least a header row and one data row")
	}
	return buildTable(rows)
}

func buildTable(rows [][]string) (*Table, error) {
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return &Table{Headers: headers, Rows: rows[1:]}, nil
}

// ReadDirectory loads and merges every .csv/.xlsx file in a directory.
// Returns the merged table plus the file names that loaded successfully.
func ReadDirectory(dir string) (*Table, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list dataset directory: %w", err)
	}

	var combined *Table
	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".csv" && ext != ".xlsx" && ext != ".xls" {
			continue
		}
		table, err := NewDataReader(filepath.Join(dir, entry.Name())).ReadData()
		if err != nil {
			// skip unreadable files, keep loading the rest
			continue
		}
		if combined == nil {
			combined = table
		} else {
			combined.Append(table)
		}
		loaded = append(loaded, entry.Name())
	}

	if combined == nil {
		return nil, nil, fmt.Errorf("no readable dataset files in %s", dir)
	}
	return combined, loaded, nil
}
