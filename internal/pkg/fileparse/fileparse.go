// Package fileparse turns uploaded batch files into import rows. CSV is the
// primary format; XLSX is accepted as well, reading the first sheet with the
// same header contract.
package fileparse

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"schooladmin/internal/app/models"
	"schooladmin/internal/pkg/apperrors"
)

// Column names expected in the header row.
const (
	colTeacherEmail = "teacherEmail"
	colTeacherName  = "teacherName"
	colStudentEmail = "studentEmail"
	colStudentName  = "studentName"
	colClassCode    = "classCode"
	colClassName    = "className"
	colSubjectCode  = "subjectCode"
	colSubjectName  = "subjectName"
	colToDelete     = "toDelete"
)

var requiredColumns = []string{
	colTeacherEmail,
	colTeacherName,
	colStudentEmail,
	colStudentName,
	colClassCode,
	colClassName,
	colSubjectCode,
	colSubjectName,
	colToDelete,
}

// Rows parses an uploaded batch file into import rows, dispatching on the
// filename extension: ".xlsx" goes through the spreadsheet reader,
// everything else is treated as CSV. Header problems and malformed records
// surface as validation errors.
func Rows(r io.Reader, filename string) ([]models.ImportRow, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".xlsx" {
		return ParseXLSX(r)
	}
	return ParseCSV(r)
}

// ParseCSV reads a CSV batch: a header row naming the nine expected columns
// followed by one record per import row.
func ParseCSV(r io.Reader) ([]models.ImportRow, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("failed to read CSV header: %v", err))
	}

	index, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []models.ImportRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("malformed CSV record: %v", err))
		}
		rows = append(rows, rowFromRecord(record, index))
	}

	return rows, nil
}

// ParseXLSX reads a batch from the first sheet of an XLSX workbook, with
// the same header contract as the CSV form.
func ParseXLSX(r io.Reader) ([]models.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("failed to open spreadsheet: %v", err))
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, apperrors.NewValidationError("spreadsheet contains no sheets")
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("failed to read sheet %q: %v", sheet, err))
	}

	if len(records) == 0 {
		return nil, nil
	}

	index, err := indexHeader(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]models.ImportRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, rowFromRecord(record, index))
	}

	return rows, nil
}

// indexHeader maps the expected column names to their positions, failing on
// any missing column. Extra columns are ignored.
func indexHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("missing required column %q", col))
		}
	}

	return index, nil
}

// rowFromRecord builds an import row from one record. Spreadsheet rows can
// be shorter than the header when trailing cells are empty, so out-of-range
// columns read as empty strings.
func rowFromRecord(record []string, index map[string]int) models.ImportRow {
	cell := func(col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	return models.ImportRow{
		TeacherEmail: cell(colTeacherEmail),
		TeacherName:  cell(colTeacherName),
		StudentEmail: cell(colStudentEmail),
		StudentName:  cell(colStudentName),
		ClassCode:    cell(colClassCode),
		ClassName:    cell(colClassName),
		SubjectCode:  cell(colSubjectCode),
		SubjectName:  cell(colSubjectName),
		ToDelete:     cell(colToDelete),
	}
}
