// Package export renders record sets into downloadable files.
package export

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shreeramghimire/salmonometer/internal/models"
)

// Format is an export file format
type Format string

const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// Formats lists every supported format
var Formats = []Format{FormatCSV, FormatXLSX, FormatSQLite}

// ParseFormat accepts a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "xlsx", "excel", "workbook":
		return FormatXLSX, nil
	case "sqlite", "db":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("unknown export format %q (want csv, xlsx or sqlite)", s)
}

// Extension returns the filename extension, without the dot
func (f Format) Extension() string {
	return string(f)
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatSQLite:
		return "application/vnd.sqlite3"
	}
	return "application/octet-stream"
}

// File is one rendered export
type File struct {
	Name        string
	ContentType string
	Format      Format
	Category    string
	Data        []byte
}

// Filename builds "{group}_{slug}.{ext}"
func Filename(group string, set models.RecordSet, format Format) string {
	return fmt.Sprintf("%s_%s.%s", safeGroup(group), set.Slug, format.Extension())
}

func safeGroup(group string) string {
	group = strings.TrimSpace(group)
	if group == "" {
		return "group"
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, group)
}

// Render encodes one record set in the given format
func Render(group string, set models.RecordSet, format Format) (File, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatCSV:
		data, err = EncodeCSV(set)
	case FormatXLSX:
		data, err = EncodeWorkbook(set)
	case FormatSQLite:
		data, err = EncodeSQLite(set)
	default:
		return File{}, fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return File{}, fmt.Errorf("failed to export %s as %s: %w", set.Slug, format, err)
	}
	return File{
		Name:        Filename(group, set, format),
		ContentType: format.ContentType(),
		Format:      format,
		Category:    string(set.Category),
		Data:        data,
	}, nil
}

// RenderAll encodes every non-empty record set in every requested format
func RenderAll(group string, sets []models.RecordSet, formats []Format) ([]File, error) {
	var files []File
	for _, set := range sets {
		if set.Len() == 0 {
			continue
		}
		for _, format := range formats {
			file, err := Render(group, set, format)
			if err != nil {
				return nil, err
			}
			files = append(files, file)
		}
	}
	return files, nil
}

// FormatCell renders a cell the way the CSV encoder writes it; floats honour the column's decimals
func FormatCell(v any, col models.Column) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return fmt.Sprintf("%d", x)
	case float64:
		return formatFloat(x, col.Decimals)
	default:
		return fmt.Sprint(x)
	}
}
