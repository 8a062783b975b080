package sampleSheet

import (
	"log"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"
	"github.com/xuri/excelize/v2"
)

var blankLine = regexp.MustCompile(`^\s*$`)

// Load reads a manifest, .xlsx goes to LoadXLSX and anything else is tab-separated
func Load(input, sheetName string) *SampleSheet {
	switch strings.ToLower(filepath.Ext(input)) {
	case ".xlsx":
		return LoadXLSX(input, sheetName)
	default:
		return LoadTSV(input)
	}
}

func LoadTSV(input string) *SampleSheet {
	var sheet = &SampleSheet{}
	var items, title = textUtil.File2MapArray(input, "\t", blankLine)
	sheet.Title = title
	for _, item := range items {
		sheet.Samples = append(sheet.Samples, NewSample(item))
	}
	log.Printf("load %d samples from %s", len(sheet.Samples), input)
	return sheet
}

// LoadXLSX reads the manifest from sheetName, the first sheet if empty
func LoadXLSX(input, sheetName string) *SampleSheet {
	xlsx, err := excelize.OpenFile(input)
	simpleUtil.CheckErr(err)
	defer simpleUtil.DeferClose(xlsx)

	if sheetName == "" {
		sheetName = xlsx.GetSheetName(0)
	}
	rows, err := xlsx.GetRows(sheetName)
	simpleUtil.CheckErr(err)

	var sheet = &SampleSheet{}
	if len(rows) == 0 {
		return sheet
	}
	sheet.Title = rows[0]
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		var item = make(map[string]string)
		for j, key := range sheet.Title {
			if j < len(row) {
				item[key] = row[j]
			} else {
				item[key] = ""
			}
		}
		sheet.Samples = append(sheet.Samples, NewSample(item))
	}
	log.Printf("load %d samples from %s[%s]", len(sheet.Samples), input, sheetName)
	return sheet
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if !blankLine.MatchString(cell) {
			return false
		}
	}
	return true
}
