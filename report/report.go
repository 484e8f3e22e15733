package report

import (
	"context"
	"strconv"

	log "github.com/honki-bobo/synthv-translator/logger"
	"github.com/honki-bobo/synthv-translator/phoneme"
	"github.com/xuri/excelize/v2"
)

// ExcelReport writes a reviewer workbook: one row per alternative,
// grouped by word and syllable, with each language run colored so a
// reviewer can see where voices switch at a glance.
type ExcelReport struct {
	ctx      context.Context
	file     *excelize.File
	filepath string
	styleId  int
	lineNum  int
}

const SHEET1 = `Sheet1`

// fixed palette, languages are colored in order of first appearance
var langColors = []string{
	`#1F4E79`, `#C00000`, `#538135`, `#7030A0`, `#BF8F00`, `#2E75B6`,
}

func NewExcelReport(ctx context.Context, filepath string) ExcelReport {
	var r ExcelReport
	r.ctx = ctx
	r.file = excelize.NewFile()
	r.filepath = filepath
	return r
}

func (r *ExcelReport) Generate(sourceWords []string, words [][]phoneme.Syllable) *log.Status {
	status := r.setStyle()
	if status != nil {
		return status
	}
	langColor := make(map[string]string)
	for w, word := range words {
		for s, syl := range word {
			for a, alt := range syl.Alternatives {
				r.lineNum += 1
				if s == 0 && a == 0 && w < len(sourceWords) {
					status = r.writeCell(`A`, sourceWords[w])
					if status != nil {
						return status
					}
				}
				if a == 0 {
					status = r.writeCell(`B`, syl.IPA)
					if status != nil {
						return status
					}
				}
				status = r.writeCell(`C`, strconv.Itoa(a+1))
				if status != nil {
					return status
				}
				status = r.writeLine(`D`, r.generateAltLine(alt, langColor))
				if status != nil {
					return status
				}
			}
		}
	}
	return r.writeFile()
}

func (r *ExcelReport) setStyle() *log.Status {
	var err error
	r.styleId, err = r.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size:   12,
			Family: `Calibri`,
			Color:  `#000000`,
		},
	})
	if err != nil {
		return log.Error(r.ctx, 500, err, `Failed to create new style.`)
	}
	_ = r.file.SetColWidth(SHEET1, `A`, `A`, 16)
	_ = r.file.SetColWidth(SHEET1, `B`, `B`, 14)
	_ = r.file.SetColWidth(SHEET1, `C`, `C`, 6)
	_ = r.file.SetColWidth(SHEET1, `D`, `D`, 80)
	return nil
}

func (r *ExcelReport) generateAltLine(alt phoneme.Alternative, langColor map[string]string) []excelize.RichTextRun {
	var result []excelize.RichTextRun
	lastLang := ``
	for _, entry := range alt.Mapping {
		color := `#000000`
		if entry.Lang != `` {
			assigned, ok := langColor[entry.Lang]
			if !ok {
				assigned = langColors[len(langColor)%len(langColors)]
				langColor[entry.Lang] = assigned
			}
			color = assigned
			if entry.Lang != lastLang {
				result = append(result, excelize.RichTextRun{
					Text: `<` + entry.Lang + `> `,
					Font: &excelize.Font{Size: 12, Family: `Calibri`, Color: color, Bold: true}})
				lastLang = entry.Lang
			}
		}
		result = append(result, excelize.RichTextRun{
			Text: entry.Ph + ` `,
			Font: &excelize.Font{Size: 12, Family: `Calibri`, Color: color}})
	}
	return result
}

func (r *ExcelReport) writeCell(col string, value string) *log.Status {
	cell := col + strconv.Itoa(r.lineNum)
	err := r.file.SetCellValue(SHEET1, cell, value)
	if err != nil {
		return log.Error(r.ctx, 500, err, `Unable to write cell.`)
	}
	return nil
}

func (r *ExcelReport) writeLine(col string, line []excelize.RichTextRun) *log.Status {
	cell := col + strconv.Itoa(r.lineNum)
	err := r.file.SetCellRichText(SHEET1, cell, line)
	if err != nil {
		return log.Error(r.ctx, 500, err, `Failed to write excel line.`)
	}
	return nil
}

func (r *ExcelReport) writeFile() *log.Status {
	if r.lineNum > 0 {
		lastCell := `C` + strconv.Itoa(r.lineNum)
		err := r.file.SetCellStyle(SHEET1, `A1`, lastCell, r.styleId)
		if err != nil {
			return log.Error(r.ctx, 500, err, `Failed to set styles for A-C.`)
		}
	}
	err := r.file.SaveAs(r.filepath)
	if err != nil {
		return log.Error(r.ctx, 500, err, `Failed to save review report`)
	}
	return nil
}
