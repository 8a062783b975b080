package sampleSheet

import (
	"encoding/csv"
	"io"
	"log"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// PrepareSampleSheet writes output from the manifest input with every row tagged by project
func PrepareSampleSheet(input, output, project string) {
	Run(
		input,
		output,
		"",
		Options{
			Project: project,
			Species: DefaultSpecies,
		},
	)
}

func Run(input, output, sheetName string, opt Options) {
	var sheet = Load(input, sheetName)
	sheet.Prepare(opt)

	var out = osUtil.Create(output)
	defer simpleUtil.DeferClose(out)

	fmtUtil.Fprintf(out, "%s", Header)
	WriteRecords(out, sheet)
	log.Printf("write %d samples to %s", len(sheet.Samples), output)
}

// WriteRecords writes the samples as headerless CSV
func WriteRecords(w io.Writer, sheet *SampleSheet) {
	var writer = csv.NewWriter(w)
	for _, sample := range sheet.Samples {
		simpleUtil.CheckErr(writer.Write(sample.Record()))
	}
	writer.Flush()
	simpleUtil.CheckErr(writer.Error())
}
