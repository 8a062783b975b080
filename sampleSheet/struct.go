package sampleSheet

// manifest columns, also the output column order of Record
var Columns = []string{
	"SampleID",
	"Name",
	"Plate",
	"Species",
	"Index1Name",
	"Index1Sequence",
	"Index2Name",
	"Index2Sequence",
	"Project",
	"NucleicAcid",
}

type SampleSheet struct {
	Title   []string
	Samples []*Sample
}

type Sample struct {
	SampleID       string
	Name           string
	Plate          string
	Species        string
	Index1Name     string
	Index1Sequence string
	Index2Name     string
	Index2Sequence string
	Project        string
	NucleicAcid    string

	info map[string]string
}

func NewSample(item map[string]string) *Sample {
	return &Sample{
		SampleID:       item["SampleID"],
		Name:           item["Name"],
		Plate:          item["Plate"],
		Species:        item["Species"],
		Index1Name:     item["Index1Name"],
		Index1Sequence: item["Index1Sequence"],
		Index2Name:     item["Index2Name"],
		Index2Sequence: item["Index2Sequence"],
		Project:        item["Project"],
		NucleicAcid:    item["NucleicAcid"],
		info:           item,
	}
}

// Info returns the raw manifest value of column key
func (sample *Sample) Info(key string) string {
	return sample.info[key]
}

// Record projects sample onto Columns
func (sample *Sample) Record() []string {
	return []string{
		sample.SampleID,
		sample.Name,
		sample.Plate,
		sample.Species,
		sample.Index1Name,
		sample.Index1Sequence,
		sample.Index2Name,
		sample.Index2Sequence,
		sample.Project,
		sample.NucleicAcid,
	}
}
