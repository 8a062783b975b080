package sampleSheet

const (
	DefaultSpecies    = "mm10"
	NucleicAcidSuffix = "-seq"
)

type Options struct {
	Project string
	Species string
}

func (sample *Sample) Prepare(opt Options) {
	sample.Species = opt.Species
	sample.Project = opt.Project
	sample.Index2Sequence = ReverseComplement(sample.Index2Sequence)
	sample.NucleicAcid += NucleicAcidSuffix
	sample.Plate = ""
}

func (sheet *SampleSheet) Prepare(opt Options) {
	for _, sample := range sheet.Samples {
		sample.Prepare(opt)
	}
}
