package main

import (
	"flag"
	"log"
	"os"

	"github.com/liserjrqlxue/simple-util"

	"github.com/NUPulmonary/2021-Watanabe/sampleSheet"
)

var (
	input = flag.String(
		"input",
		"",
		"input sample manifest, tsv or xlsx",
	)
	output = flag.String(
		"output",
		"",
		"output sample sheet",
	)
	project = flag.String(
		"project",
		"",
		"Sample_Project of every sample",
	)
	species = flag.String(
		"species",
		sampleSheet.DefaultSpecies,
		"Organism of every sample",
	)
	sheetName = flag.String(
		"sheet",
		"",
		"sheet name for xlsx input, default first sheet",
	)
	logFile = flag.String(
		"log",
		"",
		"output log file, default stderr",
	)
)

func main() {
	flag.Parse()
	if !requiredFlags() {
		flag.Usage()
		log.Printf("-input, -output and -project required")
		os.Exit(0)
	}

	if *logFile != "" {
		logF, err := os.Create(*logFile)
		simple_util.CheckErr(err)
		defer simple_util.DeferClose(logF)
		log.SetOutput(logF)
	}
	log.SetFlags(log.Ldate | log.Ltime)
	log.Printf("Start:%+v", os.Args)

	sampleSheet.Run(*input, *output, *sheetName, newOptions())
	log.Printf("End")
}

func requiredFlags() bool {
	return *input != "" && *output != "" && *project != ""
}

func newOptions() sampleSheet.Options {
	return sampleSheet.Options{
		Project: *project,
		Species: *species,
	}
}
