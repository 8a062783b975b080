package sampleSheet

// Header is the sample sheet preamble written before the sample rows
const Header = `[Header],,,,,,,,,
IEMFileVersion,1,,,,,,,,
Investigator Name,Alexander Misharin,,,,,,,,
Experiment Name,Aging_PF_ISRIB,,,,,,,,
Date,,,,,,,,,
Workflow,GenerateFASTQ,,,,,,,,
Application,NextSeq FASTQ Only,,,,,,,,
Assay,TruSeq HT,,,,,,,,
Description,,,,,,,,,
Chemistry,Amplicon,,,,,,,,
,,,,,,,,,
[Reads],,,,,,,,,
,,,,,,,,,
,,,,,,,,,
,,,,,,,,,
[Settings],,,,,,,,,
Adapter,AGATCGGAAGAGCACACGTCTGAACTCCAGTCA,,,,,,,,
AdapterRead2,AGATCGGAAGAGCGTCGTGTAGGGAAAGAGTGT,,,,,,,,
[Data],,,,,,,,,
SampleID,Sample_Name,Sample_Plate,Organism,I7_Index_ID,index,I5_Index_ID,index2,Sample_Project,Description
`
