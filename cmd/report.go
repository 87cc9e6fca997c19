package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/HomingHamster/scale-and-chord-generator/catalog"
	"github.com/HomingHamster/scale-and-chord-generator/chord"
	"github.com/HomingHamster/scale-and-chord-generator/config"
	"github.com/HomingHamster/scale-and-chord-generator/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a catalog report",
	Long:  `Creates a catalog report`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type bucketsReport struct {
	numChords int64
	numFiles  int64
	numBytes  int64
}

type chunksReport struct {
	avgIndexPercent float32
	indexPercents   []float32
	chordsInIndexes []int64
	numFiles        int64
	numChords       int64
	totalBytes      int64
	dataBytes       int64
}

func analyzeBuckets(dir string) bucketsReport {
	var report bucketsReport

	files, err := os.ReadDir(dir)
	if err != nil {
		panic("Could not read dir because: " + err.Error())
	}

	r := regexp.MustCompile(`^\d\d\.dat$`)
	for _, file := range files {
		filename := file.Name()
		if r.MatchString(filename) {
			report.numFiles += 1
			f, err := os.Open(filepath.Join(dir, filename))
			if err != nil {
				panic("Could not open file")
			}
			stats, err := f.Stat()
			if err != nil {
				panic("Could not get file stats")
			}
			report.numBytes += stats.Size()
			report.numChords += stats.Size() / chord.RecordSize
			f.Close()
		}
	}

	return report
}

func analyzeChunks(dir string) chunksReport {
	var report chunksReport
	files, err := os.ReadDir(dir)
	if err != nil {
		panic("Could not read dir because: " + err.Error())
	}

	r := regexp.MustCompile("^[0-9a-fA-F]{8}-([0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}.dat$")
	for _, file := range files {
		filename := file.Name()
		if !r.MatchString(filename) {
			continue
		}
		report.numFiles += 1
		f := util.OpenFileOrPanic(filepath.Join(dir, filename))
		index, indexLength := catalog.ReadIndexOrPanic(f)

		var chordsInIndex int64
		for _, key := range util.GetKeys(index) {
			chordsInIndex += int64(index[key].End-index[key].Start) / chord.RecordSize
		}
		report.chordsInIndexes = append(report.chordsInIndexes, chordsInIndex)

		stats, err := f.Stat()
		if err != nil {
			panic("Could not get file stats")
		}
		indexPercent := float32(indexLength+4) / float32(stats.Size())
		report.indexPercents = append(report.indexPercents, indexPercent)
		report.totalBytes += stats.Size()

		dataBytes := stats.Size() - int64(indexLength+4)
		report.dataBytes += dataBytes
		report.numChords += dataBytes / chord.RecordSize
		f.Close()
	}
	if report.totalBytes > 0 {
		report.avgIndexPercent = float32(report.totalBytes-report.dataBytes) / float32(report.totalBytes)
	}
	return report
}

func report() {
	dir := config.Load().CatalogDir
	bucketsReport := analyzeBuckets(dir)
	chunksReport := analyzeChunks(dir)
	fmt.Printf("bucketsReport.numFiles: %v\n", bucketsReport.numFiles)
	fmt.Printf("bucketsReport.numChords: %v\n", bucketsReport.numChords)
	fmt.Printf("bucketsReport.numBytes: %v\n", bucketsReport.numBytes)
	fmt.Printf("chunksReport.numFiles: %v\n", chunksReport.numFiles)
	fmt.Printf("chunksReport.numChords: %v\n", chunksReport.numChords)
	fmt.Printf("chunksReport.totalBytes: %v\n", chunksReport.totalBytes)
	fmt.Printf("chunksReport.avgIndexPercent: %v\n", chunksReport.avgIndexPercent)
	fmt.Printf("chordsInIndexes total: %v\n", util.Sum(chunksReport.chordsInIndexes))
}
