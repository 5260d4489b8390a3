package output

import (
	"io"
	"os"
)

const (
	reportDateLayout     = "2006-01-02"
	reportDateTimeLayout = "2006-01-02 15:04:05"
)

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
