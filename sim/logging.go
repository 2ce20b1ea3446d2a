package sim

import (
	"fmt"
	"io"
)

// reportWriter is the destination for report output.
var reportWriter io.Writer

// SetReportWriter sets the report output destination.
func SetReportWriter(w io.Writer) {
	reportWriter = w
}

// Reportf writes a formatted report line.
func Reportf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if reportWriter != nil {
		fmt.Fprintln(reportWriter, msg)
	} else {
		fmt.Println(msg)
	}
}
