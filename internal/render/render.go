// Package render prints signals and error reports on a terminal.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/askiada/go-linksim/pkg/dsp"
	"github.com/askiada/go-linksim/pkg/pipeline"
)

// SamplesPerLine is the number of samples Signal prints on each line.
const SamplesPerLine = 5

// Signal prints every sample of sig as "s[i] = v", tab separated, SamplesPerLine samples per line.
func Signal(wrt io.Writer, sig dsp.Signal) error {
	for i, v := range sig {
		sep := "\t"
		if (i+1)%SamplesPerLine == 0 || i == len(sig)-1 {
			sep = "\n"
		}
		_, err := fmt.Fprintf(wrt, "s[%d] = %s%s", i, strconv.FormatFloat(v, 'g', 6, 64), sep)
		if err != nil {
			return errors.Wrap(err, "unable to print signal")
		}
	}

	return nil
}

// Reports prints the number of errors found by each error counter.
func Reports(wrt io.Writer, reports []pipeline.ErrorReport) error {
	for _, report := range reports {
		_, err := fmt.Fprintf(wrt, "%s: number of errors: %d (delay %d, %d/%d samples differ)\n",
			report.Stage.Name, report.Errors, report.Delay, report.Mismatches, report.Compared)
		if err != nil {
			return errors.Wrap(err, "unable to print report")
		}
	}

	return nil
}

// Summaries prints the aggregated error counts of several trials.
func Summaries(wrt io.Writer, summaries []pipeline.ErrorSummary) error {
	for _, summary := range summaries {
		_, err := fmt.Fprintf(wrt, "%s: %d trials, mean number of errors: %.3f, sample error rate: %.5f\n",
			summary.Stage.Name, summary.Trials, summary.MeanErrors(), summary.Rate())
		if err != nil {
			return errors.Wrap(err, "unable to print summary")
		}
	}

	return nil
}
