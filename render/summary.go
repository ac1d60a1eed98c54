package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/revelaction/segmet/sentiment"
)

// WriteSums writes the metric column totals as category,value CSV. The
// categories are the 1 based column numbers.
func WriteSums(w io.Writer, sums []int) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"category", "value"})
	for i, s := range sums {
		cw.Write([]string{strconv.Itoa(i + 1), strconv.Itoa(s)})
	}

	cw.Flush()
	return cw.Error()
}

// WriteSentiment writes the sentiment tally as category,value CSV.
func WriteSentiment(w io.Writer, t sentiment.Tally) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"category", "value"})
	cw.Write([]string{sentiment.Positive.String(), strconv.Itoa(t.Positive)})
	cw.Write([]string{sentiment.Negative.String(), strconv.Itoa(t.Negative)})
	cw.Write([]string{"Neutral", strconv.Itoa(t.Neutral)})

	cw.Flush()
	return cw.Error()
}
