package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ledgerbook/ledgerbook-go/pkg/apierr"
	"github.com/ledgerbook/ledgerbook-go/pkg/validator"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table writes aligned rows; the first row is the header.
func table(w io.Writer, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// renderError turns API and validation failures into a single readable
// message, keeping per-field errors when present.
func renderError(err error) error {
	if err == nil {
		return nil
	}
	if fieldErrs := validator.ExtractFieldErrors(err); fieldErrs != nil {
		return fieldErrs
	}
	n := apierr.Normalize(err)
	if n.HasFieldErrors() {
		return fmt.Errorf("%s (%s)", n.Message, apierr.FlattenFieldErrors(n.FieldErrors))
	}
	return fmt.Errorf("%s", n.Message)
}
