// SPDX-License-Identifier: MPL-2.0

package count

type (
	// Label says what a Record describes. It is either File or Total.
	Label interface {
		isLabel()
	}

	// File labels the counts of one input, by the token the user supplied.
	File struct {
		Name string
	}

	// Total labels the field-wise sum of all counted files.
	Total struct{}

	// Record is one row of a report.
	Record struct {
		Label Label
		Counts
	}
)

func (File) isLabel()  {}
func (Total) isLabel() {}

// FileRecord labels c with the input name.
func FileRecord(name string, c Counts) Record {
	return Record{Label: File{Name: name}, Counts: c}
}

// Sum folds records into a Total record.
func Sum(records []Record) Record {
	var total Counts
	for _, r := range records {
		total = total.Add(r.Counts)
	}
	return Record{Label: Total{}, Counts: total}
}
