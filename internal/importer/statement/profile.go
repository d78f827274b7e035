package statement

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSigned means one signed column ("Amount" with value "-10.00").
	amountSigned amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of a statement export. Adding support
// for a new bank layout is just adding a Profile to the profiles slice.
type Profile struct {
	Name        string
	DateCol     string
	DescCol     string
	CategoryCol string // optional, empty when the layout has none
	AmountMode  amountMode
	AmountCol   string // used when AmountMode == amountSigned
	DebitCol    string // used when AmountMode == amountSplit
	CreditCol   string // used when AmountMode == amountSplit
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	if p.CategoryCol != "" {
		cols = append(cols, p.CategoryCol)
	}

	switch p.AmountMode {
	case amountSigned:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of layouts to try during auto-detection.
// More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:       "split",
		DateCol:    "date",
		DescCol:    "description",
		AmountMode: amountSplit,
		DebitCol:   "debit",
		CreditCol:  "credit",
	},
	{
		Name:        "categorized",
		DateCol:     "date",
		DescCol:     "description",
		CategoryCol: "category",
		AmountMode:  amountSigned,
		AmountCol:   "amount",
	},
	{
		Name:       "signed",
		DateCol:    "date",
		DescCol:    "description",
		AmountMode: amountSigned,
		AmountCol:  "amount",
	},
}
