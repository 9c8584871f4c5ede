package enums

// ComparisonOutcome is the result of attempting to add a product to the
// comparison set.
type ComparisonOutcome string

const (
	ComparisonAdded     ComparisonOutcome = "added"
	ComparisonDuplicate ComparisonOutcome = "duplicate"
	ComparisonFull      ComparisonOutcome = "full"
)
