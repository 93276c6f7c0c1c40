package healthscore

// Score ceilings per dimension. The four ceilings sum to 100.
const (
	SavingsRatioMax    = 40
	BudgetAdherenceMax = 25
	GoalProgressMax    = 25
	BillManagementMax  = 10
)

const (
	savingsRatioLabel    = "Savings Ratio"
	budgetAdherenceLabel = "Budget Adherence"
	goalProgressLabel    = "Goal Progress"
	billManagementLabel  = "Bill Management"
)

const (
	// neutralFactor is the fraction of a ceiling granted when a dimension has
	// no data to judge.
	neutralFactor = 0.5
	// fullMarksRate is the savings rate, in percent, that earns the full
	// savings ceiling.
	fullMarksRate = 50.0
	// overspendCap bounds how far past its budget a category's spending can
	// count against the adherence score.
	overspendCap = 1.5
	// overdueBillPenalty is deducted from the bill ceiling per overdue bill.
	overdueBillPenalty = 3

	monthLayout = "2006-01"
)

// savingsBands maps savings-rate floors to score multipliers, evaluated top
// down. The bottom band covers any positive rate below 10 percent; a rate of
// zero or less scores nothing.
var savingsBands = []struct {
	MinRate    float64
	Multiplier float64
}{
	{MinRate: 50, Multiplier: 1.0},
	{MinRate: 30, Multiplier: 0.9},
	{MinRate: 20, Multiplier: 0.7},
	{MinRate: 10, Multiplier: 0.5},
	{MinRate: 0, Multiplier: 0.3},
}

// ratingThresholds maps minimum totals to rating labels, evaluated top down.
// Totals below the last threshold fall through to ratingFloor.
var ratingThresholds = []struct {
	Min   int
	Label string
}{
	{Min: 90, Label: "Excellent"},
	{Min: 75, Label: "Very Good"},
	{Min: 60, Label: "Good"},
	{Min: 45, Label: "Fair"},
}

const ratingFloor = "Needs Improvement"
