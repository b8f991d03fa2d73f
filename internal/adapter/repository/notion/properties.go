// Package notion implements the usecase repositories against Notion
// databases. Each collection is one database; each record is a page.
package notion

// Property names must match the hosted databases verbatim.
const (
	propName   = "Name"
	propStatus = "Status"

	// Cardio collection.
	propCardioDateAssigned  = "Date Assigned"
	propCardioType          = "Type"
	propCardioMinutes       = "Minutes Required"
	propCardioDateCompleted = "Date Completed"

	// Debt collection. The trailing space in "Date Assigned " exists
	// in the live database; do not fix it here.
	propDebtDateAssigned  = "Date Assigned "
	propDebtOriginal      = "Original Amount"
	propDebtCurrent       = "Current Amount"
	propDebtInterestRate  = "Interest Rate"

	// Workouts collection.
	propWorkoutDate     = "Date"
	propWorkoutType     = "Workout Type"
	propWorkoutDuration = "Duration"
	propWorkoutCalories = "Calories"
	propWorkoutSource   = "Source"

	// Bonuses collection.
	propBonusWeekOf = "Week Of"
	propBonusType   = "Bonus Type"
	propBonusAmount = "Amount Earned"

	// Balances collection.
	propBalanceDate     = "Date"
	propBalanceAccountA = "Account A Balance"
	propBalanceAccountB = "Account B Balance"
	propBalanceChecking = "Checking Balance"
)
