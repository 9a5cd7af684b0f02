package questionbank

// seedQuestions is the built-in excel interview bank. Levels are spread so
// the adaptive selector always has somewhere to go in either direction.
var seedQuestions = []Question{
	{
		ID:       "excel-001",
		Topic:    "excel",
		Prompt:   "Write a formula to add the values in cells A1 through A10.",
		Level:    LevelEasy,
		Type:     TypeFormula,
		Expected: []string{"=SUM(A1:A10)", "SUM(A1:A10)"},
	},
	{
		ID:        "excel-002",
		Topic:     "excel",
		Prompt:    "What does VLOOKUP do in Excel?",
		Level:     LevelEasy,
		Type:      TypeFreetext,
		Reference: "VLOOKUP searches for a value in the first column of a table range and returns a value from another column in the same row.",
	},
	{
		ID:       "excel-003",
		Topic:    "excel",
		Prompt:   "Write a formula that returns 'Pass' if the score in B2 is at least 50, otherwise 'Fail'.",
		Level:    LevelMedium,
		Type:     TypeFormula,
		Expected: []string{`=IF(B2>=50,"Pass","Fail")`, `IF(B2>=50,"Pass","Fail")`},
	},
	{
		ID:       "excel-004",
		Topic:    "excel",
		Prompt:   "What formula extracts the first 5 characters from the text in A1?",
		Level:    LevelEasy,
		Type:     TypeFormula,
		Expected: []string{"=LEFT(A1,5)", "LEFT(A1,5)"},
	},
	{
		ID:        "excel-005",
		Topic:     "excel",
		Prompt:    "How would you use INDEX and MATCH together as an alternative to VLOOKUP?",
		Level:     LevelHard,
		Type:      TypeFreetext,
		Reference: "MATCH finds the row position of the lookup value in a column, and INDEX returns the value at that position from another column. Combined as INDEX(return_range, MATCH(value, lookup_range, 0)) they look up in any direction, unlike VLOOKUP which only looks right.",
	},
	{
		ID:       "excel-006",
		Topic:    "excel",
		Prompt:   "Write a nested IF formula that grades marks in C2: 90 or above 'A', 75 or above 'B', 60 or above 'C', otherwise 'F'.",
		Level:    LevelHard,
		Type:     TypeFormula,
		Expected: []string{`=IF(C2>=90,"A",IF(C2>=75,"B",IF(C2>=60,"C","F")))`, `IF(C2>=90,"A",IF(C2>=75,"B",IF(C2>=60,"C","F")))`},
	},
	{
		ID:        "excel-007",
		Topic:     "excel",
		Prompt:    "Explain how you would highlight duplicate values in a column using conditional formatting.",
		Level:     LevelMedium,
		Type:      TypeFreetext,
		Reference: "Select the column, open Conditional Formatting, choose Highlight Cells Rules and then Duplicate Values, then pick a format. Excel highlights every value that appears more than once in the selection.",
	},
	{
		ID:        "excel-008",
		Topic:     "excel",
		Prompt:    "What chart type is best to show trends over time, and why?",
		Level:     LevelMedium,
		Type:      TypeFreetext,
		Reference: "A line chart, because it plots values against a continuous time axis and makes the direction and rate of change easy to read.",
	},
	{
		ID:        "excel-009",
		Topic:     "excel",
		Prompt:    "What is a pivot table and when would you reach for one?",
		Level:     LevelHard,
		Type:      TypeFreetext,
		Reference: "A pivot table summarizes a large dataset by grouping and aggregating fields, letting you drag dimensions into rows and columns and compute sums, counts, or averages without writing formulas. Use one to explore or report on data with many rows.",
	},
	{
		ID:       "excel-010",
		Topic:    "excel",
		Prompt:   "Write a formula to count how many cells in B1 through B20 contain a value greater than 100.",
		Level:    LevelMedium,
		Type:     TypeFormula,
		Expected: []string{`=COUNTIF(B1:B20,">100")`, `COUNTIF(B1:B20,">100")`},
	},
	{
		ID:        "excel-011",
		Topic:     "excel",
		Prompt:    "What is the difference between absolute and relative cell references?",
		Level:     LevelEasy,
		Type:      TypeFreetext,
		Reference: "A relative reference like A1 shifts when a formula is copied to another cell, while an absolute reference like $A$1 stays fixed. Dollar signs lock the column, the row, or both.",
	},
	{
		ID:       "excel-012",
		Topic:    "excel",
		Prompt:   "Write a formula that averages the values in D2 through D50, ignoring blanks.",
		Level:    LevelHard,
		Type:     TypeFormula,
		Expected: []string{"=AVERAGE(D2:D50)", "AVERAGE(D2:D50)"},
	},
}
