package testcases

// All lists the scenarios by category.
var All = map[string][]Case{
	"corner":   cornerCases,
	"expand":   expandCases,
	"fallback": fallbackCases,
	"kinds":    kindCases,
}
