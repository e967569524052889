package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategorySpecFiles                     // check, help
	CategoryExamples                      // demo
	CategoryHistory                       // recorded checks
	CategoryConfig                        // configuration
)

func (c CommandCategory) String() string {
	switch c {
	case CategorySpecFiles:
		return "work with spec files"
	case CategoryExamples:
		return "try it out"
	case CategoryHistory:
		return "inspect past checks"
	case CategoryConfig:
		return "configure argspec"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategorySpecFiles,
	CategoryExamples,
	CategoryHistory,
	CategoryConfig,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
