package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryMessaging                     // msg, inbox
	CategorySessions                      // session lookups and login
	CategoryNamespaces                    // namespace listing and moves
	CategoryUtilities                     // roll, sum, vote
	CategoryConfig                        // configuration
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryMessaging:
		return "talk to other sessions"
	case CategorySessions:
		return "inspect sessions"
	case CategoryNamespaces:
		return "manage namespaces"
	case CategoryUtilities:
		return "utilities"
	case CategoryConfig:
		return "configure cmdtree"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryMessaging,
	CategorySessions,
	CategoryNamespaces,
	CategoryUtilities,
	CategoryConfig,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
