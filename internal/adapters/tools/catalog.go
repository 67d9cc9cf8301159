package tools

type ParamType string

const (
	ParamString  ParamType = "string"
	ParamInteger ParamType = "integer"
	ParamBoolean ParamType = "boolean"
	ParamStrings ParamType = "array"
)

// Param describes one tool argument. Minimum and Maximum are ignored when zero.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	Enum        []string
	Minimum     int
	Maximum     int
}

type Tool struct {
	Name        string
	Description string
	Params      []Param
}

// Catalog lists every tool in the order they are advertised to clients.
func Catalog() []Tool {
	return []Tool{
		{
			Name:        "think",
			Description: "Add a thought to your reasoning chain. Use this for step-by-step problem solving. The server automatically tracks thought numbers and history.",
			Params: []Param{
				{Name: "thought", Type: ParamString, Description: "Your current thinking step", Required: true},
			},
		},
		{
			Name:        "revise",
			Description: "Revise a previous thought. Use when you realize earlier thinking was flawed or incomplete.",
			Params: []Param{
				{Name: "thought", Type: ParamString, Description: "Your revised thinking", Required: true},
				{Name: "revisesThought", Type: ParamInteger, Description: "The thought number being revised", Required: true, Minimum: 1},
			},
		},
		{
			Name:        "complete",
			Description: "Mark your thinking chain as complete with a final conclusion.",
			Params: []Param{
				{Name: "conclusion", Type: ParamString, Description: "Your final conclusion or answer", Required: true},
			},
		},
		{
			Name:        "reset",
			Description: "Clear the current thinking session and start fresh. Use when beginning a new problem.",
			Params: []Param{
				{Name: "confirm", Type: ParamBoolean, Description: "Must be true to confirm reset (prevents accidental clearing)", Required: true},
			},
		},
		{
			Name:        "branch",
			Description: "Create a new reasoning branch to explore an alternative path. Like git branches for thoughts.",
			Params: []Param{
				{Name: "branchId", Type: ParamString, Description: "A short identifier for this branch", Required: true},
				{Name: "reason", Type: ParamString, Description: "Why you are branching", Required: true},
			},
		},
		{
			Name:        "switch_branch",
			Description: "Switch your active context to a different branch (or back to main).",
			Params: []Param{
				{Name: "branchId", Type: ParamString, Description: "The branch to switch to, or omit for main"},
			},
		},
		{
			Name:        "list_branches",
			Description: "List all reasoning branches with their status and thought counts.",
		},
		{
			Name:        "get_branch",
			Description: "Retrieve complete details of a specific branch.",
			Params: []Param{
				{Name: "branchId", Type: ParamString, Description: "The ID of the branch to retrieve", Required: true},
			},
		},
		{
			Name:        "close_branch",
			Description: "Close a branch with an optional conclusion.",
			Params: []Param{
				{Name: "branchId", Type: ParamString, Description: "The ID of the branch to close", Required: true},
				{Name: "conclusion", Type: ParamString, Description: "Summary or conclusion"},
			},
		},
		{
			Name:        "merge_branch",
			Description: "Merge insights from a branch back into main. Strategies: conclusion_only, full_integration, summary",
			Params: []Param{
				{Name: "branchId", Type: ParamString, Description: "The ID of the branch to merge", Required: true},
				{Name: "strategy", Type: ParamString, Description: "How to merge", Required: true, Enum: []string{"conclusion_only", "full_integration", "summary"}},
			},
		},
		{
			Name:        "get_thought",
			Description: "Retrieve a specific thought by its number.",
			Params: []Param{
				{Name: "thoughtNumber", Type: ParamInteger, Description: "The thought number to retrieve", Required: true, Minimum: 1},
			},
		},
		{
			Name:        "get_history",
			Description: "Get your thought history. Optionally filter by branch.",
			Params: []Param{
				{Name: "branchId", Type: ParamString, Description: "Optional: filter by branch (\"main\" for the main line only)"},
				{Name: "limit", Type: ParamInteger, Description: "Optional: limit results", Minimum: 1},
			},
		},
		{
			Name:        "tag",
			Description: "Add or remove tags from a thought. Tags help categorize and search thoughts.",
			Params: []Param{
				{Name: "thoughtNumber", Type: ParamInteger, Description: "The thought to tag", Required: true, Minimum: 1},
				{Name: "add", Type: ParamStrings, Description: "Tags to add"},
				{Name: "remove", Type: ParamStrings, Description: "Tags to remove"},
			},
		},
		{
			Name:        "search",
			Description: "Search through thought history by content or tags.",
			Params: []Param{
				{Name: "query", Type: ParamString, Description: "Text to search for (case-insensitive)"},
				{Name: "tags", Type: ParamStrings, Description: "Filter by tags (must have all specified)"},
				{Name: "branchId", Type: ParamString, Description: "Limit search to specific branch"},
			},
		},
		{
			Name:        "export",
			Description: "Export the thinking chain to markdown or JSON format.",
			Params: []Param{
				{Name: "format", Type: ParamString, Description: "Output format (default: markdown)", Enum: []string{"markdown", "json"}},
				{Name: "branchId", Type: ParamString, Description: "Export only a specific branch"},
			},
		},
		{
			Name:        "visualize",
			Description: "Generate a visual diagram of the thinking chain and branches.",
			Params: []Param{
				{Name: "format", Type: ParamString, Description: "Output format (default: mermaid)", Enum: []string{"ascii", "mermaid"}},
				{Name: "showContent", Type: ParamBoolean, Description: "Include thought content preview (default: false)"},
			},
		},
		{
			Name:        "session_save",
			Description: "Name and describe the current thinking session for later retrieval. Data is already persisted automatically; this adds a meaningful name and optional description.",
			Params: []Param{
				{Name: "name", Type: ParamString, Description: "A descriptive name for this session (e.g., 'Debugging auth flow')", Required: true},
				{Name: "description", Type: ParamString, Description: "Optional longer description of the session's purpose or context"},
			},
		},
		{
			Name:        "session_load",
			Description: "Restore a previously saved thinking session into memory. Resumes where you left off: all thoughts, branches, and tags are restored.",
			Params: []Param{
				{Name: "id", Type: ParamString, Description: "The session UUID to load (from session_list)", Required: true},
			},
		},
		{
			Name:        "session_list",
			Description: "Browse available thinking sessions. Shows most recently updated first.",
			Params: []Param{
				{Name: "status", Type: ParamString, Description: "Filter by session status", Enum: []string{"active", "complete", "archived"}},
				{Name: "limit", Type: ParamInteger, Description: "Max sessions to return (default: 20)", Minimum: 1, Maximum: 100},
				{Name: "offset", Type: ParamInteger, Description: "Number of sessions to skip (default: 0)"},
			},
		},
		{
			Name:        "session_summary",
			Description: "Generate a compressed summary of a thinking session for token-efficient context loading. Includes key findings from conclusions, tagged thoughts, and branch results.",
			Params: []Param{
				{Name: "id", Type: ParamString, Description: "The session UUID to summarize", Required: true},
				{Name: "maxLength", Type: ParamInteger, Description: "Target summary length in characters (default: 2000)", Minimum: 100},
			},
		},
	}
}
