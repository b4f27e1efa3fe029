package formatter

import "github.com/tordrt/geoddl/internal/ddl"

// tableStatements is the statements of one table in execution order
type tableStatements struct {
	Table      string
	Statements []ddl.Statement
}

// groupByTable groups statements per table, keeping first-seen table order
func groupByTable(stmts []ddl.Statement) []tableStatements {
	var groups []tableStatements
	index := make(map[string]int)

	for _, st := range stmts {
		i, ok := index[st.Table]
		if !ok {
			i = len(groups)
			index[st.Table] = i
			groups = append(groups, tableStatements{Table: st.Table})
		}
		groups[i].Statements = append(groups[i].Statements, st)
	}
	return groups
}
