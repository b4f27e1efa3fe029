package db

import "context"

// ScriptClient is an executor that only records statements. It backs dry runs
// and never fails.
type ScriptClient struct {
	statements []string
}

// NewScriptClient creates an empty script recorder
func NewScriptClient() *ScriptClient {
	return &ScriptClient{}
}

func (c *ScriptClient) Open(context.Context) error  { return nil }
func (c *ScriptClient) Close(context.Context) error { return nil }

// Exec records stmt
func (c *ScriptClient) Exec(_ context.Context, stmt string) error {
	c.statements = append(c.statements, stmt)
	return nil
}

// Statements returns the recorded statements in execution order
func (c *ScriptClient) Statements() []string {
	return append([]string(nil), c.statements...)
}
