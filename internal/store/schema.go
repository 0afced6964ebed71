package store

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// rosterSchema describes a worker-shaped document. Unknown keys are kept
// open so files written by other tools still load.
const rosterSchema = `
#Worker: {
	surname: string
	name:    string
	number?: string | null
	year?:   int | null
	...
}

#Roster: [...#Worker]
`

// ParseError reports a data file that is not a roster-shaped document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid roster %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// validate compiles data with the codec and checks it against #Roster.
func validate(c codec, path string, data []byte) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(rosterSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("roster schema: %w", err)
	}
	doc, err := c.extract(ctx, path, data)
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	if err := doc.Err(); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	v := schema.LookupPath(cue.ParsePath("#Roster")).Unify(doc)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}
