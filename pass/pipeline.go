package pass

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gramlang/gram/debug"
	"github.com/gramlang/gram/ir"
)

// ErrUnstable is returned when the pipeline hits its round cap with
// passes still reporting change.
var ErrUnstable = errors.New("pass pipeline did not stabilize")

// DefaultMaxRounds bounds fixed-point iteration so two passes that
// undo each other cannot loop the compiler forever.
const DefaultMaxRounds = 32

// Pipeline runs passes in declared order, repeating the whole sequence
// until a round in which no pass reports a change.
type Pipeline struct {
	passes    []Pass
	maxRounds int
}

// NewPipeline builds a pipeline over the passes in the given order.
func NewPipeline(passes ...Pass) *Pipeline {
	return &Pipeline{passes: passes, maxRounds: DefaultMaxRounds}
}

// WithMaxRounds overrides the round cap.
func (p *Pipeline) WithMaxRounds(n int) *Pipeline {
	p.maxRounds = n
	return p
}

// Run drives the pipeline over root. A pass error aborts immediately.
// Reaching the round cap without stabilizing reports a diagnostic
// naming the passes still changing the tree and returns ErrUnstable —
// a hard compilation failure, not a crash.
func (p *Pipeline) Run(ctx *Context, root *ir.Node) error {
	var oscillating []string
	for round := 1; round <= p.maxRounds; round++ {
		var changedNames []string
		for _, ps := range p.passes {
			changed, err := ps.Run(ctx, root)
			if err != nil {
				return fmt.Errorf("pass %s: %w", ps.Name(), err)
			}
			if changed {
				changedNames = append(changedNames, ps.Name())
			}
			if debug.Pipeline() {
				debug.Logf("round %d pass %s changed=%v\n", round, ps.Name(), changed)
			}
		}
		if len(changedNames) == 0 {
			return nil
		}
		oscillating = changedNames
	}
	ctx.Diags.Errorf(ir.Location{},
		"pass pipeline did not stabilize after %d rounds; still changing: %s",
		p.maxRounds, strings.Join(oscillating, ", "))
	return fmt.Errorf("%w after %d rounds", ErrUnstable, p.maxRounds)
}
