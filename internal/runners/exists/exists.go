package exists

import (
	"github.com/ActiveState/pylink/internal/output"
	"github.com/ActiveState/pylink/internal/primer"
	"github.com/ActiveState/pylink/pkg/buildenv"
	"github.com/ActiveState/pylink/pkg/pylink"
)

type primeable interface {
	primer.Outputer
}

type Exists struct {
	out output.Outputer
}

func New(p primeable) *Exists {
	return &Exists{p.Output()}
}

// Run reports whether the python extension can be used. The resolver does not look at the interpreter for this so
// an empty one is enough.
func (e *Exists) Run() error {
	available := pylink.New(pylink.Interpreter{}).IsAvailable(buildenv.New())
	e.out.Print(available)
	return nil
}
