package primer

import (
	"github.com/ActiveState/pylink/internal/config"
	"github.com/ActiveState/pylink/internal/output"
)

type Values struct {
	output output.Outputer
	config *config.Instance
}

func New(output output.Outputer, config *config.Instance) *Values {
	return &Values{
		output: output,
		config: config,
	}
}

type Outputer interface {
	Output() output.Outputer
}

type Configurer interface {
	Config() *config.Instance
}

func (v *Values) Output() output.Outputer {
	return v.output
}

func (v *Values) Config() *config.Instance {
	return v.config
}
