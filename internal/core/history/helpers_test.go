package history

import (
	"fmt"

	"github.com/bethropolis/daub/internal/types"
)

// register is a minimal construct holding one int.
type register struct {
	id    types.ConstructID
	value int
	log   *[]string // optional shared trace of applied writes
}

func newRegister(name string) *register {
	return &register{id: types.NewConstructID(name)}
}

// setRegister writes a value into a register.
type setRegister struct {
	reg         *register
	value, last int
}

func (s setRegister) write(v int) {
	s.reg.value = v
	if s.reg.log != nil {
		*s.reg.log = append(*s.reg.log, fmt.Sprintf("%s=%d", s.reg.id.Kind(), v))
	}
}

func (s setRegister) ExecuteSelf()         { s.write(s.value) }
func (s setRegister) UndoSelf()            { s.write(s.last) }
func (s setRegister) NothingChanged() bool { return s.value == s.last }
func (s setRegister) Value() int           { return s.value }
func (s setRegister) LastValue() int       { return s.last }

func (s setRegister) AffectedConstruct() types.ConstructID {
	if s.reg == nil {
		return types.NoConstruct
	}
	return s.reg.id
}

// set builds an action moving reg from its current value to v.
func set(reg *register, v int) *Command[int] {
	return NewCommand[int](setRegister{reg: reg, value: v, last: reg.value}, nil)
}

// transition builds an action with explicit endpoints, regardless of reg's state.
func transition(reg *register, from, to int) *Command[int] {
	return NewCommand[int](setRegister{reg: reg, value: to, last: from}, nil)
}
