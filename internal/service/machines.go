package service

import (
	"errors"
	"fmt"
)

var ErrUnknownMachine = errors.New("unknown machine")

// MachineRegistry is the fixed set of simulated machines.
type MachineRegistry struct {
	ids   []string
	index map[string]struct{}
}

func NewMachineRegistry(ids []string) *MachineRegistry {
	r := &MachineRegistry{index: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if _, dup := r.index[id]; dup || id == "" {
			continue
		}
		r.index[id] = struct{}{}
		r.ids = append(r.ids, id)
	}
	return r
}

// IDs returns the machine ids in configuration order.
func (r *MachineRegistry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Check returns ErrUnknownMachine (wrapped) for ids outside the registry.
func (r *MachineRegistry) Check(id string) error {
	if _, ok := r.index[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMachine, id)
	}
	return nil
}
