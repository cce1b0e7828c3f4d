package allocation

import (
	apperrors "allocation-engine-backend/internal/errors"

	"github.com/google/uuid"
)

// SubmoduleNode is a submodule with its assigned developers. Overridden is set
// when the submodule was assigned explicitly after the last module-level assignment.
type SubmoduleNode struct {
	ID           uuid.UUID
	Name         string
	AssignedDevs []uuid.UUID
	Overridden   bool
}

// ModuleNode is a module with its assigned developers and submodules
type ModuleNode struct {
	ID           uuid.UUID
	Name         string
	AssignedDevs []uuid.UUID
	Submodules   []SubmoduleNode
}

// Propagator keeps module and submodule developer assignments consistent.
// A module-level assignment overwrites every submodule's set; a submodule-level
// assignment only touches that submodule.
type Propagator struct {
	modules map[uuid.UUID]*ModuleNode
	order   []uuid.UUID
}

// NewPropagator creates a propagator over a copy of modules
func NewPropagator(modules []ModuleNode) *Propagator {
	p := &Propagator{modules: make(map[uuid.UUID]*ModuleNode, len(modules))}
	for _, m := range modules {
		if _, dup := p.modules[m.ID]; dup {
			continue
		}
		clone := cloneModule(m)
		p.modules[m.ID] = &clone
		p.order = append(p.order, m.ID)
	}
	return p
}

// AssignModule sets the module's developers and overwrites every submodule's
// developers with the same set, clearing their override flags.
func (p *Propagator) AssignModule(moduleID uuid.UUID, devIDs []uuid.UUID) (ModuleNode, error) {
	m, ok := p.modules[moduleID]
	if !ok {
		return ModuleNode{}, apperrors.NewAllocationError(apperrors.KindNotFound, "module %s not found", moduleID)
	}
	devs, err := normalizeDevs(devIDs)
	if err != nil {
		return ModuleNode{}, err
	}

	m.AssignedDevs = devs
	for i := range m.Submodules {
		m.Submodules[i].AssignedDevs = cloneIDs(devs)
		m.Submodules[i].Overridden = false
	}
	return cloneModule(*m), nil
}

// AssignSubmodule sets one submodule's developers. The module-level set and
// sibling submodules are left untouched.
func (p *Propagator) AssignSubmodule(moduleID, submoduleID uuid.UUID, devIDs []uuid.UUID) (SubmoduleNode, error) {
	m, ok := p.modules[moduleID]
	if !ok {
		return SubmoduleNode{}, apperrors.NewAllocationError(apperrors.KindNotFound, "module %s not found", moduleID)
	}
	idx := -1
	for i := range m.Submodules {
		if m.Submodules[i].ID == submoduleID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return SubmoduleNode{}, apperrors.NewAllocationError(apperrors.KindNotFound,
			"submodule %s not found in module %s", submoduleID, moduleID)
	}
	devs, err := normalizeDevs(devIDs)
	if err != nil {
		return SubmoduleNode{}, err
	}

	m.Submodules[idx].AssignedDevs = devs
	m.Submodules[idx].Overridden = true
	return cloneSubmodule(m.Submodules[idx]), nil
}

// EffectiveTeam returns the union of module-level and submodule-level developers
func (p *Propagator) EffectiveTeam(moduleID uuid.UUID) ([]uuid.UUID, error) {
	m, ok := p.modules[moduleID]
	if !ok {
		return nil, apperrors.NewAllocationError(apperrors.KindNotFound, "module %s not found", moduleID)
	}
	return EffectiveTeam(*m), nil
}

// Module returns a copy of the module's current state
func (p *Propagator) Module(moduleID uuid.UUID) (ModuleNode, error) {
	m, ok := p.modules[moduleID]
	if !ok {
		return ModuleNode{}, apperrors.NewAllocationError(apperrors.KindNotFound, "module %s not found", moduleID)
	}
	return cloneModule(*m), nil
}

// Modules returns copies of every module in load order
func (p *Propagator) Modules() []ModuleNode {
	out := make([]ModuleNode, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, cloneModule(*p.modules[id]))
	}
	return out
}

// EffectiveTeam computes the complete team of a module: module-level developers
// first, then any submodule-only developers in submodule order.
func EffectiveTeam(m ModuleNode) []uuid.UUID {
	team := make([]uuid.UUID, 0, len(m.AssignedDevs))
	seen := make(map[uuid.UUID]struct{})
	add := func(ids []uuid.UUID) {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			team = append(team, id)
		}
	}
	add(m.AssignedDevs)
	for _, sub := range m.Submodules {
		add(sub.AssignedDevs)
	}
	return team
}

// normalizeDevs rejects nil ids and removes duplicates, keeping first occurrence
func normalizeDevs(ids []uuid.UUID) ([]uuid.UUID, error) {
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, apperrors.NewAllocationError(apperrors.KindInvalidInput, "developer id is required")
		}
	}
	return uniqueIDs(ids), nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func cloneIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}

func cloneSubmodule(s SubmoduleNode) SubmoduleNode {
	s.AssignedDevs = cloneIDs(s.AssignedDevs)
	return s
}

func cloneModule(m ModuleNode) ModuleNode {
	m.AssignedDevs = cloneIDs(m.AssignedDevs)
	subs := make([]SubmoduleNode, len(m.Submodules))
	for i, s := range m.Submodules {
		subs[i] = cloneSubmodule(s)
	}
	m.Submodules = subs
	return m
}
