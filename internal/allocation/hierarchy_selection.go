package allocation

import (
	apperrors "allocation-engine-backend/internal/errors"

	"github.com/google/uuid"
)

// HierarchySelection tracks module/submodule checkboxes for bulk assignment.
// Selecting or deselecting a module cascades to all of its submodules.
// Deselecting a submodule deselects its module; selecting the last missing
// submodule selects the module again.
type HierarchySelection struct {
	children   map[uuid.UUID][]uuid.UUID
	parent     map[uuid.UUID]uuid.UUID
	order      []uuid.UUID
	modules    map[uuid.UUID]bool
	submodules map[uuid.UUID]bool
}

// NewHierarchySelection creates an empty selection over the given modules
func NewHierarchySelection(modules []ModuleNode) *HierarchySelection {
	h := &HierarchySelection{
		children:   make(map[uuid.UUID][]uuid.UUID, len(modules)),
		parent:     make(map[uuid.UUID]uuid.UUID),
		modules:    make(map[uuid.UUID]bool),
		submodules: make(map[uuid.UUID]bool),
	}
	for _, m := range modules {
		if _, dup := h.children[m.ID]; dup {
			continue
		}
		h.order = append(h.order, m.ID)
		subs := make([]uuid.UUID, 0, len(m.Submodules))
		for _, s := range m.Submodules {
			subs = append(subs, s.ID)
			h.parent[s.ID] = m.ID
		}
		h.children[m.ID] = subs
	}
	return h
}

// ToggleModule selects or deselects a module together with all its submodules
func (h *HierarchySelection) ToggleModule(moduleID uuid.UUID) error {
	subs, ok := h.children[moduleID]
	if !ok {
		return apperrors.NewAllocationError(apperrors.KindNotFound, "module %s not found", moduleID)
	}
	selected := !h.modules[moduleID]
	h.setModule(moduleID, selected)
	for _, sub := range subs {
		h.setSubmodule(sub, selected)
	}
	return nil
}

// ToggleSubmodule selects or deselects a single submodule of moduleID
func (h *HierarchySelection) ToggleSubmodule(moduleID, submoduleID uuid.UUID) error {
	if _, ok := h.children[moduleID]; !ok {
		return apperrors.NewAllocationError(apperrors.KindNotFound, "module %s not found", moduleID)
	}
	if parent, ok := h.parent[submoduleID]; !ok || parent != moduleID {
		return apperrors.NewAllocationError(apperrors.KindNotFound,
			"submodule %s not found in module %s", submoduleID, moduleID)
	}

	selected := !h.submodules[submoduleID]
	h.setSubmodule(submoduleID, selected)
	if !selected {
		h.setModule(moduleID, false)
		return nil
	}
	if h.allSubmodulesSelected(moduleID) {
		h.setModule(moduleID, true)
	}
	return nil
}

// IsModuleSelected reports the module's own checkbox
func (h *HierarchySelection) IsModuleSelected(moduleID uuid.UUID) bool {
	return h.modules[moduleID]
}

// IsSubmoduleSelected reports a submodule's checkbox
func (h *HierarchySelection) IsSubmoduleSelected(submoduleID uuid.UUID) bool {
	return h.submodules[submoduleID]
}

// IsModuleFullySelected reports whether the module and all of its submodules are selected
func (h *HierarchySelection) IsModuleFullySelected(moduleID uuid.UUID) bool {
	return h.modules[moduleID] && h.allSubmodulesSelected(moduleID)
}

// FullySelectedModules returns fully selected modules in load order
func (h *HierarchySelection) FullySelectedModules() []uuid.UUID {
	out := make([]uuid.UUID, 0)
	for _, id := range h.order {
		if h.IsModuleFullySelected(id) {
			out = append(out, id)
		}
	}
	return out
}

// SelectedSubmodules returns the selected submodules of a module in load order
func (h *HierarchySelection) SelectedSubmodules(moduleID uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0)
	for _, sub := range h.children[moduleID] {
		if h.submodules[sub] {
			out = append(out, sub)
		}
	}
	return out
}

// Clear deselects everything
func (h *HierarchySelection) Clear() {
	h.modules = make(map[uuid.UUID]bool)
	h.submodules = make(map[uuid.UUID]bool)
}

func (h *HierarchySelection) allSubmodulesSelected(moduleID uuid.UUID) bool {
	for _, sub := range h.children[moduleID] {
		if !h.submodules[sub] {
			return false
		}
	}
	return true
}

func (h *HierarchySelection) setModule(id uuid.UUID, selected bool) {
	if selected {
		h.modules[id] = true
		return
	}
	delete(h.modules, id)
}

func (h *HierarchySelection) setSubmodule(id uuid.UUID, selected bool) {
	if selected {
		h.submodules[id] = true
		return
	}
	delete(h.submodules, id)
}

// HasModule reports whether moduleID belongs to the loaded hierarchy
func (h *HierarchySelection) HasModule(moduleID uuid.UUID) bool {
	_, ok := h.children[moduleID]
	return ok
}
