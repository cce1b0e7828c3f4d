package service

import (
	"context"
	"errors"
	"fmt"

	"allocation-engine-backend/internal/allocation"
	apperrors "allocation-engine-backend/internal/errors"
	"allocation-engine-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SelectionService manages the in-memory selection sessions of the allocation screens
type SelectionService struct {
	store      *allocation.SessionStore
	moduleRepo repository.ModuleRepositoryInterface
	releaseSvc ReleaseAllocationServiceInterface
	qaSvc      QAAllocationServiceInterface
	validator  *validator.Validate
}

// NewSelectionService creates a new selection service
func NewSelectionService(
	store *allocation.SessionStore,
	moduleRepo repository.ModuleRepositoryInterface,
	releaseSvc ReleaseAllocationServiceInterface,
	qaSvc QAAllocationServiceInterface,
	validator *validator.Validate,
) *SelectionService {
	return &SelectionService{
		store:      store,
		moduleRepo: moduleRepo,
		releaseSvc: releaseSvc,
		qaSvc:      qaSvc,
		validator:  validator,
	}
}

// CreateSelectionRequest starts a session in the given mode
type CreateSelectionRequest struct {
	Mode string `json:"mode" validate:"required" example:"one-to-one"`
}

// ToggleItemRequest toggles one id in a selection
type ToggleItemRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// SelectAllRequest adds a list of ids to a selection
type SelectAllRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"dive,required"`
}

// SetModeRequest switches the allocation mode
type SetModeRequest struct {
	Mode string `json:"mode" validate:"required" example:"bulk"`
}

// SetTargetRequest switches the release targeted by QA allocation
type SetTargetRequest struct {
	ReleaseID uuid.UUID `json:"release_id" validate:"required"`
}

// SubmitSelectionResponse is the batch outcome plus the session after submit
type SubmitSelectionResponse struct {
	Batch   *AllocationBatchResponse `json:"batch"`
	Session allocation.SessionView   `json:"session"`
}

// QASubmitSelectionRequest names the QA engineer receiving the selected test cases
type QASubmitSelectionRequest struct {
	QAID uuid.UUID `json:"qa_id" validate:"required"`
}

// QASubmitSelectionResponse is the QA allocation outcome plus the session after submit
type QASubmitSelectionResponse struct {
	Allocation *QAAllocateResponse    `json:"allocation"`
	Session    allocation.SessionView `json:"session"`
}

// Create starts a new selection session
func (s *SelectionService) Create(req *CreateSelectionRequest) (*allocation.SessionView, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	mode, err := allocation.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	view, err := s.store.Create(mode)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Get returns a session
func (s *SelectionService) Get(id uuid.UUID) (*allocation.SessionView, error) {
	return viewOrErr(s.store.Get(id))
}

// Delete drops a session
func (s *SelectionService) Delete(id uuid.UUID) error {
	return s.store.Delete(id)
}

// ToggleSource toggles a test case
func (s *SelectionService) ToggleSource(id uuid.UUID, req *ToggleItemRequest) (*allocation.SessionView, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	return viewOrErr(s.store.Update(id, func(session *allocation.Session) error {
		return session.Selection().ToggleSource(req.ID)
	}))
}

// ToggleTarget toggles a release
func (s *SelectionService) ToggleTarget(id uuid.UUID, req *ToggleItemRequest) (*allocation.SessionView, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	return viewOrErr(s.store.Update(id, func(session *allocation.Session) error {
		return session.Selection().ToggleTarget(req.ID)
	}))
}

// SelectAllSources replaces the selected test cases
func (s *SelectionService) SelectAllSources(id uuid.UUID, req *SelectAllRequest) (*allocation.SessionView, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	return viewOrErr(s.store.Update(id, func(session *allocation.Session) error {
		return session.Selection().SelectAllSources(req.IDs)
	}))
}

// SelectAllTargets replaces the selected releases
func (s *SelectionService) SelectAllTargets(id uuid.UUID, req *SelectAllRequest) (*allocation.SessionView, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	return viewOrErr(s.store.Update(id, func(session *allocation.Session) error {
		return session.Selection().SelectAllTargets(req.IDs)
	}))
}

// SetMode switches the mode; the selection is cleared
func (s *SelectionService) SetMode(id uuid.UUID, req *SetModeRequest) (*allocation.SessionView, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	mode, err := allocation.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	return viewOrErr(s.store.Update(id, func(session *allocation.Session) error {
		return session.SetMode(mode)
	}))
}

// SetTarget switches the release targeted by QA allocation; the selection is
// cleared when the release changes
func (s *SelectionService) SetTarget(id uuid.UUID, req *SetTargetRequest) (*allocation.SessionView, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	return viewOrErr(s.store.Update(id, func(session *allocation.Session) error {
		return session.SetTarget(req.ReleaseID)
	}))
}

// Clear drops every selected item, keeping the mode
func (s *SelectionService) Clear(id uuid.UUID) (*allocation.SessionView, error) {
	return viewOrErr(s.store.Update(id, func(session *allocation.Session) error {
		session.Reset()
		return nil
	}))
}

// ToggleModule toggles a module and all of its submodules. The module's
// project hierarchy is loaded into the session on first use.
func (s *SelectionService) ToggleModule(id, moduleID uuid.UUID) (*allocation.SessionView, error) {
	return viewOrErr(s.store.Update(id, func(session *allocation.Session) error {
		if err := s.loadHierarchy(session, moduleID); err != nil {
			return err
		}
		return session.Hierarchy().ToggleModule(moduleID)
	}))
}

// ToggleSubmodule toggles one submodule; the parent follows its children
func (s *SelectionService) ToggleSubmodule(id, moduleID, submoduleID uuid.UUID) (*allocation.SessionView, error) {
	return viewOrErr(s.store.Update(id, func(session *allocation.Session) error {
		if err := s.loadHierarchy(session, moduleID); err != nil {
			return err
		}
		return session.Hierarchy().ToggleSubmodule(moduleID, submoduleID)
	}))
}

// Submit allocates the session's selection. The selection is cleared only
// when every request succeeded.
func (s *SelectionService) Submit(ctx context.Context, id uuid.UUID) (*SubmitSelectionResponse, error) {
	var (
		batch    *AllocationBatchResponse
		batchErr error
	)
	view, err := s.store.Update(id, func(session *allocation.Session) error {
		selection := session.Selection()
		batch, batchErr = s.releaseSvc.Allocate(ctx, &AllocateRequest{
			Mode:        string(selection.Mode()),
			TestCaseIDs: selection.Sources().IDs(),
			ReleaseIDs:  selection.Targets().IDs(),
		})
		if batchErr == nil {
			session.Reset()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, batchErr
	}
	return &SubmitSelectionResponse{Batch: batch, Session: view}, batchErr
}

// SubmitQA assigns the selected test cases to a QA engineer within the
// session's target release. The selected test cases are cleared once the
// allocation went through; they are kept when nothing was accepted.
func (s *SelectionService) SubmitQA(ctx context.Context, id uuid.UUID, req *QASubmitSelectionRequest) (*QASubmitSelectionResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var (
		result *QAAllocateResponse
		qaErr  error
	)
	view, err := s.store.Update(id, func(session *allocation.Session) error {
		target := session.Target()
		if target == uuid.Nil {
			return apperrors.NewAllocationError(apperrors.KindInvalidSelection, "no release targeted for QA allocation")
		}
		sources := session.Selection().Sources()
		if sources.Size() == 0 {
			return apperrors.NewAllocationError(apperrors.KindInvalidSelection, "no test case selected")
		}
		result, qaErr = s.qaSvc.Allocate(ctx, target, &QAAllocateRequest{
			QAID:        req.QAID,
			TestCaseIDs: sources.IDs(),
		})
		if qaErr == nil {
			sources.Clear()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if qaErr != nil {
		return nil, qaErr
	}
	return &QASubmitSelectionResponse{Allocation: result, Session: view}, nil
}

// loadHierarchy makes sure the session holds the hierarchy of moduleID's project
func (s *SelectionService) loadHierarchy(session *allocation.Session, moduleID uuid.UUID) error {
	if session.Hierarchy() != nil && session.Hierarchy().HasModule(moduleID) {
		return nil
	}

	module, err := s.moduleRepo.GetByID(moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrModuleNotFound
		}
		return fmt.Errorf("failed to get module: %w", err)
	}
	modules, err := s.moduleRepo.GetByProjectID(module.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to get project modules: %w", err)
	}

	nodes := make([]allocation.ModuleNode, 0, len(modules))
	for i := range modules {
		nodes = append(nodes, ToModuleNode(&modules[i]))
	}
	session.LoadHierarchy(module.ProjectID, nodes)
	return nil
}

func viewOrErr(view allocation.SessionView, err error) (*allocation.SessionView, error) {
	if err != nil {
		return nil, err
	}
	return &view, nil
}
