package service

import (
	"sort"

	"ui-verifier/internal/application/port/output"
	"ui-verifier/internal/domain/entity"
)

var _ output.ActionRegistry = (*ActionRegistryImpl)(nil)

type ActionRegistryImpl struct {
	actions map[entity.ActionType]output.ActionPort
}

func NewActionRegistry() *ActionRegistryImpl {
	return &ActionRegistryImpl{
		actions: make(map[entity.ActionType]output.ActionPort),
	}
}

func (r *ActionRegistryImpl) Register(action output.ActionPort) {
	r.actions[action.Name()] = action
}

func (r *ActionRegistryImpl) Get(name entity.ActionType) (output.ActionPort, bool) {
	action, ok := r.actions[name]
	return action, ok
}

// All returns the registered actions sorted by name.
func (r *ActionRegistryImpl) All() []output.ActionPort {
	result := make([]output.ActionPort, 0, len(r.actions))
	for _, action := range r.actions {
		result = append(result, action)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}
