package service

import (
	"context"
	"testing"

	"ui-verifier/internal/application/port/output"
	"ui-verifier/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAction struct {
	name entity.ActionType
}

func (s stubAction) Name() entity.ActionType { return s.name }
func (s stubAction) Description() string     { return "stub" }
func (s stubAction) Execute(context.Context, output.BrowserPort, entity.Scenario, entity.Step) ([]entity.Artifact, error) {
	return nil, nil
}

func TestActionRegistry(t *testing.T) {
	r := NewActionRegistry()
	r.Register(stubAction{entity.ActionScreenshot})
	r.Register(stubAction{entity.ActionClick})
	r.Register(stubAction{entity.ActionNavigate})

	a, ok := r.Get(entity.ActionClick)
	require.True(t, ok)
	assert.Equal(t, entity.ActionClick, a.Name())

	_, ok = r.Get(entity.ActionExpectVisible)
	assert.False(t, ok)

	var names []entity.ActionType
	for _, a := range r.All() {
		names = append(names, a.Name())
	}
	assert.Equal(t, []entity.ActionType{entity.ActionClick, entity.ActionNavigate, entity.ActionScreenshot}, names)
}
