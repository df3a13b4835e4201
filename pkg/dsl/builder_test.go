package dsl_test

import (
	"errors"
	"testing"

	"github.com/aretw0/toggler/internal/validator"
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Wardrobe(t *testing.T) {
	b := dsl.New("wardrobe").
		SecurityLock("Unlocked").
		Icon("Clothing/Hat", "hat.png")

	b.Toggle().
		Menu("Clothing/Hat").
		Show(domain.SetObject("Hat", true)).
		Show(domain.SetObject("Hair", false)).
		Exclusive("Head").
		Exclusive("Top").
		Saved().
		DefaultOn().
		InRest().
		Secured()

	b.Toggle().
		Gesture(domain.HandLeft, domain.SignFist).
		Combo(domain.SignVictory, domain.SignVictory).
		Show(domain.PlayClip("angry", domain.MuscleOther)).
		TransitionIn(domain.PlayClip("angry_in")).
		SimpleOut().
		TransitionTime(0.25).
		RunToCompletion()

	b.Toggle().
		Menu("Props/Sword").
		Show(domain.SetObject("Sword", true)).
		Local(domain.SetObject("SwordFP", true)).
		ResetPhysbones("Tassel").
		DriveGlobals("Armed").
		DriveGlobals("Combat").
		Hold().
		Icon("sword.png").
		Int().
		Prefixed()

	b.Toggle().
		Global("IsAFK").
		Param("AFK").
		Slider(0.5).
		OffState().
		End().
		Icon("Props/Sword", "sword2.png")

	project, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "wardrobe", project.Name)
	assert.Equal(t, &domain.SecurityLock{Param: "Unlocked"}, project.SecurityLock)
	assert.Equal(t, []domain.IconOverride{
		{Path: "Clothing/Hat", Icon: "hat.png"},
		{Path: "Props/Sword", Icon: "sword2.png"},
	}, project.Icons)
	require.Len(t, project.Toggles, 4)

	hat := project.Toggles[0]
	assert.Equal(t, []string{"Clothing/Hat"}, hat.Condition.MenuPaths())
	assert.Equal(t, domain.NewState(domain.SetObject("Hat", true), domain.SetObject("Hair", false)), hat.State)
	assert.Equal(t, []string{"Head", "Top"}, hat.ExplicitTags())
	assert.True(t, hat.Saved)
	assert.True(t, hat.DefaultOn)
	assert.True(t, hat.IncludeInRest)
	assert.True(t, hat.SecurityEnabled)

	face := project.Toggles[1]
	require.Len(t, face.Condition.Or, 2)
	assert.Equal(t, domain.GestureTrigger(domain.HandLeft, domain.SignFist, domain.SignNeutral), face.Condition.Or[0].Triggers[0])
	assert.Equal(t, domain.HandCombo, face.Condition.Or[1].Triggers[0].Hand)
	assert.True(t, face.HasTransition)
	assert.True(t, face.SimpleOutTransition)
	assert.True(t, face.HasTransitionTime)
	assert.Equal(t, 0.25, face.TransitionTime)
	assert.True(t, face.HasExitTime)
	assert.Equal(t, domain.NewState(domain.PlayClip("angry_in")), face.TransitionStateIn)

	sword := project.Toggles[2]
	assert.True(t, sword.SeparateLocal)
	assert.Equal(t, domain.NewState(domain.SetObject("SwordFP", true)), sword.LocalState)
	assert.Equal(t, []string{"Tassel"}, sword.ResetPhysbones)
	assert.Equal(t, []string{"Armed", "Combat"}, sword.GlobalParams())
	assert.True(t, sword.HoldButton)
	assert.True(t, sword.EnableIcon)
	assert.Equal(t, "sword.png", sword.Icon)
	assert.True(t, sword.UseInt)
	assert.True(t, sword.UsePrefixOnParam)

	afk := project.Toggles[3]
	assert.Equal(t, "AFK", afk.ParamOverride)
	assert.True(t, afk.Slider)
	assert.Equal(t, 0.5, afk.DefaultSliderValue)
	assert.True(t, afk.ExclusiveOffState)
}

func TestBuilder_Invalid(t *testing.T) {
	b := dsl.New("")
	b.Toggle().Menu("").Slider(3)

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidProject))

	var aggr *validator.AggregateError
	require.True(t, errors.As(err, &aggr))
	assert.Len(t, aggr.Errors, 3)
}

func TestBuilder_EmptyProjectIsValid(t *testing.T) {
	project, err := dsl.New("empty").Build()
	require.NoError(t, err)
	assert.Empty(t, project.Toggles)
}
