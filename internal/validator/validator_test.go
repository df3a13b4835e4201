package validator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/toggler/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProject() *domain.Project {
	return &domain.Project{
		Name: "wardrobe",
		Toggles: []domain.Toggle{
			{
				Condition: domain.When(domain.All(domain.MenuTrigger("Hat"))),
				State:     domain.NewState(domain.SetObject("Hat", true), domain.DriveToggle("Coat", 0)),
			},
			{
				Condition: domain.When(
					domain.All(domain.GestureTrigger(domain.HandCombo, domain.SignFist, domain.SignVictory)),
					domain.All(domain.GlobalTrigger("IsAFK")),
				),
				State: domain.NewState(domain.PlayClip("wave", domain.MuscleLeftHand)),
			},
			// Empty conditions are legal.
			{},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validProject()))
}

func TestValidate_Nil(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestValidate_CollectsEveryFailure(t *testing.T) {
	p := validProject()
	p.Name = ""
	p.Toggles = append(p.Toggles,
		domain.Toggle{
			Condition: domain.When(domain.All(
				domain.MenuTrigger(""),
				domain.GlobalTrigger(""),
				domain.GestureTrigger("both", domain.HandSign(9), 0),
				domain.Trigger{Type: "voice"},
			)),
		},
		domain.Toggle{
			State: domain.NewState(
				domain.PlayClip("", "tail"),
				domain.SetFlipbook("", -1),
				domain.DriveToggle("", 1),
				domain.Action{Type: "sound"},
			),
			Slider:             true,
			UseInt:             true,
			DefaultSliderValue: 2,
			HasTransitionTime:  true,
			TransitionTime:     -1,
			EnableExclusiveTag: true,
			ExclusiveTag:       " , ",
			EnableIcon:         true,
		},
	)

	err := Validate(p)
	require.Error(t, err)

	var aggr *AggregateError
	require.True(t, errors.As(err, &aggr))

	var keys []string
	for _, e := range FieldErrors(err) {
		var fe *FieldError
		require.True(t, errors.As(e, &fe))
		keys = append(keys, fe.Key)
	}
	assert.Equal(t, []string{
		"name",
		"toggles[3].condition.or[0].and[0].menu_path",
		"toggles[3].condition.or[0].and[1].bool_name",
		"toggles[3].condition.or[0].and[2].hand",
		"toggles[3].condition.or[0].and[2].sign",
		"toggles[3].condition.or[0].and[3].type",
		"toggles[4].state.actions[0].clip",
		"toggles[4].state.actions[0].muscles[0]",
		"toggles[4].state.actions[1].object",
		"toggles[4].state.actions[1].frame",
		"toggles[4].state.actions[2].menu_path",
		"toggles[4].state.actions[3].type",
		"toggles[4].transition_time",
		"toggles[4].use_int",
		"toggles[4].default_slider_value",
		"toggles[4].icon",
	}, keys)

	assert.Contains(t, err.Error(), "16 validation errors")
}

func TestValidate_EmptyExclusiveTagsAllowed(t *testing.T) {
	p := validProject()
	p.Toggles[0].EnableExclusiveTag = true
	p.Toggles[0].ExclusiveTag = " , "

	assert.NoError(t, Validate(p))
}

func TestValidate_ProjectLevel(t *testing.T) {
	p := validProject()
	p.SecurityLock = &domain.SecurityLock{}
	p.Icons = []domain.IconOverride{{Icon: "x.png"}}

	err := Validate(p)
	require.Error(t, err)
	assert.Len(t, FieldErrors(err), 2)
}

func TestFieldError_Message(t *testing.T) {
	assert.Equal(t, `field "name": is required`, (&FieldError{Key: "name", Reason: "is required"}).Error())
	assert.Equal(t, `field "hand": bad (got both)`, (&FieldError{Key: "hand", Reason: "bad", Value: "both"}).Error())
}

func TestFieldErrors_Wrapped(t *testing.T) {
	err := Validate(&domain.Project{})
	wrapped := fmt.Errorf("%w: %w", domain.ErrInvalidProject, err)

	assert.Len(t, FieldErrors(wrapped), 1)
	assert.Nil(t, FieldErrors(errors.New("plain")))
}
