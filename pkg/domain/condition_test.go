package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/toggler/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondition_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		cond  domain.Condition
		empty bool
	}{
		{"no clauses", domain.Condition{}, true},
		{"only empty clauses", domain.When(domain.All(), domain.All()), true},
		{"one trigger", domain.When(domain.All(), domain.All(domain.MenuTrigger("Shirt"))), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.cond.IsEmpty())
		})
	}
}

func TestCondition_ClausesKeepDeclarationOrder(t *testing.T) {
	first := domain.All(domain.GlobalTrigger("A"))
	second := domain.All(domain.GestureTrigger(domain.HandLeft, domain.SignFist, 0))

	cond := domain.When(first, domain.All(), second)

	clauses := cond.Clauses()
	require.Len(t, clauses, 2)
	assert.Equal(t, first, clauses[0])
	assert.Equal(t, second, clauses[1])
	assert.False(t, clauses[0].HasGesture())
	assert.True(t, clauses[1].HasGesture())
}

func TestCondition_MenuPaths(t *testing.T) {
	cond := domain.When(
		domain.All(domain.MenuTrigger(""), domain.GlobalTrigger("G")),
		domain.All(domain.MenuTrigger("Clothing/Shirt")),
	)
	assert.Equal(t, []string{"Clothing/Shirt"}, cond.MenuPaths())
}

func TestTrigger_Label(t *testing.T) {
	assert.Equal(t, "Gesture Left = FIST", domain.GestureTrigger(domain.HandLeft, domain.SignFist, 0).Label())
	assert.Equal(t, "Gesture Right = VICTORY", domain.GestureTrigger(domain.HandRight, domain.SignVictory, 0).Label())
	assert.Equal(t, "Gesture Either = THUMBSUP", domain.GestureTrigger(domain.HandEither, domain.SignThumbsUp, 0).Label())
	assert.Equal(t,
		"Gesture Left = HANDGUN, Right = ROCKNROLL",
		domain.GestureTrigger(domain.HandCombo, domain.SignHandGun, domain.SignRockNRoll).Label(),
	)
}

func TestParseHandSign(t *testing.T) {
	sign, err := domain.ParseHandSign(" handopen ")
	require.NoError(t, err)
	assert.Equal(t, domain.SignHandOpen, sign)

	_, err = domain.ParseHandSign("wave")
	assert.Error(t, err)

	assert.Equal(t, "HandSign(9)", domain.HandSign(9).String())
	assert.False(t, domain.HandSign(9).Valid())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Outfit", "Hat"}, domain.SplitList(" Outfit, ,Hat,Outfit "))
	assert.Empty(t, domain.SplitList(""))
}

func TestToggle_ExplicitTags(t *testing.T) {
	toggle := domain.Toggle{ExclusiveTag: "Outfit,Hat"}
	assert.Empty(t, toggle.ExplicitTags())

	toggle.EnableExclusiveTag = true
	assert.Equal(t, []string{"Outfit", "Hat"}, toggle.ExplicitTags())
}

func TestExclusiveOverflowError(t *testing.T) {
	err := error(&domain.ExclusiveOverflowError{Tag: "Outfit", Size: 300})
	assert.True(t, errors.Is(err, domain.ErrTooManyExclusives))
	assert.Contains(t, err.Error(), "Outfit")
	assert.Contains(t, err.Error(), "256")
}
