package domain

import (
	"fmt"
	"strings"
)

// TriggerType discriminates the Trigger variants.
type TriggerType string

const (
	TriggerMenu    TriggerType = "menu"
	TriggerGlobal  TriggerType = "global"
	TriggerGesture TriggerType = "gesture"
)

// Hand selects which gesture inputs a GestureTrigger compares.
type Hand string

const (
	HandEither Hand = "either"
	HandLeft   Hand = "left"
	HandRight  Hand = "right"
	HandCombo  Hand = "combo"
)

// HandSign is a gesture value as reported by the host's gesture parameters.
type HandSign int

const (
	SignNeutral HandSign = iota
	SignFist
	SignHandOpen
	SignFingerPoint
	SignVictory
	SignRockNRoll
	SignHandGun
	SignThumbsUp
)

var handSignNames = [...]string{
	"NEUTRAL", "FIST", "HANDOPEN", "FINGERPOINT", "VICTORY", "ROCKNROLL", "HANDGUN", "THUMBSUP",
}

func (s HandSign) String() string {
	if s < 0 || int(s) >= len(handSignNames) {
		return fmt.Sprintf("HandSign(%d)", int(s))
	}
	return handSignNames[s]
}

// Valid reports whether s is a known sign.
func (s HandSign) Valid() bool { return s >= SignNeutral && s <= SignThumbsUp }

// ParseHandSign resolves a sign by name, case-insensitively.
func ParseHandSign(name string) (HandSign, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range handSignNames {
		if n == upper {
			return HandSign(i), nil
		}
	}
	return 0, fmt.Errorf("unknown hand sign %q", name)
}

// Trigger is one primitive of a condition. Type selects which fields are meaningful:
// MenuPath for menu triggers, BoolName for global triggers, Hand/Sign/ComboSign for gestures.
type Trigger struct {
	Type      TriggerType `json:"type" yaml:"type" mapstructure:"type"`
	MenuPath  string      `json:"menu_path,omitempty" yaml:"menu_path,omitempty" mapstructure:"menu_path"`
	BoolName  string      `json:"bool_name,omitempty" yaml:"bool_name,omitempty" mapstructure:"bool_name"`
	Hand      Hand        `json:"hand,omitempty" yaml:"hand,omitempty" mapstructure:"hand"`
	Sign      HandSign    `json:"sign,omitempty" yaml:"sign,omitempty" mapstructure:"sign"`
	ComboSign HandSign    `json:"combo_sign,omitempty" yaml:"combo_sign,omitempty" mapstructure:"combo_sign"`
}

// MenuTrigger is satisfied while the toggle's own menu parameter is on.
func MenuTrigger(path string) Trigger {
	return Trigger{Type: TriggerMenu, MenuPath: path}
}

// GlobalTrigger is satisfied while the named boolean signal is set.
func GlobalTrigger(boolName string) Trigger {
	return Trigger{Type: TriggerGlobal, BoolName: boolName}
}

// GestureTrigger is satisfied while the selected hand(s) show the given sign.
// comboSign is only read for HandCombo, where it is the right hand's sign.
func GestureTrigger(hand Hand, sign, comboSign HandSign) Trigger {
	return Trigger{Type: TriggerGesture, Hand: hand, Sign: sign, ComboSign: comboSign}
}

// Label describes a gesture trigger for use as a layer name.
func (t Trigger) Label() string {
	switch t.Hand {
	case HandCombo:
		return fmt.Sprintf("Gesture Left = %s, Right = %s", t.Sign, t.ComboSign)
	case HandLeft:
		return "Gesture Left = " + t.Sign.String()
	case HandRight:
		return "Gesture Right = " + t.Sign.String()
	default:
		return "Gesture Either = " + t.Sign.String()
	}
}

// AndCondition is satisfied when all of its triggers are.
type AndCondition struct {
	Triggers []Trigger `json:"and" yaml:"and" mapstructure:"and"`
}

// HasGesture reports whether any trigger of the clause is a gesture.
func (a AndCondition) HasGesture() bool {
	for _, t := range a.Triggers {
		if t.Type == TriggerGesture {
			return true
		}
	}
	return false
}

// Condition is an OR of AND clauses.
type Condition struct {
	Or []AndCondition `json:"or" yaml:"or" mapstructure:"or"`
}

// When builds a condition with one clause per argument.
func When(clauses ...AndCondition) Condition {
	return Condition{Or: clauses}
}

// All builds a clause requiring every trigger.
func All(triggers ...Trigger) AndCondition {
	return AndCondition{Triggers: triggers}
}

// Clauses returns the non-empty clauses in declaration order.
func (c Condition) Clauses() []AndCondition {
	var out []AndCondition
	for _, clause := range c.Or {
		if len(clause.Triggers) > 0 {
			out = append(out, clause)
		}
	}
	return out
}

// IsEmpty reports whether the condition can never be satisfied because no clause has a trigger.
func (c Condition) IsEmpty() bool {
	return len(c.Clauses()) == 0
}

// Triggers returns every trigger in declaration order.
func (c Condition) Triggers() []Trigger {
	var out []Trigger
	for _, clause := range c.Or {
		out = append(out, clause.Triggers...)
	}
	return out
}

// MenuPaths returns the non-empty menu paths referenced by the condition, in declaration order.
func (c Condition) MenuPaths() []string {
	var out []string
	for _, t := range c.Triggers() {
		if t.Type == TriggerMenu && t.MenuPath != "" {
			out = append(out, t.MenuPath)
		}
	}
	return out
}
