package address

import (
	"github.com/muhammadheryan/storefront/model"
)

type Level int

const (
	LevelProvince Level = iota
	LevelDistrict
	LevelWard
)

var levelNames = [...]string{"province", "district", "ward"}

func (l Level) String() string {
	if l < LevelProvince || l > LevelWard {
		return "unknown"
	}
	return levelNames[l]
}

type LevelState struct {
	Selected model.Region   `json:"selected"`
	Options  []model.Region `json:"options"`
	Loading  bool           `json:"loading"`
	Error    string         `json:"error,omitempty"`
	// Token is the generation of the list this level expects. A load result carrying
	// any other token is stale.
	Token uint64 `json:"-"`
}

type State struct {
	Levels [3]LevelState `json:"levels"`
}

func (s State) Province() LevelState { return s.Levels[LevelProvince] }
func (s State) District() LevelState { return s.Levels[LevelDistrict] }
func (s State) Ward() LevelState     { return s.Levels[LevelWard] }

// Address returns the three selected regions.
func (s State) Address() model.ShippingAddress {
	return model.ShippingAddress{
		Province: s.Levels[LevelProvince].Selected,
		District: s.Levels[LevelDistrict].Selected,
		Ward:     s.Levels[LevelWard].Selected,
	}
}

type ActionKind int

const (
	ActionSelect ActionKind = iota
	ActionLoadStarted
	ActionLoaded
	ActionLoadFailed
)

type Action struct {
	Kind    ActionKind
	Level   Level
	Region  model.Region
	Options []model.Region
	Token   uint64
	// Parent is the code of the parent selection the load was issued for.
	Parent int
	Err    error
}

// Reduce applies one action and reports whether it changed anything. Selections outside
// the loaded option list and load results that no longer match the current selection
// are rejected.
func Reduce(s State, a Action) (State, bool) {
	if a.Level < LevelProvince || a.Level > LevelWard {
		return s, false
	}
	lvl := s.Levels[a.Level]

	switch a.Kind {
	case ActionSelect:
		if !contains(lvl.Options, a.Region.Code) {
			return s, false
		}
		lvl.Selected = a.Region
		s.Levels[a.Level] = lvl
		for d := a.Level + 1; d <= LevelWard; d++ {
			s.Levels[d] = LevelState{Token: s.Levels[d].Token + 1}
		}
		return s, true

	case ActionLoadStarted:
		if a.Token != lvl.Token || !parentMatches(s, a.Level, a.Parent) {
			return s, false
		}
		lvl.Loading = true
		lvl.Error = ""
		s.Levels[a.Level] = lvl
		return s, true

	case ActionLoaded:
		if a.Token != lvl.Token || !parentMatches(s, a.Level, a.Parent) {
			return s, false
		}
		lvl.Options = a.Options
		lvl.Loading = false
		lvl.Error = ""
		s.Levels[a.Level] = lvl
		return s, true

	case ActionLoadFailed:
		if a.Token != lvl.Token || !parentMatches(s, a.Level, a.Parent) {
			return s, false
		}
		lvl.Loading = false
		if a.Err != nil {
			lvl.Error = a.Err.Error()
		}
		s.Levels[a.Level] = lvl
		return s, true
	}
	return s, false
}

func parentMatches(s State, l Level, parent int) bool {
	if l == LevelProvince {
		return true
	}
	return s.Levels[l-1].Selected.Code == parent
}

func contains(options []model.Region, code int) bool {
	if code == 0 {
		return false
	}
	for _, o := range options {
		if o.Code == code {
			return true
		}
	}
	return false
}
