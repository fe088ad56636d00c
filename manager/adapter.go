package manager

import "github.com/katalvlaran/pathguard/pathstate"

type checkBool interface {
	Check(ps *pathstate.PathState) bool
}

type checkBoolCost interface {
	Check(ps *pathstate.PathState) (bool, int64)
}

type checkCostOnly interface {
	Check(ps *pathstate.PathState) int64
}

type committer interface {
	Commit(ps *pathstate.PathState)
}

// adapter wraps any of this module's Check shapes — Check(ps) bool,
// Check(ps) (bool, int64), or Check(ps) int64, with or without a
// Commit method — into the uniform Filter interface.
type adapter struct {
	checkBool     checkBool
	checkBoolCost checkBoolCost
	checkCostOnly checkCostOnly
	commit        committer
}

// Adapt wraps f, which must implement exactly one of the recognized
// Check method shapes. It panics if f matches none of them — a
// registration-time programmer error, never triggered by Accept-path
// data.
func Adapt(f interface{}) Filter {
	a := &adapter{}
	switch c := f.(type) {
	case checkBoolCost:
		a.checkBoolCost = c
	case checkCostOnly:
		a.checkCostOnly = c
	case checkBool:
		a.checkBool = c
	default:
		panic("manager: Adapt given a value with no recognized Check method")
	}
	if c, ok := f.(committer); ok {
		a.commit = c
	}

	return a
}

func (a *adapter) Check(ps *pathstate.PathState, _, _ int64) (bool, int64) {
	switch {
	case a.checkBoolCost != nil:
		return a.checkBoolCost.Check(ps)
	case a.checkCostOnly != nil:
		return true, a.checkCostOnly.Check(ps)
	default:
		return a.checkBool.Check(ps), 0
	}
}

func (a *adapter) Commit(ps *pathstate.PathState) {
	if a.commit != nil {
		a.commit.Commit(ps)
	}
}
