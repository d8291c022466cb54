package geo

import "testing"

// setDirection flips the process direction for one test and restores the
// previous value afterwards. Tests in this package never run in parallel, so
// ordinary cleanup is enough.
func setDirection(t *testing.T, rtl bool) {
	t.Helper()
	prev := RightToLeft()
	SetRightToLeft(rtl)
	t.Cleanup(func() { SetRightToLeft(prev) })
}

func TestDirectionFlag(t *testing.T) {
	setDirection(t, false)
	if RightToLeft() {
		t.Fatal("RightToLeft = true after SetRightToLeft(false)")
	}
	SetRightToLeft(true)
	if !RightToLeft() {
		t.Fatal("RightToLeft = false after SetRightToLeft(true)")
	}
}

func TestDirectionResolvedLive(t *testing.T) {
	// Resolution happens at each access: the same Property value reads
	// differently after the flag changes, with nothing cached in between.
	setDirection(t, false)
	if got := Leading.Concrete(); got != Left {
		t.Errorf("Leading.Concrete() = %v under LTR, want Left", got)
	}
	if got := Trailing.Concrete(); got != Right {
		t.Errorf("Trailing.Concrete() = %v under LTR, want Right", got)
	}

	SetRightToLeft(true)
	if got := Leading.Concrete(); got != Right {
		t.Errorf("Leading.Concrete() = %v under RTL, want Right", got)
	}
	if got := Trailing.Concrete(); got != Left {
		t.Errorf("Trailing.Concrete() = %v under RTL, want Left", got)
	}
}
