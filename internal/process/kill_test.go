package process

import "testing"

// PID 0 and real PIDs would signal live process groups, so only a PID
// that cannot exist is exercised here.
func TestKillProcessGroup_UnknownPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
}
