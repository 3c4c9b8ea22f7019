//go:build linux

package du

import (
	"syscall"

	"github.com/idelchi/dirusage/internal/dutime"
)

func statTimes(st *syscall.Stat_t, _ dutime.DuTime) (atime, ctime dutime.DuTime) {
	asec, ansec := st.Atim.Unix()
	csec, cnsec := st.Ctim.Unix()

	return dutime.FromSeconds(asec).WithNanoseconds(ansec), dutime.FromSeconds(csec).WithNanoseconds(cnsec)
}
