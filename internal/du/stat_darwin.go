//go:build darwin

package du

import (
	"syscall"

	"github.com/idelchi/dirusage/internal/dutime"
)

func statTimes(st *syscall.Stat_t, _ dutime.DuTime) (atime, ctime dutime.DuTime) {
	asec, ansec := st.Atimespec.Unix()
	csec, cnsec := st.Ctimespec.Unix()

	return dutime.FromSeconds(asec).WithNanoseconds(ansec), dutime.FromSeconds(csec).WithNanoseconds(cnsec)
}
