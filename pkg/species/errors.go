package species

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnzoo/pkg/errcode"
)

// UnsupportedSpeciesError is returned for animals outside of the
// hyena, lion, tiger and bear set.
func UnsupportedSpeciesError(s string) error {
	msg := `Unsupported species <em>%s</em>
   The zoo accepts hyena, lion, tiger and bear`
	vars := []any{s}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnsupportedSpeciesError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unsupported species: %s",
			fn.Name(), s),
	}
}
