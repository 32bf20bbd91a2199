// Package maxscan drives the demonstration programs: it fills a list from
// command line arguments and reports the running maximum.
package maxscan

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/guillemguerrero/povlist"
	"github.com/guillemguerrero/povlist/pkg/util"
)

const usage = "Please add the integer values to insert to the list.\n" +
	"Example: <program> <values>\n"

// Container pairs a list with the operation that inserts into it.
type Container struct {
	List   povlist.List
	Insert func(povlist.Element) error
}

type fingerprinter interface {
	Fingerprint() uint64
}

// Runner writes results to Out and diagnostics to Log.
type Runner struct {
	Log zerolog.Logger
	Out io.Writer
}

// Run prints the usage when args is empty. Otherwise it opens a container,
// inserts every argument parsed as a decimal integer (0 when it does not
// parse), prints the maximum and destroys the list. Failures are logged,
// never returned.
func (r *Runner) Run(args []string, open func() Container) {
	if len(args) == 0 {
		fmt.Fprint(r.Out, usage)
		return
	}

	c := open()
	defer c.List.Destroy()

	if c.List.ErrorCode() == povlist.ErrorMalloc {
		r.Log.Error().Str("code", c.List.ErrorCode().String()).Msg("list sentinel could not be allocated")
	}

	for _, arg := range args {
		v, ok := util.Atoi(arg)
		if !ok {
			r.Log.Debug().Str("arg", arg).Msg("not a number, using 0")
		}

		if err := c.Insert(v); err != nil {
			r.Log.Warn().Err(err).Int("value", v).Str("code", c.List.ErrorCode().String()).Msg("insert failed")
			continue
		}
		r.Log.Debug().Int("value", v).Int("len", c.List.Len()).Msg("inserted")
	}

	if fp, ok := c.List.(fingerprinter); ok {
		r.Log.Debug().Int("len", c.List.Len()).Str("fingerprint", fmt.Sprintf("%016x", fp.Fingerprint())).Msg("list filled")
	}

	max, err := Max(c.List, r.Out)
	if err != nil {
		r.Log.Error().Err(err).Msg("no maximum to report")
		return
	}
	r.Log.Debug().Int("max", max).Msg("scan done")
}

// Max moves the POV of l from the head to the end, writing a line to w every
// time the maximum grows and a final line with the maximum. It fails on an
// empty list without writing anything.
func Max(l povlist.Cursor, w io.Writer) (povlist.Element, error) {
	l.GoToHead()
	max, err := l.Get()
	if err != nil {
		return 0, errors.Wrap(err, "list is empty")
	}
	fmt.Fprintf(w, "Current maximum value is: %d\n", max)

	for err = l.Next(); err == nil && !l.IsAtEnd(); err = l.Next() {
		v, err := l.Get()
		if err != nil {
			return max, err
		}
		if v > max {
			max = v
			fmt.Fprintf(w, "Current maximum value is: %d\n", max)
		}
	}
	if err != nil {
		return max, err
	}

	fmt.Fprintf(w, "The maximum value is %d\n", max)
	return max, nil
}
