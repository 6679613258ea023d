package naming

import (
	"bufio"
	"io"
	"strings"

	"github.com/gnames/gnzoo/pkg/textutil"
)

// Pool maps a lowercase species key to names that are not used yet.
type Pool map[string][]string

// ParsePool reads lines like "hyena: Kamari, Simba". Blank lines are
// skipped. When a species appears twice, the last line wins.
func ParsePool(r io.Reader) (Pool, error) {
	res := make(Pool)
	sc := bufio.NewScanner(r)
	var lineNum int
	for sc.Scan() {
		lineNum++
		line := textutil.Trim(sc.Text())
		if line == "" {
			continue
		}

		key, vals, ok := strings.Cut(line, ":")
		if !ok {
			return nil, NamesFormatError(lineNum, line)
		}

		key = textutil.ToLower(textutil.Trim(key))
		tokens := textutil.Split(textutil.Trim(vals), ",")
		names := make([]string, 0, len(tokens))
		for _, v := range tokens {
			v = textutil.Trim(v)
			if v != "" {
				names = append(names, v)
			}
		}
		res[key] = names
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// PopNext removes the first unused name of a species and returns it.
// When no names are left it returns "Unnamed <key>". A key that was never
// seen gets an empty entry in the pool.
func (p Pool) PopNext(key string) string {
	names := p[key]
	if len(names) == 0 {
		p[key] = names
		return "Unnamed " + key
	}
	p[key] = names[1:]
	return names[0]
}

// Remaining returns how many names are left for the species.
func (p Pool) Remaining(key string) int {
	return len(p[key])
}
