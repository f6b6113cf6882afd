package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers into random readable names, so that log lines about the
// same constraint are easy to match up by eye. It flagrantly leaks memory but
// only generates names on demand, so it's not a problem unless debug logging is
// actually on.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	// Names are handed out in order of demand, so make them nondeterministic as a
	// reminder that the same name doesn't refer to the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = r
	return r
}

// A fresh hyphenated name, like "wise-lemur". Used to label generated problems.
func Label() string {
	return petname.Generate(2, "-")
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
