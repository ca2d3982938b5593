package monad

import (
	"fmt"
	"runtime"
	"strings"
	"unicode"
)

// DeriveCode builds an error code from a caller name and a line number.
//
// With no caller the code is ERR_ and the zero padded line. Otherwise the
// upper case letters of the caller are taken: more than three keeps the
// first three, fewer than three falls back to the first three characters of
// the caller, exactly three is used as is. The line is appended as four
// digits and the whole code is upper cased.
//
// Codes are a debugging aid. Two call sites sharing a prefix and a line
// number in different files get the same code.
func DeriveCode(caller string, line int) ErrorCode {
	if caller == "" {
		return ErrorCode(fmt.Sprintf("ERR_%04d", line))
	}

	upper := []rune(upperLetters(caller))
	switch {
	case len(upper) > 3:
		return ErrorCode(strings.ToUpper(fmt.Sprintf("%s_%04d", string(upper[:3]), line)))
	case len(upper) < 3:
		runes := []rune(caller)
		return ErrorCode(strings.ToUpper(fmt.Sprintf("%s_%04d", string(runes[:min(3, len(runes))]), line)))
	default:
		return ErrorCode(fmt.Sprintf("%s_%04d", string(upper), line))
	}
}

// CallerName reduces a fully qualified runtime function name to the name of
// the member it belongs to, e.g. "example.com/x/y.(*Svc).Create.func1"
// becomes "Create".
func CallerName(funcName string) string {
	funcName = strings.ReplaceAll(funcName, "[...]", "")
	if i := strings.LastIndex(funcName, "/"); i >= 0 {
		funcName = funcName[i+1:]
	}

	parts := strings.Split(funcName, ".")
	if len(parts) < 2 {
		return ""
	}

	for i := len(parts) - 1; i >= 1; i-- {
		part := strings.Trim(parts[i], "(*)")
		if part == "" || isClosureName(part) {
			continue
		}
		return part
	}
	return ""
}

func isClosureName(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "gowrap"), "func")
	if s == "" {
		return true
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func callerCode(skip int) ErrorCode {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return DeriveCode("", 0)
	}

	var name string
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = CallerName(fn.Name())
	}
	return DeriveCode(name, line)
}
