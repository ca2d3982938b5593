package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fluentutils/pkg/monad"
)

type invalidOperationError struct{}

func (invalidOperationError) Error() string {
	return "operation is not valid"
}

var errPerson = monad.NewError("P01", "A person must have a name.")

func TestBind_Success(t *testing.T) {
	t.Parallel()

	res := Bind("strconv.Atoi(\"12\")", func() (int, error) { return strconv.Atoi("12") })

	assert.Equal(t, monad.Ok(12), res)
}

func TestBind_ReturnedError(t *testing.T) {
	t.Parallel()

	res := Bind("strconv.Atoi(\"x\")", func() (int, error) { return strconv.Atoi("x") })

	require.True(t, res.IsErr())
	assert.Equal(t, monad.CodeFailedToBindFactory, res.Err().Code)
	assert.Contains(t, res.Err().Message.String(), "strconv.Atoi(\"x\")")

	var numErr *strconv.NumError
	assert.ErrorAs(t, res.Err().Cause, &numErr)
}

func TestBind_PanicIsCaptured(t *testing.T) {
	t.Parallel()

	fault := invalidOperationError{}

	var res monad.Result[string]
	assert.NotPanics(t, func() {
		res = Bind("panicking factory", func() (string, error) { panic(fault) })
	})

	require.True(t, res.IsErr())
	assert.Equal(t, monad.CodeFailedToBindFactory, res.Err().Code)
	assert.Equal(t, fault, res.Err().Cause)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	okOut := Match(monad.Ok(3),
		func(v int) string { return "ok:" + strconv.Itoa(v) },
		func(err monad.Error) string { return "err:" + err.String() })
	errOut := Match(monad.Err[int](errPerson),
		func(v int) string { return "ok:" + strconv.Itoa(v) },
		func(err monad.Error) string { return "err:" + err.String() })

	assert.Equal(t, "ok:3", okOut)
	assert.Equal(t, "err:P01: A person must have a name.", errOut)
}

func TestMatch_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, x := range []int{-1, 0, 42} {
		assert.Equal(t, x, Match(monad.Ok(x),
			func(v int) int { return v },
			func(monad.Error) int { return 0 }))
	}

	assert.Equal(t, errPerson, Match(monad.Err[int](errPerson),
		func(int) monad.Error { return monad.Error{} },
		func(err monad.Error) monad.Error { return err }))
}

func TestMatch_InvalidResultPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "The result type 'monad.Result[int]' is not supported.", func() {
		Match(monad.Result[int]{},
			func(int) int { return 1 },
			func(monad.Error) int { return 2 })
	})
}

func TestMatchDo(t *testing.T) {
	t.Parallel()

	var gotValue int
	var gotErr monad.Error

	MatchDo(monad.Ok(9), func(v int) { gotValue = v }, func(err monad.Error) { gotErr = err })
	assert.Equal(t, 9, gotValue)
	assert.True(t, gotErr.IsZero())

	MatchDo(monad.Err[int](errPerson), func(v int) { gotValue = -v }, func(err monad.Error) { gotErr = err })
	assert.Equal(t, 9, gotValue)
	assert.Equal(t, errPerson, gotErr)
}

func TestMap_Ok(t *testing.T) {
	t.Parallel()

	res := Map(monad.Ok(2), func(v int) monad.Result[string] {
		return monad.Ok(strconv.Itoa(v * 2))
	})

	assert.Equal(t, monad.Ok("4"), res)
}

func TestMap_ChainedFailureIsNotDoubleWrapped(t *testing.T) {
	t.Parallel()

	res := Map(monad.Ok(2), func(int) monad.Result[string] {
		return monad.Err[string](errPerson)
	})

	assert.Equal(t, monad.Err[string](errPerson), res)
}

func TestMap_ShortCircuitsOnErr(t *testing.T) {
	t.Parallel()

	calls := 0
	res := Map(monad.Err[int](errPerson), func(v int) monad.Result[string] {
		calls++
		return monad.Ok(strconv.Itoa(v))
	})

	assert.Equal(t, monad.Err[string](errPerson), res)
	assert.Equal(t, 0, calls)
}

func TestPipe_Ok(t *testing.T) {
	t.Parallel()

	res := Pipe(monad.Ok("21"), "strconv.Atoi", strconv.Atoi)

	assert.Equal(t, monad.Ok(21), res)
}

func TestPipe_ForwardsErr(t *testing.T) {
	t.Parallel()

	calls := 0
	res := Pipe(monad.Err[string](errPerson), "len", func(s string) (int, error) {
		calls++
		return len(s), nil
	})

	assert.Equal(t, monad.Err[int](errPerson), res)
	assert.Equal(t, 0, calls)
}

func TestPipe_PanicBecomesErrWithExpression(t *testing.T) {
	t.Parallel()

	fault := invalidOperationError{}
	res := Pipe(monad.Ok(1), "panic(invalidOperationError{})", func(int) (bool, error) {
		panic(fault)
	})

	require.True(t, res.IsErr())
	assert.Equal(t, monad.CodeFailedToPipeValue, res.Err().Code)
	assert.Contains(t, res.Err().Message.String(), "panic(invalidOperationError{})")
	assert.Equal(t, fault, res.Err().Cause)
}

func TestPipe_ReturnedErrorBecomesErr(t *testing.T) {
	t.Parallel()

	cause := errors.New("nope")
	res := Pipe(monad.Ok(1), "fail", func(int) (int, error) { return 0, cause })

	require.True(t, res.IsErr())
	assert.Same(t, cause, res.Err().Cause)
	assert.Equal(t, "FUME_03: Error piping value via expression 'fail'.", res.Err().String())
}

func TestEnsure_TruePredicateIsIdentity(t *testing.T) {
	t.Parallel()

	in := monad.Ok(10)

	assert.Equal(t, in, Ensure(in, func(v int) bool { return v > 5 }, "v > 5"))
}

func TestEnsure_FalsePredicateUsesBuiltInError(t *testing.T) {
	t.Parallel()

	res := Ensure(monad.Ok(1), func(v int) bool { return v > 5 }, "v > 5")

	assert.Equal(t, monad.Err[int](monad.FailedPredicate("v > 5")), res)
	assert.Equal(t, "FUME_01: Result value does not match predicate 'v > 5'.", res.Err().String())
}

func TestEnsureErr_FalsePredicateUsesGivenError(t *testing.T) {
	t.Parallel()

	custom := monad.NewError("TOO_SMALL", "value too small")
	res := EnsureErr(monad.Ok(1), func(v int) bool { return v > 5 }, custom)

	assert.Equal(t, monad.Err[int](custom), res)
}

func TestEnsure_ErrIsForwardedWithoutEvaluatingPredicate(t *testing.T) {
	t.Parallel()

	calls := 0
	predicate := func(int) bool {
		calls++
		return true
	}

	assert.Equal(t, monad.Err[int](errPerson), Ensure(monad.Err[int](errPerson), predicate, "p"))
	assert.Equal(t, monad.Err[int](errPerson), EnsureErr(monad.Err[int](errPerson), predicate, monad.NewError("X", "y")))
	assert.Equal(t, 0, calls)
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", "a", "hello"} {
		assert.Equal(t, v, Unwrap(monad.Ok(v)))
	}
}

func TestUnwrap_ErrPanicsWithErrorText(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	e := monad.NewError("E42", "broken", cause)

	defer func() {
		r := recover()
		require.NotNil(t, r)

		var panicErr *monad.UnwrapPanicError
		require.ErrorAs(t, r.(error), &panicErr)
		assert.Equal(t, e.String(), panicErr.Error())
		assert.ErrorIs(t, panicErr, cause)
	}()

	Unwrap(monad.Err[int](e))
}

func TestUnwrap_InvalidResultPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.ErrorIs(t, r.(error), monad.ErrUnexpectedResult)
	}()

	Unwrap(monad.Result[string]{})
}

func TestTee(t *testing.T) {
	t.Parallel()

	seen := []int{}
	record := func(v int) { seen = append(seen, v) }

	assert.Equal(t, monad.Ok(1), Tee(monad.Ok(1), record))
	assert.Equal(t, monad.Err[int](errPerson), Tee(monad.Err[int](errPerson), record))
	assert.Equal(t, []int{1}, seen)
}

func TestTee_InvalidResultPanics(t *testing.T) {
	t.Parallel()

	called := false
	assert.PanicsWithError(t, "The result type 'monad.Result[int]' is not supported.", func() {
		Tee(monad.Result[int]{}, func(int) { called = true })
	})
	assert.False(t, called)
}
