package csharpx

// Either represents a value of one of two possible alternatives. The
// Maybe core consumes it only through its tag and payload accessors;
// FromEither treats Left as the primary value dimension.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

// Left creates an Either holding its first alternative.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value, isLeft: true}
}

// Right creates an Either holding its second alternative.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isLeft: false}
}

// IsLeft returns true if the Either holds its first alternative.
func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

// IsRight returns true if the Either holds its second alternative.
func (e Either[L, R]) IsRight() bool {
	return !e.isLeft
}

// LeftValue returns the left payload or panics on Right.
func (e Either[L, R]) LeftValue() L {
	if !e.isLeft {
		panic("called LeftValue on Right")
	}
	return e.left
}

// RightValue returns the right payload or panics on Left.
func (e Either[L, R]) RightValue() R {
	if e.isLeft {
		panic("called RightValue on Left")
	}
	return e.right
}

// LeftOr returns the left payload or a default.
func (e Either[L, R]) LeftOr(defaultValue L) L {
	if e.isLeft {
		return e.left
	}
	return defaultValue
}

// RightOr returns the right payload or a default.
func (e Either[L, R]) RightOr(defaultValue R) R {
	if !e.isLeft {
		return e.right
	}
	return defaultValue
}

// Match executes exactly one of two actions based on the alternative.
func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	if e.isLeft {
		onLeft(e.left)
	} else {
		onRight(e.right)
	}
}

// MatchEither executes one of two functions and returns the result.
func MatchEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isLeft {
		return onLeft(e.left)
	}
	return onRight(e.right)
}

// Swap exchanges the two alternatives.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isLeft {
		return Right[R, L](e.left)
	}
	return Left[R, L](e.right)
}
