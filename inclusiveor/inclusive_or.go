// Package inclusiveor provides InclusiveOr, a value holding a left item, a
// right item, or both, but never neither.
package inclusiveor

import (
	"fmt"

	"github.com/kaleidawave/inclusive-or/util"
)

// InclusiveOr is exactly one of LeftAndRight, Left or Right. The set of
// variants is closed, so every InclusiveOr carries at least one item.
type InclusiveOr[T, U any] interface {
	// GetLeft returns the left item, if this is a Left or a LeftAndRight.
	GetLeft() util.Optional[T]
	// GetRight returns the right item, if this is a Right or a LeftAndRight.
	GetRight() util.Optional[U]

	fmt.Stringer

	isInclusiveOr()
}

// Homogeneous is an InclusiveOr whose sides share a type.
type Homogeneous[T any] = InclusiveOr[T, T]

type LeftAndRight[T, U any] struct {
	Left  T
	Right U
}

type Left[T, U any] struct {
	Value T
}

type Right[T, U any] struct {
	Value U
}

func NewLeftAndRight[T, U any](left T, right U) InclusiveOr[T, U] {
	return LeftAndRight[T, U]{Left: left, Right: right}
}

func NewLeft[T, U any](left T) InclusiveOr[T, U] {
	return Left[T, U]{Value: left}
}

func NewRight[T, U any](right U) InclusiveOr[T, U] {
	return Right[T, U]{Value: right}
}

func (me LeftAndRight[T, U]) GetLeft() util.Optional[T] {
	return util.Some(me.Left)
}

func (me LeftAndRight[T, U]) GetRight() util.Optional[U] {
	return util.Some(me.Right)
}

func (me LeftAndRight[T, U]) String() string {
	return fmt.Sprintf("LeftAndRight(%v, %v)", me.Left, me.Right)
}

func (LeftAndRight[T, U]) isInclusiveOr() {}

func (me Left[T, U]) GetLeft() util.Optional[T] {
	return util.Some(me.Value)
}

func (me Left[T, U]) GetRight() util.Optional[U] {
	return util.None[U]()
}

func (me Left[T, U]) String() string {
	return fmt.Sprintf("Left(%v)", me.Value)
}

func (Left[T, U]) isInclusiveOr() {}

func (me Right[T, U]) GetLeft() util.Optional[T] {
	return util.None[T]()
}

func (me Right[T, U]) GetRight() util.Optional[U] {
	return util.Some(me.Value)
}

func (me Right[T, U]) String() string {
	return fmt.Sprintf("Right(%v)", me.Value)
}

func (Right[T, U]) isInclusiveOr() {}

// OrInclusive combines two optional items into whichever InclusiveOr variant
// describes the items present. It returns None only when both are absent.
func OrInclusive[T, U any](
	left util.Optional[T],
	right util.Optional[U],
) util.Optional[InclusiveOr[T, U]] {
	leftItem, hasLeft := left.Unpack()
	rightItem, hasRight := right.Unpack()

	switch {
	case hasLeft && hasRight:
		return util.Some(NewLeftAndRight(leftItem, rightItem))
	case hasLeft:
		return util.Some(NewLeft[T, U](leftItem))
	case hasRight:
		return util.Some(NewRight[T](rightItem))
	default:
		return util.None[InclusiveOr[T, U]]()
	}
}
