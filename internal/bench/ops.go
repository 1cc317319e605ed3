package bench

// Every operator writes buf[i+1] = buf[i] OP buf[i+1], so a buffer used for
// n iterations needs n+1 elements.
//
// Integer overflow wraps in two's complement. Integer division by zero
// panics; MinInt / -1 wraps to MinInt.

func Add[T Number](buf []T, i int) { buf[i+1] = buf[i] + buf[i+1] }

func Sub[T Number](buf []T, i int) { buf[i+1] = buf[i] - buf[i+1] }

func Mul[T Number](buf []T, i int) { buf[i+1] = buf[i] * buf[i+1] }

func Div[T Number](buf []T, i int) { buf[i+1] = buf[i] / buf[i+1] }

// Operator pairs an operation with its display symbol.
type Operator[T Number] struct {
	Symbol string
	Fn     Op[T]
}

// Operators returns + - * / in display order.
func Operators[T Number]() []Operator[T] {
	return []Operator[T]{
		{Symbol: "+", Fn: Add[T]},
		{Symbol: "-", Fn: Sub[T]},
		{Symbol: "*", Fn: Mul[T]},
		{Symbol: "/", Fn: Div[T]},
	}
}
