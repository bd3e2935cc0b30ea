package testutil

import "fmt"

// ScriptedRand: детерминированный источник случайных чисел для тестов.
// IntN возвращает значения из очереди Ints по порядку, Float32 из Floats.
// Когда очередь пуста, возвращается Fallback (IntN) и 0.5 (Float32).
type ScriptedRand struct {
	Ints     []int
	Floats   []float32
	Fallback int

	// Calls фиксирует аргументы всех вызовов IntN.
	Calls []int
}

// NewScriptedRand создаёт ScriptedRand с заданной очередью IntN.
func NewScriptedRand(ints ...int) *ScriptedRand {
	return &ScriptedRand{Ints: ints}
}

// IntN возвращает следующее значение из очереди. Паника, если значение вне [0, n).
func (r *ScriptedRand) IntN(n int) int {
	r.Calls = append(r.Calls, n)

	v := r.Fallback
	if len(r.Ints) > 0 {
		v = r.Ints[0]
		r.Ints = r.Ints[1:]
	}
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted value %d out of range [0, %d)", v, n))
	}
	return v
}

// Float32 возвращает следующее значение из очереди Floats.
func (r *ScriptedRand) Float32() float32 {
	if len(r.Floats) == 0 {
		return 0.5
	}
	v := r.Floats[0]
	r.Floats = r.Floats[1:]
	return v
}
