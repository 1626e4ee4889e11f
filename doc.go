// Package dynarray is the home of a generic
// dynamic array and the tooling to watch it resize.
//
// What lives here:
//
//	dynarray/         — DynamicArray[T]: Append, Get, Update, DeleteLast,
//	                    IsEmpty, Size, Cap, Clear, Values, String
//	internal/script/  — YAML operation scripts replayed into a trace
//	internal/render/  — styled trace table and count/capacity plot
//	cmd/dynarray/     — CLI: run, plot, script
//
// Resize policy at a glance:
//
//	size == cap before Append      → cap * 2
//	size <= cap/4 after DeleteLast → cap / 2   (never below 4)
//	Clear                          → size 0, cap 4
//
// Quick example:
//
//	a := dynarray.New[int]()
//	a.Append(10)
//	a.Append(20)
//	last, _ := a.Get(-1) // 20
//	fmt.Println(a)       // [10, 20]
//
//	go get github.com/katalvlaran/dynarray/dynarray
package dynarray
